package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"construtora_obraprima/internal/domain/entities"
	"construtora_obraprima/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBudgetsTableName = "budgets"
	budgetsClientIDIndex    = "client_id-index"
)

type budgetItemLine struct {
	Description string `dynamodbav:"description"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
}

type budgetItem struct {
	ID         string           `dynamodbav:"id"`
	ClientID   string           `dynamodbav:"client_id"`
	ProjectID  string           `dynamodbav:"project_id,omitempty"`
	Title      string           `dynamodbav:"title"`
	Items      []budgetItemLine `dynamodbav:"items,omitempty"`
	TotalValue string           `dynamodbav:"total_value"`
	Status     string           `dynamodbav:"status"`
	ValidUntil string           `dynamodbav:"valid_until,omitempty"`
	SentAt     string           `dynamodbav:"sent_at,omitempty"`
	CreatedAt  string           `dynamodbav:"created_at"`
	UpdatedAt  string           `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Budget, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(budgetsClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Budget, 0, len(out.Items))
	for _, raw := range out.Items {
		var it budgetItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBudgetItem(it))
	}
	return items, nil
}

func (r *BudgetDynamoRepository) UpdateStatus(ctx context.Context, id string, expected, next entities.Status) (entities.Budget, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(next)},
			":expected":   &types.AttributeValueMemberS{Value: string(expected)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

// MarkSent swaps RASCUNHO to ENVIADO and stamps sent_at/valid_until in the
// same conditional write.
func (r *BudgetDynamoRepository) MarkSent(ctx context.Context, id string, sentAt, validUntil time.Time) (entities.Budget, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #sent_at = :sent_at, #valid_until = :valid_until, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":      &types.AttributeValueMemberS{Value: string(entities.BudgetStatusEnviado)},
			":expected":    &types.AttributeValueMemberS{Value: string(entities.BudgetStatusRascunho)},
			":sent_at":     &types.AttributeValueMemberS{Value: formatTime(sentAt)},
			":valid_until": &types.AttributeValueMemberS{Value: formatTime(validUntil)},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":      "status",
			"#sent_at":     "sent_at",
			"#valid_until": "valid_until",
			"#updated_at":  "updated_at",
		}
		return expr, vals, names
	})
}

func (r *BudgetDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Budget, error) {
	now := nowRFC3339()
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Budget{}, nil
	}
	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	lines := make([]budgetItemLine, 0, len(b.Items))
	for _, it := range b.Items {
		lines = append(lines, budgetItemLine{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   floatToString(it.UnitPrice),
		})
	}

	it := budgetItem{
		ID:         b.ID,
		ClientID:   b.ClientID,
		ProjectID:  b.ProjectID,
		Title:      b.Title,
		Items:      lines,
		TotalValue: floatToString(b.TotalValue),
		Status:     string(b.Status),
		CreatedAt:  formatTime(b.CreatedAt),
		UpdatedAt:  formatTime(b.UpdatedAt),
	}
	if !b.ValidUntil.IsZero() {
		it.ValidUntil = formatTime(b.ValidUntil)
	}
	if b.SentAt != nil {
		it.SentAt = formatTime(*b.SentAt)
	}
	return it
}

func fromBudgetItem(it budgetItem) entities.Budget {
	items := make([]entities.BudgetItem, 0, len(it.Items))
	for _, line := range it.Items {
		price, _ := strconv.ParseFloat(line.UnitPrice, 64)
		items = append(items, entities.BudgetItem{
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   price,
		})
	}
	total, _ := strconv.ParseFloat(it.TotalValue, 64)

	b := entities.Budget{
		ID:         it.ID,
		ClientID:   it.ClientID,
		ProjectID:  it.ProjectID,
		Title:      it.Title,
		Items:      items,
		TotalValue: total,
		Status:     entities.Status(it.Status),
		SentAt:     parseTimePtr(it.SentAt),
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
	if it.ValidUntil != "" {
		b.ValidUntil = parseTime(it.ValidUntil)
	}
	return b
}
