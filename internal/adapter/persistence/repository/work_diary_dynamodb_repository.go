package repository

import (
	"context"
	"errors"

	"construtora_obraprima/internal/domain/entities"
	"construtora_obraprima/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDiariesTableName = "work_diaries"
	diariesProjectIDIndex   = "project_id-index"
)

type workDiaryItem struct {
	ID         string `dynamodbav:"id"`
	ProjectID  string `dynamodbav:"project_id"`
	Date       string `dynamodbav:"date"`
	Activities string `dynamodbav:"activities"`
	Materials  string `dynamodbav:"materials,omitempty"`
	Equipment  string `dynamodbav:"equipment,omitempty"`
	AISummary  string `dynamodbav:"ai_summary,omitempty"`
	AIInsights string `dynamodbav:"ai_insights,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// WorkDiaryDynamoRepository persists WorkDiary entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
type WorkDiaryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkDiaryRepository = (*WorkDiaryDynamoRepository)(nil)

func NewWorkDiaryDynamoRepository(ddb *dynamodb.Client) *WorkDiaryDynamoRepository {
	return &WorkDiaryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORK_DIARIES_TABLE", defaultDiariesTableName),
	}
}

func (r *WorkDiaryDynamoRepository) Create(ctx context.Context, d entities.WorkDiary) (entities.WorkDiary, error) {
	av, err := attributevalue.MarshalMap(toWorkDiaryItem(d))
	if err != nil {
		return entities.WorkDiary{}, err
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
		return entities.WorkDiary{}, err
	}
	return d, nil
}

func (r *WorkDiaryDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkDiary, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkDiary{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkDiary{}, nil
	}

	var it workDiaryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkDiary{}, err
	}
	return fromWorkDiaryItem(it), nil
}

func (r *WorkDiaryDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.WorkDiary, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(diariesProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.WorkDiary, 0, len(out.Items))
	for _, raw := range out.Items {
		var it workDiaryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromWorkDiaryItem(it))
	}
	return items, nil
}

func (r *WorkDiaryDynamoRepository) UpdateAnnotations(ctx context.Context, id, summary, insights string) (entities.WorkDiary, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #ai_summary = :summary, #ai_insights = :insights, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":summary":    &types.AttributeValueMemberS{Value: summary},
			":insights":   &types.AttributeValueMemberS{Value: insights},
			":updated_at": &types.AttributeValueMemberS{Value: nowRFC3339()},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#ai_summary":  "ai_summary",
			"#ai_insights": "ai_insights",
			"#updated_at":  "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WorkDiary{}, nil
		}
		return entities.WorkDiary{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.WorkDiary{}, nil
	}
	var it workDiaryItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WorkDiary{}, err
	}
	return fromWorkDiaryItem(it), nil
}

func toWorkDiaryItem(d entities.WorkDiary) workDiaryItem {
	return workDiaryItem{
		ID:         d.ID,
		ProjectID:  d.ProjectID,
		Date:       formatTime(d.Date),
		Activities: d.Activities,
		Materials:  d.Materials,
		Equipment:  d.Equipment,
		AISummary:  d.AISummary,
		AIInsights: d.AIInsights,
		CreatedAt:  formatTime(d.CreatedAt),
		UpdatedAt:  formatTime(d.UpdatedAt),
	}
}

func fromWorkDiaryItem(it workDiaryItem) entities.WorkDiary {
	return entities.WorkDiary{
		ID:         it.ID,
		ProjectID:  it.ProjectID,
		Date:       parseTime(it.Date),
		Activities: it.Activities,
		Materials:  it.Materials,
		Equipment:  it.Equipment,
		AISummary:  it.AISummary,
		AIInsights: it.AIInsights,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
