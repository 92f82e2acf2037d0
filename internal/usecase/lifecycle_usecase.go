package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"construtora_obraprima/internal/domain/entities"
	"construtora_obraprima/internal/domain/lifecycle"
	"construtora_obraprima/internal/usecase/interfaces"
)

var (
	ErrUnknownKind                = errors.New("unknown entity kind")
	ErrInvalidRecordID            = errors.New("invalid record id")
	ErrStatusConflict             = errors.New("record status changed concurrently")
	ErrPaymentRejected            = errors.New("payment rejected by gateway")
	ErrNotificationDeliveryFailed = errors.New("notification enqueue failed")
	ErrProjectNotFound            = errors.New("project not found")
	ErrBudgetNotFound             = errors.New("budget not found")
	ErrAppointmentNotFound        = errors.New("appointment not found")
	ErrInvoiceNotFound            = errors.New("invoice not found")
)

const (
	// notificationDedupeBucket windows retried transition requests: the same
	// (kind, record, status) inside one bucket enqueues a single batch.
	notificationDedupeBucket = 5 * time.Minute

	// defaultBudgetValidity stamps valid_until on send when staff left it unset.
	defaultBudgetValidity = 15 * 24 * time.Hour
)

// TransitionCommand is one status-change request from the API layer.
// MPPayload is only meaningful for invoice PAGO and may be empty.
type TransitionCommand struct {
	Actor     entities.Actor
	Kind      entities.Kind
	RecordID  string
	ToStatus  entities.Status
	Notes     string
	MPPayload json.RawMessage
}

// TransitionResult carries the updated record plus the outcome of the
// notification side channel. NotificationErr set with a nil error means the
// status change committed but the counterpart was not informed; callers may
// retry notification delivery independently.
type TransitionResult struct {
	Record          entities.StatusRecord
	From            entities.Status
	To              entities.Status
	NotificationErr error
}

// ILifecycleUseCase orchestrates validate -> persist -> notify for every
// status transition in the system.
type ILifecycleUseCase interface {
	RequestTransition(ctx context.Context, cmd TransitionCommand) (TransitionResult, error)
}

type LifecycleUseCase struct {
	projects     interfaces.IProjectRepository
	budgets      interfaces.IBudgetRepository
	appointments interfaces.IAppointmentRepository
	invoices     interfaces.IInvoiceRepository
	notifier     INotificationUseCase
	gateway      interfaces.IPaymentGateway
	gate         PermissionGate
	validator    TransitionValidator

	// staffUserID receives notifications for client-initiated transitions.
	staffUserID string
	now         func() time.Time
}

var _ ILifecycleUseCase = (*LifecycleUseCase)(nil)

// NewLifecycleUseCase wires the coordinator. gateway may be nil when no
// payment provider is configured; invoice PAGO then skips registration.
func NewLifecycleUseCase(
	projects interfaces.IProjectRepository,
	budgets interfaces.IBudgetRepository,
	appointments interfaces.IAppointmentRepository,
	invoices interfaces.IInvoiceRepository,
	notifier INotificationUseCase,
	gateway interfaces.IPaymentGateway,
	staffUserID string,
) *LifecycleUseCase {
	return &LifecycleUseCase{
		projects:     projects,
		budgets:      budgets,
		appointments: appointments,
		invoices:     invoices,
		notifier:     notifier,
		gateway:      gateway,
		staffUserID:  staffUserID,
		now:          time.Now,
	}
}

// RequestTransition loads the record, gates the actor, validates the domain
// rules plus graph legality, persists the new status with a compare-and-swap
// on the prior one, and enqueues exactly one notification batch addressed to
// the counterpart. Every failure before persistence leaves the record
// untouched; a notification failure after persistence is reported through
// TransitionResult.NotificationErr, never as a hard error.
func (u *LifecycleUseCase) RequestTransition(ctx context.Context, cmd TransitionCommand) (TransitionResult, error) {
	cmd.RecordID = strings.TrimSpace(cmd.RecordID)
	if cmd.RecordID == "" {
		return TransitionResult{}, ErrInvalidRecordID
	}

	rec, err := u.load(ctx, cmd.Kind, cmd.RecordID)
	if err != nil {
		return TransitionResult{}, err
	}
	from := rec.CurrentStatus()

	if err := u.gate.Authorize(cmd.Actor, cmd.Kind, from, cmd.ToStatus, rec.OwnerID()); err != nil {
		return TransitionResult{}, err
	}
	if err := lifecycle.ValidateTransition(cmd.Kind, from, cmd.ToStatus); err != nil {
		return TransitionResult{}, err
	}

	now := u.now().UTC()
	if err := u.validator.Validate(rec, cmd.ToStatus, now); err != nil {
		if errors.Is(err, ErrExpired) {
			u.normalizeExpiredBudget(ctx, cmd.RecordID, from)
		}
		return TransitionResult{}, err
	}

	updated, err := u.persist(ctx, cmd, rec, from, now)
	if err != nil {
		return TransitionResult{}, err
	}
	log.Printf("[lifecycle][usecase] transition committed kind=%s record_id=%s from=%s to=%s actor=%s", cmd.Kind, cmd.RecordID, from, cmd.ToStatus, cmd.Actor.ID)

	result := TransitionResult{Record: updated, From: from, To: cmd.ToStatus}
	if err := u.notifyCounterpart(ctx, cmd, updated, now); err != nil {
		log.Printf("[lifecycle][usecase] notification enqueue failed kind=%s record_id=%s to=%s err=%v", cmd.Kind, cmd.RecordID, cmd.ToStatus, err)
		result.NotificationErr = fmt.Errorf("%w: %v", ErrNotificationDeliveryFailed, err)
	}
	return result, nil
}

func (u *LifecycleUseCase) load(ctx context.Context, kind entities.Kind, id string) (entities.StatusRecord, error) {
	switch kind {
	case entities.KindProject:
		p, err := u.projects.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if p.ID == "" {
			return nil, ErrProjectNotFound
		}
		return p, nil
	case entities.KindBudget:
		b, err := u.budgets.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if b.ID == "" {
			return nil, ErrBudgetNotFound
		}
		return b, nil
	case entities.KindAppointment:
		a, err := u.appointments.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if a.ID == "" {
			return nil, ErrAppointmentNotFound
		}
		return a, nil
	case entities.KindInvoice:
		i, err := u.invoices.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if i.ID == "" {
			return nil, ErrInvoiceNotFound
		}
		return i, nil
	default:
		return nil, ErrUnknownKind
	}
}

// persist writes the new status. Every repository write is conditioned on the
// status we loaded; a zero-value entity back from a repo after a successful
// load means another writer swapped the status first.
func (u *LifecycleUseCase) persist(ctx context.Context, cmd TransitionCommand, rec entities.StatusRecord, from entities.Status, now time.Time) (entities.StatusRecord, error) {
	switch cmd.Kind {
	case entities.KindProject:
		p, err := u.projects.UpdateStatus(ctx, cmd.RecordID, from, cmd.ToStatus)
		if err != nil {
			return nil, err
		}
		if p.ID == "" {
			return nil, ErrStatusConflict
		}
		return p, nil

	case entities.KindBudget:
		if cmd.ToStatus == entities.BudgetStatusEnviado {
			budget := rec.(entities.Budget)
			validUntil := budget.ValidUntil
			if validUntil.IsZero() {
				validUntil = now.Add(defaultBudgetValidity)
			}
			b, err := u.budgets.MarkSent(ctx, cmd.RecordID, now, validUntil)
			if err != nil {
				return nil, err
			}
			if b.ID == "" {
				return nil, ErrStatusConflict
			}
			return b, nil
		}
		b, err := u.budgets.UpdateStatus(ctx, cmd.RecordID, from, cmd.ToStatus)
		if err != nil {
			return nil, err
		}
		if b.ID == "" {
			return nil, ErrStatusConflict
		}
		return b, nil

	case entities.KindAppointment:
		a, err := u.appointments.UpdateStatus(ctx, cmd.RecordID, from, cmd.ToStatus)
		if err != nil {
			return nil, err
		}
		if a.ID == "" {
			return nil, ErrStatusConflict
		}
		return a, nil

	case entities.KindInvoice:
		if cmd.ToStatus == entities.InvoiceStatusPago {
			if err := u.registerPayment(ctx, cmd, rec.(entities.Invoice)); err != nil {
				return nil, err
			}
			i, err := u.invoices.MarkPaid(ctx, cmd.RecordID, from, now)
			if err != nil {
				return nil, err
			}
			if i.ID == "" {
				return nil, ErrStatusConflict
			}
			return i, nil
		}
		i, err := u.invoices.UpdateStatus(ctx, cmd.RecordID, from, cmd.ToStatus)
		if err != nil {
			return nil, err
		}
		if i.ID == "" {
			return nil, ErrStatusConflict
		}
		return i, nil

	default:
		return nil, ErrUnknownKind
	}
}

// registerPayment runs the external payment registration when the caller
// attached a provider payload. It happens before the status write so a
// gateway refusal leaves the invoice untouched.
func (u *LifecycleUseCase) registerPayment(ctx context.Context, cmd TransitionCommand, inv entities.Invoice) error {
	if u.gateway == nil || len(cmd.MPPayload) == 0 {
		return nil
	}

	payload := cmd.MPPayload
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = inv.ID
		}
		// The source of truth for amount is the invoice in DB.
		reqMap["transaction_amount"] = inv.Amount
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPaymentRejected, err)
	}
	log.Printf("[lifecycle][usecase] payment registered invoice_id=%s provider_payment_id=%s provider_status=%s", inv.ID, providerID, providerStatus)
	return nil
}

// normalizeExpiredBudget lazily moves a stale ENVIADO budget to EXPIRADO.
// Best effort: a lost race here is harmless, the budget is terminal either way.
func (u *LifecycleUseCase) normalizeExpiredBudget(ctx context.Context, id string, from entities.Status) {
	if from != entities.BudgetStatusEnviado {
		return
	}
	b, err := u.budgets.UpdateStatus(ctx, id, entities.BudgetStatusEnviado, entities.BudgetStatusExpirado)
	if err != nil {
		log.Printf("[lifecycle][usecase] expiry normalization failed budget_id=%s err=%v", id, err)
		return
	}
	if b.ID != "" {
		log.Printf("[lifecycle][usecase] budget normalized to expirado budget_id=%s", id)
	}
}

// notifyCounterpart enqueues the single notification batch for a committed
// transition: staff actions notify the owning client, client actions notify
// the staff inbox.
func (u *LifecycleUseCase) notifyCounterpart(ctx context.Context, cmd TransitionCommand, rec entities.StatusRecord, now time.Time) error {
	recipient := rec.OwnerID()
	if !cmd.Actor.IsStaff() {
		recipient = u.staffUserID
	}

	bucket := now.Unix() / int64(notificationDedupeBucket/time.Second)
	id := fmt.Sprintf("%s-%s-%s-%d", cmd.Kind, rec.RecordID(), cmd.ToStatus, bucket)

	title, message := transitionCopy(cmd.Kind, cmd.ToStatus, rec, cmd.Actor.IsStaff())
	if cmd.Notes != "" {
		message = message + " " + cmd.Notes
	}

	_, err := u.notifier.Enqueue(ctx, EnqueueCommand{
		ID:      id,
		UserID:  recipient,
		Title:   title,
		Message: message,
		Type:    notificationTypeFor(cmd.ToStatus),
		Link:    recordLink(cmd.Kind, rec.RecordID()),
	})
	return err
}

func notificationTypeFor(to entities.Status) entities.NotificationType {
	switch to {
	case entities.BudgetStatusAprovado, entities.InvoiceStatusPago,
		entities.ProjectStatusConcluido, entities.AppointmentStatusConfirmado:
		return entities.NotificationSuccess
	case entities.BudgetStatusRejeitado, entities.BudgetStatusExpirado,
		entities.ProjectStatusCancelado, entities.InvoiceStatusAtrasado:
		return entities.NotificationWarning
	default:
		return entities.NotificationInfo
	}
}

func recordLink(kind entities.Kind, id string) string {
	switch kind {
	case entities.KindProject:
		return "/projects/" + id
	case entities.KindBudget:
		return "/budgets/" + id
	case entities.KindAppointment:
		return "/appointments/" + id
	case entities.KindInvoice:
		return "/invoices/" + id
	default:
		return ""
	}
}

func transitionCopy(kind entities.Kind, to entities.Status, rec entities.StatusRecord, byStaff bool) (title, message string) {
	// Approve/reject copy names the author because the recipient is always
	// the counterpart: a client decision lands in the staff inbox, a staff
	// decision lands with the owning client.
	author := "pelo cliente"
	if byStaff {
		author = "pela construtora"
	}
	switch kind {
	case entities.KindProject:
		return "Projeto atualizado", fmt.Sprintf("O projeto %s mudou para %s.", rec.RecordID(), to)
	case entities.KindBudget:
		switch to {
		case entities.BudgetStatusEnviado:
			return "Orçamento recebido", "Você recebeu um novo orçamento para avaliação."
		case entities.BudgetStatusAprovado:
			return "Orçamento aprovado", fmt.Sprintf("O orçamento %s foi aprovado %s.", rec.RecordID(), author)
		case entities.BudgetStatusRejeitado:
			return "Orçamento rejeitado", fmt.Sprintf("O orçamento %s foi rejeitado %s.", rec.RecordID(), author)
		default:
			return "Orçamento atualizado", fmt.Sprintf("O orçamento %s mudou para %s.", rec.RecordID(), to)
		}
	case entities.KindAppointment:
		return "Agendamento atualizado", fmt.Sprintf("O agendamento %s mudou para %s.", rec.RecordID(), to)
	case entities.KindInvoice:
		switch to {
		case entities.InvoiceStatusPago:
			return "Fatura paga", fmt.Sprintf("A fatura %s foi registrada como paga.", rec.RecordID())
		case entities.InvoiceStatusAtrasado:
			return "Fatura em atraso", fmt.Sprintf("A fatura %s está em atraso.", rec.RecordID())
		default:
			return "Fatura atualizada", fmt.Sprintf("A fatura %s mudou para %s.", rec.RecordID(), to)
		}
	default:
		return "Registro atualizado", fmt.Sprintf("O registro %s mudou para %s.", rec.RecordID(), to)
	}
}
