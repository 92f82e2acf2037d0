package entities

// Kind identifies which business record a lifecycle operation targets.
type Kind string

const (
	KindProject     Kind = "project"
	KindBudget      Kind = "budget"
	KindAppointment Kind = "appointment"
	KindInvoice     Kind = "invoice"
)

// Status is the lifecycle state of a business record. Each entity kind
// declares its own closed set of Status values; the lifecycle package owns
// the legal transition graph between them.
type Status string

// StatusRecord is implemented by every entity that participates in the
// lifecycle workflow. OwnerID is the client user the record belongs to.
type StatusRecord interface {
	RecordKind() Kind
	RecordID() string
	OwnerID() string
	CurrentStatus() Status
}
