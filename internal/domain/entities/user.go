package entities

// UserRole is the access role carried by the authenticated caller.
//
// The core never reads ambient session state; the (external) API layer
// resolves the authenticated user and injects an Actor into each call.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleCliente UserRole = "cliente"
)

// Actor is the authenticated identity requesting an operation.
type Actor struct {
	ID   string
	Role UserRole
}

// IsStaff reports whether the actor belongs to the construction firm staff.
func (a Actor) IsStaff() bool {
	return a.Role == RoleAdmin
}
