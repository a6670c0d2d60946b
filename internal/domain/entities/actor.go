package entities

import "strings"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStaff   Role = "staff"
	RoleArtisan Role = "artisan"
)

// Actor is the authenticated caller as resolved by the gateway. The core only
// reads the role; it never issues or verifies identities.
type Actor struct {
	ID   string
	Role Role
}

func NewActor(id string, role string) Actor {
	return Actor{ID: strings.TrimSpace(id), Role: Role(strings.ToLower(strings.TrimSpace(role)))}
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// CanOperateTickets reports whether the actor may move tickets through the
// workflow.
func (a Actor) CanOperateTickets() bool {
	return a.Role == RoleAdmin || a.Role == RoleStaff
}
