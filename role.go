package fbitda

import (
	"fmt"
	"strings"
)

// Role is the team a user plays in the game.
type Role string

const (
	// RoleNone is the role of a user that has not entered a team view yet.
	RoleNone Role = ""
	// RoleInput enters the valuation terms.
	RoleInput Role = "team1"
	// RoleApprove reviews the terms entered by RoleInput.
	RoleApprove Role = "team2"
)

// Roles returns the playable roles.
func Roles() []Role { return []Role{RoleInput, RoleApprove} }

// ParseRole parses a wire role. The empty string is RoleNone.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleNone, RoleInput, RoleApprove:
		return r, nil
	}
	return RoleNone, fmt.Errorf("unknown role %q, must be %q or %q", s, RoleInput, RoleApprove)
}

func (r Role) String() string { return string(r) }

// Title is the team label shown in the team's view.
func (r Role) Title() string {
	switch r {
	case RoleInput:
		return "Team 1 - Input Terms"
	case RoleApprove:
		return "Team 2 - Approve Terms"
	}
	return "Spectator"
}

// Description tells the team what it is expected to do.
func (r Role) Description() string {
	switch r {
	case RoleInput:
		return "Enter financial metrics for valuation calculation"
	case RoleApprove:
		return "Review and approve submitted financial terms"
	}
	return "Pick a team to start playing"
}

func (r *Role) UnmarshalText(text []byte) error {
	role, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = role
	return nil
}

// Operation identifies a Store mutation for the role gate.
type Operation int

const (
	OpUpdateInput Operation = iota + 1
	OpUpdateFieldStatus
	OpTick
	OpResetSession
	OpSetRole
	OpSetDisplayName
	OpSetVisibility
)

// gate maps gated operations to the only role allowed to perform them.
// Operations absent from the map are allowed to everyone.
var gate = map[Operation]Role{
	OpUpdateInput:       RoleInput,
	OpUpdateFieldStatus: RoleApprove,
}

// Permitted reports whether role may perform op.
func Permitted(role Role, op Operation) bool {
	owner, gated := gate[op]
	return !gated || owner == role
}
