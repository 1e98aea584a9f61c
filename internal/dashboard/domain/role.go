package domain

import "fmt"

// Role is the closed set of positions a dashboard user can hold. The string
// values are the canonical display names and are what the token's role claim
// carries.
type Role string

const (
	RoleOwner           Role = "Owner"
	RoleDirectorOfOps   Role = "Director of Operations"
	RoleDistrictManager Role = "District Manager"
	RoleGeneralManager  Role = "General Manager"
	RoleShiftSupervisor Role = "Shift Supervisor"
	RoleTeamMember      Role = "Team Member"
)

// AllRoles lists every valid role, most privileged first.
var AllRoles = []Role{
	RoleOwner,
	RoleDirectorOfOps,
	RoleDistrictManager,
	RoleGeneralManager,
	RoleShiftSupervisor,
	RoleTeamMember,
}

// ManagementRoles are the roles permitted to manage locations and goals.
var ManagementRoles = []Role{
	RoleOwner,
	RoleDirectorOfOps,
	RoleDistrictManager,
}

// ParseRole validates a role string against the closed enumeration.
func ParseRole(s string) (Role, error) {
	for _, r := range AllRoles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) String() string { return string(r) }

// RoleNames converts a role list to plain strings, for middleware allow-lists.
func RoleNames(roles []Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}
