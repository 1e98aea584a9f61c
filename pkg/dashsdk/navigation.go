package dashsdk

// NavEntry is one sidebar navigation item. AllowedRoles is the explicit set
// of roles that may see the entry; an entry is never visible to a role not in
// its list.
type NavEntry struct {
	Title        string
	Path         string
	AllowedRoles []string
	Children     []NavEntry
}

func (e NavEntry) allows(role string) bool {
	for _, r := range e.AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}

// VisibleNav filters a navigation tree down to the entries whose allow-list
// contains the given role, recursively. An allowed parent keeps only its
// allowed children.
func VisibleNav(entries []NavEntry, role string) []NavEntry {
	var out []NavEntry
	for _, e := range entries {
		if !e.allows(role) {
			continue
		}
		e.Children = VisibleNav(e.Children, role)
		out = append(out, e)
	}
	return out
}

// Role names, mirroring the server's closed enumeration.
const (
	RoleOwner           = "Owner"
	RoleDirectorOfOps   = "Director of Operations"
	RoleDistrictManager = "District Manager"
	RoleGeneralManager  = "General Manager"
	RoleShiftSupervisor = "Shift Supervisor"
	RoleTeamMember      = "Team Member"
)

func allRoles() []string {
	return []string{
		RoleOwner, RoleDirectorOfOps, RoleDistrictManager,
		RoleGeneralManager, RoleShiftSupervisor, RoleTeamMember,
	}
}

func managementRoles() []string {
	return []string{RoleOwner, RoleDirectorOfOps, RoleDistrictManager}
}

// DefaultNav returns the dashboard's navigation tree. Operational views are
// open to every role; the management section mirrors the server's route
// policy and is restricted to the three management roles.
func DefaultNav() []NavEntry {
	return []NavEntry{
		{Title: "Dashboard", Path: "/dashboard", AllowedRoles: allRoles()},
		{Title: "Sales & Labor", Path: "/sales-labor", AllowedRoles: allRoles()},
		{Title: "Inventory", Path: "/inventory", AllowedRoles: allRoles()},
		{Title: "Team", Path: "/team", AllowedRoles: allRoles(), Children: []NavEntry{
			{Title: "Training", Path: "/team/training", AllowedRoles: allRoles()},
			{Title: "Reviews", Path: "/team/reviews", AllowedRoles: allRoles()},
		}},
		{Title: "Management", Path: "/manage", AllowedRoles: managementRoles(), Children: []NavEntry{
			{Title: "Locations", Path: "/manage/locations", AllowedRoles: managementRoles()},
			{Title: "Goals", Path: "/manage/goals", AllowedRoles: managementRoles()},
		}},
	}
}
