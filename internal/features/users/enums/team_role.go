package users_enums

// TeamRole is the single ordered role hierarchy used for every
// privilege comparison. Rank order, low to high:
// viewer < member < admin < owner.
type TeamRole string

const (
	TeamRoleViewer TeamRole = "viewer"
	TeamRoleMember TeamRole = "member"
	TeamRoleAdmin  TeamRole = "admin"
	TeamRoleOwner  TeamRole = "owner"
)

func (r TeamRole) IsValid() bool {
	switch r {
	case TeamRoleViewer, TeamRoleMember, TeamRoleAdmin, TeamRoleOwner:
		return true
	default:
		return false
	}
}

func (r TeamRole) Rank() int {
	switch r {
	case TeamRoleViewer:
		return 0
	case TeamRoleMember:
		return 1
	case TeamRoleAdmin:
		return 2
	case TeamRoleOwner:
		return 3
	default:
		return -1
	}
}

func (r TeamRole) AtLeast(minimum TeamRole) bool {
	return r.Rank() >= minimum.Rank()
}
