package users_enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_TeamRole_RankOrdering_ViewerLowestOwnerHighest(t *testing.T) {
	assert.Less(t, TeamRoleViewer.Rank(), TeamRoleMember.Rank())
	assert.Less(t, TeamRoleMember.Rank(), TeamRoleAdmin.Rank())
	assert.Less(t, TeamRoleAdmin.Rank(), TeamRoleOwner.Rank())
}

func Test_TeamRole_AtLeast_IsMonotonic(t *testing.T) {
	roles := []TeamRole{TeamRoleViewer, TeamRoleMember, TeamRoleAdmin, TeamRoleOwner}

	for i, role := range roles {
		for j, minimum := range roles {
			assert.Equal(t, i >= j, role.AtLeast(minimum),
				"AtLeast(%s, %s)", role, minimum)
		}
	}
}

func Test_TeamRole_AtLeast_GrantsLowerRanksWhenAdminGranted(t *testing.T) {
	// anything an admin can do, a caller allowed at admin rank can also
	// do at member and viewer rank
	assert.True(t, TeamRoleAdmin.AtLeast(TeamRoleMember))
	assert.True(t, TeamRoleAdmin.AtLeast(TeamRoleViewer))
}

func Test_TeamRole_IsValid_RejectsUnknownRole(t *testing.T) {
	assert.False(t, TeamRole("superuser").IsValid())
	assert.False(t, TeamRole("").IsValid())
}

func Test_TeamRole_Rank_UnknownRoleRanksBelowViewer(t *testing.T) {
	assert.Less(t, TeamRole("bogus").Rank(), TeamRoleViewer.Rank())
}
