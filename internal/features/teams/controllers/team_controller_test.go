package teams_controllers

import (
	"net/http"
	"testing"

	teams_dto "teamhub/internal/features/teams/dto"
	teams_models "teamhub/internal/features/teams/models"
	teams_testing "teamhub/internal/features/teams/testing"
	users_enums "teamhub/internal/features/users/enums"
	users_testing "teamhub/internal/features/users/testing"
	test_utils "teamhub/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CreateTeam_WithValidData_CreatesTeamWithOwnerMembership(t *testing.T) {
	router := teams_testing.CreateTestRouter(GetTeamController(), GetInvitationController())
	owner := users_testing.CreateTestUser()

	request := teams_dto.CreateTeamRequestDTO{
		Name:        "Engineering",
		Description: "Core engineering team",
	}

	var team teams_models.Team
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/teams", "Bearer "+owner.Token,
		request, http.StatusCreated, &team)

	assert.Equal(t, "Engineering", team.Name)
	assert.Equal(t, teams_models.DefaultSubscriptionTier, team.SubscriptionTier)
	assert.Equal(t, teams_models.DefaultMaxMembers, team.MaxMembers)
	assert.Equal(t, owner.UserID, team.CreatedBy)

	var members teams_dto.ListMembersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/teams/"+team.ID.String()+"/members",
		"Bearer "+owner.Token, http.StatusOK, &members)

	require.Len(t, members.Members, 1)
	assert.Equal(t, owner.UserID, members.Members[0].UserID)
	assert.Equal(t, users_enums.TeamRoleOwner, members.Members[0].Role)

	// Profile denormalization follows team creation
	user := users_testing.GetTestUser(owner.UserID)
	require.NotNil(t, user.TeamID)
	assert.Equal(t, team.ID, *user.TeamID)
	assert.Equal(t, users_enums.TeamRoleOwner, user.Role)
}

func Test_GetMyTeam_AfterCreatingTeam_ReturnsTeamWithMembers(t *testing.T) {
	router := teams_testing.CreateTestRouter(GetTeamController(), GetInvitationController())
	owner := users_testing.CreateTestUser()
	team := teams_testing.CreateTestTeam("My Team", owner, router)

	var response teams_dto.GetMyTeamResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/teams/my", "Bearer "+owner.Token,
		http.StatusOK, &response)

	require.NotNil(t, response.Team)
	assert.Equal(t, team.ID, response.Team.ID)
	require.Len(t, response.Members, 1)
}

func Test_GetMyTeam_WithoutTeam_ReturnsNotFound(t *testing.T) {
	router := teams_testing.CreateTestRouter(GetTeamController(), GetInvitationController())
	user := users_testing.CreateTestUser()

	test_utils.MakeGetRequest(t, router, "/api/v1/teams/my",
		"Bearer "+user.Token, http.StatusNotFound)
}

func Test_GetTeam_WithUnknownTeamID_ReturnsNotFound(t *testing.T) {
	router := teams_testing.CreateTestRouter(GetTeamController(), GetInvitationController())
	user := users_testing.CreateTestUser()

	test_utils.MakeGetRequest(t, router, "/api/v1/teams/"+uuid.New().String(),
		"Bearer "+user.Token, http.StatusNotFound)
}

func Test_GetTeam_AsNonMember_ReturnsForbidden(t *testing.T) {
	router := teams_testing.CreateTestRouter(GetTeamController(), GetInvitationController())
	owner := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()
	team := teams_testing.CreateTestTeam("Private Team", owner, router)

	test_utils.MakeGetRequest(t, router, "/api/v1/teams/"+team.ID.String(),
		"Bearer "+outsider.Token, http.StatusForbidden)
}

func Test_GetTeam_WithoutToken_ReturnsUnauthorized(t *testing.T) {
	router := teams_testing.CreateTestRouter(GetTeamController(), GetInvitationController())
	owner := users_testing.CreateTestUser()
	team := teams_testing.CreateTestTeam("Token Team", owner, router)

	test_utils.MakeGetRequest(t, router, "/api/v1/teams/"+team.ID.String(),
		"", http.StatusUnauthorized)
}

func Test_UpdateTeam_AsViewer_ReturnsForbidden(t *testing.T) {
	router := teams_testing.CreateTestRouter(GetTeamController(), GetInvitationController())
	owner := users_testing.CreateTestUser()
	viewer := users_testing.CreateTestUser()
	team := teams_testing.CreateTestTeam("Gated Team", owner, router)
	teams_testing.JoinTeam(team, owner, viewer, users_enums.TeamRoleViewer, router)

	newName := "Renamed"
	request := teams_dto.UpdateTeamRequestDTO{Name: &newName}

	response := test_utils.MakePutRequest(
		t, router, "/api/v1/teams/"+team.ID.String(),
		"Bearer "+viewer.Token, request, http.StatusForbidden)
	assert.Contains(t, string(response.Body), "insufficient role")
}

func Test_UpdateTeam_AsAdmin_UpdatesFields(t *testing.T) {
	router := teams_testing.CreateTestRouter(GetTeamController(), GetInvitationController())
	owner := users_testing.CreateTestUser()
	admin := users_testing.CreateTestUser()
	team := teams_testing.CreateTestTeam("Old Name", owner, router)
	teams_testing.JoinTeam(team, owner, admin, users_enums.TeamRoleAdmin, router)

	newName := "New Name"
	newDescription := "Updated description"
	request := teams_dto.UpdateTeamRequestDTO{Name: &newName, Description: &newDescription}

	var updated teams_models.Team
	test_utils.MakePutRequestAndUnmarshal(
		t, router, "/api/v1/teams/"+team.ID.String(),
		"Bearer "+admin.Token, request, http.StatusOK, &updated)

	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "Updated description", updated.Description)
}

func Test_ListTeams_ReturnsOnlyCallerMemberships(t *testing.T) {
	router := teams_testing.CreateTestRouter(GetTeamController(), GetInvitationController())
	owner := users_testing.CreateTestUser()
	other := users_testing.CreateTestUser()
	team := teams_testing.CreateTestTeam("Mine", owner, router)
	teams_testing.CreateTestTeam("Theirs", other, router)

	var response teams_dto.ListTeamsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/teams", "Bearer "+owner.Token,
		http.StatusOK, &response)

	require.Len(t, response.Teams, 1)
	assert.Equal(t, team.ID, response.Teams[0].ID)
	assert.Equal(t, users_enums.TeamRoleOwner, response.Teams[0].Role)
}

func Test_ChangeMemberRole_OwnRole_ReturnsBadRequest(t *testing.T) {
	router := teams_testing.CreateTestRouter(GetTeamController(), GetInvitationController())
	owner := users_testing.CreateTestUser()
	team := teams_testing.CreateTestTeam("Self Change", owner, router)

	request := teams_dto.ChangeMemberRoleRequestDTO{Role: users_enums.TeamRoleAdmin}

	response := test_utils.MakePutRequest(
		t, router,
		"/api/v1/teams/"+team.ID.String()+"/members/"+owner.UserID.String()+"/role",
		"Bearer "+owner.Token, request, http.StatusBadRequest)
	assert.Contains(t, string(response.Body), "cannot change your own role")
}

func Test_ChangeMemberRole_PromoteToOwnerAsAdmin_ReturnsForbidden(t *testing.T) {
	router := teams_testing.CreateTestRouter(GetTeamController(), GetInvitationController())
	owner := users_testing.CreateTestUser()
	admin := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()
	team := teams_testing.CreateTestTeam("Owner Gate", owner, router)
	teams_testing.JoinTeam(team, owner, admin, users_enums.TeamRoleAdmin, router)
	teams_testing.JoinTeam(team, owner, member, users_enums.TeamRoleMember, router)

	request := teams_dto.ChangeMemberRoleRequestDTO{Role: users_enums.TeamRoleOwner}

	test_utils.MakePutRequest(
		t, router,
		"/api/v1/teams/"+team.ID.String()+"/members/"+member.UserID.String()+"/role",
		"Bearer "+admin.Token, request, http.StatusForbidden)
}

func Test_ChangeMemberRole_OnMissingMember_ReturnsNotFound(t *testing.T) {
	router := teams_testing.CreateTestRouter(GetTeamController(), GetInvitationController())
	owner := users_testing.CreateTestUser()
	team := teams_testing.CreateTestTeam("Missing Member", owner, router)

	request := teams_dto.ChangeMemberRoleRequestDTO{Role: users_enums.TeamRoleAdmin}

	test_utils.MakePutRequest(
		t, router,
		"/api/v1/teams/"+team.ID.String()+"/members/"+uuid.New().String()+"/role",
		"Bearer "+owner.Token, request, http.StatusNotFound)
}

func Test_ChangeMemberRole_AsOwner_PromotesMemberToAdmin(t *testing.T) {
	router := teams_testing.CreateTestRouter(GetTeamController(), GetInvitationController())
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()
	team := teams_testing.CreateTestTeam("Promotion", owner, router)
	teams_testing.JoinTeam(team, owner, member, users_enums.TeamRoleMember, router)

	request := teams_dto.ChangeMemberRoleRequestDTO{Role: users_enums.TeamRoleAdmin}

	test_utils.MakePutRequest(
		t, router,
		"/api/v1/teams/"+team.ID.String()+"/members/"+member.UserID.String()+"/role",
		"Bearer "+owner.Token, request, http.StatusOK)

	var members teams_dto.ListMembersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/teams/"+team.ID.String()+"/members",
		"Bearer "+owner.Token, http.StatusOK, &members)

	for _, m := range members.Members {
		if m.UserID == member.UserID {
			assert.Equal(t, users_enums.TeamRoleAdmin, m.Role)
		}
	}
}

func Test_RemoveMember_Owner_ReturnsBadRequest(t *testing.T) {
	router := teams_testing.CreateTestRouter(GetTeamController(), GetInvitationController())
	owner := users_testing.CreateTestUser()
	admin := users_testing.CreateTestUser()
	team := teams_testing.CreateTestTeam("Owner Removal", owner, router)
	teams_testing.JoinTeam(team, owner, admin, users_enums.TeamRoleAdmin, router)

	response := test_utils.MakeDeleteRequest(
		t, router,
		"/api/v1/teams/"+team.ID.String()+"/members/"+owner.UserID.String(),
		"Bearer "+admin.Token, http.StatusBadRequest)
	assert.Contains(t, string(response.Body), "owners cannot be removed")
}

func Test_RemoveMember_AsAdmin_RemovesMemberAndClearsProfile(t *testing.T) {
	router := teams_testing.CreateTestRouter(GetTeamController(), GetInvitationController())
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()
	team := teams_testing.CreateTestTeam("Removal", owner, router)
	teams_testing.JoinTeam(team, owner, member, users_enums.TeamRoleMember, router)

	test_utils.MakeDeleteRequest(
		t, router,
		"/api/v1/teams/"+team.ID.String()+"/members/"+member.UserID.String(),
		"Bearer "+owner.Token, http.StatusOK)

	var members teams_dto.ListMembersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/teams/"+team.ID.String()+"/members",
		"Bearer "+owner.Token, http.StatusOK, &members)
	require.Len(t, members.Members, 1)

	user := users_testing.GetTestUser(member.UserID)
	assert.Nil(t, user.TeamID)
}

func Test_RemoveMember_AsMember_ReturnsForbidden(t *testing.T) {
	router := teams_testing.CreateTestRouter(GetTeamController(), GetInvitationController())
	owner := users_testing.CreateTestUser()
	memberOne := users_testing.CreateTestUser()
	memberTwo := users_testing.CreateTestUser()
	team := teams_testing.CreateTestTeam("Member Gate", owner, router)
	teams_testing.JoinTeam(team, owner, memberOne, users_enums.TeamRoleMember, router)
	teams_testing.JoinTeam(team, owner, memberTwo, users_enums.TeamRoleMember, router)

	test_utils.MakeDeleteRequest(
		t, router,
		"/api/v1/teams/"+team.ID.String()+"/members/"+memberTwo.UserID.String(),
		"Bearer "+memberOne.Token, http.StatusForbidden)
}
