package projects_controllers

import (
	"net/http"
	"testing"

	projects_dto "teamhub/internal/features/projects/dto"
	projects_models "teamhub/internal/features/projects/models"
	projects_testing "teamhub/internal/features/projects/testing"
	teams_controllers "teamhub/internal/features/teams/controllers"
	teams_testing "teamhub/internal/features/teams/testing"
	users_testing "teamhub/internal/features/users/testing"
	test_utils "teamhub/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProjectsRouter() *gin.Engine {
	return teams_testing.CreateTestRouter(
		teams_controllers.GetTeamController(),
		teams_controllers.GetInvitationController(),
		GetProjectController(),
	)
}

func Test_CreateProject_WithoutTeam_Succeeds(t *testing.T) {
	router := createProjectsRouter()
	user := users_testing.CreateTestUser()

	request := projects_dto.CreateProjectRequestDTO{Name: "Side Project"}

	var project projects_models.Project
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/projects", "Bearer "+user.Token,
		request, http.StatusCreated, &project)

	assert.Equal(t, "Side Project", project.Name)
	assert.Nil(t, project.TeamID)
	assert.Equal(t, "active", project.Status)
	assert.Equal(t, user.UserID, project.CreatedBy)
}

func Test_CreateProject_WithForeignTeam_ReturnsForbidden(t *testing.T) {
	router := createProjectsRouter()
	owner := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()
	team := teams_testing.CreateTestTeam("Foreign", owner, router)

	request := projects_dto.CreateProjectRequestDTO{
		Name:   "Not Mine",
		TeamID: &team.ID,
	}

	test_utils.MakePostRequest(
		t, router, "/api/v1/projects", "Bearer "+outsider.Token,
		request, http.StatusForbidden)
}

func Test_GetProject_Ungated_AccessibleToAnyAuthenticatedUser(t *testing.T) {
	router := createProjectsRouter()
	creator := users_testing.CreateTestUser()
	other := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("Open Project", nil, creator, router)

	var fetched projects_models.Project
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/projects/"+project.ID.String(),
		"Bearer "+other.Token, http.StatusOK, &fetched)

	assert.Equal(t, project.ID, fetched.ID)
}

func Test_GetProject_TeamGated_AsNonMember_ReturnsForbidden(t *testing.T) {
	router := createProjectsRouter()
	owner := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()
	team := teams_testing.CreateTestTeam("Gating", owner, router)
	project := projects_testing.CreateTestProject("Team Project", &team.ID, owner, router)

	test_utils.MakeGetRequest(
		t, router, "/api/v1/projects/"+project.ID.String(),
		"Bearer "+outsider.Token, http.StatusForbidden)

	test_utils.MakeGetRequest(
		t, router, "/api/v1/projects/"+project.ID.String(),
		"Bearer "+owner.Token, http.StatusOK)
}

func Test_GetProject_WithUnknownID_ReturnsNotFound(t *testing.T) {
	router := createProjectsRouter()
	user := users_testing.CreateTestUser()

	test_utils.MakeGetRequest(
		t, router, "/api/v1/projects/"+uuid.New().String(),
		"Bearer "+user.Token, http.StatusNotFound)
}

func Test_GetProject_WithoutToken_ReturnsUnauthorized(t *testing.T) {
	router := createProjectsRouter()
	creator := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("Locked Out", nil, creator, router)

	test_utils.MakeGetRequest(
		t, router, "/api/v1/projects/"+project.ID.String(),
		"", http.StatusUnauthorized)
}

func Test_UpdateProject_AsTeamMember_UpdatesFields(t *testing.T) {
	router := createProjectsRouter()
	owner := users_testing.CreateTestUser()
	team := teams_testing.CreateTestTeam("Updaters", owner, router)
	project := projects_testing.CreateTestProject("Before", &team.ID, owner, router)

	newName := "After"
	newStatus := "completed"
	request := projects_dto.UpdateProjectRequestDTO{Name: &newName, Status: &newStatus}

	var updated projects_models.Project
	test_utils.MakePutRequestAndUnmarshal(
		t, router, "/api/v1/projects/"+project.ID.String(),
		"Bearer "+owner.Token, request, http.StatusOK, &updated)

	assert.Equal(t, "After", updated.Name)
	assert.Equal(t, "completed", updated.Status)
}

func Test_DeleteProject_RemovesProjectAndInvalidatesCache(t *testing.T) {
	router := createProjectsRouter()
	creator := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("Doomed", nil, creator, router)

	// Warm the cache before deleting
	test_utils.MakeGetRequest(
		t, router, "/api/v1/projects/"+project.ID.String(),
		"Bearer "+creator.Token, http.StatusOK)

	test_utils.MakeDeleteRequest(
		t, router, "/api/v1/projects/"+project.ID.String(),
		"Bearer "+creator.Token, http.StatusOK)

	test_utils.MakeGetRequest(
		t, router, "/api/v1/projects/"+project.ID.String(),
		"Bearer "+creator.Token, http.StatusNotFound)
}

func Test_ListProjects_WithForeignTeamFilter_ReturnsForbidden(t *testing.T) {
	router := createProjectsRouter()
	owner := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()
	team := teams_testing.CreateTestTeam("Filtered", owner, router)

	test_utils.MakeGetRequest(
		t, router, "/api/v1/projects?teamIds="+team.ID.String(),
		"Bearer "+outsider.Token, http.StatusForbidden)
}

func Test_ListProjects_ReturnsTeamAndOwnUngatedProjects(t *testing.T) {
	router := createProjectsRouter()
	owner := users_testing.CreateTestUser()
	stranger := users_testing.CreateTestUser()
	team := teams_testing.CreateTestTeam("Visible", owner, router)

	teamProject := projects_testing.CreateTestProject("Team Project", &team.ID, owner, router)
	ownProject := projects_testing.CreateTestProject("Own Project", nil, owner, router)
	projects_testing.CreateTestProject("Unrelated", nil, stranger, router)

	var response projects_dto.ListProjectsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/projects", "Bearer "+owner.Token,
		http.StatusOK, &response)

	require.Len(t, response.Projects, 2)

	ids := []uuid.UUID{response.Projects[0].ID, response.Projects[1].ID}
	assert.Contains(t, ids, teamProject.ID)
	assert.Contains(t, ids, ownProject.ID)
}
