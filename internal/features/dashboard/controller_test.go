package dashboard

import (
	"net/http"
	"testing"

	projects_controllers "teamhub/internal/features/projects/controllers"
	projects_testing "teamhub/internal/features/projects/testing"
	tasks_controllers "teamhub/internal/features/tasks/controllers"
	tasks_dto "teamhub/internal/features/tasks/dto"
	teams_controllers "teamhub/internal/features/teams/controllers"
	teams_testing "teamhub/internal/features/teams/testing"
	users_testing "teamhub/internal/features/users/testing"
	test_utils "teamhub/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createDashboardRouter() *gin.Engine {
	return teams_testing.CreateTestRouter(
		teams_controllers.GetTeamController(),
		teams_controllers.GetInvitationController(),
		projects_controllers.GetProjectController(),
		tasks_controllers.GetTaskController(),
		GetDashboardController(),
	)
}

func Test_GetOverview_ReturnsCallerTeamsProjectsAndTasks(t *testing.T) {
	router := createDashboardRouter()
	user := users_testing.CreateTestUser()
	team := teams_testing.CreateTestTeam("Overview Team", user, router)
	project := projects_testing.CreateTestProject("Overview Project", &team.ID, user, router)

	request := tasks_dto.CreateTaskRequestDTO{
		ProjectID: project.ID,
		Title:     "Overview Task",
	}
	test_utils.MakePostRequest(
		t, router, "/api/v1/tasks", "Bearer "+user.Token,
		request, http.StatusCreated)

	var overview OverviewResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/dashboard/overview", "Bearer "+user.Token,
		http.StatusOK, &overview)

	require.Len(t, overview.Teams, 1)
	assert.Equal(t, team.ID, overview.Teams[0].ID)
	require.Len(t, overview.RecentProjects, 1)
	assert.Equal(t, project.ID, overview.RecentProjects[0].ID)
	require.Len(t, overview.RecentTasks, 1)
	assert.Equal(t, "Overview Task", overview.RecentTasks[0].Title)
}

func Test_GetOverview_WithoutMemberships_ReturnsEmptyAggregates(t *testing.T) {
	router := createDashboardRouter()
	user := users_testing.CreateTestUser()

	var overview OverviewResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/dashboard/overview", "Bearer "+user.Token,
		http.StatusOK, &overview)

	assert.Empty(t, overview.Teams)
	assert.Empty(t, overview.RecentProjects)
	assert.Empty(t, overview.RecentTasks)
}

func Test_GetOverview_WithoutToken_ReturnsUnauthorized(t *testing.T) {
	router := createDashboardRouter()

	test_utils.MakeGetRequest(
		t, router, "/api/v1/dashboard/overview", "", http.StatusUnauthorized)
}
