package tasks_controllers

import (
	"fmt"
	"net/http"
	"testing"

	projects_testing "teamhub/internal/features/projects/testing"
	projects_controllers "teamhub/internal/features/projects/controllers"
	tasks_dto "teamhub/internal/features/tasks/dto"
	tasks_models "teamhub/internal/features/tasks/models"
	teams_controllers "teamhub/internal/features/teams/controllers"
	teams_testing "teamhub/internal/features/teams/testing"
	users_testing "teamhub/internal/features/users/testing"
	test_utils "teamhub/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTasksRouter() *gin.Engine {
	return teams_testing.CreateTestRouter(
		teams_controllers.GetTeamController(),
		teams_controllers.GetInvitationController(),
		projects_controllers.GetProjectController(),
		GetTaskController(),
	)
}

func Test_CreateTask_InAccessibleProject_Succeeds(t *testing.T) {
	router := createTasksRouter()
	user := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("Task Home", nil, user, router)

	request := tasks_dto.CreateTaskRequestDTO{
		ProjectID: project.ID,
		Title:     "Write the report",
		DueDate:   "2026-09-15",
	}

	var task tasks_models.Task
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/tasks", "Bearer "+user.Token,
		request, http.StatusCreated, &task)

	assert.Equal(t, "Write the report", task.Title)
	assert.Equal(t, tasks_models.TaskStatusTodo, task.Status)
	assert.Equal(t, tasks_models.DefaultTaskPriority, task.Priority)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2026-09-15", task.DueDate.Format("2006-01-02"))
}

func Test_CreateTask_InForeignTeamProject_ReturnsForbidden(t *testing.T) {
	router := createTasksRouter()
	owner := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()
	team := teams_testing.CreateTestTeam("Task Gate", owner, router)
	project := projects_testing.CreateTestProject("Gated Tasks", &team.ID, owner, router)

	request := tasks_dto.CreateTaskRequestDTO{
		ProjectID: project.ID,
		Title:     "Sneaky task",
	}

	test_utils.MakePostRequest(
		t, router, "/api/v1/tasks", "Bearer "+outsider.Token,
		request, http.StatusForbidden)
}

func Test_CreateTask_InMissingProject_ReturnsNotFound(t *testing.T) {
	router := createTasksRouter()
	user := users_testing.CreateTestUser()

	request := tasks_dto.CreateTaskRequestDTO{
		ProjectID: uuid.New(),
		Title:     "Orphan task",
	}

	test_utils.MakePostRequest(
		t, router, "/api/v1/tasks", "Bearer "+user.Token,
		request, http.StatusNotFound)
}

func Test_ListTasks_ReturnsTasksOrderedByPosition(t *testing.T) {
	router := createTasksRouter()
	user := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("Ordered", nil, user, router)

	for i, title := range []string{"third", "first", "second"} {
		positions := []int{3, 1, 2}
		request := tasks_dto.CreateTaskRequestDTO{
			ProjectID: project.ID,
			Title:     title,
			Position:  positions[i],
		}
		test_utils.MakePostRequest(
			t, router, "/api/v1/tasks", "Bearer "+user.Token,
			request, http.StatusCreated)
	}

	var response tasks_dto.ListTasksResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/tasks?projectId="+project.ID.String(),
		"Bearer "+user.Token, http.StatusOK, &response)

	require.Len(t, response.Tasks, 3)
	assert.Equal(t, "first", response.Tasks[0].Title)
	assert.Equal(t, "second", response.Tasks[1].Title)
	assert.Equal(t, "third", response.Tasks[2].Title)
}

func Test_UpdateTask_WithPartialFields_LeavesOthersUntouched(t *testing.T) {
	router := createTasksRouter()
	user := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("Partial", nil, user, router)

	createRequest := tasks_dto.CreateTaskRequestDTO{
		ProjectID:   project.ID,
		Title:       "Original title",
		Description: "Original description",
		Priority:    "high",
	}

	var task tasks_models.Task
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/tasks", "Bearer "+user.Token,
		createRequest, http.StatusCreated, &task)

	newStatus := "in_progress"
	updateRequest := tasks_dto.UpdateTaskRequestDTO{Status: &newStatus}

	var updated tasks_models.Task
	test_utils.MakePutRequestAndUnmarshal(
		t, router, "/api/v1/tasks/"+task.ID.String(),
		"Bearer "+user.Token, updateRequest, http.StatusOK, &updated)

	assert.Equal(t, "in_progress", updated.Status)
	assert.Equal(t, "Original title", updated.Title)
	assert.Equal(t, "Original description", updated.Description)
	assert.Equal(t, "high", updated.Priority)
	assert.True(t, updated.UpdatedAt.After(task.UpdatedAt) || updated.UpdatedAt.Equal(task.UpdatedAt))
}

func Test_DeleteTask_RemovesTask(t *testing.T) {
	router := createTasksRouter()
	user := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("Deletions", nil, user, router)

	var task tasks_models.Task
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/tasks", "Bearer "+user.Token,
		tasks_dto.CreateTaskRequestDTO{ProjectID: project.ID, Title: "Temp"},
		http.StatusCreated, &task)

	test_utils.MakeDeleteRequest(
		t, router, "/api/v1/tasks/"+task.ID.String(),
		"Bearer "+user.Token, http.StatusOK)

	test_utils.MakeGetRequest(
		t, router, "/api/v1/tasks/"+task.ID.String(),
		"Bearer "+user.Token, http.StatusNotFound)
}

func Test_GetTaskCounts_GroupsByProjectAndStatus(t *testing.T) {
	router := createTasksRouter()
	user := users_testing.CreateTestUser()
	projectOne := projects_testing.CreateTestProject("Counts One", nil, user, router)
	projectTwo := projects_testing.CreateTestProject("Counts Two", nil, user, router)

	createTask := func(projectID uuid.UUID, status string) {
		request := tasks_dto.CreateTaskRequestDTO{
			ProjectID: projectID,
			Title:     fmt.Sprintf("task-%s", status),
			Status:    status,
		}
		test_utils.MakePostRequest(
			t, router, "/api/v1/tasks", "Bearer "+user.Token,
			request, http.StatusCreated)
	}

	createTask(projectOne.ID, "todo")
	createTask(projectOne.ID, "todo")
	createTask(projectOne.ID, "done")
	createTask(projectTwo.ID, "in_progress")

	var response tasks_dto.TaskCountsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router,
		"/api/v1/tasks/counts?projectIds="+projectOne.ID.String()+","+projectTwo.ID.String(),
		"Bearer "+user.Token, http.StatusOK, &response)

	counts := make(map[string]int64)
	for _, c := range response.Counts {
		counts[c.ProjectID.String()+"/"+c.Status] = c.Count
	}

	assert.Equal(t, int64(2), counts[projectOne.ID.String()+"/todo"])
	assert.Equal(t, int64(1), counts[projectOne.ID.String()+"/done"])
	assert.Equal(t, int64(1), counts[projectTwo.ID.String()+"/in_progress"])
}

func Test_GetTaskCounts_WithForeignTeamProject_ReturnsForbidden(t *testing.T) {
	router := createTasksRouter()
	owner := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()
	team := teams_testing.CreateTestTeam("Count Gate", owner, router)
	project := projects_testing.CreateTestProject("Gated Counts", &team.ID, owner, router)

	test_utils.MakeGetRequest(
		t, router, "/api/v1/tasks/counts?projectIds="+project.ID.String(),
		"Bearer "+outsider.Token, http.StatusForbidden)
}
