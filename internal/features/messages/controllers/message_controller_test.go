package messages_controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	messages_dto "teamhub/internal/features/messages/dto"
	messages_models "teamhub/internal/features/messages/models"
	projects_controllers "teamhub/internal/features/projects/controllers"
	projects_testing "teamhub/internal/features/projects/testing"
	teams_controllers "teamhub/internal/features/teams/controllers"
	teams_testing "teamhub/internal/features/teams/testing"
	users_testing "teamhub/internal/features/users/testing"
	rate_limit "teamhub/internal/util/rate_limit"
	test_utils "teamhub/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createMessagesRouter() *gin.Engine {
	return teams_testing.CreateTestRouter(
		teams_controllers.GetTeamController(),
		teams_controllers.GetInvitationController(),
		projects_controllers.GetProjectController(),
		GetMessageController(),
	)
}

func Test_CreateMessage_TextMessage_Succeeds(t *testing.T) {
	router := createMessagesRouter()
	user := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("Chat", nil, user, router)

	request := messages_dto.CreateMessageRequestDTO{
		ProjectID: project.ID,
		Content:   "Standup in five minutes",
	}

	var message messages_models.Message
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/messages", "Bearer "+user.Token,
		request, http.StatusCreated, &message)

	assert.Equal(t, "Standup in five minutes", message.Content)
	assert.Equal(t, messages_models.MessageTypeText, message.MessageType)
	assert.Equal(t, user.UserID, message.UserID)
}

func Test_CreateMessage_TextWithoutContent_ReturnsBadRequest(t *testing.T) {
	router := createMessagesRouter()
	user := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("Empty Chat", nil, user, router)

	request := messages_dto.CreateMessageRequestDTO{
		ProjectID: project.ID,
	}

	response := test_utils.MakePostRequest(
		t, router, "/api/v1/messages", "Bearer "+user.Token,
		request, http.StatusBadRequest)
	assert.Contains(t, string(response.Body), "content is required")
}

func Test_CreateMessage_FileMessage_RequiresFileURL(t *testing.T) {
	router := createMessagesRouter()
	user := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("Files", nil, user, router)

	request := messages_dto.CreateMessageRequestDTO{
		ProjectID:   project.ID,
		MessageType: messages_models.MessageTypeFile,
	}

	test_utils.MakePostRequest(
		t, router, "/api/v1/messages", "Bearer "+user.Token,
		request, http.StatusBadRequest)

	request.FileURL = "https://files.example.com/report.pdf"
	request.FileName = "report.pdf"

	var message messages_models.Message
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/messages", "Bearer "+user.Token,
		request, http.StatusCreated, &message)

	assert.Equal(t, messages_models.MessageTypeFile, message.MessageType)
	assert.Equal(t, "report.pdf", message.FileName)
}

func Test_CreateMessage_InForeignTeamProject_ReturnsForbidden(t *testing.T) {
	router := createMessagesRouter()
	owner := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()
	team := teams_testing.CreateTestTeam("Chat Gate", owner, router)
	project := projects_testing.CreateTestProject("Gated Chat", &team.ID, owner, router)

	request := messages_dto.CreateMessageRequestDTO{
		ProjectID: project.ID,
		Content:   "Can I post here?",
	}

	test_utils.MakePostRequest(
		t, router, "/api/v1/messages", "Bearer "+outsider.Token,
		request, http.StatusForbidden)
}

func Test_ListMessages_ReturnsChronologicalOrderWithAuthors(t *testing.T) {
	router := createMessagesRouter()
	user := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("History", nil, user, router)

	for _, content := range []string{"first", "second", "third"} {
		request := messages_dto.CreateMessageRequestDTO{
			ProjectID: project.ID,
			Content:   content,
		}
		test_utils.MakePostRequest(
			t, router, "/api/v1/messages", "Bearer "+user.Token,
			request, http.StatusCreated)
	}

	var response messages_dto.ListMessagesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/messages?projectId="+project.ID.String(),
		"Bearer "+user.Token, http.StatusOK, &response)

	require.Len(t, response.Messages, 3)
	assert.Equal(t, "first", response.Messages[0].Content)
	assert.Equal(t, "third", response.Messages[2].Content)
	assert.NotEmpty(t, response.Messages[0].AuthorName)
}

func Test_ListMessages_WithUnknownProject_ReturnsNotFound(t *testing.T) {
	router := createMessagesRouter()
	user := users_testing.CreateTestUser()

	test_utils.MakeGetRequest(
		t, router, "/api/v1/messages?projectId="+uuid.New().String(),
		"Bearer "+user.Token, http.StatusNotFound)
}

func Test_CreateMessage_BeyondBurstLimit_ReturnsTooManyRequests(t *testing.T) {
	router := createMessagesRouter()
	user := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("Flood", nil, user, router)

	limiter := rate_limit.NewRateLimiter()
	require.NoError(t, limiter.ResetRateLimit(project.ID))

	request := messages_dto.CreateMessageRequestDTO{
		ProjectID: project.ID,
		Content:   "spam",
	}

	payload, err := json.Marshal(request)
	require.NoError(t, err)

	sawTooMany := false
	for i := 0; i < 150; i++ {
		httpRequest := httptest.NewRequest(http.MethodPost, "/api/v1/messages", bytes.NewReader(payload))
		httpRequest.Header.Set("Content-Type", "application/json")
		httpRequest.Header.Set("Authorization", "Bearer "+user.Token)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httpRequest)

		if recorder.Code == http.StatusTooManyRequests {
			sawTooMany = true
			break
		}
	}

	assert.True(t, sawTooMany, "expected rate limiting to kick in within the burst window")
}
