package projects_testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	projects_dto "teamhub/internal/features/projects/dto"
	projects_models "teamhub/internal/features/projects/models"
	users_dto "teamhub/internal/features/users/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateTestProject creates a project through the API. teamID may be
// nil for an ungated project.
func CreateTestProject(
	name string,
	teamID *uuid.UUID,
	owner *users_dto.SignInResponseDTO,
	router *gin.Engine,
) *projects_models.Project {
	request := projects_dto.CreateProjectRequestDTO{
		Name:   name,
		TeamID: teamID,
	}

	payload, err := json.Marshal(request)
	if err != nil {
		panic(err)
	}

	httpRequest := httptest.NewRequest(http.MethodPost, "/api/v1/projects", bytes.NewReader(payload))
	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.Header.Set("Authorization", "Bearer "+owner.Token)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httpRequest)

	if recorder.Code != http.StatusCreated {
		panic(fmt.Sprintf("failed to create test project: %d %s", recorder.Code, recorder.Body.String()))
	}

	var project projects_models.Project
	if err := json.Unmarshal(recorder.Body.Bytes(), &project); err != nil {
		panic(err)
	}

	return &project
}
