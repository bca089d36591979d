package messages_controllers

import (
	"errors"
	"net/http"

	"teamhub/internal/features/access"
	messages_dto "teamhub/internal/features/messages/dto"
	messages_services "teamhub/internal/features/messages/services"
	users_middleware "teamhub/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MessageController struct {
	messageService *messages_services.MessageService
}

func (c *MessageController) RegisterRoutes(router *gin.RouterGroup) {
	messageRoutes := router.Group("/messages")

	messageRoutes.GET("", c.ListMessages)
	messageRoutes.POST("", c.CreateMessage)
}

// ListMessages
// @Summary List project messages
// @Description List messages of a project in chronological order with author info
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param projectId query string true "Project ID"
// @Success 200 {object} messages_dto.ListMessagesResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /messages [get]
func (c *MessageController) ListMessages(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := uuid.Parse(ctx.Query("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing projectId"})
		return
	}

	response, err := c.messageService.ListMessages(caller, projectID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// CreateMessage
// @Summary Post a message
// @Description Post a text or file message to a project channel
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body messages_dto.CreateMessageRequestDTO true "Message data"
// @Success 201 {object} messages_models.Message
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /messages [post]
func (c *MessageController) CreateMessage(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request messages_dto.CreateMessageRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	message, err := c.messageService.CreateMessage(caller, &request)
	if err != nil {
		if errors.Is(err, messages_services.ErrRateLimited) {
			ctx.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
			return
		}
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, message)
}

func respondWithError(ctx *gin.Context, err error) {
	if access.IsAccessError(err) {
		ctx.JSON(access.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
