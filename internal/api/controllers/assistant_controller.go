package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nomadtrip/internal/models/request_models"
	"nomadtrip/internal/services"
	"nomadtrip/pkg/utils"
)

type AssistantController struct {
	assistantService services.AssistantServiceInterface
}

func NewAssistantController(assistantService services.AssistantServiceInterface) *AssistantController {
	return &AssistantController{
		assistantService: assistantService,
	}
}

func (a *AssistantController) SendMessageHandler(c *gin.Context) {
	var req request_models.AssistantMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := a.assistantService.SendMessage(c.Request.Context(), c.Param("sessionId"), req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reply, "Assistant replied")
}

func (a *AssistantController) ApplySuggestionHandler(c *gin.Context) {
	var req request_models.ApplySuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	state, err := a.assistantService.ApplySuggestion(c.Param("sessionId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Suggestion applied")
}
