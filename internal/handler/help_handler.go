package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khushijha-kj/signvibe-api/internal/service"
	appErrors "github.com/khushijha-kj/signvibe-api/pkg/errors"
	"github.com/khushijha-kj/signvibe-api/pkg/response"
)

// HelpHandler exposes the accessible STEM help endpoint.
type HelpHandler struct {
	service *service.HelpService
}

// NewHelpHandler creates a new handler.
func NewHelpHandler(svc *service.HelpService) *HelpHandler {
	return &HelpHandler{service: svc}
}

// Ask godoc
// @Summary Ask the STEM help assistant
// @Description Proxies a free-text query to the upstream LLM
// @Tags Help
// @Accept json
// @Produce json
// @Param payload body map[string]string true "Query payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /help [post]
func (h *HelpHandler) Ask(c *gin.Context) {
	var req struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "query is required and must be a string."))
		return
	}

	answer, err := h.service.Ask(c.Request.Context(), req.Query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"message": "LLM Help response",
		"data":    answer,
	})
}
