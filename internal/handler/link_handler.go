package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/navlink-io/navlink/internal/application"
	"github.com/navlink-io/navlink/internal/response"
)

// LinkHandler handles HTTP requests for deeplink operations.
type LinkHandler struct {
	service *application.LinkService
}

// NewLinkHandler creates a new LinkHandler.
func NewLinkHandler(service *application.LinkService) *LinkHandler {
	return &LinkHandler{service: service}
}

// RegisterRoutes registers all deeplink routes on the given router group.
func (h *LinkHandler) RegisterRoutes(r *gin.RouterGroup) {
	api := r.Group("/api/v1")
	{
		api.POST("/links", h.BuildLink)
		api.GET("/targets", h.ListTargets)
		api.GET("/targets/:key", h.GetTarget)
	}
}

// BuildLink handles POST /api/v1/links. It returns the rendered deeplink,
// or the native-display marker for targets launched without a URL.
func (h *LinkHandler) BuildLink(c *gin.Context) {
	var req application.BuildLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.BuildLink(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListTargets handles GET /api/v1/targets.
func (h *LinkHandler) ListTargets(c *gin.Context) {
	response.Success(c, h.service.ListTargets())
}

// GetTarget handles GET /api/v1/targets/:key.
func (h *LinkHandler) GetTarget(c *gin.Context) {
	result, err := h.service.GetTarget(c.Param("key"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
