package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/services"
)

type FeedHandler struct {
	*BaseHandler
	feedService services.FeedService
}

func NewFeedHandler(base *BaseHandler, feedService services.FeedService) *FeedHandler {
	return &FeedHandler{
		BaseHandler: base,
		feedService: feedService,
	}
}

func (h *FeedHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/feed", h.ExternalJobs)
}

// ExternalJobs proxies the third-party listings API. Upstream failure is
// never a server error here; the service degrades to an empty list with a
// warning.
func (h *FeedHandler) ExternalJobs(c *gin.Context) {
	response := h.feedService.ExternalJobs(c.Request.Context())
	c.JSON(http.StatusOK, response)
}
