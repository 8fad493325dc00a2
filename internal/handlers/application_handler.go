package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware())
	{
		jobs.POST("/:id/apply", middleware.RequireRoles(models.UserRoleSeeker), h.Apply)
		jobs.GET("/:id/applications", h.JobApplications)
	}

	apps := rg.Group("/applications")
	apps.Use(middleware.AuthMiddleware())
	{
		apps.GET("/mine", middleware.RequireRoles(models.UserRoleSeeker), h.MyApplications)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	// The body is optional: applying without a cover message is the
	// common case.
	var req dto.ApplyRequest
	if c.Request.ContentLength > 0 {
		if !h.BindAndValidateJSON(c, &req) {
			return
		}
	}

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	result, err := h.applicationService.Apply(db, c.Param("id"), userID, middleware.GetRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if result.AlreadyApplied {
		c.JSON(http.StatusOK, gin.H{
			"message":     "You already applied for this job",
			"application": result.Application,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Applied successfully",
		"application": result.Application,
	})
}

func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	apps, err := h.applicationService.SeekerApplications(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func (h *ApplicationHandler) JobApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	apps, err := h.applicationService.JobApplications(db, c.Param("id"), userID, middleware.GetRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps})
}
