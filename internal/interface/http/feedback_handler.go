package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"quotidepense-be/internal/application"
	"quotidepense-be/internal/interface/middleware"
	"quotidepense-be/pkg/response"
	"quotidepense-be/pkg/validation"
)

type FeedbackHandler struct {
	Svc    *application.FeedbackService
	Logger *logrus.Logger
}

func NewFeedbackHandler(svc *application.FeedbackService, logger *logrus.Logger) *FeedbackHandler {
	return &FeedbackHandler{Svc: svc, Logger: logger}
}

type feedbackRequest struct {
	Type    string `json:"type" binding:"required,oneof=bug feature improvement other"`
	Message string `json:"message" binding:"required,min=10"`
}

// Submit handles POST /feedback
func (h *FeedbackHandler) Submit(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}

	if _, err := h.Svc.Submit(c.Request.Context(), uid, req.Type, req.Message); err != nil {
		if errors.Is(err, application.ErrInvalidFeedbackType) || errors.Is(err, application.ErrEmptyFeedback) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Internal(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "feedback submitted"})
}

// List handles GET /feedback
func (h *FeedbackHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	items, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		response.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
