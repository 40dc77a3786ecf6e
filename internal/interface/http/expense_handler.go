package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"quotidepense-be/internal/application"
	"quotidepense-be/internal/interface/middleware"
	"quotidepense-be/pkg/response"
	"quotidepense-be/pkg/validation"
)

type ExpenseHandler struct {
	Svc    *application.ExpenseService
	Logger *logrus.Logger
}

func NewExpenseHandler(svc *application.ExpenseService, logger *logrus.Logger) *ExpenseHandler {
	return &ExpenseHandler{Svc: svc, Logger: logger}
}

type expenseRequest struct {
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	Category    string     `json:"category" binding:"required"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
}

func (r expenseRequest) toInput() application.ExpenseInput {
	return application.ExpenseInput{
		Amount:      r.Amount,
		Category:    r.Category,
		Description: r.Description,
		Date:        r.Date,
	}
}

// Create handles POST /expenses
func (h *ExpenseHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}

	e, err := h.Svc.Create(c.Request.Context(), uid, req.toInput())
	if err != nil {
		if errors.Is(err, application.ErrInvalidAmount) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Internal(c, err)
		return
	}

	c.JSON(http.StatusCreated, e)
}

// List handles GET /expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	expenses, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		response.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// Stats handles GET /expenses/stats
func (h *ExpenseHandler) Stats(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	stats, err := h.Svc.Stats(c.Request.Context(), uid)
	if err != nil {
		response.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Update handles PUT /expenses/:id
func (h *ExpenseHandler) Update(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	id := c.Param("id")
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}

	e, err := h.Svc.Update(c.Request.Context(), uid, id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, application.ErrExpenseNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		case errors.Is(err, application.ErrInvalidAmount):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Internal(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, e)
}

// Delete handles DELETE /expenses/:id
func (h *ExpenseHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	id := c.Param("id")

	if err := h.Svc.Delete(c.Request.Context(), uid, id); err != nil {
		if errors.Is(err, application.ErrExpenseNotFound) {
			response.Error(c, http.StatusNotFound, err.Error())
			return
		}
		response.Internal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "expense deleted"})
}
