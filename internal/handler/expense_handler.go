package handler

import (
	"errors"
	"net/http"
	"strconv"

	"expense_api/internal/config"
	"expense_api/internal/middleware"
	"expense_api/internal/model"
	"expense_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	missingOwnerMsg       = "Missing user_id"
	missingOwnerOrTermMsg = "Missing user_id or q"
	missingFieldMsg       = "Missing field"
	dbErrorMsg            = "DB Server Error"
)

// ExpenseHandler handles expense requests. It does not care where the
// owner id came from; the routes decide that.
type ExpenseHandler struct {
	service service.ExpenseService
	log     *zap.Logger
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(s service.ExpenseService, log *zap.Logger) *ExpenseHandler {
	return &ExpenseHandler{service: s, log: log}
}

// List answers with the owner's expenses. Without an owner id (query
// variant only) it lists every expense in the store.
func (h *ExpenseHandler) List(c *gin.Context) {
	var owner *int64
	if id, ok := middleware.OwnerID(c); ok {
		owner = &id
	}

	expenses, err := h.service.List(c.Request.Context(), owner)
	if err != nil {
		h.log.Error("failed to list expenses", zap.Error(err))
		c.String(http.StatusInternalServerError, dbErrorMsg)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (h *ExpenseHandler) ListToday(c *gin.Context) {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		c.String(http.StatusBadRequest, missingOwnerMsg)
		return
	}

	expenses, err := h.service.ListToday(c.Request.Context(), ownerID)
	if err != nil {
		h.log.Error("failed to list today's expenses", zap.Error(err), zap.Int64("owner_id", ownerID))
		c.String(http.StatusInternalServerError, dbErrorMsg)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (h *ExpenseHandler) Search(c *gin.Context) {
	q := c.Param("q")
	if q == "" {
		q = c.Query("q")
	}
	ownerID, ok := middleware.OwnerID(c)
	if !ok || q == "" {
		c.String(http.StatusBadRequest, missingOwnerOrTermMsg)
		return
	}

	expenses, err := h.service.Search(c.Request.Context(), ownerID, q)
	if err != nil {
		h.log.Error("failed to search expenses", zap.Error(err), zap.Int64("owner_id", ownerID))
		c.String(http.StatusInternalServerError, dbErrorMsg)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (h *ExpenseHandler) Add(c *gin.Context) {
	var req model.CreateExpenseRequest
	if !bindRequest(c, &req, missingFieldMsg) {
		return
	}

	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		if req.UserID == "" {
			c.String(http.StatusBadRequest, missingFieldMsg)
			return
		}
		var err error
		if ownerID, err = middleware.ParseOwnerID(req.UserID.String()); err != nil {
			c.String(http.StatusBadRequest, "Invalid user_id")
			return
		}
	}

	paid, err := decimal.NewFromString(req.Paid.String())
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid paid amount")
		return
	}

	if _, err := h.service.Add(c.Request.Context(), ownerID, req.Item, paid); err != nil {
		h.log.Error("failed to add expense", zap.Error(err), zap.Int64("owner_id", ownerID))
		c.String(http.StatusInternalServerError, dbErrorMsg)
		return
	}
	c.String(http.StatusOK, "Insert expense done")
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		c.String(http.StatusBadRequest, missingOwnerMsg)
		return
	}
	expenseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid expense id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), ownerID, expenseID); err != nil {
		if errors.Is(err, service.ErrExpenseNotFound) {
			c.String(http.StatusNotFound, "Not found")
			return
		}
		h.log.Error("failed to delete expense", zap.Error(err), zap.Int64("owner_id", ownerID), zap.Int64("expense_id", expenseID))
		c.String(http.StatusInternalServerError, dbErrorMsg)
		return
	}
	c.String(http.StatusOK, "Delete done")
}

// RegisterExpenseRoutes registers expense routes for the given routing
// variant. Both variants share the same handlers.
func (h *ExpenseHandler) RegisterExpenseRoutes(rg *gin.RouterGroup, variant string) {
	if variant == config.RoutingPath {
		h.registerPathRoutes(rg)
		return
	}
	h.registerQueryRoutes(rg)
}

// /expenses?user_id=...
func (h *ExpenseHandler) registerQueryRoutes(rg *gin.RouterGroup) {
	owner := middleware.FromQuery("user_id")

	expenses := rg.Group("/expenses")
	{
		expenses.GET("", middleware.OptionalOwner(owner), h.List)
		expenses.GET("/today", middleware.RequireOwner(owner, missingOwnerMsg), h.ListToday)
		expenses.GET("/search", middleware.RequireOwner(owner, missingOwnerOrTermMsg), h.Search)
		expenses.POST("", h.Add) // owner id comes from the body
		expenses.DELETE("/:id", middleware.RequireOwner(owner, missingOwnerMsg), h.Delete)
	}
}

// /expenses/:userId/...
func (h *ExpenseHandler) registerPathRoutes(rg *gin.RouterGroup) {
	expenses := rg.Group("/expenses/:userId")
	expenses.Use(middleware.RequireOwner(middleware.FromPath("userId"), missingOwnerMsg))
	{
		expenses.GET("", h.List)
		expenses.GET("/today", h.ListToday)
		expenses.GET("/search/:q", h.Search)
		expenses.POST("", h.Add)
		expenses.DELETE("/:id", h.Delete)
	}
}
