package api

import (
	// Go Internal Packages
	"context"
	"net/http"
	"strconv"

	// Local Packages
	errors "bospay-gateway/errors"
	models "bospay-gateway/models"
	insights "bospay-gateway/services/insights"
	staff "bospay-gateway/services/staff"
	timeline "bospay-gateway/services/timeline"

	// External Packages
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Backend covers the pass-through reads that need no service logic.
type Backend interface {
	GetBalance(ctx context.Context, token string) (*models.Balance, error)
	ListProducts(ctx context.Context, token string) ([]models.Product, error)
}

type Handler struct {
	logger   *zap.Logger
	timeline *timeline.Service
	staff    *staff.Service
	insights *insights.Service
	backend  Backend
}

func NewHandler(logger *zap.Logger, tl *timeline.Service, st *staff.Service, in *insights.Service, backend Backend) *Handler {
	return &Handler{logger: logger, timeline: tl, staff: st, insights: in, backend: backend}
}

// GET /v1/transactions
func (h *Handler) ListTransactions(c *gin.Context) {
	q := timeline.Query{
		Tab:    timeline.Tab(c.DefaultQuery("tab", string(timeline.TabAll))),
		Search: c.Query("search"),
		Order:  timeline.Order(c.DefaultQuery("sort", string(timeline.OrderDesc))),
	}

	var err error
	if q.Limit, err = intQuery(c, "limit", 0); err != nil {
		writeError(c, err)
		return
	}
	if q.Skip, err = intQuery(c, "skip", 0); err != nil {
		writeError(c, err)
		return
	}

	page, err := h.timeline.List(c.Request.Context(), token(c), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /v1/transactions/:id
func (h *Handler) GetTransaction(c *gin.Context) {
	record, err := h.timeline.Resolve(c.Request.Context(), token(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// GET /v1/balance
func (h *Handler) GetBalance(c *gin.Context) {
	balance, err := h.backend.GetBalance(c.Request.Context(), token(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}

// GET /v1/products
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.backend.ListProducts(c.Request.Context(), token(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GET /v1/staff
func (h *Handler) ListStaff(c *gin.Context) {
	members, err := h.staff.List(c.Request.Context(), token(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": members})
}

// POST /v1/staff/invites
func (h *Handler) InviteStaff(c *gin.Context) {
	var invite models.StaffInvite
	if err := c.ShouldBindJSON(&invite); err != nil {
		writeError(c, errors.InvalidBodyErr(err))
		return
	}

	member, err := h.staff.Invite(c.Request.Context(), token(c), invite)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// GET /v1/insights/sales
func (h *Handler) Sales(c *gin.Context) {
	days, err := intQuery(c, "days", 30)
	if err != nil {
		writeError(c, err)
		return
	}

	sales, err := h.insights.Sales(c.Request.Context(), token(c), days)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sales": sales})
}

// GET /v1/insights/top-products
func (h *Handler) TopProducts(c *gin.Context) {
	limit, err := intQuery(c, "limit", 3)
	if err != nil {
		writeError(c, err)
		return
	}

	products, err := h.insights.TopProducts(c.Request.Context(), token(c), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GET /v1/insights/low-stock
func (h *Handler) LowStock(c *gin.Context) {
	report, err := h.insights.LowStock(c.Request.Context(), token(c), c.Query("search"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		ve := errors.ValidationErrs()
		ve.Add(name, "must be an integer")
		return 0, errors.InvalidParamsErr(ve.Err())
	}
	return n, nil
}
