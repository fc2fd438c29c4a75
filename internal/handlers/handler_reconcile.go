package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/till_reconciliation_app/internal/core/ports/services"
	"github.com/SscSPs/till_reconciliation_app/internal/dto"
	"github.com/SscSPs/till_reconciliation_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type reconcileHandler struct {
	reconciler portssvc.ReconciliationSvc
}

func newReconcileHandler(reconciler portssvc.ReconciliationSvc) *reconcileHandler {
	return &reconcileHandler{reconciler: reconciler}
}

func registerReconcileRoutes(rg *gin.RouterGroup, reconciler portssvc.ReconciliationSvc) {
	h := newReconcileHandler(reconciler)
	rg.POST("/reconcile", h.reconcile)
}

// reconcile godoc
// @Summary Reconcile a drawer count
// @Description Splits the counted cash into what stays in the drawer and what is deposited. Nothing is stored.
// @Tags reconcile
// @Accept json
// @Produce json
// @Param count body dto.ReconcileRequest true "Drawer count"
// @Success 200 {object} dto.ReconcileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reconcile [post]
func (h *reconcileHandler) reconcile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind reconcile request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	result, err := h.reconciler.Reconcile(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to reconcile drawer")
		return
	}

	c.JSON(http.StatusOK, dto.ReconcileResponse{Submission: dto.ToReconciliationResponse(result)})
}
