package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/till_reconciliation_app/internal/core/ports/services"
	"github.com/SscSPs/till_reconciliation_app/internal/dto"
	"github.com/SscSPs/till_reconciliation_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// historyHandler handles HTTP requests on a user's stored drawer counts.
type historyHandler struct {
	historyService portssvc.HistorySvcFacade
}

func newHistoryHandler(hs portssvc.HistorySvcFacade) *historyHandler {
	return &historyHandler{historyService: hs}
}

// registerHistoryRoutes registers all history routes. Every route requires authentication.
func registerHistoryRoutes(rg *gin.RouterGroup, hs portssvc.HistorySvcFacade) {
	h := newHistoryHandler(hs)

	history := rg.Group("/history")
	{
		history.POST("/submit", h.submit)
		history.GET("/:id", h.getSubmission)
		history.PUT("/:id/add-note", h.addNote)
		history.DELETE("/:id/delete", h.deleteSubmission)
		history.GET("/user/:username", h.listUserHistory)
		history.DELETE("/user/:username/delete-history", h.deleteUserHistory)
	}
}

// submit godoc
// @Summary Submit a drawer count
// @Description Reconciles a drawer count and stores it in the caller's history. Invalid counts are not stored.
// @Tags history
// @Accept json
// @Produce json
// @Param count body dto.SubmitHistoryRequest true "Drawer count"
// @Success 201 {object} dto.SubmissionReportEnvelope
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /history/submit [post]
func (h *historyHandler) submit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind submit request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	report, err := h.historyService.Submit(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to store submission")
		return
	}
	c.JSON(http.StatusCreated, dto.SubmissionReportEnvelope{Submission: dto.ToSubmissionReportResponse(report)})
}

// getSubmission godoc
// @Summary Get a stored submission
// @Description Returns a stored drawer count together with its reconciliation.
// @Tags history
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} dto.SubmissionReportEnvelope
// @Failure 401 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /history/{id} [get]
func (h *historyHandler) getSubmission(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	report, err := h.historyService.GetSubmission(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to load submission")
		return
	}
	c.JSON(http.StatusOK, dto.SubmissionReportEnvelope{Submission: dto.ToSubmissionReportResponse(report)})
}

// listUserHistory godoc
// @Summary List a user's history
// @Description Lists the caller's submissions, newest first.
// @Tags history
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} dto.ListHistoryResponse
// @Failure 401 {object} ErrorResponse "Not the caller's history"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /history/user/{username} [get]
func (h *historyHandler) listUserHistory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	rows, err := h.historyService.ListUserHistory(c.Request.Context(), c.Param("username"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list history")
		return
	}
	c.JSON(http.StatusOK, dto.ToListHistoryResponse(rows))
}

// addNote godoc
// @Summary Add a note to a submission
// @Description Replaces the note of one of the caller's submissions.
// @Tags history
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param note body dto.AddNoteRequest true "Note"
// @Success 200 {object} dto.SubmissionRecordEnvelope
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /history/{id}/add-note [put]
func (h *historyHandler) addNote(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	updated, err := h.historyService.AddNote(c.Request.Context(), c.Param("id"), req.Note, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update note")
		return
	}
	c.JSON(http.StatusOK, dto.SubmissionRecordEnvelope{Submission: dto.ToSubmissionRecordResponse(updated)})
}

// deleteSubmission godoc
// @Summary Delete a submission
// @Tags history
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /history/{id}/delete [delete]
func (h *historyHandler) deleteSubmission(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.historyService.DeleteSubmission(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondServiceError(c, err, "Failed to delete submission")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "success"})
}

// deleteUserHistory godoc
// @Summary Delete a user's history
// @Description Removes every submission of the caller. Answers 404 when there was nothing to remove.
// @Tags history
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /history/user/{username}/delete-history [delete]
func (h *historyHandler) deleteUserHistory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.historyService.DeleteUserHistory(c.Request.Context(), c.Param("username"), userID); err != nil {
		respondServiceError(c, err, "Failed to delete history")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "success"})
}
