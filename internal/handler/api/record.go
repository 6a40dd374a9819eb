package api

import (
	"errors"
	"net/http"

	reqdto "smartpark/internal/handler/dto/request"
	resdto "smartpark/internal/handler/dto/response"
	"smartpark/internal/usecase/commands"
	"smartpark/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RecordHandler struct {
	sessionCommands commands.SessionCommands
	recordQueries   queries.RecordQueries
}

func NewRecordHandler(sessionCommands commands.SessionCommands, recordQueries queries.RecordQueries) *RecordHandler {
	return &RecordHandler{
		sessionCommands: sessionCommands,
		recordQueries:   recordQueries,
	}
}

// @Summary Record car entry
// @Description Open a parking session: occupy the slot and register the car
// @Tags records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.EntryRequest true "Entry request"
// @Success 201 {object} resdto.EntryResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /records/entry [post]
func (h *RecordHandler) RecordEntry(c *gin.Context) {
	var req reqdto.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.sessionCommands.RecordEntry(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid entry details",
			})
		case errors.Is(err, commands.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		case errors.Is(err, commands.ErrSlotOccupied):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot is occupied",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEntryResult(result))
}

// @Summary Record car exit
// @Description Complete a parking session, free the slot and quote the fee
// @Tags records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Param request body reqdto.ExitRequest false "Exit request"
// @Success 200 {object} resdto.ExitResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /records/{id}/exit [post]
func (h *RecordHandler) RecordExit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid record ID format",
		})
		return
	}

	var req reqdto.ExitRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	result, err := h.sessionCommands.RecordExit(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid exit time",
			})
		case errors.Is(err, commands.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Record not found",
			})
		case errors.Is(err, commands.ErrRecordAlreadyCompleted):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Record already completed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromExitResult(result))
}

// @Summary List parking records
// @Description List parking records, newest entry first
// @Tags records
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Only active records"
// @Success 200 {array} resdto.RecordResponse
// @Failure 401 {object} map[string]string
// @Router /records [get]
func (h *RecordHandler) ListRecords(c *gin.Context) {
	var (
		views []*queries.RecordView
		err   error
	)
	if c.Query("active") == "true" {
		views, err = h.recordQueries.ListActive(c.Request.Context())
	} else {
		views, err = h.recordQueries.List(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRecordViews(views))
}

// @Summary Get parking record
// @Description Get a parking record by ID
// @Tags records
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 200 {object} resdto.RecordResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /records/{id} [get]
func (h *RecordHandler) GetRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid record ID format",
		})
		return
	}

	view, err := h.recordQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Record not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRecordView(view))
}

// @Summary Delete parking record
// @Description Delete a parking record; an active record frees its slot
// @Tags records
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /records/{id} [delete]
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid record ID format",
		})
		return
	}

	err = h.sessionCommands.DeleteRecord(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Record not found",
			})
		case errors.Is(err, commands.ErrRecordHasPayment):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Record has a payment",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
