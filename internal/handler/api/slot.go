package api

import (
	"errors"
	"net/http"

	reqdto "smartpark/internal/handler/dto/request"
	resdto "smartpark/internal/handler/dto/response"
	"smartpark/internal/usecase/commands"
	"smartpark/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	slotCommands commands.SlotCommands
	slotQueries  queries.SlotQueries
}

func NewSlotHandler(slotCommands commands.SlotCommands, slotQueries queries.SlotQueries) *SlotHandler {
	return &SlotHandler{
		slotCommands: slotCommands,
		slotQueries:  slotQueries,
	}
}

// @Summary Create parking slot
// @Description Register a new parking slot
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSlotRequest true "Slot request"
// @Success 201 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /slots [post]
func (h *SlotHandler) CreateSlot(c *gin.Context) {
	var req reqdto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.slotCommands.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid slot number",
			})
		case errors.Is(err, commands.ErrSlotAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot already exists",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSlotView(view))
}

// @Summary List parking slots
// @Description List all parking slots, optionally only the available ones
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param available query bool false "Only available slots"
// @Success 200 {array} resdto.SlotResponse
// @Failure 401 {object} map[string]string
// @Router /slots [get]
func (h *SlotHandler) ListSlots(c *gin.Context) {
	var (
		views []*queries.SlotView
		err   error
	)
	if c.Query("available") == "true" {
		views, err = h.slotQueries.ListAvailable(c.Request.Context())
	} else {
		views, err = h.slotQueries.List(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}

// @Summary Get parking slot
// @Description Get a parking slot by number
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param number path string true "Slot number"
// @Success 200 {object} resdto.SlotResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /slots/{number} [get]
func (h *SlotHandler) GetSlot(c *gin.Context) {
	view, err := h.slotQueries.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}

// @Summary Delete parking slot
// @Description Delete a parking slot that is not occupied
// @Tags slots
// @Security BearerAuth
// @Param number path string true "Slot number"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /slots/{number} [delete]
func (h *SlotHandler) DeleteSlot(c *gin.Context) {
	err := h.slotCommands.Delete(c.Request.Context(), c.Param("number"))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid slot number",
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

	c.Status(http.StatusNoContent)
}
