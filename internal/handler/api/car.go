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

type CarHandler struct {
	carCommands commands.CarCommands
	carQueries  queries.CarQueries
}

func NewCarHandler(carCommands commands.CarCommands, carQueries queries.CarQueries) *CarHandler {
	return &CarHandler{
		carCommands: carCommands,
		carQueries:  carQueries,
	}
}

// @Summary Register car
// @Description Register a car with its driver details
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterCarRequest true "Car request"
// @Success 201 {object} resdto.CarResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cars [post]
func (h *CarHandler) RegisterCar(c *gin.Context) {
	var req reqdto.RegisterCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.carCommands.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid car details",
			})
		case errors.Is(err, commands.ErrCarAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Car already registered",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCarView(view))
}

// @Summary List cars
// @Description List all registered cars
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CarResponse
// @Failure 401 {object} map[string]string
// @Router /cars [get]
func (h *CarHandler) ListCars(c *gin.Context) {
	views, err := h.carQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCarViews(views))
}

// @Summary Get car
// @Description Get a car by plate number
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Param plate path string true "Plate number"
// @Success 200 {object} resdto.CarResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cars/{plate} [get]
func (h *CarHandler) GetCar(c *gin.Context) {
	view, err := h.carQueries.GetByPlate(c.Request.Context(), c.Param("plate"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCarNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Car not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCarView(view))
}

// @Summary Update car
// @Description Update the driver details of a registered car
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plate path string true "Plate number"
// @Param request body reqdto.UpdateCarRequest true "Update request"
// @Success 200 {object} resdto.CarResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cars/{plate} [patch]
func (h *CarHandler) UpdateCar(c *gin.Context) {
	var req reqdto.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.carCommands.Update(c.Request.Context(), c.Param("plate"), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid car details",
			})
		case errors.Is(err, commands.ErrCarNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Car not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCarView(view))
}

// @Summary Delete car
// @Description Delete a car that has no parking records
// @Tags cars
// @Security BearerAuth
// @Param plate path string true "Plate number"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cars/{plate} [delete]
func (h *CarHandler) DeleteCar(c *gin.Context) {
	err := h.carCommands.Delete(c.Request.Context(), c.Param("plate"))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid plate number",
			})
		case errors.Is(err, commands.ErrCarNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Car not found",
			})
		case errors.Is(err, commands.ErrCarInUse):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Car has parking records",
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
