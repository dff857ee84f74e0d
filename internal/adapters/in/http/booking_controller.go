package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Stefan-Trajkovski/Saloon/internal/config"
	"github.com/Stefan-Trajkovski/Saloon/internal/core/domain"
	"github.com/Stefan-Trajkovski/Saloon/internal/core/ports/in"
)

type BookingController struct {
	useCase in.BookingUseCase
	cfg     *config.Config
}

func NewBookingController(useCase in.BookingUseCase, cfg *config.Config) *BookingController {
	return &BookingController{
		useCase: useCase,
		cfg:     cfg,
	}
}

func (c *BookingController) RegisterRoutes(router *gin.Engine) {
	router.GET("/", c.health)

	api := router.Group("/api")
	{
		api.POST("/appointment", c.createAppointment)
		api.GET("/free-timeslots", c.freeTimeslots)
	}
}

// Field presence is checked by the booking service so the 400 response can
// list exactly what is missing; no binding:"required" tags here.
type AppointmentRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Service string `json:"service"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

func (c *BookingController) health(ctx *gin.Context) {
	ctx.String(http.StatusOK, "Server is running")
}

func (c *BookingController) createAppointment(ctx *gin.Context) {
	var req AppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	request := domain.BookingRequest{
		ID:      uuid.New(),
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Service: req.Service,
		Date:    req.Date,
		Time:    req.Time,
	}

	event, err := c.useCase.Book(ctx.Request.Context(), request)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			ctx.JSON(http.StatusBadRequest, gin.H{
				"message": "Please fill all required fields",
				"missing": validationErr.Fields,
			})
		case errors.Is(err, domain.ErrSlotConflict):
			ctx.JSON(http.StatusConflict, gin.H{
				"message": "Time slot is already booked, please pick another one",
			})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to add appointment",
				"error":   err.Error(),
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Appointment added to calendar",
		"event":   event,
	})
}

func (c *BookingController) freeTimeslots(ctx *gin.Context) {
	dateParam := ctx.Query("date")
	if dateParam == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Date is required"})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateParam, c.cfg.Location)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	slots, err := c.useCase.FreeSlots(ctx.Request.Context(), date)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to fetch available time slots",
			"error":   err.Error(),
		})
		return
	}

	freeSlots := make([]string, 0, len(slots))
	for _, slot := range slots {
		freeSlots = append(freeSlots, slot.Label())
	}

	ctx.JSON(http.StatusOK, gin.H{"freeSlots": freeSlots})
}
