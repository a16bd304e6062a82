package booking

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"speaker-booking/logger"
	userModel "speaker-booking/models/user"
	bookingService "speaker-booking/services/booking"
	slotService "speaker-booking/services/slot"
	"speaker-booking/types"
	bookingTypes "speaker-booking/types/booking"
	"speaker-booking/utils"
)

// BookingController handles availability queries and session reservations
type BookingController struct {
	db             *gorm.DB
	slots          *slotService.Service
	bookings       *bookingService.Service
	loggerInstance *logger.AsyncLogger
}

func NewBookingController(db *gorm.DB, slots *slotService.Service, bookings *bookingService.Service, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{
		db:             db,
		slots:          slots,
		bookings:       bookings,
		loggerInstance: asyncLogger,
	}
}

// AvailableSlots lists the free slots for a speaker on a date, in grid order
func (bc *BookingController) AvailableSlots(c *fiber.Ctx) error {
	speakerID, err := strconv.ParseUint(c.Params("speakerId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid speaker id",
			Status:  fiber.StatusBadRequest,
		})
	}

	date, err := bookingTypes.ParseDate(c.Params("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid date",
			Status:  fiber.StatusBadRequest,
		})
	}

	slots, err := bc.slots.ListAvailable(uint(speakerID), date)
	if err != nil {
		logger.Error("Failed to list available slots", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Available slots retrieved successfully",
		Status:  fiber.StatusOK,
		Data:    slots,
	})
}

// Book reserves a session slot for the authenticated user and triggers the
// confirmation side effects.
func (bc *BookingController) Book(c *fiber.Ctx) error {
	var req bookingTypes.BookSessionRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	date, err := req.ParsedDate()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid date",
			Status:  fiber.StatusBadRequest,
		})
	}

	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
			Message: "Invalid user claims",
			Status:  fiber.StatusUnauthorized,
		})
	}
	userUUID, _ := claims["uuid"].(string)

	var participant userModel.User
	if err := bc.db.Where("uuid = ?", userUUID).First(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "User not found",
				Status:  fiber.StatusUnauthorized,
			})
		}
		logger.Error("Database error while loading user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	var speaker userModel.User
	err = bc.db.Where("id = ? AND user_type = ?", req.SpeakerID, userModel.UserTypeSpeaker).First(&speaker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "Speaker not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Database error while loading speaker", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	created, err := bc.bookings.Book(c.UserContext(), &speaker, &participant, date, req.TimeSlot)
	switch {
	case errors.Is(err, slotService.ErrInvalidSlot):
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Requested time slot is outside bookable hours",
			Status:  fiber.StatusBadRequest,
		})
	case errors.Is(err, slotService.ErrSlotTaken):
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Time slot already booked",
			Status:  fiber.StatusBadRequest,
		})
	case errors.Is(err, bookingService.ErrNotificationFailed):
		// Degraded success: the booking exists; retrying it would only
		// collide with itself.
		bc.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))
		return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
			Message: "Session booked successfully, but confirmation delivery is incomplete",
			Status:  fiber.StatusOK,
			Data:    created,
		})
	case err != nil:
		logger.Error("Failed to book session", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to book session",
			Status:  fiber.StatusInternalServerError,
		})
	}

	bc.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))

	logger.Success("Session booked successfully. Speaker: " + speaker.Uuid)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Session booked successfully",
		Status:  fiber.StatusOK,
		Data:    created,
	})
}
