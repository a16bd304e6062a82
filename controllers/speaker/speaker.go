package speaker

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"speaker-booking/database"
	"speaker-booking/logger"
	speakerModel "speaker-booking/models/speaker"
	userModel "speaker-booking/models/user"
	"speaker-booking/types"
	speakerTypes "speaker-booking/types/speaker"
	"speaker-booking/utils"
)

// SpeakerController handles speaker listing and profile management
type SpeakerController struct {
	db             *gorm.DB
	store          *database.Store
	loggerInstance *logger.AsyncLogger
}

func NewSpeakerController(db *gorm.DB, store *database.Store, asyncLogger *logger.AsyncLogger) *SpeakerController {
	return &SpeakerController{
		db:             db,
		store:          store,
		loggerInstance: asyncLogger,
	}
}

// List returns every speaker with a published profile
func (sc *SpeakerController) List(c *fiber.Ctx) error {
	var speakers []speakerTypes.SpeakerInfo
	err := sc.db.Table("speaker_profiles").
		Select("users.id AS user_id, users.first_name, users.last_name, speaker_profiles.expertise, speaker_profiles.price_per_session").
		Joins("JOIN users ON users.id = speaker_profiles.user_id").
		Where("users.user_type = ?", userModel.UserTypeSpeaker).
		Order("users.id ASC").
		Scan(&speakers).Error
	if err != nil {
		logger.Error("Failed to list speakers", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Speakers retrieved successfully",
		Status:  fiber.StatusOK,
		Data:    speakers,
	})
}

// UpsertProfile creates or fully replaces the calling speaker's profile.
// Repeating the call leaves exactly one profile row reflecting the latest
// values.
func (sc *SpeakerController) UpsertProfile(c *fiber.Ctx) error {
	var req speakerTypes.ProfileUpsertRequest
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

	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
			Message: "Invalid user claims",
			Status:  fiber.StatusUnauthorized,
		})
	}
	userUUID, _ := claims["uuid"].(string)

	var u userModel.User
	if err := sc.db.Where("uuid = ?", userUUID).First(&u).Error; err != nil {
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

	profile := speakerModel.SpeakerProfile{
		UserID:          u.ID,
		Expertise:       req.Expertise,
		PricePerSession: req.PricePerSession,
	}

	if err := sc.store.UpsertSpeakerProfile(&profile); err != nil {
		logger.Error("Failed to upsert speaker profile", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to update speaker profile",
			Status:  fiber.StatusInternalServerError,
		})
	}

	sc.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))

	logger.Success("Speaker profile updated successfully. UUID: " + u.Uuid)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Speaker profile updated successfully",
		Status:  fiber.StatusOK,
		Data:    profile,
	})
}
