package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"speaker-booking/database"
	"speaker-booking/httpServices/mail"
	"speaker-booking/logger"
	userModel "speaker-booking/models/user"
	otpService "speaker-booking/services/otp"
	"speaker-booking/types"
	authTypes "speaker-booking/types/auth"
	"speaker-booking/utils"
)

// AuthController handles signup, login and OTP verification
type AuthController struct {
	db             *gorm.DB
	otpService     *otpService.Service
	mailer         *mail.Service
	loggerInstance *logger.AsyncLogger
}

func NewAuthController(db *gorm.DB, otpSvc *otpService.Service, mailer *mail.Service, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{
		db:             db,
		otpService:     otpSvc,
		mailer:         mailer,
		loggerInstance: asyncLogger,
	}
}

// Signup creates an unverified account and dispatches a verification code
func (h *AuthController) Signup(c *fiber.Ctx) error {
	var req authTypes.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		logger.Error(err.Error(), nil)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to create user",
			Status:  fiber.StatusInternalServerError,
		})
	}

	newUser := userModel.User{
		Uuid:       uuid.NewString(),
		FirstName:  strings.TrimSpace(req.FirstName),
		LastName:   strings.TrimSpace(req.LastName),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Password:   hashed,
		UserType:   userModel.UserType(req.UserType),
		IsVerified: false,
	}

	if err := h.db.Create(&newUser).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return c.Status(fiber.StatusConflict).JSON(types.ErrorResponse{
				Message: "Email is already registered",
				Status:  fiber.StatusConflict,
			})
		}
		logger.Error("Failed to create user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to create user",
			Status:  fiber.StatusInternalServerError,
		})
	}

	code, err := h.otpService.Issue(newUser.ID)
	if err != nil {
		logger.Error("Failed to issue verification code", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to issue verification code",
			Status:  fiber.StatusInternalServerError,
		})
	}

	// Delivery is best effort: the account and code are already stored,
	// so a mail outage must not fail the signup.
	if err := h.mailer.SendVerificationEmail(newUser.Email, code); err != nil {
		logger.Error("Failed to send verification email", err)
	}

	h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))

	logger.Success("User registered successfully. UUID: " + newUser.Uuid)
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "User created successfully. Please verify your email.",
		Status:  fiber.StatusCreated,
	})
}

// Login checks credentials and issues a bearer token
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authTypes.LoginRequest
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

	var u userModel.User
	err := h.db.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&u).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("Database error during login", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
				Message: "Database error",
				Status:  fiber.StatusInternalServerError,
			})
		}
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
			Message: "Invalid credentials",
			Status:  fiber.StatusUnauthorized,
		})
	}

	if !utils.CheckPassword(req.Password, u.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
			Message: "Invalid credentials",
			Status:  fiber.StatusUnauthorized,
		})
	}

	if !u.IsVerified {
		return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
			Message: "Please verify your email first",
			Status:  fiber.StatusForbidden,
		})
	}

	token, err := utils.GenerateToken(&u)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to generate token",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))

	logger.Success("User logged in successfully. UUID: " + u.Uuid)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Login successful",
		Status:  fiber.StatusOK,
		Token:   token,
	})
}

// VerifyOTP consumes a verification code and activates the account. Every
// miss gets the same response body.
func (h *AuthController) VerifyOTP(c *fiber.Ctx) error {
	var req authTypes.VerifyOTPRequest
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

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := h.otpService.Verify(email, req.OTPCode); err != nil {
		if errors.Is(err, otpService.ErrInvalidOTP) {
			return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
				Message: "Invalid or expired OTP",
				Status:  fiber.StatusBadRequest,
			})
		}
		logger.Error("OTP verification failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))

	logger.Success("Email verified successfully: " + email)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Email verified successfully",
		Status:  fiber.StatusOK,
	})
}
