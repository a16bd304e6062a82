package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"speaker-booking/constants"
	authController "speaker-booking/controllers/auth"
	bookingController "speaker-booking/controllers/booking"
	speakerController "speaker-booking/controllers/speaker"
	"speaker-booking/database"
	"speaker-booking/httpServices/calendar"
	"speaker-booking/httpServices/mail"
	"speaker-booking/logger"
	"speaker-booking/middleware"
	bookingService "speaker-booking/services/booking"
	otpService "speaker-booking/services/otp"
	slotService "speaker-booking/services/slot"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	store := database.NewStore(db)
	asyncLogger := logger.NewAsyncLogger(db)

	mailer := mail.NewMailService()
	calendarClient := calendar.NewClient()

	otpSvc := otpService.NewOTPService(store)
	slotSvc := slotService.NewSlotService(store)
	bookingSvc := bookingService.NewBookingService(slotSvc, mailer, calendarClient)

	auth := authController.NewAuthController(db, otpSvc, mailer, asyncLogger)
	speakers := speakerController.NewSpeakerController(db, store, asyncLogger)
	bookings := bookingController.NewBookingController(db, slotSvc, bookingSvc, asyncLogger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	api := app.Group("/api")

	/*=============================================================================
	| Auth Routes
	===============================================================================*/
	authGroup := api.Group("/auth")
	authGroup.Post("/signup", auth.Signup)
	authGroup.Post("/login", auth.Login)
	authGroup.Post("/verify-otp", auth.VerifyOTP)

	/*=============================================================================
	| Speaker Routes
	===============================================================================*/
	speakerGroup := api.Group("/speakers")
	speakerGroup.Get("/", speakers.List)
	speakerGroup.Post("/profile", middleware.RequireRole(constants.RoleSpeaker), speakers.UpsertProfile)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	bookingGroup := api.Group("/bookings")
	bookingGroup.Get("/available-slots/:speakerId/:date", bookings.AvailableSlots)
	bookingGroup.Post("/book", middleware.RequireAuth(), bookings.Book)
}
