package router

import (
	"hotel_manager/handler"
	"hotel_manager/helper"
	"hotel_manager/middleware"
	"hotel_manager/utils"
	"hotel_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// socketAuth resolves the token before the websocket upgrade, since the
// upgraded connection can no longer send a JSON error.
func socketAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, user, err := helper.GetInfoUserFromToken(c)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
		}
		c.Locals("socketUserId", user.ID)
		return c.Next()
	}
}

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Get("/me", middleware.Protected(), handler.GetProfile)
	auth.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	staff := v1.Group("/staff", logger.New())
	staff.Post("/", middleware.Protected(), middleware.Authorize("staff:manage"), validate.CreateStaff(), handler.CreateStaff)
	staff.Post("/salary", middleware.Protected(), middleware.Authorize("salary:manage"), validate.AssignSalary(), handler.AssignSalary)
	staff.Post("/attendance", middleware.Protected(), middleware.Authorize("salary:manage"), validate.MarkAttendance(), handler.MarkAttendance)
	staff.Get("/salary-report", middleware.Protected(), middleware.Authorize("salary:manage"), handler.GetSalaryReport)

	room := v1.Group("/room", logger.New())
	room.Get("/", handler.GetRooms)
	room.Get("/available", handler.SearchAvailableRooms)
	room.Get("/:roomId", validate.GetById("roomId"), handler.GetRoomById)
	room.Post("/", middleware.Protected(), middleware.Authorize("room:write"), validate.CreateRoom(), handler.CreateRoom)
	room.Put("/:roomId", middleware.Protected(), middleware.Authorize("room:write"), validate.EditRoom("roomId"), handler.EditRoom)
	room.Delete("/", middleware.Protected(), middleware.Authorize("room:delete"), validate.Delete(), handler.DeleteRoom)
	room.Post("/:roomId/images", middleware.Protected(), middleware.Authorize("room:write"), validate.GetById("roomId"), validate.AddRoomImage(), handler.AddRoomImage)
	room.Post("/:roomId/images/upload", middleware.Protected(), middleware.Authorize("room:write"), validate.GetById("roomId"), handler.UploadRoomImage)
	room.Delete("/images/:imageId", middleware.Protected(), middleware.Authorize("room:write"), validate.GetById("imageId"), handler.DeleteRoomImage)

	amenity := v1.Group("/amenity", logger.New())
	amenity.Get("/", handler.GetAmenities)
	amenity.Post("/", middleware.Protected(), middleware.Authorize("catalog:write"), validate.CreatePricedItem(), handler.CreateAmenity)
	amenity.Delete("/", middleware.Protected(), middleware.Authorize("catalog:write"), validate.Delete(), handler.DeleteAmenity)

	spa := v1.Group("/spa-service", logger.New())
	spa.Get("/", handler.GetSpaServices)
	spa.Post("/", middleware.Protected(), middleware.Authorize("catalog:write"), validate.CreatePricedItem(), handler.CreateSpaService)
	spa.Delete("/", middleware.Protected(), middleware.Authorize("catalog:write"), validate.Delete(), handler.DeleteSpaService)

	booking := v1.Group("/booking", logger.New())
	booking.Get("/", middleware.Protected(), middleware.Authorize("booking:list_all"), handler.GetBookings)
	booking.Get("/my", middleware.Protected(), handler.GetMyBookings)
	booking.Get("/cleaning-queue", middleware.Protected(), middleware.Authorize("room:clean"), handler.GetCleaningQueue)
	booking.Get("/:bookingId", middleware.Protected(), validate.GetById("bookingId"), handler.GetBookingById)
	booking.Get("/:bookingId/bill", middleware.Protected(), validate.GetById("bookingId"), handler.GetBookingBill)
	booking.Get("/:bookingId/invoice", middleware.Protected(), validate.GetById("bookingId"), handler.GetInvoice)
	booking.Post("/", middleware.Protected(), validate.CreateBooking(), handler.CreateBooking)
	booking.Post("/walk-in", middleware.Protected(), middleware.Authorize("booking:walk_in"), validate.WalkInBooking(), handler.WalkInBooking)
	booking.Post("/:bookingId/check-in", middleware.Protected(), middleware.Authorize("booking:check_in"), validate.GetById("bookingId"), handler.CheckIn)
	booking.Post("/:bookingId/check-out", middleware.Protected(), middleware.Authorize("booking:check_out"), validate.GetById("bookingId"), handler.CheckOut)
	booking.Post("/:bookingId/cancel", middleware.Protected(), middleware.Authorize("booking:cancel"), validate.GetById("bookingId"), handler.CancelBooking)
	booking.Post("/:bookingId/cleaned", middleware.Protected(), middleware.Authorize("room:clean"), validate.GetById("bookingId"), handler.MarkRoomCleaned)
	booking.Post("/:bookingId/feedback", middleware.Protected(), validate.GetById("bookingId"), validate.SubmitFeedback(), handler.SubmitFeedback)
	booking.Post("/:bookingId/resend-invoice", middleware.Protected(), middleware.Authorize("booking:list_all"), validate.GetById("bookingId"), handler.ResendInvoice)

	payment := v1.Group("/payment", logger.New())
	payment.Post("/order", middleware.Protected(), validate.CreatePayment(), handler.CreatePaymentOrder)
	payment.Post("/callback", validate.PaymentCallback(), handler.PaymentCallback)

	maintenance := v1.Group("/maintenance", logger.New())
	maintenance.Get("/", middleware.Protected(), middleware.Authorize("maintenance:write"), handler.GetMaintenance)
	maintenance.Post("/", middleware.Protected(), middleware.Authorize("maintenance:write"), validate.CreateMaintenance(), handler.CreateMaintenance)
	maintenance.Patch("/:maintenanceId/complete", middleware.Protected(), middleware.Authorize("maintenance:write"), validate.GetById("maintenanceId"), handler.CompleteMaintenance)
	maintenance.Delete("/", middleware.Protected(), middleware.Authorize("maintenance:write"), validate.Delete(), handler.DeleteMaintenance)

	inventory := v1.Group("/inventory", logger.New())
	inventory.Get("/", middleware.Protected(), middleware.Authorize("inventory:use"), handler.GetInventory)
	inventory.Get("/usage", middleware.Protected(), middleware.Authorize("inventory:write"), handler.GetUsageLogs)
	inventory.Post("/", middleware.Protected(), middleware.Authorize("inventory:write"), validate.CreateInventoryItem(), handler.CreateInventoryItem)
	inventory.Put("/:itemId", middleware.Protected(), middleware.Authorize("inventory:write"), validate.EditInventoryItem("itemId"), handler.EditInventoryItem)
	inventory.Post("/usage", middleware.Protected(), middleware.Authorize("inventory:use"), validate.LogUsage(), handler.LogInventoryUsage)

	feedback := v1.Group("/feedback", logger.New())
	feedback.Get("/", middleware.Protected(), middleware.Authorize("feedback:read"), handler.GetFeedback)
	feedback.Patch("/:feedbackId/read", middleware.Protected(), middleware.Authorize("feedback:read"), validate.GetById("feedbackId"), handler.MarkFeedbackRead)

	notification := v1.Group("/notification", logger.New())
	notification.Get("/", middleware.Protected(), handler.GetMyNotifications)
	notification.Patch("/read-all", middleware.Protected(), handler.MarkAllNotificationsRead)
	notification.Patch("/:notificationId/read", middleware.Protected(), validate.GetById("notificationId"), handler.MarkNotificationRead)
	notification.Get("/ws", middleware.Protected(), socketAuth(), websocket.New(handler.NotificationSocket))

	contact := v1.Group("/contact", logger.New())
	contact.Post("/", validate.Contact(), handler.SubmitContact)
	contact.Get("/", middleware.Protected(), middleware.Authorize("contact:read"), handler.GetContactMessages)
	contact.Patch("/:messageId/read", middleware.Protected(), middleware.Authorize("contact:read"), validate.GetById("messageId"), handler.MarkContactRead)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/", middleware.Protected(), middleware.Authorize("stats:read"), handler.GetDashboardStats)
	statistic.Get("/revenue", middleware.Protected(), middleware.Authorize("stats:read"), handler.GetRevenueByMonth)

	v1.Post("/cloudinary-signature", middleware.Protected(), middleware.Authorize("upload:sign"), handler.GenerateSignature)
}
