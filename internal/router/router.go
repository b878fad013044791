package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/auth"
	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/middleware"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ListMyStudentBookings(c *ginext.Context)
	ListMyInstructorBookings(c *ginext.Context)
	MintCheckInToken(c *ginext.Context)
	CheckIn(c *ginext.Context)
	CheckInEligibility(c *ginext.Context)
	PayBooking(c *ginext.Context)
	PreviewSplit(c *ginext.Context)
}

type WebhookHandler interface {
	HandlePaymentEvent(c *ginext.Context)
}

func InitRouter(
	mode string,
	h Handler,
	wh WebhookHandler,
	authMW ginext.HandlerFunc,
	mw ...ginext.HandlerFunc,
) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	api.Use(authMW)
	{
		student := middleware.RequireRole(auth.RoleStudent)
		instructor := middleware.RequireRole(auth.RoleInstructor)

		// Bookings
		api.POST("/bookings", student, h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.GET("/students/me/bookings", student, h.ListMyStudentBookings)
		api.GET("/instructors/me/bookings", instructor, h.ListMyInstructorBookings)

		// Check-in
		api.POST("/bookings/:id/checkin/token", instructor, h.MintCheckInToken)
		api.POST("/bookings/:id/checkin", student, h.CheckIn)
		api.GET("/bookings/:id/checkin/eligibility", h.CheckInEligibility)

		// Payments
		api.POST("/bookings/:id/pay", student, h.PayBooking)
		api.GET("/payments/preview", h.PreviewSplit)
	}

	// Provider callbacks authenticate by event verification, not bearer auth.
	router.POST("/webhooks/payment", wh.HandlePaymentEvent)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
