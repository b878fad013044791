package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/domain"
	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/handler/dto"
	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/middleware"
)

type BookingSvc interface {
	CreatePending(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, actorID string) (*domain.Booking, error)
	GetForParty(ctx context.Context, bookingID, userID string) (*domain.Booking, error)
	ListByStudent(ctx context.Context, studentID string) ([]*domain.Booking, error)
	ListByInstructor(ctx context.Context, instructorID string) ([]*domain.Booking, error)
}

type CheckInSvc interface {
	MintToken(ctx context.Context, instructorID, bookingID string) (*domain.CheckInToken, error)
	ValidateAndComplete(ctx context.Context, studentID, bookingID, scannedToken string) (*domain.Booking, error)
	Eligibility(ctx context.Context, userID, bookingID string) (domain.CheckInWindow, error)
}

type PaymentSvc interface {
	CreateSplitPayment(ctx context.Context, studentID, bookingID string, grossMinorUnits int64) (*domain.PaymentIntent, error)
	PreviewSplit(grossMinorUnits int64) (domain.FeeSplit, error)
}

type Handler struct {
	bookingService BookingSvc
	checkInService CheckInSvc
	paymentService PaymentSvc
}

func NewHandler(bookingService BookingSvc, checkInService CheckInSvc, paymentService PaymentSvc) *Handler {
	return &Handler{
		bookingService: bookingService,
		checkInService: checkInService,
		paymentService: paymentService,
	}
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateBookingInput{
		StudentID:    c.GetString(middleware.ContextUserID),
		InstructorID: req.InstructorID,
		Schedule: domain.Schedule{
			Date:            req.ScheduledDate,
			Time:            req.ScheduledTime,
			DurationMinutes: req.DurationMinutes,
		},
		PriceMinorUnits: req.PriceMinorUnits,
	}

	booking, err := h.bookingService.CreatePending(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.GetForParty(c.Request.Context(), bookingID, c.GetString(middleware.ContextUserID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), bookingID, c.GetString(middleware.ContextUserID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListMyStudentBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListByStudent(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingListResponse(bookings))
}

func (h *Handler) ListMyInstructorBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListByInstructor(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingListResponse(bookings))
}

// Check-in

func (h *Handler) MintCheckInToken(c *ginext.Context) {
	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}

	token, err := h.checkInService.MintToken(c.Request.Context(), c.GetString(middleware.ContextUserID), bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CheckInTokenResponse{
		BookingID: token.BookingID,
		Token:     token.Encode(),
		IssuedAt:  token.IssuedAtMillis,
	})
}

func (h *Handler) CheckIn(c *ginext.Context) {
	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}

	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	studentID := c.GetString(middleware.ContextUserID)

	booking, err := h.checkInService.ValidateAndComplete(c.Request.Context(), studentID, bookingID, req.Token)
	if err != nil {
		// A rescan of an already-completed booking is a retry, not a failure.
		if errors.Is(err, domain.ErrInvalidTransition) {
			if b, getErr := h.bookingService.GetForParty(c.Request.Context(), bookingID, studentID); getErr == nil &&
				b.Status == domain.BookingStatusCompleted {
				c.JSON(http.StatusOK, dto.ToBookingResponse(b))
				return
			}
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CheckInEligibility(c *ginext.Context) {
	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}

	window, err := h.checkInService.Eligibility(c.Request.Context(), c.GetString(middleware.ContextUserID), bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEligibilityResponse(window))
}

// Payments

func (h *Handler) PayBooking(c *ginext.Context) {
	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}

	var req dto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	intent, err := h.paymentService.CreateSplitPayment(
		c.Request.Context(),
		c.GetString(middleware.ContextUserID),
		bookingID,
		req.AmountMinorUnits,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentIntentResponse(intent))
}

func (h *Handler) PreviewSplit(c *ginext.Context) {
	amount, err := strconv.ParseInt(c.Query("amount"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid amount"})
		return
	}

	split, err := h.paymentService.PreviewSplit(amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFeeSplitResponse(split))
}

// helpers

func bookingIDParam(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return "", false
	}
	return id, true
}

func toBookingListResponse(bookings []*domain.Booking) []dto.BookingResponse {
	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}
	return resp
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var windowErr *domain.CheckInWindowClosedError
	if errors.As(err, &windowErr) {
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:  err.Error(),
			Reason: string(windowErr.Reason),
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrPaymentIntentNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrSlotUnavailable),
		errors.Is(err, domain.ErrDoubleBooking),
		errors.Is(err, domain.ErrPaymentAlreadyStarted):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrAmountMismatch),
		errors.Is(err, domain.ErrMalformedToken),
		errors.Is(err, domain.ErrBookingMismatch):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotBookingParty),
		errors.Is(err, domain.ErrIneligible):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPayoutAccountNotReady):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPaymentProvider):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
