package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/domain"
	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/handler/dto"
	hmocks "github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/handler/mocks"
	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/middleware"
)

// setupRouter wires the handler behind the same route shapes as production,
// with auth replaced by a middleware that injects userID directly.
func setupRouter(t *testing.T, userID string) (*hmocks.MockBookingSvc, *hmocks.MockCheckInSvc, *hmocks.MockPaymentSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)
	checkInSvc := hmocks.NewMockCheckInSvc(t)
	paymentSvc := hmocks.NewMockPaymentSvc(t)

	h := NewHandler(bookingSvc, checkInSvc, paymentSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	api.Use(func(c *ginext.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Next()
	})
	{
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.GET("/students/me/bookings", h.ListMyStudentBookings)
		api.GET("/instructors/me/bookings", h.ListMyInstructorBookings)
		api.POST("/bookings/:id/checkin/token", h.MintCheckInToken)
		api.POST("/bookings/:id/checkin", h.CheckIn)
		api.GET("/bookings/:id/checkin/eligibility", h.CheckInEligibility)
		api.POST("/bookings/:id/pay", h.PayBooking)
		api.GET("/payments/preview", h.PreviewSplit)
	}

	return bookingSvc, checkInSvc, paymentSvc, r
}

func testBooking(id string) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		StudentID:       "stu1",
		InstructorID:    "ins1",
		ScheduledDate:   "2025-06-10",
		ScheduledTime:   "14:00",
		DurationMinutes: 50,
		PriceMinorUnits: 8000,
		PaymentStatus:   domain.PaymentStatusUnpaid,
		Status:          domain.BookingStatusPending,
		CreatedAt:       time.Now(),
	}
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, "stu1")

	bookingID := uuid.New().String()
	instructorID := uuid.New().String()
	booking := testBooking(bookingID)
	booking.InstructorID = instructorID

	bookingSvc.EXPECT().CreatePending(mock.Anything, domain.CreateBookingInput{
		StudentID:    "stu1",
		InstructorID: instructorID,
		Schedule: domain.Schedule{
			Date:            "2025-06-10",
			Time:            "14:00",
			DurationMinutes: 50,
		},
		PriceMinorUnits: 8000,
	}).Return(booking, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		InstructorID:    instructorID,
		ScheduledDate:   "2025-06-10",
		ScheduledTime:   "14:00",
		DurationMinutes: 50,
		PriceMinorUnits: 8000,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "unpaid", resp.PaymentStatus)
}

func TestHandler_CreateBooking_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t, "stu1")

	body := []byte(`{"instructor_id":"not-a-uuid"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_SlotUnavailable(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, "stu1")

	instructorID := uuid.New().String()
	bookingSvc.EXPECT().CreatePending(mock.Anything, mock.Anything).Return(nil, domain.ErrSlotUnavailable)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		InstructorID:    instructorID,
		ScheduledDate:   "2025-06-10",
		ScheduledTime:   "14:00",
		PriceMinorUnits: 8000,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateBooking_DoubleBooking(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, "stu1")

	bookingSvc.EXPECT().CreatePending(mock.Anything, mock.Anything).Return(nil, domain.ErrDoubleBooking)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		InstructorID:    uuid.New().String(),
		ScheduledDate:   "2025-06-10",
		ScheduledTime:   "14:00",
		PriceMinorUnits: 8000,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetBooking_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, "stu1")

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().GetForParty(mock.Anything, bookingID, "stu1").Return(testBooking(bookingID), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, bookingID, resp.ID)
}

func TestHandler_GetBooking_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t, "stu1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, "stu1")

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().GetForParty(mock.Anything, bookingID, "stu1").Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetBooking_NotParty(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, "stranger")

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().GetForParty(mock.Anything, bookingID, "stranger").Return(nil, domain.ErrNotBookingParty)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, "stu1")

	bookingID := uuid.New().String()
	cancelled := testBooking(bookingID)
	cancelled.Status = domain.BookingStatusCancelled

	bookingSvc.EXPECT().Cancel(mock.Anything, bookingID, "stu1").Return(cancelled, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)
}

func TestHandler_CancelBooking_AlreadyTerminal(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, "stu1")

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, bookingID, "stu1").Return(nil, domain.ErrInvalidTransition)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListMyStudentBookings(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, "stu1")

	bookings := []*domain.Booking{testBooking(uuid.New().String())}
	bookingSvc.EXPECT().ListByStudent(mock.Anything, "stu1").Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/students/me/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ListMyInstructorBookings(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, "ins1")

	bookingSvc.EXPECT().ListByInstructor(mock.Anything, "ins1").Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/instructors/me/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp)
}

// --- Check-in ---

func TestHandler_MintCheckInToken_Success(t *testing.T) {
	_, checkInSvc, _, r := setupRouter(t, "ins1")

	bookingID := uuid.New().String()
	token := domain.NewCheckInToken(bookingID, time.Now())

	checkInSvc.EXPECT().MintToken(mock.Anything, "ins1", bookingID).Return(&token, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/checkin/token", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CheckInTokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, bookingID, resp.BookingID)
	assert.Equal(t, token.Encode(), resp.Token)

	decoded, err := domain.DecodeCheckInToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, bookingID, decoded.BookingID)
}

func TestHandler_MintCheckInToken_Ineligible(t *testing.T) {
	_, checkInSvc, _, r := setupRouter(t, "ins1")

	bookingID := uuid.New().String()
	checkInSvc.EXPECT().MintToken(mock.Anything, "ins1", bookingID).Return(nil, domain.ErrIneligible)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/checkin/token", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CheckIn_Success(t *testing.T) {
	_, checkInSvc, _, r := setupRouter(t, "stu1")

	bookingID := uuid.New().String()
	completed := testBooking(bookingID)
	completed.Status = domain.BookingStatusCompleted
	token := domain.NewCheckInToken(bookingID, time.Now()).Encode()

	checkInSvc.EXPECT().ValidateAndComplete(mock.Anything, "stu1", bookingID, token).Return(completed, nil)

	body, _ := json.Marshal(dto.CheckInRequest{Token: token})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/checkin", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
}

func TestHandler_CheckIn_MalformedToken(t *testing.T) {
	_, checkInSvc, _, r := setupRouter(t, "stu1")

	bookingID := uuid.New().String()
	checkInSvc.EXPECT().ValidateAndComplete(mock.Anything, "stu1", bookingID, "garbage").
		Return(nil, domain.ErrMalformedToken)

	body, _ := json.Marshal(dto.CheckInRequest{Token: "garbage"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/checkin", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CheckIn_BookingMismatch(t *testing.T) {
	_, checkInSvc, _, r := setupRouter(t, "stu1")

	bookingID := uuid.New().String()
	token := domain.NewCheckInToken(uuid.New().String(), time.Now()).Encode()

	checkInSvc.EXPECT().ValidateAndComplete(mock.Anything, "stu1", bookingID, token).
		Return(nil, domain.ErrBookingMismatch)

	body, _ := json.Marshal(dto.CheckInRequest{Token: token})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/checkin", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CheckIn_WindowClosed(t *testing.T) {
	_, checkInSvc, _, r := setupRouter(t, "stu1")

	bookingID := uuid.New().String()
	token := domain.NewCheckInToken(bookingID, time.Now()).Encode()

	checkInSvc.EXPECT().ValidateAndComplete(mock.Anything, "stu1", bookingID, token).
		Return(nil, &domain.CheckInWindowClosedError{Reason: domain.WindowReasonTooLate})

	body, _ := json.Marshal(dto.CheckInRequest{Token: token})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/checkin", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "too_late", resp.Reason)
}

func TestHandler_CheckIn_RescanOfCompletedIsOK(t *testing.T) {
	bookingSvc, checkInSvc, _, r := setupRouter(t, "stu1")

	bookingID := uuid.New().String()
	completed := testBooking(bookingID)
	completed.Status = domain.BookingStatusCompleted
	token := domain.NewCheckInToken(bookingID, time.Now()).Encode()

	// The conditional update missed because the booking already completed;
	// the retry reads back the final state and reports success.
	checkInSvc.EXPECT().ValidateAndComplete(mock.Anything, "stu1", bookingID, token).
		Return(nil, domain.ErrInvalidTransition)
	bookingSvc.EXPECT().GetForParty(mock.Anything, bookingID, "stu1").Return(completed, nil)

	body, _ := json.Marshal(dto.CheckInRequest{Token: token})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/checkin", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
}

func TestHandler_CheckIn_InvalidTransitionOnCancelled(t *testing.T) {
	bookingSvc, checkInSvc, _, r := setupRouter(t, "stu1")

	bookingID := uuid.New().String()
	cancelled := testBooking(bookingID)
	cancelled.Status = domain.BookingStatusCancelled
	token := domain.NewCheckInToken(bookingID, time.Now()).Encode()

	checkInSvc.EXPECT().ValidateAndComplete(mock.Anything, "stu1", bookingID, token).
		Return(nil, domain.ErrInvalidTransition)
	bookingSvc.EXPECT().GetForParty(mock.Anything, bookingID, "stu1").Return(cancelled, nil)

	body, _ := json.Marshal(dto.CheckInRequest{Token: token})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/checkin", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CheckInEligibility(t *testing.T) {
	_, checkInSvc, _, r := setupRouter(t, "stu1")

	bookingID := uuid.New().String()
	checkInSvc.EXPECT().Eligibility(mock.Anything, "stu1", bookingID).
		Return(domain.CheckInWindow{Available: false, Reason: domain.WindowReasonTooEarly}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID+"/checkin/eligibility", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EligibilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Available)
	assert.Equal(t, "too_early", resp.Reason)
}

// --- Payments ---

func TestHandler_PayBooking_Success(t *testing.T) {
	_, _, paymentSvc, r := setupRouter(t, "stu1")

	bookingID := uuid.New().String()
	intent := &domain.PaymentIntent{
		ID:           "pi_1",
		ClientSecret: "secret_1",
		Split: domain.FeeSplit{
			GrossAmount:         8000,
			PlatformFeeAmount:   1200,
			InstructorNetAmount: 6800,
		},
	}

	paymentSvc.EXPECT().CreateSplitPayment(mock.Anything, "stu1", bookingID, int64(8000)).Return(intent, nil)

	body, _ := json.Marshal(dto.PayRequest{AmountMinorUnits: 8000})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/pay", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.PaymentIntentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pi_1", resp.PaymentIntentID)
	assert.Equal(t, int64(1200), resp.Split.PlatformFeeAmount)
}

func TestHandler_PayBooking_AmountMismatch(t *testing.T) {
	_, _, paymentSvc, r := setupRouter(t, "stu1")

	bookingID := uuid.New().String()
	paymentSvc.EXPECT().CreateSplitPayment(mock.Anything, "stu1", bookingID, int64(7500)).
		Return(nil, domain.ErrAmountMismatch)

	body, _ := json.Marshal(dto.PayRequest{AmountMinorUnits: 7500})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/pay", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PayBooking_AlreadyStarted(t *testing.T) {
	_, _, paymentSvc, r := setupRouter(t, "stu1")

	bookingID := uuid.New().String()
	paymentSvc.EXPECT().CreateSplitPayment(mock.Anything, "stu1", bookingID, int64(8000)).
		Return(nil, domain.ErrPaymentAlreadyStarted)

	body, _ := json.Marshal(dto.PayRequest{AmountMinorUnits: 8000})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/pay", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_PayBooking_PayoutAccountNotReady(t *testing.T) {
	_, _, paymentSvc, r := setupRouter(t, "stu1")

	bookingID := uuid.New().String()
	paymentSvc.EXPECT().CreateSplitPayment(mock.Anything, "stu1", bookingID, int64(8000)).
		Return(nil, domain.ErrPayoutAccountNotReady)

	body, _ := json.Marshal(dto.PayRequest{AmountMinorUnits: 8000})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/pay", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_PayBooking_ProviderError(t *testing.T) {
	_, _, paymentSvc, r := setupRouter(t, "stu1")

	bookingID := uuid.New().String()
	paymentSvc.EXPECT().CreateSplitPayment(mock.Anything, "stu1", bookingID, int64(8000)).
		Return(nil, domain.ErrPaymentProvider)

	body, _ := json.Marshal(dto.PayRequest{AmountMinorUnits: 8000})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/pay", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandler_PreviewSplit_Success(t *testing.T) {
	_, _, paymentSvc, r := setupRouter(t, "stu1")

	paymentSvc.EXPECT().PreviewSplit(int64(8000)).Return(domain.FeeSplit{
		GrossAmount:         8000,
		PlatformFeeAmount:   1200,
		InstructorNetAmount: 6800,
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/payments/preview?amount=8000", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.FeeSplitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(6800), resp.InstructorNetAmount)
}

func TestHandler_PreviewSplit_BadAmount(t *testing.T) {
	_, _, _, r := setupRouter(t, "stu1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/payments/preview?amount=abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, "stu1")

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().GetForParty(mock.Anything, bookingID, "stu1").Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
