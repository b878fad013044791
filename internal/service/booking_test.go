package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/domain"
	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/service/ports"
	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingFixture struct {
	bookingRepo  *mocks.MockBookingRepo
	availability *mocks.MockAvailabilityRepo
	payments     *mocks.MockPaymentProvider
	notifier     *mocks.MockBookingNotifier
	svc          *BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	f := &bookingFixture{
		bookingRepo:  mocks.NewMockBookingRepo(t),
		availability: mocks.NewMockAvailabilityRepo(t),
		payments:     mocks.NewMockPaymentProvider(t),
		notifier:     mocks.NewMockBookingNotifier(t),
	}
	f.svc = NewBookingService(f.bookingRepo, f.availability, f.payments, f.notifier, newTestLogger(t))
	return f
}

func confirmedBooking() *domain.Booking {
	intent := "pi_1"
	return &domain.Booking{
		ID:              "b1",
		StudentID:       "stu1",
		InstructorID:    "ins1",
		ScheduledDate:   "2025-06-10",
		ScheduledTime:   "14:00",
		DurationMinutes: 50,
		PriceMinorUnits: 8000,
		Status:          domain.BookingStatusConfirmed,
		PaymentStatus:   domain.PaymentStatusPaid,
		PaymentIntentID: &intent,
	}
}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:              "b1",
		StudentID:       "stu1",
		InstructorID:    "ins1",
		ScheduledDate:   "2025-06-10",
		ScheduledTime:   "14:00",
		DurationMinutes: 50,
		PriceMinorUnits: 8000,
		Status:          domain.BookingStatusPending,
		PaymentStatus:   domain.PaymentStatusUnpaid,
	}
}

func TestBookingService_CreatePending_Success(t *testing.T) {
	f := newBookingFixture(t)

	input := domain.CreateBookingInput{
		StudentID:       "stu1",
		InstructorID:    "ins1",
		Schedule:        domain.Schedule{Date: "2025-06-10", Time: "14:00", DurationMinutes: 50},
		PriceMinorUnits: 8000,
	}

	f.availability.EXPECT().HasOpenSlot(mock.Anything, "ins1", mock.Anything).Return(true, nil)
	f.bookingRepo.EXPECT().FindOverlapping(mock.Anything, "ins1", "2025-06-10", "14:00").
		Return(nil, domain.ErrBookingNotFound)
	f.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyLessonBooked(mock.Anything, mock.Anything).Return()

	booking, err := f.svc.CreatePending(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, domain.PaymentStatusUnpaid, booking.PaymentStatus)
	assert.Equal(t, "stu1", booking.StudentID)
	assert.Equal(t, "ins1", booking.InstructorID)
	assert.NotEmpty(t, booking.ID)
	assert.Nil(t, booking.PaymentIntentID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_CreatePending_DefaultsDuration(t *testing.T) {
	f := newBookingFixture(t)

	input := domain.CreateBookingInput{
		StudentID:       "stu1",
		InstructorID:    "ins1",
		Schedule:        domain.Schedule{Date: "2025-06-10", Time: "14:00"},
		PriceMinorUnits: 8000,
	}

	f.availability.EXPECT().HasOpenSlot(mock.Anything, "ins1", domain.Schedule{
		Date:            "2025-06-10",
		Time:            "14:00",
		DurationMinutes: domain.DefaultLessonDurationMinutes,
	}).Return(true, nil)
	f.bookingRepo.EXPECT().FindOverlapping(mock.Anything, "ins1", "2025-06-10", "14:00").
		Return(nil, domain.ErrBookingNotFound)
	f.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyLessonBooked(mock.Anything, mock.Anything).Return()

	booking, err := f.svc.CreatePending(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultLessonDurationMinutes, booking.DurationMinutes)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_CreatePending_MissingParties(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.CreatePending(context.Background(), domain.CreateBookingInput{
		StudentID:       "",
		InstructorID:    "ins1",
		Schedule:        domain.Schedule{Date: "2025-06-10", Time: "14:00"},
		PriceMinorUnits: 8000,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_CreatePending_BadPrice(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.CreatePending(context.Background(), domain.CreateBookingInput{
		StudentID:    "stu1",
		InstructorID: "ins1",
		Schedule:     domain.Schedule{Date: "2025-06-10", Time: "14:00"},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestBookingService_CreatePending_BadSchedule(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.CreatePending(context.Background(), domain.CreateBookingInput{
		StudentID:       "stu1",
		InstructorID:    "ins1",
		Schedule:        domain.Schedule{Date: "10/06/2025", Time: "14:00"},
		PriceMinorUnits: 8000,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_CreatePending_SlotUnavailable(t *testing.T) {
	f := newBookingFixture(t)

	f.availability.EXPECT().HasOpenSlot(mock.Anything, "ins1", mock.Anything).Return(false, nil)

	_, err := f.svc.CreatePending(context.Background(), domain.CreateBookingInput{
		StudentID:       "stu1",
		InstructorID:    "ins1",
		Schedule:        domain.Schedule{Date: "2025-06-10", Time: "14:00"},
		PriceMinorUnits: 8000,
	})

	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

func TestBookingService_CreatePending_DoubleBooking(t *testing.T) {
	f := newBookingFixture(t)

	f.availability.EXPECT().HasOpenSlot(mock.Anything, "ins1", mock.Anything).Return(true, nil)
	f.bookingRepo.EXPECT().FindOverlapping(mock.Anything, "ins1", "2025-06-10", "14:00").
		Return(pendingBooking(), nil)

	_, err := f.svc.CreatePending(context.Background(), domain.CreateBookingInput{
		StudentID:       "stu2",
		InstructorID:    "ins1",
		Schedule:        domain.Schedule{Date: "2025-06-10", Time: "14:00"},
		PriceMinorUnits: 8000,
	})

	assert.ErrorIs(t, err, domain.ErrDoubleBooking)
}

func TestBookingService_ConfirmOnPayment_Success(t *testing.T) {
	f := newBookingFixture(t)

	paid := domain.PaymentStatusPaid
	intent := "pi_1"
	f.bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusPending, ports.BookingUpdate{
		Status:          domain.BookingStatusConfirmed,
		PaymentStatus:   &paid,
		PaymentIntentID: &intent,
	}).Return(nil)
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(), nil)
	f.notifier.EXPECT().NotifyLessonConfirmed(mock.Anything, mock.Anything).Return()

	booking, err := f.svc.ConfirmOnPayment(context.Background(), "b1", "pi_1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, domain.PaymentStatusPaid, booking.PaymentStatus)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_ConfirmOnPayment_NotPending(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusPending, mock.Anything).
		Return(domain.ErrInvalidTransition)

	_, err := f.svc.ConfirmOnPayment(context.Background(), "b1", "pi_1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_CompleteViaCheckIn_Success(t *testing.T) {
	f := newBookingFixture(t)
	f.svc.now = func() time.Time { return time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC) }

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(), nil)
	f.bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusConfirmed, ports.BookingUpdate{
		Status: domain.BookingStatusCompleted,
	}).Return(nil)
	f.notifier.EXPECT().NotifyLessonCompleted(mock.Anything, mock.Anything).Return()

	booking, err := f.svc.CompleteViaCheckIn(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCompleted, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_CompleteViaCheckIn_AlreadyTerminal(t *testing.T) {
	f := newBookingFixture(t)
	f.svc.now = func() time.Time { return time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC) }

	completed := confirmedBooking()
	completed.Status = domain.BookingStatusCompleted
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(completed, nil)

	_, err := f.svc.CompleteViaCheckIn(context.Background(), "b1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_CompleteViaCheckIn_WindowClosed(t *testing.T) {
	f := newBookingFixture(t)
	// 31 minutes after the scheduled start: one minute past the window.
	f.svc.now = func() time.Time { return time.Date(2025, 6, 10, 14, 31, 0, 0, time.UTC) }

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(), nil)

	_, err := f.svc.CompleteViaCheckIn(context.Background(), "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCheckInWindowClosed)

	var windowErr *domain.CheckInWindowClosedError
	require.ErrorAs(t, err, &windowErr)
	assert.Equal(t, domain.WindowReasonTooLate, windowErr.Reason)
}

func TestBookingService_CompleteViaCheckIn_TooEarly(t *testing.T) {
	f := newBookingFixture(t)
	f.svc.now = func() time.Time { return time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC) }

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(), nil)

	_, err := f.svc.CompleteViaCheckIn(context.Background(), "b1")

	var windowErr *domain.CheckInWindowClosedError
	require.ErrorAs(t, err, &windowErr)
	assert.Equal(t, domain.WindowReasonTooEarly, windowErr.Reason)
}

func TestBookingService_Cancel_ByStudent(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)
	f.bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusPending, ports.BookingUpdate{
		Status: domain.BookingStatusCancelled,
	}).Return(nil)
	f.notifier.EXPECT().NotifyLessonCancelled(mock.Anything, mock.Anything).Return()

	booking, err := f.svc.Cancel(context.Background(), "b1", "stu1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_PaidSignalsRefund(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(), nil)
	f.bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusConfirmed, ports.BookingUpdate{
		Status: domain.BookingStatusCancelled,
	}).Return(nil)
	f.payments.EXPECT().Refund(mock.Anything, "pi_1").Return(nil)
	f.notifier.EXPECT().NotifyLessonCancelled(mock.Anything, mock.Anything).Return()

	_, err := f.svc.Cancel(context.Background(), "b1", "ins1")

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_RefundFailureDoesNotBlock(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(), nil)
	f.bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusConfirmed, mock.Anything).
		Return(nil)
	f.payments.EXPECT().Refund(mock.Anything, "pi_1").Return(errors.New("provider down"))
	f.notifier.EXPECT().NotifyLessonCancelled(mock.Anything, mock.Anything).Return()

	booking, err := f.svc.Cancel(context.Background(), "b1", "stu1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_NotParty(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)

	_, err := f.svc.Cancel(context.Background(), "b1", "someone-else")

	assert.ErrorIs(t, err, domain.ErrNotBookingParty)
}

func TestBookingService_Cancel_AlreadyTerminal(t *testing.T) {
	f := newBookingFixture(t)

	cancelled := pendingBooking()
	cancelled.Status = domain.BookingStatusCancelled
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(cancelled, nil)

	_, err := f.svc.Cancel(context.Background(), "b1", "stu1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_CancelStale_Success(t *testing.T) {
	f := newBookingFixture(t)

	cancelled := []*domain.Booking{
		{ID: "b1", StudentID: "stu1", InstructorID: "ins1"},
		{ID: "b2", StudentID: "stu2", InstructorID: "ins2"},
	}
	f.bookingRepo.EXPECT().CancelStalePending(mock.Anything).Return(cancelled, nil)
	f.notifier.EXPECT().NotifyLessonCancelled(mock.Anything, cancelled[0]).Return()
	f.notifier.EXPECT().NotifyLessonCancelled(mock.Anything, cancelled[1]).Return()

	result, err := f.svc.CancelStale(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)

	time.Sleep(100 * time.Millisecond) // goroutine notify
}

func TestBookingService_CancelStale_NoneStale(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().CancelStalePending(mock.Anything).Return(nil, nil)

	result, err := f.svc.CancelStale(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestBookingService_CancelStale_RepoError(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().CancelStalePending(mock.Anything).Return(nil, errors.New("db error"))

	_, err := f.svc.CancelStale(context.Background())

	require.Error(t, err)
}

func TestBookingService_GetForParty(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)

	booking, err := f.svc.GetForParty(context.Background(), "b1", "ins1")

	require.NoError(t, err)
	assert.Equal(t, "b1", booking.ID)
}

func TestBookingService_GetForParty_NotParty(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)

	_, err := f.svc.GetForParty(context.Background(), "b1", "stranger")

	assert.ErrorIs(t, err, domain.ErrNotBookingParty)
}
