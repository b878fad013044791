package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/domain"
	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/service/ports"
	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/service/ports/mocks"
)

type checkInFixture struct {
	bookingRepo *mocks.MockBookingRepo
	notifier    *mocks.MockBookingNotifier
	bookings    *BookingService
	svc         *CheckInService
}

func newCheckInFixture(t *testing.T, now time.Time) *checkInFixture {
	t.Helper()
	f := &checkInFixture{
		bookingRepo: mocks.NewMockBookingRepo(t),
		notifier:    mocks.NewMockBookingNotifier(t),
	}
	log := newTestLogger(t)
	f.bookings = NewBookingService(f.bookingRepo, mocks.NewMockAvailabilityRepo(t), mocks.NewMockPaymentProvider(t), f.notifier, log)
	f.bookings.now = func() time.Time { return now }
	f.svc = NewCheckInService(f.bookingRepo, f.bookings, log)
	f.svc.now = f.bookings.now
	return f
}

// Lesson at 2025-06-10 14:00; this instant is inside the check-in window.
var windowOpenAt = time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

func TestCheckInService_MintToken_Success(t *testing.T) {
	f := newCheckInFixture(t, windowOpenAt)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(), nil)

	token, err := f.svc.MintToken(context.Background(), "ins1", "b1")

	require.NoError(t, err)
	assert.Equal(t, "b1", token.BookingID)
	assert.Equal(t, domain.CheckInActionComplete, token.Action)
	assert.Equal(t, windowOpenAt.UnixMilli(), token.IssuedAtMillis)
}

func TestCheckInService_MintToken_WrongInstructor(t *testing.T) {
	f := newCheckInFixture(t, windowOpenAt)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(), nil)

	_, err := f.svc.MintToken(context.Background(), "ins2", "b1")

	assert.ErrorIs(t, err, domain.ErrIneligible)
}

func TestCheckInService_MintToken_NotConfirmed(t *testing.T) {
	f := newCheckInFixture(t, windowOpenAt)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)

	_, err := f.svc.MintToken(context.Background(), "ins1", "b1")

	assert.ErrorIs(t, err, domain.ErrIneligible)
}

func TestCheckInService_MintToken_WindowNotOpen(t *testing.T) {
	// An hour before the lesson: too early to mint.
	f := newCheckInFixture(t, time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC))

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(), nil)

	_, err := f.svc.MintToken(context.Background(), "ins1", "b1")

	assert.ErrorIs(t, err, domain.ErrIneligible)
}

func TestCheckInService_MintToken_BookingNotFound(t *testing.T) {
	f := newCheckInFixture(t, windowOpenAt)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := f.svc.MintToken(context.Background(), "ins1", "missing")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestCheckInService_ValidateAndComplete_Success(t *testing.T) {
	f := newCheckInFixture(t, windowOpenAt)

	token := domain.NewCheckInToken("b1", windowOpenAt).Encode()

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(), nil)
	f.bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusConfirmed, ports.BookingUpdate{
		Status: domain.BookingStatusCompleted,
	}).Return(nil)
	f.notifier.EXPECT().NotifyLessonCompleted(mock.Anything, mock.Anything).Return()

	booking, err := f.svc.ValidateAndComplete(context.Background(), "stu1", "b1", token)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCompleted, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestCheckInService_ValidateAndComplete_MalformedToken(t *testing.T) {
	f := newCheckInFixture(t, windowOpenAt)

	// No repo expectations: a malformed token must be rejected before any read.
	_, err := f.svc.ValidateAndComplete(context.Background(), "stu1", "b1", "garbage!!!")

	assert.ErrorIs(t, err, domain.ErrMalformedToken)
}

func TestCheckInService_ValidateAndComplete_TokenForOtherBooking(t *testing.T) {
	f := newCheckInFixture(t, windowOpenAt)

	token := domain.NewCheckInToken("b2", windowOpenAt).Encode()

	// The mismatch is caught before the booking is even loaded, so nothing
	// can be mutated by a token scanned against the wrong booking.
	_, err := f.svc.ValidateAndComplete(context.Background(), "stu1", "b1", token)

	assert.ErrorIs(t, err, domain.ErrBookingMismatch)
}

func TestCheckInService_ValidateAndComplete_WrongStudent(t *testing.T) {
	f := newCheckInFixture(t, windowOpenAt)

	token := domain.NewCheckInToken("b1", windowOpenAt).Encode()

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(), nil)

	_, err := f.svc.ValidateAndComplete(context.Background(), "stu2", "b1", token)

	assert.ErrorIs(t, err, domain.ErrNotBookingParty)
}

func TestCheckInService_ValidateAndComplete_SecondScan(t *testing.T) {
	f := newCheckInFixture(t, windowOpenAt)

	token := domain.NewCheckInToken("b1", windowOpenAt).Encode()

	completed := confirmedBooking()
	completed.Status = domain.BookingStatusCompleted
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(completed, nil)

	// The conditional update already ran once; a replayed scan cannot
	// re-trigger completion.
	_, err := f.svc.ValidateAndComplete(context.Background(), "stu1", "b1", token)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestCheckInService_ValidateAndComplete_WindowClosed(t *testing.T) {
	f := newCheckInFixture(t, time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC))

	token := domain.NewCheckInToken("b1", windowOpenAt).Encode()

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(), nil)

	_, err := f.svc.ValidateAndComplete(context.Background(), "stu1", "b1", token)

	assert.ErrorIs(t, err, domain.ErrCheckInWindowClosed)
}

func TestCheckInService_Eligibility(t *testing.T) {
	f := newCheckInFixture(t, windowOpenAt)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(), nil)

	window, err := f.svc.Eligibility(context.Background(), "stu1", "b1")

	require.NoError(t, err)
	assert.True(t, window.Available)
	assert.Equal(t, domain.WindowReasonAvailable, window.Reason)
}

func TestCheckInService_Eligibility_NotParty(t *testing.T) {
	f := newCheckInFixture(t, windowOpenAt)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(), nil)

	_, err := f.svc.Eligibility(context.Background(), "stranger", "b1")

	assert.ErrorIs(t, err, domain.ErrNotBookingParty)
}
