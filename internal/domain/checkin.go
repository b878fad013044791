package domain

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

// CheckInActionComplete is the only action a check-in token can carry.
const CheckInActionComplete = "complete"

// CheckInToken is the ephemeral payload the instructor's device renders as a
// QR code and the student's device scans back. It is never persisted; it is
// consumed exactly once by the validation that completes the booking.
type CheckInToken struct {
	BookingID      string `json:"booking_id"`
	Action         string `json:"action"`
	IssuedAtMillis int64  `json:"issued_at"`
}

func NewCheckInToken(bookingID string, now time.Time) CheckInToken {
	return CheckInToken{
		BookingID:      bookingID,
		Action:         CheckInActionComplete,
		IssuedAtMillis: now.UnixMilli(),
	}
}

// Encode serializes the token for QR rendering. Both mint and validate live
// in this system, so the encoding is not a compatibility surface.
func (t CheckInToken) Encode() string {
	raw, _ := json.Marshal(t)
	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeCheckInToken parses a scanned payload. Any structural defect
// (undecodable base64, invalid JSON, missing fields, unknown action) is
// ErrMalformedToken.
func DecodeCheckInToken(encoded string) (*CheckInToken, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	var t CheckInToken
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	if t.BookingID == "" || t.IssuedAtMillis == 0 {
		return nil, fmt.Errorf("%w: missing required fields", ErrMalformedToken)
	}
	if t.Action != CheckInActionComplete {
		return nil, fmt.Errorf("%w: unsupported action %q", ErrMalformedToken, t.Action)
	}

	return &t, nil
}
