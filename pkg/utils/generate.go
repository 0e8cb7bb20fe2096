package utils

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// ==================== TOKEN ====================

func GenerateActivationToken() uuid.UUID {
	return uuid.New()
}

// ==================== BOOKING ID ====================

// IDSequence hands out monotonically increasing integer ids. The sequence
// replaces random id generation so two bookings can never collide.
type IDSequence struct {
	next int64
}

func NewIDSequence(start int) *IDSequence {
	return &IDSequence{next: int64(start)}
}

func (s *IDSequence) Next() int {
	return int(atomic.AddInt64(&s.next, 1) - 1)
}

// ==================== BOOKING REFERENCE ====================

func GenerateBookingReference() string {
	rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	// Format: TRVL-YYYYMMDD-HHMMSS-RANDOM
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("TRVL-%s-%s-%s", datePart, timePart, randomPart)
}
