package slot

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidSlotNumber = errors.New("invalid slot number")
	ErrAlreadyOccupied   = errors.New("slot is already occupied")
)

// Short alphanumeric labels like "A1" or "B12".
var slotNumberRegex = regexp.MustCompile(`^[A-Z0-9-]{1,10}$`)

type Number struct {
	value string
}

func NewNumber(s string) (Number, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !slotNumberRegex.MatchString(s) {
		return Number{}, ErrInvalidSlotNumber
	}
	return Number{value: s}, nil
}

func (n Number) Value() string {
	return n.value
}

// Slot tracks one physical parking space. Its status is flipped only by the
// session workflow: Occupied on entry, Available on exit or record deletion.
type Slot struct {
	number    Number
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewSlot(number string) (*Slot, error) {
	n, err := NewNumber(number)
	if err != nil {
		return nil, err
	}
	return &Slot{
		number: n,
		status: StatusAvailable,
	}, nil
}

func ReconstructSlot(number Number, status Status, createdAt, updatedAt time.Time) *Slot {
	return &Slot{
		number:    number,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (s *Slot) Occupy() error {
	if s.status == StatusOccupied {
		return ErrAlreadyOccupied
	}
	s.status = StatusOccupied
	return nil
}

// Release is idempotent: releasing an Available slot is a no-op.
func (s *Slot) Release() {
	s.status = StatusAvailable
}

func (s *Slot) IsAvailable() bool {
	return s.status == StatusAvailable
}

func (s *Slot) Number() Number       { return s.number }
func (s *Slot) Status() Status       { return s.status }
func (s *Slot) CreatedAt() time.Time { return s.createdAt }
func (s *Slot) UpdatedAt() time.Time { return s.updatedAt }
