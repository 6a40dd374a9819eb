//go:build unit || e2e

package builder

import (
	"time"

	domslot "smartpark/internal/domain/slot"
	reqdto "smartpark/internal/handler/dto/request"
	"smartpark/internal/usecase/queries"
)

type SlotBuilder struct {
	SlotNumber string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewSlotBuilder() *SlotBuilder {
	now := time.Now()
	return &SlotBuilder{
		SlotNumber: "A1",
		Status:     string(domslot.StatusAvailable),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *SlotBuilder) BuildDomain() (*domslot.Slot, error) {
	return domslot.NewSlot(b.SlotNumber)
}

func (b *SlotBuilder) BuildCreateRequestDTO() reqdto.CreateSlotRequest {
	return reqdto.CreateSlotRequest{
		SlotNumber: b.SlotNumber,
	}
}

func (b *SlotBuilder) BuildView() *queries.SlotView {
	return &queries.SlotView{
		SlotNumber: b.SlotNumber,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *SlotBuilder) WithSlotNumber(slotNumber string) *SlotBuilder {
	b.SlotNumber = slotNumber
	return b
}

func (b *SlotBuilder) AsOccupied() *SlotBuilder {
	b.Status = string(domslot.StatusOccupied)
	return b
}
