package response

import (
	"time"

	"smartpark/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	SlotNumber string    `json:"slotNumber"`
	Status     string    `json:"slotStatus"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromSlotView(v *queries.SlotView) *SlotResponse {
	var resp SlotResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromSlotViews(views []*queries.SlotView) []*SlotResponse {
	result := make([]*SlotResponse, len(views))
	for i, v := range views {
		result[i] = FromSlotView(v)
	}
	return result
}
