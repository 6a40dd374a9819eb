package request

type CreateSlotRequest struct {
	SlotNumber string `json:"slotNumber" binding:"required"`
}
