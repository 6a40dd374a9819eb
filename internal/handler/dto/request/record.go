package request

import "time"

// EntryRequest opens a parking session. Driver details ride along so the
// car registration can be created or refreshed at the gate.
type EntryRequest struct {
	SlotNumber  string `json:"slotNumber" binding:"required"`
	PlateNumber string `json:"plateNumber" binding:"required"`
	DriverName  string `json:"driverName" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// ExitRequest closes a parking session. ExitTime is optional; when omitted
// the server clock is used.
type ExitRequest struct {
	ExitTime *time.Time `json:"exitTime"`
}
