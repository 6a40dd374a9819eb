package response

import (
	"time"

	"smartpark/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CarResponse struct {
	PlateNumber string    `json:"plateNumber"`
	DriverName  string    `json:"driverName"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromCarView(v *queries.CarView) *CarResponse {
	var resp CarResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromCarViews(views []*queries.CarView) []*CarResponse {
	result := make([]*CarResponse, len(views))
	for i, v := range views {
		result[i] = FromCarView(v)
	}
	return result
}
