package request

type RegisterCarRequest struct {
	PlateNumber string `json:"plateNumber" binding:"required"`
	DriverName  string `json:"driverName" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

type UpdateCarRequest struct {
	DriverName  *string `json:"driverName,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}
