package request

type PayRequest struct {
	AmountPaid int64 `json:"amountPaid" binding:"required,gt=0"`
}
