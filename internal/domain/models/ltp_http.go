package models

const (
	OrderCompletion = "completion"
	OrderPair       = "pair"
)

// LtpRequest holds the optional query parameters of GET /api/v1/ltp.
type LtpRequest struct {
	Order string `query:"order" json:"order" default:"completion" validate:"oneof=completion pair"`
}
