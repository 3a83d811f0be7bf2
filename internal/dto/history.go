package dto

// RecordHistoryRequest records one currency selection into the device history.
type RecordHistoryRequest struct {
	Code string `json:"code" binding:"required,currency_code"`
}

// HistoryResponse defines the data returned for a device's selection history,
// most-recent-first.
type HistoryResponse struct {
	History []string `json:"history"`
}
