package request

// MarkAllReadRequest identifies whose notifications to mark read.
type MarkAllReadRequest struct {
	UserID string `json:"userId" binding:"required"`
}
