package request

// CreateTradeRequest is the body for requesting a trade. Names and the book
// title arrive denormalized from the client, matching the stored shape.
type CreateTradeRequest struct {
	RequesterID       string `json:"requesterId" binding:"required"`
	RequesterName     string `json:"requesterName" binding:"required"`
	OwnerID           string `json:"ownerId" binding:"required"`
	OwnerName         string `json:"ownerName" binding:"required"`
	BookID            string `json:"bookId" binding:"required"`
	BookTitle         string `json:"bookTitle" binding:"required"`
	Message           string `json:"message"`
	TradeDescription  string `json:"tradeDescription"`
	RequesterContact  string `json:"requesterContact"`
	RequesterLocation string `json:"requesterLocation"`
}

// UpdateTradeRequest carries the new status for a trade.
type UpdateTradeRequest struct {
	Status string `json:"status" binding:"required"`
}
