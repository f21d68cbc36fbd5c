package entity

import "time"

// TradeStatus is the state of a trade request. Transitions are forward-only:
// pending may become accepted or declined, accepted may become completed, and
// declined/completed are terminal.
type TradeStatus string

const (
	TradePending   TradeStatus = "pending"
	TradeAccepted  TradeStatus = "accepted"
	TradeDeclined  TradeStatus = "declined"
	TradeCompleted TradeStatus = "completed"
)

// Valid reports whether s is a known trade status.
func (s TradeStatus) Valid() bool {
	switch s {
	case TradePending, TradeAccepted, TradeDeclined, TradeCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether the forward-only state machine allows moving
// from s to next.
func (s TradeStatus) CanTransitionTo(next TradeStatus) bool {
	switch s {
	case TradePending:
		return next == TradeAccepted || next == TradeDeclined
	case TradeAccepted:
		return next == TradeCompleted
	default:
		return false
	}
}

// Trade is a peer-to-peer request to exchange or obtain a book. Requester,
// owner and book names are denormalized for notification rendering.
type Trade struct {
	ID                string      `bson:"id" json:"id"`
	RequesterID       string      `bson:"requesterId" json:"requesterId"`
	RequesterName     string      `bson:"requesterName" json:"requesterName"`
	OwnerID           string      `bson:"ownerId" json:"ownerId"`
	OwnerName         string      `bson:"ownerName" json:"ownerName"`
	BookID            string      `bson:"bookId" json:"bookId"`
	BookTitle         string      `bson:"bookTitle" json:"bookTitle"`
	Status            TradeStatus `bson:"status" json:"status"`
	RequestDate       time.Time   `bson:"requestDate" json:"requestDate"`
	Message           string      `bson:"message" json:"message"`
	TradeDescription  string      `bson:"tradeDescription" json:"tradeDescription"`
	RequesterContact  string      `bson:"requesterContact" json:"requesterContact"`
	RequesterLocation string      `bson:"requesterLocation" json:"requesterLocation"`
}
