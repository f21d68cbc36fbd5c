package entity

import "testing"

func TestTradeStatus_Valid(t *testing.T) {
	valid := []TradeStatus{TradePending, TradeAccepted, TradeDeclined, TradeCompleted}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("Valid() = false for %v", s)
		}
	}
	if TradeStatus("cancelled").Valid() {
		t.Error("Valid() = true for cancelled")
	}
	if TradeStatus("").Valid() {
		t.Error("Valid() = true for empty status")
	}
}

func TestTradeStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to TradeStatus
		want     bool
	}{
		{TradePending, TradeAccepted, true},
		{TradePending, TradeDeclined, true},
		{TradePending, TradeCompleted, false},
		{TradeAccepted, TradeCompleted, true},
		{TradeAccepted, TradeDeclined, false},
		{TradeDeclined, TradeAccepted, false},
		{TradeCompleted, TradePending, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("CanTransitionTo(%v -> %v) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
