package domain

import "time"

// CoinReason represents the audit reason of a ledger entry
type CoinReason string

const (
	ReasonKmEarned     CoinReason = "km_earned"
	ReasonServiceBonus CoinReason = "service_bonus"
	ReasonRedeemed     CoinReason = "redeemed"
	ReasonRefunded     CoinReason = "refunded"
)

// IsValid returns true if the reason is one of the known audit reasons
func (r CoinReason) IsValid() bool {
	switch r {
	case ReasonKmEarned, ReasonServiceBonus, ReasonRedeemed, ReasonRefunded:
		return true
	default:
		return false
	}
}

// CoinTransaction одна запись append-only журнала Green Coins
// Инвариант: сумма Delta по автомобилю равна его текущему балансу,
// поэтому запись в журнал и изменение баланса выполняются в одной транзакции
type CoinTransaction struct {
	ID                  int64
	VehicleRegistration string
	Delta               int64 // положительная для начислений, отрицательная для списаний
	Reason              CoinReason
	Note                *string
	CreatedAt           time.Time
}
