package domain

import (
	"strings"
	"time"
)

// VehicleType represents the segment of a vehicle
type VehicleType string

const (
	TypeTwoWheeler  VehicleType = "two_wheeler"
	TypeFourWheeler VehicleType = "four_wheeler"
)

// IsValid returns true if the vehicle type is one of the known segments
func (t VehicleType) IsValid() bool {
	return t == TypeTwoWheeler || t == TypeFourWheeler
}

// Vehicle represents a vehicle registered in the service center network
// RegistrationNumber является первичным ключом, всегда в верхнем регистре
type Vehicle struct {
	RegistrationNumber string
	OwnerName          string
	Phone              string
	VehicleType        VehicleType
	CoinBalance        int64
	TotalKmDriven      int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CanRedeem returns true if the requested amount can be deducted from the balance
func (v *Vehicle) CanRedeem(amount int64) bool {
	return amount > 0 && v.CoinBalance >= amount
}

// HasRedeemableBalance returns true if the balance reached the redemption threshold
func (v *Vehicle) HasRedeemableBalance() bool {
	return v.CoinBalance >= MinRedeemableBalance
}

// CoinTarget returns the coin target range for the vehicle segment
func (v *Vehicle) CoinTarget() (min int64, max int64) {
	if v.VehicleType == TypeTwoWheeler {
		return TwoWheelerCoinTarget, TwoWheelerCoinTarget
	}
	return FourWheelerCoinTargetMin, FourWheelerCoinTargetMax
}

// NormalizeRegistration приводит регистрационный номер к каноническому виду
// Все чтения и записи выполняются только по нормализованному номеру,
// иначе записи одного автомобиля расходятся по разным ключам
func NormalizeRegistration(registration string) string {
	normalized := strings.ToUpper(strings.TrimSpace(registration))
	return strings.ReplaceAll(normalized, " ", "")
}
