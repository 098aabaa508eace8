package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRegistration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase", input: "ts09ea1234", want: "TS09EA1234"},
		{name: "already normalized", input: "TS09EA1234", want: "TS09EA1234"},
		{name: "inner spaces", input: "TS 09 EA 1234", want: "TS09EA1234"},
		{name: "surrounding whitespace", input: "  ka01ab9999  ", want: "KA01AB9999"},
		{name: "empty", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRegistration(tt.input))
		})
	}
}

func TestNormalizeRegistration_Idempotent(t *testing.T) {
	once := NormalizeRegistration("ts 09 ea 1234")
	twice := NormalizeRegistration(once)
	assert.Equal(t, once, twice)
}

func TestVehicle_CanRedeem(t *testing.T) {
	v := &Vehicle{CoinBalance: 150}

	assert.True(t, v.CanRedeem(100))
	assert.True(t, v.CanRedeem(150))
	assert.False(t, v.CanRedeem(151))
	assert.False(t, v.CanRedeem(0))
	assert.False(t, v.CanRedeem(-10))
}

func TestVehicle_HasRedeemableBalance(t *testing.T) {
	assert.False(t, (&Vehicle{CoinBalance: 99}).HasRedeemableBalance())
	assert.True(t, (&Vehicle{CoinBalance: 100}).HasRedeemableBalance())
}

func TestVehicle_CoinTarget(t *testing.T) {
	min, max := (&Vehicle{VehicleType: TypeTwoWheeler}).CoinTarget()
	assert.Equal(t, int64(1500), min)
	assert.Equal(t, int64(1500), max)

	min, max = (&Vehicle{VehicleType: TypeFourWheeler}).CoinTarget()
	assert.Equal(t, int64(6500), min)
	assert.Equal(t, int64(8500), max)
}

func TestVehicleType_IsValid(t *testing.T) {
	assert.True(t, TypeTwoWheeler.IsValid())
	assert.True(t, TypeFourWheeler.IsValid())
	assert.False(t, VehicleType("truck").IsValid())
	assert.False(t, VehicleType("").IsValid())
}
