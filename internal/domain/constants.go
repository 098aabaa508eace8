package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DailySlotTimes фиксированная дневная сетка слотов сервисного центра
// Четыре слота утром, четыре после обеденного перерыва
var DailySlotTimes = []string{
	"09:00",
	"10:00",
	"11:00",
	"12:00",
	"14:00",
	"15:00",
	"16:00",
	"17:00",
}

// Green Coins business constants
const (
	// MaxKilometersPerSubmission максимальный пробег за одну отправку (1 км = 1 монета)
	MaxKilometersPerSubmission = 10000

	// MinRedeemableBalance минимальный баланс для запуска сценария списания
	MinRedeemableBalance = 100

	// CoinValueRupees стоимость одной монеты в рупиях при списании
	CoinValueRupees = 1

	// TimelyServiceBonus бонус за своевременное обслуживание
	TimelyServiceBonus = 5
	// QualityBonus бонус за качество обслуживания
	QualityBonus = 2
	// EVPremiumBonus бонус за обслуживание электромобиля
	EVPremiumBonus = 5
	// FiveStarRatingBonus бонус за оценку 5 звёзд
	FiveStarRatingBonus = 3
)

// Coin targets per vehicle segment
const (
	TwoWheelerCoinTarget     = 1500
	FourWheelerCoinTargetMin = 6500
	FourWheelerCoinTargetMax = 8500
)

// Validation limits
const (
	MaxOwnerNameLength   = 100
	MaxPhoneLength       = 20
	MaxServiceTypeLength = 200
)
