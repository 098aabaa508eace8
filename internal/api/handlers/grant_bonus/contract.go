package grant_bonus

import "context"

type CoinService interface {
	GrantBonus(ctx context.Context, registration string, amount int64, note *string) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
