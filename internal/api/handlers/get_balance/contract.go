package get_balance

import "context"

type CoinService interface {
	GetBalance(ctx context.Context, registration string) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
