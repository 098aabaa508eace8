package add_kilometers

import "context"

type CoinService interface {
	AddKilometers(ctx context.Context, registration string, km int64) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
