package coinledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/waypartner/booking-service/internal/domain"
	"github.com/waypartner/booking-service/pkg/dbmetrics"
	"github.com/waypartner/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий append-only журнала Green Coins
// Записи никогда не обновляются и не удаляются
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала монет
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет запись в журнал
// Вызывается в одной транзакции с изменением баланса, чтобы сумма дельт
// по автомобилю всегда равнялась его текущему балансу
func (r *Repository) Append(ctx context.Context, entry *domain.CoinTransaction) (*domain.CoinTransaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("coin_transactions").
		Columns(
			"vehicle_registration",
			"delta",
			"reason",
			"note",
		).
		Values(
			entry.VehicleRegistration,
			entry.Delta,
			entry.Reason,
			entry.Note,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time

	return entry, nil
}

// GetByVehicle получает историю операций автомобиля (сначала новые)
func (r *Repository) GetByVehicle(ctx context.Context, registration string) ([]*domain.CoinTransaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"vehicle_registration",
		"delta",
		"reason",
		"note",
		"created_at",
	).
		From("coin_transactions").
		Where(squirrel.Eq{"vehicle_registration": registration}).
		OrderBy("created_at DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByVehicle - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVehicle - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.CoinTransaction, 0)
	for rows.Next() {
		var entry domain.CoinTransaction
		var createdAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.VehicleRegistration,
			&entry.Delta,
			&entry.Reason,
			&entry.Note,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByVehicle - scan row: %v", ErrScanRow, err)
		}

		entry.CreatedAt = createdAt.Time
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByVehicle - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// SumByVehicle возвращает сумму дельт по автомобилю
// Используется для сверки журнала с балансом
func (r *Repository) SumByVehicle(ctx context.Context, registration string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(delta), 0)").
		From("coin_transactions").
		Where(squirrel.Eq{"vehicle_registration": registration}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: SumByVehicle - build select query: %v", ErrBuildQuery, err)
	}

	var sum int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&sum); err != nil {
		return 0, fmt.Errorf("%w: SumByVehicle - scan sum: %v", ErrScanRow, err)
	}

	return sum, nil
}
