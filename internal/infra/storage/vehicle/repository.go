package vehicle

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/waypartner/booking-service/internal/domain"
	"github.com/waypartner/booking-service/pkg/dbmetrics"
	"github.com/waypartner/booking-service/pkg/psqlbuilder"
)

var vehicleColumns = []string{
	"registration_number",
	"owner_name",
	"phone",
	"vehicle_type",
	"coin_balance",
	"total_km_driven",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с автомобилями
// Все изменения баланса монет выполняются одним UPDATE с условием в WHERE -
// окна между чтением и записью нет, гонки за баланс невозможны
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория автомобилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует новый автомобиль
// Регистрационный номер должен быть нормализован вызывающей стороной
//
// Дубликат разрешается через ON CONFLICT DO NOTHING, а не через ловлю
// ошибки 23505: INSERT вызывается внутри транзакции бронирования, и
// нарушение уникальности переводило бы её в aborted-состояние (25P02),
// после чего перечитать проигравшую гонку запись уже нельзя
func (r *Repository) Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("vehicles").
		Columns(
			"registration_number",
			"owner_name",
			"phone",
			"vehicle_type",
			"coin_balance",
			"total_km_driven",
		).
		Values(
			v.RegistrationNumber,
			v.OwnerName,
			v.Phone,
			v.VehicleType,
			v.CoinBalance,
			v.TotalKmDriven,
		).
		Suffix("ON CONFLICT (registration_number) DO NOTHING RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		// Конфликт по номеру: строка не вставлена
		return nil, ErrVehicleExists
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return v, nil
}

// GetByRegistration получает автомобиль по регистрационному номеру
func (r *Repository) GetByRegistration(ctx context.Context, registration string) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(vehicleColumns...).
		From("vehicles").
		Where(squirrel.Eq{"registration_number": registration}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRegistration - build select query: %v", ErrBuildQuery, err)
	}

	var v domain.Vehicle
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.RegistrationNumber,
		&v.OwnerName,
		&v.Phone,
		&v.VehicleType,
		&v.CoinBalance,
		&v.TotalKmDriven,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRegistration - scan vehicle: %v", ErrScanRow, err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return &v, nil
}

// AddCoins атомарно начисляет монеты и возвращает новый баланс
func (r *Repository) AddCoins(ctx context.Context, registration string, amount int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("vehicles").
		Set("coin_balance", squirrel.Expr("coin_balance + ?", amount)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"registration_number": registration}).
		Suffix("RETURNING coin_balance").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: AddCoins - build update query: %v", ErrBuildQuery, err)
	}

	var balance int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, ErrVehicleNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: AddCoins - execute update: %v", ErrExecQuery, err)
	}

	return balance, nil
}

// DeductCoins атомарно списывает монеты и возвращает новый баланс
// Условие coin_balance >= amount входит в сам UPDATE: списание либо проходит
// целиком, либо не меняет баланс. Неотрицательность баланса гарантирована
func (r *Repository) DeductCoins(ctx context.Context, registration string, amount int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("vehicles").
		Set("coin_balance", squirrel.Expr("coin_balance - ?", amount)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"registration_number": registration}).
		Where(squirrel.GtOrEq{"coin_balance": amount}).
		Suffix("RETURNING coin_balance").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeductCoins - build update query: %v", ErrBuildQuery, err)
	}

	var balance int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&balance)
	if err == sql.ErrNoRows {
		// Либо автомобиль не существует, либо не хватает монет - уточняем
		if _, getErr := r.GetByRegistration(ctx, registration); getErr != nil {
			return 0, getErr
		}
		return 0, ErrInsufficientCoins
	}
	if err != nil {
		return 0, fmt.Errorf("%w: DeductCoins - execute update: %v", ErrExecQuery, err)
	}

	return balance, nil
}

// AddKilometers атомарно увеличивает пробег и начисляет монеты 1:1
// Обе колонки меняются одним UPDATE, поэтому пробег и баланс не расходятся
func (r *Repository) AddKilometers(ctx context.Context, registration string, km int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("vehicles").
		Set("total_km_driven", squirrel.Expr("total_km_driven + ?", km)).
		Set("coin_balance", squirrel.Expr("coin_balance + ?", km)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"registration_number": registration}).
		Suffix("RETURNING coin_balance").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: AddKilometers - build update query: %v", ErrBuildQuery, err)
	}

	var balance int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, ErrVehicleNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: AddKilometers - execute update: %v", ErrExecQuery, err)
	}

	return balance, nil
}
