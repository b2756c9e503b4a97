package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/chargemate-booking/internal/domain"
	"github.com/m04kA/chargemate-booking/pkg/dbmetrics"
	"github.com/m04kA/chargemate-booking/pkg/psqlbuilder"
	"github.com/m04kA/chargemate-booking/pkg/types"
)

var columns = []string{
	"id",
	"station_id",
	"customer_name",
	"customer_email",
	"booking_date",
	"booking_time",
	"duration_minutes",
	"vehicle_name",
	"vehicle_number",
	"vehicle_connector_type",
	"vehicle_battery_capacity",
	"vehicle_range",
	"payment_method",
	"payment_verified",
	"created_at",
	"updated_at",
}

// Repository реестр бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование. ID и временные метки задаёт вызывающий код.
// Если в контексте есть транзакция, запрос выполняется в ней.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(columns...).
		Values(
			b.ID,
			b.StationID,
			b.CustomerName,
			b.CustomerEmail,
			b.BookingDate,
			b.BookingTime,
			b.DurationMinutes,
			b.Vehicle.Name,
			b.Vehicle.Number,
			b.Vehicle.ConnectorType,
			b.Vehicle.BatteryCapacity,
			b.Vehicle.Range,
			b.PaymentMethod,
			b.PaymentVerified,
			b.CreatedAt,
			b.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	return nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("bookings").
		Where(squirrel.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}
	return b, nil
}

// GetByStationAndDate бронирования станции на дату по возрастанию времени.
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы проверка вместимости
// и вставка нового бронирования были атомарны.
func (r *Repository) GetByStationAndDate(ctx context.Context, stationID int64, date types.Date) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("bookings").
		Where(squirrel.Eq{"station_id": stationID, "booking_date": date}).
		OrderBy("booking_time ASC", "created_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStationAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStationAndDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByCustomerEmail бронирования пользователя, сначала новые.
// E-mail сравнивается без учёта регистра.
func (r *Repository) GetByCustomerEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("bookings").
		Where("LOWER(customer_email) = ?", strings.ToLower(strings.TrimSpace(email))).
		OrderBy("booking_date DESC", "booking_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerEmail - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerEmail - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Update сохраняет расписание и автомобиль бронирования
func (r *Repository) Update(ctx context.Context, b *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("booking_date", b.BookingDate).
		Set("booking_time", b.BookingTime).
		Set("duration_minutes", b.DurationMinutes).
		Set("vehicle_name", b.Vehicle.Name).
		Set("vehicle_number", b.Vehicle.Number).
		Set("vehicle_connector_type", b.Vehicle.ConnectorType).
		Set("vehicle_battery_capacity", b.Vehicle.BatteryCapacity).
		Set("vehicle_range", b.Vehicle.Range).
		Set("updated_at", b.UpdatedAt).
		Where(squirrel.Eq{"id": b.ID.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// Delete удаляет бронирование и возвращает удалённую запись
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id.String()}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}
	return b, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID,
		&b.StationID,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.BookingDate,
		&b.BookingTime,
		&b.DurationMinutes,
		&b.Vehicle.Name,
		&b.Vehicle.Number,
		&b.Vehicle.ConnectorType,
		&b.Vehicle.BatteryCapacity,
		&b.Vehicle.Range,
		&b.PaymentMethod,
		&b.PaymentVerified,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}
	return bookings, nil
}
