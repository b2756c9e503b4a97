package station

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/chargemate-booking/internal/domain"
	"github.com/m04kA/chargemate-booking/pkg/dbmetrics"
	"github.com/m04kA/chargemate-booking/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"station_id",
	"title",
	"address_line",
	"state",
	"country",
	"latitude",
	"longitude",
	"connection_type",
	"power_kw",
	"quantity",
	"price",
	"rating",
}

// Repository справочник станций (только чтение)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает репозиторий станций
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID возвращает станцию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Station, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("stations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanStation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan station: %w", ErrScanRow, err)
	}
	return s, nil
}

// List возвращает весь каталог станций
func (r *Repository) List(ctx context.Context) ([]domain.Station, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("stations").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	stations := make([]domain.Station, 0)
	for rows.Next() {
		s, err := scanStation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan station: %v", ErrScanRow, err)
		}
		stations = append(stations, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}
	return stations, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStation(row rowScanner) (*domain.Station, error) {
	var s domain.Station
	err := row.Scan(
		&s.ID,
		&s.StationID,
		&s.Title,
		&s.AddressLine,
		&s.State,
		&s.Country,
		&s.Latitude,
		&s.Longitude,
		&s.ConnectionType,
		&s.PowerKW,
		&s.Quantity,
		&s.Price,
		&s.Rating,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
