package bookings

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/chargemate-booking/internal/domain"
	bookingRepo "github.com/m04kA/chargemate-booking/internal/infra/storage/booking"
	stationRepo "github.com/m04kA/chargemate-booking/internal/infra/storage/station"
	"github.com/m04kA/chargemate-booking/internal/service/bookings/models"
	"github.com/m04kA/chargemate-booking/pkg/types"
)

// Service чтение бронирований и справочника разъёмов
type Service struct {
	bookingRepo BookingRepository
	stations    StationProvider
	logger      Logger

	mu         sync.RWMutex
	connectors domain.ConnectorIndex
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, stations StationProvider, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		stations:    stations,
		logger:      logger,
		connectors:  domain.BuildConnectorIndex(nil),
	}
}

// GetByID получает бронирование по ID.
// Владелец определяется по email, администратор видит любое бронирование.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, actor domain.Actor) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, actor.Email)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !booking.IsOwnedBy(actor.Email) && !actor.IsAdmin() {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", actor.Email, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// ListMyBookings бронирования текущего пользователя, сначала новые
func (s *Service) ListMyBookings(ctx context.Context, actor domain.Actor) (*models.BookingListResponse, error) {
	if actor.Email == "" {
		return nil, fmt.Errorf("%w: token has no email", ErrInvalidInput)
	}

	s.logger.Info("ListMyBookings: fetching bookings for user=%s", actor.Email)

	bookings, err := s.bookingRepo.GetByCustomerEmail(ctx, actor.Email)
	if err != nil {
		s.logger.Error("ListMyBookings: repository error for user=%s: %v", actor.Email, err)
		return nil, fmt.Errorf("%w: ListMyBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListMyBookings: successfully fetched %d bookings for user=%s", len(bookings), actor.Email)
	return models.FromDomainBookingList(bookings), nil
}

// ListStationBookings бронирования станции на дату по времени начала
func (s *Service) ListStationBookings(ctx context.Context, stationID int64, date types.Date) (*models.BookingListResponse, error) {
	if stationID <= 0 {
		return nil, fmt.Errorf("%w: stationId must be positive", ErrInvalidInput)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	s.logger.Info("ListStationBookings: station=%d, date=%s", stationID, date)

	if _, err := s.stations.GetByID(ctx, stationID); err != nil {
		if errors.Is(err, stationRepo.ErrStationNotFound) {
			s.logger.Warn("ListStationBookings: station id=%d not found", stationID)
			return nil, ErrStationNotFound
		}
		s.logger.Error("ListStationBookings: failed to get station id=%d: %v", stationID, err)
		return nil, fmt.Errorf("%w: ListStationBookings - station error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetByStationAndDate(ctx, stationID, date)
	if err != nil {
		s.logger.Error("ListStationBookings: repository error for station=%d: %v", stationID, err)
		return nil, fmt.Errorf("%w: ListStationBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// RefreshConnectors перестраивает справочник разъёмов по текущему каталогу станций
func (s *Service) RefreshConnectors(ctx context.Context) error {
	stations, err := s.stations.List(ctx)
	if err != nil {
		s.logger.Error("RefreshConnectors: failed to list stations: %v", err)
		return fmt.Errorf("%w: RefreshConnectors - list stations: %v", ErrInternal, err)
	}

	index := domain.BuildConnectorIndex(stations)

	s.mu.Lock()
	s.connectors = index
	s.mu.Unlock()

	s.logger.Info("RefreshConnectors: %d connector types from %d stations", index.Len(), len(stations))
	return nil
}

// ConnectorTypes типы разъёмов в порядке их кодов
func (s *Service) ConnectorTypes() *models.ConnectorTypesResponse {
	s.mu.RLock()
	index := s.connectors
	s.mu.RUnlock()

	return models.FromConnectorIndex(index)
}
