package courts

import (
	"context"
	"errors"
	"fmt"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	"github.com/arcsportszone/ARC-BookingService/internal/events"
	courtRepo "github.com/arcsportszone/ARC-BookingService/internal/infra/storage/court"
)

// CourtResponse корт в ответе сервиса
type CourtResponse struct {
	ID        int64
	Name      string
	SportID   int64
	SportName string
	Price     float64
	Capacity  int
	Status    string
}

// Service сервис для работы с кортами
type Service struct {
	courtRepo CourtRepository
	bus       EventPublisher
	logger    Logger
}

// NewService создает новый экземпляр сервиса кортов
func NewService(courtRepo CourtRepository, bus EventPublisher, logger Logger) *Service {
	return &Service{
		courtRepo: courtRepo,
		bus:       bus,
		logger:    logger,
	}
}

// List получает все корты с тарифами и емкостью
func (s *Service) List(ctx context.Context) ([]CourtResponse, error) {
	courts, err := s.courtRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := make([]CourtResponse, 0, len(courts))
	for _, c := range courts {
		result = append(result, CourtResponse{
			ID:        c.ID,
			Name:      c.Name,
			SportID:   c.SportID,
			SportName: c.SportName,
			Price:     c.Price,
			Capacity:  c.Capacity,
			Status:    string(c.Status),
		})
	}

	return result, nil
}

// UpdateStatus меняет статус корта. Любой статус кроме Available
// закрывает корт для новых бронирований; уже существующие бронирования
// не трогаются
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) error {
	s.logger.Info("UpdateStatus: court id=%d, status=%q", id, status)

	courtStatus := domain.CourtStatus(status)
	if !courtStatus.IsValid() {
		s.logger.Warn("UpdateStatus: invalid status %q for court id=%d", status, id)
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if err := s.courtRepo.UpdateStatus(ctx, id, courtStatus); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("UpdateStatus: court id=%d not found", id)
			return ErrCourtNotFound
		}
		s.logger.Error("UpdateStatus: repository error for court id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.bus.Publish(events.CourtsUpdated)

	s.logger.Info("UpdateStatus: court id=%d status set to %q", id, status)
	return nil
}
