package courts

import (
	"context"
	"errors"
	"fmt"

	courtRepo "github.com/m04kA/PCM-SchedulingService/internal/infra/storage/court"
	"github.com/m04kA/PCM-SchedulingService/internal/service/courts/models"
)

// Service сервис для работы с кортами клуба
type Service struct {
	courtRepo CourtRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса кортов
func NewService(courtRepo CourtRepository, logger Logger) *Service {
	return &Service{courtRepo: courtRepo, logger: logger}
}

// List получает все активные корты клуба
func (s *Service) List(ctx context.Context) (*models.CourtListResponse, error) {
	s.logger.Info("List: fetching active courts")

	courts, err := s.courtRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d courts", len(courts))
	return models.FromDomainCourtList(courts), nil
}

// GetByID получает корт по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CourtResponse, error) {
	s.logger.Info("GetByID: fetching court id=%d", id)

	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("GetByID: court id=%d not found", id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("GetByID: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCourt(court), nil
}
