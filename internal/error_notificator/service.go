package error_notificator

import (
	"context"
	"log"
)

// Service глотает ошибки доставки уведомления: сама рассылка уже упала.
type Service struct {
	infra Notificator
}

func NewService(infra Notificator) *Service {
	return &Service{infra: infra}
}

func (s *Service) Notify(ctx context.Context, runID string, err error, details string) error {
	if s.infra == nil {
		return nil
	}
	if nErr := s.infra.Notify(ctx, runID, err, details); nErr != nil {
		log.Printf("[error_notificator] run=%s notify failed: %v", runID, nErr)
	}
	return nil
}
