// api/audit/service.go
package audit

import (
	"context"
	"time"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/etmf/api/logging"
)

type Service interface {
	Record(ctx context.Context, event Event) error
}

type service struct {
	repo    Repository
	timeout time.Duration
}

func NewService(repo Repository, timeout time.Duration) Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &service{repo: repo, timeout: timeout}
}

// Record ships the event with its own deadline so a slow index never holds up the caller's request.
func (s *service) Record(ctx context.Context, event Event) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	if err := s.repo.Index(ctx, event); err != nil {
		logger.Warn("Failed to record audit event",
			zap.String("action", event.Action),
			zap.String("entityID", event.EntityID),
			zap.Error(err))
		return err
	}
	return nil
}
