package players

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/efootball-data-service/internal/domain/players"
	"github.com/preston-bernstein/efootball-data-service/internal/logging"
	"github.com/preston-bernstein/efootball-data-service/internal/metrics"
	"github.com/preston-bernstein/efootball-data-service/internal/providers"
)

// Service runs player lookups against the configured provider and records
// one metrics sample and one log line per upstream call.
type Service struct {
	provider     providers.PlayerProvider
	providerName string
	metrics      *metrics.Recorder
	logger       *slog.Logger
	now          func() time.Time
}

// NewService constructs a Service around provider. Recorder and logger may be nil.
func NewService(provider providers.PlayerProvider, providerName string, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	return &Service{
		provider:     provider,
		providerName: providerName,
		metrics:      recorder,
		logger:       logger,
		now:          time.Now,
	}
}

// Search returns summaries for name in upstream order.
func (s *Service) Search(ctx context.Context, name string) ([]players.Summary, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}

	start := s.now()
	items, err := s.provider.SearchPlayers(ctx, name)
	duration := s.now().Sub(start)

	s.record(ctx, metrics.OperationSearch, duration, len(items), err, logging.FieldQuery, name)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Player returns the attribute sheet for id.
func (s *Service) Player(ctx context.Context, id string) (players.Detail, error) {
	if s.provider == nil {
		return players.Detail{}, providers.ErrProviderUnavailable
	}

	start := s.now()
	detail, err := s.provider.FetchPlayer(ctx, id)
	duration := s.now().Sub(start)

	s.record(ctx, metrics.OperationDetail, duration, len(detail.Attributes), err, logging.FieldPlayerID, id)
	if err != nil {
		return players.Detail{}, err
	}
	return detail, nil
}

func (s *Service) record(ctx context.Context, operation string, duration time.Duration, count int, err error, args ...any) {
	s.metrics.RecordProviderAttempt(s.providerName, operation, duration, err)

	logger := logging.FromContext(ctx, s.logger)
	args = append(args,
		logging.FieldProvider, s.providerName,
		logging.FieldOperation, operation,
		logging.Duration(duration),
	)
	if err != nil {
		if statusErr, ok := providers.AsUpstreamStatusError(err); ok {
			args = append(args, logging.FieldStatusCode, statusErr.StatusCode)
		}
		logging.Error(logger, "provider call failed", err, args...)
		return
	}

	s.metrics.RecordScrapeRecords(s.providerName, operation, count)
	logging.Info(logger, "provider call succeeded", append(args, logging.FieldCount, count)...)
}
