package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/personnel-roster/internal/domain"
	"github.com/personnel-roster/internal/dto"
	"github.com/personnel-roster/internal/hierarchy"
	"github.com/personnel-roster/internal/query"
	"github.com/personnel-roster/internal/roster"
	"github.com/personnel-roster/internal/summary"
)

// RosterService определяет интерфейс бизнес-логики над списком сотрудников
type RosterService interface {
	List(ctx context.Context) []domain.Employee
	GetByID(ctx context.Context, id string) (domain.Employee, error)
	GetByName(ctx context.Context, name string) (domain.Employee, error)
	Search(ctx context.Context, q *dto.SearchQuery) ([]domain.Employee, error)
	Remove(ctx context.Context, req *dto.RemoveRequest) (*RemoveResult, error)
	DirectReports(ctx context.Context) []hierarchy.ReportGroup
	ChainToRoot(ctx context.Context, name string) ([]string, error)
	Summary(ctx context.Context) summary.Report
}

// RemoveResult - удалённая запись и число переназначенных подчинённых
type RemoveResult struct {
	Removed    domain.Employee
	Reassigned int
}

// rosterService владеет единственным хранилищем процесса.
// Каждая публичная операция выполняется под одним мьютексом.
type rosterService struct {
	mu         sync.Mutex
	store      *roster.Store
	resolver   *hierarchy.Resolver
	aggregator *summary.Aggregator
	logger     *slog.Logger
}

// NewRosterService создаёт новый экземпляр сервиса
func NewRosterService(store *roster.Store, topN int, logger *slog.Logger) RosterService {
	return &rosterService{
		store:      store,
		resolver:   hierarchy.NewResolver(store),
		aggregator: summary.NewAggregator(store, topN),
		logger:     logger,
	}
}

func (s *rosterService) List(ctx context.Context) []domain.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.All()
}

func (s *rosterService) GetByID(ctx context.Context, id string) (domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.FindByID(id)
}

func (s *rosterService) GetByName(ctx context.Context, name string) (domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.FindByName(name)
}

func (s *rosterService) Search(ctx context.Context, q *dto.SearchQuery) ([]domain.Employee, error) {
	// Компилируем предикат до захвата блокировки: он не зависит от хранилища
	pred, err := query.Compile(q.Field, q.Operator, q.Value)
	if err != nil {
		s.logger.DebugContext(ctx, "query rejected",
			slog.String("field", q.Field),
			slog.String("operator", q.Operator),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return query.Apply(s.store.All(), pred), nil
}

func (s *rosterService) Remove(ctx context.Context, req *dto.RemoveRequest) (*RemoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, reassigned, err := s.store.Remove(req.ID)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "employee removed",
		slog.String("id", removed.ID),
		slog.String("name", removed.Name),
		slog.Int("reassigned", reassigned),
		slog.Int("remaining", s.store.Len()),
	)

	return &RemoveResult{Removed: removed, Reassigned: reassigned}, nil
}

func (s *rosterService) DirectReports(ctx context.Context) []hierarchy.ReportGroup {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.resolver.DirectReports()
}

func (s *rosterService) ChainToRoot(ctx context.Context, name string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chain, err := s.resolver.ChainToRoot(name)
	if err != nil {
		if errors.Is(err, domain.ErrCycleDetected) {
			s.logger.WarnContext(ctx, "reporting cycle detected", slog.String("name", name), slog.Any("chain", chain))
		}
		return nil, err
	}
	return chain, nil
}

func (s *rosterService) Summary(ctx context.Context) summary.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.aggregator.Summarize()
}
