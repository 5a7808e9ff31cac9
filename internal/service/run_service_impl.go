package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/prazo/internal/contract"
	"github.com/alexanderramin/prazo/internal/domain"
	"github.com/alexanderramin/prazo/internal/repository"
)

type runService struct {
	runs     repository.RunRepo
	observer UseCaseObserver
}

func NewRunService(runs repository.RunRepo, observers ...UseCaseObserver) RunService {
	return &runService{
		runs:     runs,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *runService) List(ctx context.Context, limit int) ([]*domain.ArchivedRun, error) {
	runs, err := s.runs.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return runs, nil
}

func (s *runService) Get(ctx context.Context, id string) (*domain.ArchivedRun, error) {
	run, err := s.runs.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, id)
	}
	return run, nil
}

func (s *runService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		observe(ctx, s.observer, "delete-run", startedAt, map[string]any{"run": id}, err)
	}()

	if err := s.runs.Delete(ctx, id); err != nil {
		return notFoundOr(err, id)
	}
	return nil
}

func notFoundOr(err error, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return contract.NewScheduleError(contract.ErrNotFound, fmt.Sprintf("run %s not found", id))
	}
	return fmt.Errorf("loading run %s: %w", id, err)
}
