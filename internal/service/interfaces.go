package service

import (
	"context"

	"github.com/alexanderramin/prazo/internal/contract"
	"github.com/alexanderramin/prazo/internal/domain"
)

type DeadlineService interface {
	Compute(ctx context.Context, req contract.ComputeRequest) (*contract.ComputeResponse, error)
	// ComputeBatch runs every request independently. Results keep the input
	// order; a failed item carries its own error and does not stop the rest.
	ComputeBatch(ctx context.Context, reqs []contract.ComputeRequest) ([]contract.BatchResult, error)
	Milestone(ctx context.Context, req contract.MilestoneRequest) (*contract.MilestoneResponse, error)
	Classify(ctx context.Context, req contract.ClassifyRequest) (*contract.ClassifyResponse, error)
	Holidays(ctx context.Context, fromYear, toYear int) ([]contract.Holiday, error)
}

type RunService interface {
	List(ctx context.Context, limit int) ([]*domain.ArchivedRun, error)
	Get(ctx context.Context, id string) (*domain.ArchivedRun, error)
	Delete(ctx context.Context, id string) error
}

type ScenarioService interface {
	List(ctx context.Context) ([]domain.Scenario, error)
	Get(ctx context.Context, name string) (*domain.Scenario, error)
}
