package service

import (
	"context"

	"github.com/alexanderramin/prazo/internal/contract"
	"github.com/alexanderramin/prazo/internal/domain"
	"github.com/alexanderramin/prazo/internal/scenario"
)

type scenarioService struct {
	registry *scenario.Registry
}

func NewScenarioService(registry *scenario.Registry) ScenarioService {
	return &scenarioService{registry: registry}
}

func (s *scenarioService) List(ctx context.Context) ([]domain.Scenario, error) {
	return s.registry.List(), nil
}

func (s *scenarioService) Get(ctx context.Context, name string) (*domain.Scenario, error) {
	sc, err := s.registry.Get(name)
	if err != nil {
		return nil, contract.WrapScheduleError(err)
	}
	return &sc, nil
}
