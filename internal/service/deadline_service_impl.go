package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/prazo/internal/calendar"
	"github.com/alexanderramin/prazo/internal/contract"
	"github.com/alexanderramin/prazo/internal/db"
	"github.com/alexanderramin/prazo/internal/domain"
	"github.com/alexanderramin/prazo/internal/holidays"
	"github.com/alexanderramin/prazo/internal/repository"
	"github.com/alexanderramin/prazo/internal/scenario"
	"github.com/alexanderramin/prazo/internal/scheduler"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	defaultHorizonYears     = 3
	defaultBatchConcurrency = 4
	maxClassifyDays         = 3660
)

// CalendarOptions controls how the service builds calendar coverage.
type CalendarOptions struct {
	Pattern calendar.WeeklyPattern
	// HorizonYears is how many years past the filing year a computation may
	// reach. Milestones reach the same distance backwards.
	HorizonYears int
	// BatchConcurrency caps the goroutines used by ComputeBatch.
	BatchConcurrency int
}

type deadlineService struct {
	scenarios *scenario.Registry
	holidays  holidays.Provider
	uow       db.UnitOfWork
	opts      CalendarOptions
	observer  UseCaseObserver
}

// NewDeadlineService wires the engine to its collaborators. uow may be nil,
// in which case requests asking to save are rejected.
func NewDeadlineService(
	scenarios *scenario.Registry,
	provider holidays.Provider,
	uow db.UnitOfWork,
	opts CalendarOptions,
	observers ...UseCaseObserver,
) DeadlineService {
	if opts.Pattern.WorkingDays() == 0 {
		opts.Pattern = calendar.MondayToFriday
	}
	if opts.HorizonYears <= 0 {
		opts.HorizonYears = defaultHorizonYears
	}
	if opts.BatchConcurrency <= 0 {
		opts.BatchConcurrency = defaultBatchConcurrency
	}
	return &deadlineService{
		scenarios: scenarios,
		holidays:  provider,
		uow:       uow,
		opts:      opts,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *deadlineService) Compute(ctx context.Context, req contract.ComputeRequest) (resp *contract.ComputeResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"filing":   req.FilingDate.String(),
		"scenario": req.ScenarioName,
	}
	defer func() {
		if resp != nil {
			fields["deadline"] = resp.Run.Deadline.String()
			fields["overrun"] = resp.Run.Overrun
		}
		observe(ctx, s.observer, "compute", startedAt, fields, err)
	}()

	resp, err = s.compute(ctx, req)
	if err != nil {
		return nil, contract.WrapScheduleError(err)
	}
	return resp, nil
}

func (s *deadlineService) compute(ctx context.Context, req contract.ComputeRequest) (*contract.ComputeResponse, error) {
	if req.FilingDate.IsZero() {
		return nil, contract.NewScheduleError(contract.ErrInvalidRequest, "filing date is required")
	}
	if req.Save && s.uow == nil {
		return nil, contract.NewScheduleError(contract.ErrInvalidRequest, "run archive is not configured")
	}

	sc, err := s.resolveScenario(req)
	if err != nil {
		return nil, err
	}

	from := req.FilingDate.Year()
	cal, err := s.calendar(ctx, from, from+s.opts.HorizonYears)
	if err != nil {
		return nil, err
	}

	run, err := scheduler.Build(cal, req.FilingDate, sc)
	if err != nil {
		return nil, fmt.Errorf("building schedule: %w", err)
	}

	resp := &contract.ComputeResponse{Run: run, Scenario: sc}
	if req.Ledger {
		resp.Ledger, err = scheduler.Ledger(cal, run)
		if err != nil {
			return nil, fmt.Errorf("building ledger: %w", err)
		}
	}

	if req.Save {
		archived := &domain.ArchivedRun{ScheduleRun: run, Label: req.Ref}
		archived.ID = uuid.New().String()
		err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			return repository.NewSQLiteRunRepo(tx).Create(ctx, archived)
		})
		if err != nil {
			return nil, fmt.Errorf("saving run: %w", err)
		}
		resp.Run.ID = archived.ID
		resp.Saved = true
	}
	return resp, nil
}

func (s *deadlineService) resolveScenario(req contract.ComputeRequest) (domain.Scenario, error) {
	var sc domain.Scenario
	switch {
	case req.Scenario != nil:
		sc = req.Scenario.Clone()
	case req.ScenarioName == "":
		return domain.Scenario{}, contract.NewScheduleError(contract.ErrInvalidRequest, "scenario name is required")
	default:
		var err error
		sc, err = s.scenarios.Get(req.ScenarioName)
		if err != nil {
			return domain.Scenario{}, err
		}
	}

	if len(req.Overrides) > 0 {
		out, err := scenario.ApplyOverrides(sc, req.Overrides)
		if err != nil {
			return domain.Scenario{}, contract.NewScheduleError(contract.ErrInvalidRequest, err.Error())
		}
		sc = out
	}
	return sc, nil
}

func (s *deadlineService) ComputeBatch(ctx context.Context, reqs []contract.ComputeRequest) (results []contract.BatchResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"items": len(reqs)}
	defer func() {
		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
			}
		}
		fields["failed"] = failed
		observe(ctx, s.observer, "compute-batch", startedAt, fields, err)
	}()

	results = make([]contract.BatchResult, len(reqs))
	var g errgroup.Group
	g.SetLimit(s.opts.BatchConcurrency)
	for i, req := range reqs {
		results[i] = contract.BatchResult{Index: i, Request: req}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			resp, err := s.Compute(ctx, req)
			if err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Response = resp
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return results, fmt.Errorf("batch interrupted: %w", err)
	}
	return results, nil
}

func (s *deadlineService) Milestone(ctx context.Context, req contract.MilestoneRequest) (resp *contract.MilestoneResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"terminal": req.Terminal.String(),
		"days":     req.Days,
	}
	defer func() {
		observe(ctx, s.observer, "milestone", startedAt, fields, err)
	}()

	if req.Terminal.IsZero() {
		return nil, contract.NewScheduleError(contract.ErrInvalidRequest, "terminal date is required")
	}
	if req.Days < 0 {
		return nil, contract.NewScheduleError(contract.ErrInvalidRequest, fmt.Sprintf("days must be >= 0 (got %d)", req.Days))
	}

	to := req.Terminal.Year()
	cal, err := s.calendar(ctx, to-s.opts.HorizonYears, to)
	if err != nil {
		return nil, contract.WrapScheduleError(err)
	}

	milestone, err := scheduler.MilestoneBefore(cal, req.Terminal, req.Days)
	if err != nil {
		return nil, contract.WrapScheduleError(fmt.Errorf("computing milestone: %w", err))
	}
	fields["milestone"] = milestone.String()
	return &contract.MilestoneResponse{Terminal: req.Terminal, Days: req.Days, Milestone: milestone}, nil
}

func (s *deadlineService) Classify(ctx context.Context, req contract.ClassifyRequest) (resp *contract.ClassifyResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"from": req.From.String(),
		"to":   req.To.String(),
	}
	defer func() {
		observe(ctx, s.observer, "classify", startedAt, fields, err)
	}()

	if req.From.IsZero() || req.To.IsZero() {
		return nil, contract.NewScheduleError(contract.ErrInvalidRequest, "from and to dates are required")
	}
	if req.To.Before(req.From) {
		return nil, contract.NewScheduleError(contract.ErrInvalidRequest,
			fmt.Sprintf("to %s is before from %s", req.To, req.From))
	}
	if span := req.From.DaysUntil(req.To); span >= maxClassifyDays {
		return nil, contract.NewScheduleError(contract.ErrInvalidRequest,
			fmt.Sprintf("range of %d days exceeds the limit of %d", span+1, maxClassifyDays))
	}

	cal, err := s.calendar(ctx, req.From.Year(), req.To.Year())
	if err != nil {
		return nil, contract.WrapScheduleError(err)
	}

	resp = &contract.ClassifyResponse{}
	for d := req.From; !d.After(req.To); d = d.AddDays(1) {
		kind, err := cal.Classify(d)
		if err != nil {
			return nil, contract.WrapScheduleError(err)
		}
		if kind == domain.DayWorking {
			resp.WorkingCount++
		}
		resp.Days = append(resp.Days, domain.DayEntry{
			Date:    d,
			Kind:    kind,
			Holiday: cal.HolidayName(d),
		})
	}
	fields["working_days"] = resp.WorkingCount
	return resp, nil
}

func (s *deadlineService) Holidays(ctx context.Context, fromYear, toYear int) (out []contract.Holiday, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"from_year": fromYear, "to_year": toYear}
	defer func() {
		fields["count"] = len(out)
		observe(ctx, s.observer, "holidays", startedAt, fields, err)
	}()

	if fromYear > toYear {
		return nil, contract.NewScheduleError(contract.ErrInvalidRequest,
			fmt.Sprintf("from year %d is after to year %d", fromYear, toYear))
	}

	set, err := s.holidays.Holidays(ctx, fromYear, toYear)
	if err != nil {
		return nil, contract.WrapScheduleError(fmt.Errorf("loading holidays: %w", err))
	}

	out = make([]contract.Holiday, 0, len(set))
	for d, name := range set {
		out = append(out, contract.Holiday{Date: d, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (s *deadlineService) calendar(ctx context.Context, fromYear, toYear int) (calendar.Config, error) {
	cal, err := holidays.BuildConfig(ctx, s.holidays, s.opts.Pattern, fromYear, toYear)
	if err != nil {
		return calendar.Config{}, fmt.Errorf("building calendar: %w", err)
	}
	return cal, nil
}
