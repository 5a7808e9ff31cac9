package contract

import (
	"errors"
	"fmt"
	"testing"

	"github.com/alexanderramin/prazo/internal/calendar"
	"github.com/alexanderramin/prazo/internal/domain"
	"github.com/alexanderramin/prazo/internal/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Request constructor defaults ---

func TestNewComputeRequest_SetsDefaults(t *testing.T) {
	filing := domain.MustParseDate("2025-03-10")
	req := NewComputeRequest(filing, "general")

	assert.Equal(t, filing, req.FilingDate)
	assert.Equal(t, "general", req.ScenarioName)
	assert.Nil(t, req.Scenario)
	assert.Nil(t, req.Overrides)
	assert.False(t, req.Ledger)
	assert.False(t, req.Save)
}

func TestNewClassifyRequest_SingleDay(t *testing.T) {
	day := domain.MustParseDate("2025-12-25")
	req := NewClassifyRequest(day)
	assert.Equal(t, day, req.From)
	assert.Equal(t, day, req.To)
}

// --- Error mapping ---

func TestCodeOf(t *testing.T) {
	outOfRange := &calendar.OutOfRangeError{Date: domain.MustParseDate("2031-01-01"), FromYear: 2025, ToYear: 2027}
	invalid := &domain.InvalidScenarioError{Scenario: "x", Problems: []error{errors.New("name is required")}}

	tests := []struct {
		name string
		err  error
		want ScheduleErrorCode
	}{
		{"nil", nil, ""},
		{"out of range", fmt.Errorf("phase %q: %w", "a", outOfRange), ErrOutOfRange},
		{"invalid scenario", invalid, ErrInvalidScenario},
		{"unknown scenario", fmt.Errorf("%w %q", scenario.ErrUnknownScenario, "fast"), ErrUnknownScenario},
		{"coded", fmt.Errorf("wrapped: %w", NewScheduleError(ErrInvalidRequest, "bad")), ErrInvalidRequest},
		{"anything else", errors.New("disk full"), ErrInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestWrapScheduleError_KeepsCause(t *testing.T) {
	cause := fmt.Errorf("building: %w", &calendar.OutOfRangeError{Date: domain.MustParseDate("2031-01-01"), FromYear: 2025, ToYear: 2027})

	se := WrapScheduleError(cause)
	require.NotNil(t, se)
	assert.Equal(t, ErrOutOfRange, se.Code)
	assert.True(t, errors.Is(se, calendar.ErrOutOfRange))
	assert.Equal(t, "OUT_OF_RANGE: "+cause.Error(), se.Error())

	assert.Nil(t, WrapScheduleError(nil))

	coded := NewScheduleError(ErrNotFound, "run abc not found")
	assert.Same(t, coded, WrapScheduleError(coded))
}

func TestWrapScheduleError_NestedKeepsOuterContext(t *testing.T) {
	inner := NewScheduleError(ErrInvalidRequest, "phase check: unknown key")
	wrapped := fmt.Errorf("building schedule: %w", inner)

	se := WrapScheduleError(wrapped)
	require.NotNil(t, se)
	assert.Equal(t, ErrInvalidRequest, se.Code)
	assert.Equal(t, "building schedule: phase check: unknown key", se.Message)
	assert.Equal(t, "INVALID_REQUEST: building schedule: phase check: unknown key", se.Error())

	var got *ScheduleError
	require.True(t, errors.As(se.Unwrap(), &got))
	assert.Same(t, inner, got)
}
