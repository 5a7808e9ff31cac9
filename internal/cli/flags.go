package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/prazo/internal/domain"
	"github.com/spf13/pflag"
)

type outputFormat string

const (
	formatTable outputFormat = "table"
	formatJSON  outputFormat = "json"
	formatCSV   outputFormat = "csv"
)

var errCSVUnsupported = errors.New("csv output is not supported for this command")

func (f *outputFormat) String() string { return string(*f) }
func (f *outputFormat) Type() string   { return "format" }

func (f *outputFormat) Set(s string) error {
	switch v := outputFormat(strings.ToLower(s)); v {
	case formatTable, formatJSON, formatCSV:
		*f = v
		return nil
	}
	return fmt.Errorf("must be one of table, json, csv")
}

func addFormatFlag(fs *pflag.FlagSet, f *outputFormat) {
	*f = formatTable
	fs.VarP(f, "format", "o", "Output format: table, json or csv")
}

type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

func (c *colorMode) String() string { return string(*c) }
func (c *colorMode) Type() string   { return "when" }

func (c *colorMode) Set(s string) error {
	switch v := colorMode(strings.ToLower(s)); v {
	case colorAuto, colorAlways, colorNever:
		*c = v
		return nil
	}
	return fmt.Errorf("must be one of auto, always, never")
}

func (c colorMode) enabled(isTerminal func() bool) bool {
	switch c {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	return isTerminal != nil && isTerminal()
}

// dateValue binds a YYYY-MM-DD flag to a domain.Date.
type dateValue struct {
	d *domain.Date
}

func newDateValue(p *domain.Date) *dateValue {
	return &dateValue{d: p}
}

func (v *dateValue) Type() string { return "date" }

func (v *dateValue) String() string {
	if v.d == nil {
		return ""
	}
	return v.d.String()
}

func (v *dateValue) Set(s string) error {
	d, err := domain.ParseDate(s)
	if err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	*v.d = d
	return nil
}

func parseDateArg(s string) (domain.Date, error) {
	d, err := domain.ParseDate(s)
	if err != nil {
		return domain.Date{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return d, nil
}

var (
	_ pflag.Value = (*outputFormat)(nil)
	_ pflag.Value = (*colorMode)(nil)
	_ pflag.Value = (*dateValue)(nil)
)
