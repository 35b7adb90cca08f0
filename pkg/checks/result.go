package checks

import (
	"fmt"
	"slices"

	"github.com/projectdiscovery/etchosts/pkg/table"
)

// Status is the outcome of a check.
type Status int

const (
	StatusPass Status = iota
	StatusFail
	StatusSkip
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusFail:
		return "fail"
	case StatusSkip:
		return "skip"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is the outcome of a check against one hosts file.
type Result struct {
	Check   string `json:"check"`
	Path    string `json:"path"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Skip returns the result of a check that could not run because the
// hosts file at path was skipped.
func Skip(c Check, path string, err error) Result {
	return Result{Check: c.Name, Path: path, Status: StatusSkip, Message: err.Error()}
}

// Evaluate runs the check against t.
func (c Check) Evaluate(path string, t *table.Table) Result {
	result := Result{Check: c.Name, Path: path, Status: StatusPass}

	rows := t.Where(c.Predicates()...)
	if message := c.mismatch(rows); message != "" {
		result.Status = StatusFail
		result.Message = message
	}
	return result
}

func (c Check) mismatch(rows *table.Table) string {
	if !c.hasExpectations() {
		if rows.Len() == 0 {
			return "no matching entries"
		}
		return ""
	}

	if c.ExpectCount != nil && rows.Len() != *c.ExpectCount {
		return fmt.Sprintf("expected %d entries, got %d", *c.ExpectCount, rows.Len())
	}
	if c.ExpectIPAddress != nil {
		if got := rows.IPAddress(); !slices.Equal(got.Values(), c.ExpectIPAddress) {
			return fmt.Sprintf("expected ip_address %q, got %q", unwrap(c.ExpectIPAddress), got.Value())
		}
	}
	if c.ExpectPrimaryName != nil {
		if got := rows.PrimaryName(); !slices.Equal(got.Values(), c.ExpectPrimaryName) {
			return fmt.Sprintf("expected primary_name %q, got %q", unwrap(c.ExpectPrimaryName), got.Value())
		}
	}
	if c.ExpectAllHostNames != nil {
		got := rows.AllHostNames()
		if !slices.EqualFunc(got.Values(), c.ExpectAllHostNames, slices.Equal[[]string]) {
			return fmt.Sprintf("expected all_host_names %q, got %q", unwrap(c.ExpectAllHostNames), got.Value())
		}
	}
	return ""
}

// unwrap applies the same single value rule as table fields
func unwrap[T any](values []T) any {
	if len(values) == 1 {
		return values[0]
	}
	return values
}
