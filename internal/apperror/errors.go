// Package apperror defines the error values returned by ingestion, schedule
// generation and sale creation. None of them are fatal to the process; the
// CLI decides how to present them.
package apperror

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoData is returned when a file has no rows beyond the header.
	ErrNoData = errors.New("CSV looks empty")

	// ErrNoValidRows is returned when every data row was dropped during
	// normalization.
	ErrNoValidRows = errors.New("No valid rows found. Check date/amount formatting.")
)

// PreconditionError reports missing configuration or input required before
// any work starts.
type PreconditionError struct {
	Field string
	Msg   string
}

func (e *PreconditionError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("missing %s: %s", e.Field, e.Msg)
	}
	return fmt.Sprintf("missing %s", e.Field)
}

// MissingColumnsError reports a header row lacking required columns.
type MissingColumnsError struct {
	Required []string
	Missing  []string
	Optional []string
	// Available lists the optional columns present in the header.
	Available []string
}

func (e *MissingColumnsError) Error() string {
	msg := fmt.Sprintf("CSV must include headers: %s (required); missing: %s. Optional: %s",
		strings.Join(e.Required, ", "),
		strings.Join(e.Missing, ", "),
		strings.Join(e.Optional, ", "))
	if len(e.Available) > 0 {
		msg += fmt.Sprintf(" (found: %s)", strings.Join(e.Available, ", "))
	}
	return msg
}

// BatchWriteError reports a repository failure while writing an import
// batch. Committed counts records in batches that were written before it.
type BatchWriteError struct {
	Batch     int
	Committed int
	Err       error
}

func (e *BatchWriteError) Error() string {
	return fmt.Sprintf("batch %d failed after %d records were committed: %v",
		e.Batch, e.Committed, e.Err)
}

func (e *BatchWriteError) Unwrap() error {
	return e.Err
}

// Step names a stage of the sale-creation chain.
type Step string

const (
	StepClient   Step = "client"
	StepHunt     Step = "hunt"
	StepInvoice  Step = "invoice"
	StepSchedule Step = "schedule"
)

// StepError reports which stage of sale creation failed. Earlier stages are
// not rolled back.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("creating %s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// ValidationError reports invalid user input on a single field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
