package offer2pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Severity levels for error records.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityError    = "error"
	SeverityCritical = "critical"
)

// ErrorRecord is a structured failure event, created exactly once per
// failure observed by the orchestrator and never updated afterwards.
type ErrorRecord struct {
	ID           string         `json:"error_id"`
	WorkflowName string         `json:"workflow_name"`
	WorkflowID   string         `json:"workflow_id,omitempty"`
	RunID        string         `json:"execution_id"`
	Name         string         `json:"error_name"`
	Message      string         `json:"error_message"`
	Stage        string         `json:"last_node_executed"`
	Severity     string         `json:"severity"`
	Category     string         `json:"category"`
	Detail       map[string]any `json:"full_error_data"`
	Summary      string         `json:"error_message_alt"`
}

// ErrorSink persists error records for observability. Recording is
// fire-and-forget: a sink failure never alters the run outcome.
type ErrorSink interface {
	Record(ctx context.Context, rec ErrorRecord) error
}

// noopSink is used when no error sink is configured.
type noopSink struct{}

func (noopSink) Record(context.Context, ErrorRecord) error { return nil }

// Compile-time interface check.
var _ ErrorSink = noopSink{}

// NewErrorRecord builds a fully-populated record for one failure.
// The record id is a fresh UUID; severity is derived from the message
// unless the error text says otherwise.
func NewErrorRecord(workflowName, runID, stage, name string, err error, detail map[string]any) ErrorRecord {
	msg := err.Error()
	// Annotate a copy so the caller's map is never mutated.
	annotated := make(map[string]any, len(detail)+2)
	for k, v := range detail {
		annotated[k] = v
	}
	annotated["error_type"] = name
	annotated["step"] = stage

	return ErrorRecord{
		ID:           uuid.NewString(),
		WorkflowName: workflowName,
		RunID:        runID,
		Name:         name,
		Message:      msg,
		Stage:        stage,
		Severity:     severityFor(msg),
		Category:     "workflow",
		Detail:       annotated,
		Summary:      BuildErrorSummary(workflowName, runID, stage, name, msg, time.Now().UTC()),
	}
}

// severityFor classifies a message into a severity level.
func severityFor(msg string) string {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "critical") || strings.Contains(lower, "fatal"):
		return SeverityCritical
	case strings.Contains(lower, "warning"):
		return SeverityWarning
	default:
		return SeverityError
	}
}

// BuildErrorSummary formats a human-readable multi-line summary from the
// structured fields. It is a pure function, kept separate from the
// recording side effect so its output is independently testable.
func BuildErrorSummary(workflowName, runID, stage, name, message string, at time.Time) string {
	return fmt.Sprintf(`Workflow Execution Failed

Workflow: %s (run %s)
Last Stage: %s

Error: %s
Detail: %s

Time: %s

Next Step: Review the error details and retry the workflow.`,
		workflowName, orNA(runID), stage, name, message, at.Format(time.RFC3339))
}

// orNA substitutes a placeholder for missing identifiers.
func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
