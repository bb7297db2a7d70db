// Package errlog persists pipeline error records to a Supabase table.
//
// Recording is strictly fire-and-forget from the pipeline's point of
// view: the orchestrator swallows any failure returned here, so an
// unreachable sink never changes a run's outcome.
package errlog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/supabase-community/postgrest-go"

	offer2pdf "github.com/alnah/go-offer2pdf"
)

// ErrMissingCredentials indicates the sink cannot be constructed.
var ErrMissingCredentials = errors.New("errlog: missing Supabase URL or key")

// DefaultTable is the conventional error table name.
const DefaultTable = "execution_errors"

// Sink inserts error records into one Supabase table.
type Sink struct {
	client *postgrest.Client
	table  string
}

// New creates a Sink for the given project and table. An empty table
// name uses DefaultTable.
func New(projectURL, apiKey, table string) (*Sink, error) {
	if projectURL == "" || apiKey == "" {
		return nil, ErrMissingCredentials
	}
	if table == "" {
		table = DefaultTable
	}

	client := postgrest.NewClient(strings.TrimSuffix(projectURL, "/")+"/rest/v1", "public", map[string]string{
		"apikey":        apiKey,
		"Authorization": "Bearer " + apiKey,
	})
	if client.ClientError != nil {
		return nil, fmt.Errorf("errlog: %w", client.ClientError)
	}

	return &Sink{client: client, table: table}, nil
}

// Compile-time interface check.
var _ offer2pdf.ErrorSink = (*Sink)(nil)

// Record inserts one error record. The postgrest client has no context
// support; ctx is honored by failing fast when it is already done.
func (s *Sink) Record(ctx context.Context, rec offer2pdf.ErrorRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, _, err := s.client.From(s.table).Insert(rec, false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("errlog: inserting record %s: %w", rec.ID, err)
	}
	return nil
}
