package infrastructure

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/voyago/booking-system/shared/workflow"
)

var _ workflow.Journal = (*PostgresJournal)(nil)

// PostgresJournal implements the workflow step log on PostgreSQL. Each
// completed step is one row keyed by (execution_id, step); replays read the
// recorded result instead of re-executing the step.
type PostgresJournal struct {
	db *sqlx.DB
}

// NewPostgresJournal creates a new PostgresJournal
func NewPostgresJournal(db *sqlx.DB) *PostgresJournal {
	return &PostgresJournal{db: db}
}

type postgresJournalEntry struct {
	ExecutionID string    `db:"execution_id"`
	Step        string    `db:"step"`
	Result      []byte    `db:"result"`
	RecordedAt  time.Time `db:"recorded_at"`
}

// Lookup implements workflow.Journal
func (j *PostgresJournal) Lookup(ctx context.Context, executionID, step string) (json.RawMessage, bool, error) {
	query := `
		SELECT execution_id, step, result, recorded_at
		FROM workflow_journal
		WHERE execution_id = $1 AND step = $2`

	var entry postgresJournalEntry
	err := j.db.GetContext(ctx, &entry, query, executionID, step)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, errors.Wrap(err, "failed to look up journal entry")
	}

	return json.RawMessage(entry.Result), true, nil
}

// Record implements workflow.Journal. Recording the same step twice keeps
// the first result; on a conflict the winning row is read back so racing
// executors of the same execution observe one result.
func (j *PostgresJournal) Record(ctx context.Context, executionID, step string, result json.RawMessage) (json.RawMessage, error) {
	query := `
		INSERT INTO workflow_journal (execution_id, step, result, recorded_at)
		VALUES (:execution_id, :step, :result, :recorded_at)
		ON CONFLICT (execution_id, step) DO NOTHING`

	res, err := j.db.NamedExecContext(ctx, query, &postgresJournalEntry{
		ExecutionID: executionID,
		Step:        step,
		Result:      result,
		RecordedAt:  time.Now(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record journal entry")
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read journal insert outcome")
	}
	if inserted == 0 {
		stored, ok, err := j.Lookup(ctx, executionID, step)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.Errorf("journal entry %s/%s vanished after conflict", executionID, step)
		}
		return stored, nil
	}

	return result, nil
}
