// internal/replay/replay.go

// Package replay composes the boundary and the core into the offline
// batch flow: stream a CSV transaction log into an engine, then render
// the resulting snapshot as CSV.
//
// Error policy follows the two-tier taxonomy: rows that fail shape
// validation are logged and skipped here at the boundary (the engine
// never sees them); transactions the engine absorbs as no-ops produce a
// debug log line and nothing else. Only I/O failures abort a run.
package replay

import (
	"errors"
	"io"

	"go.uber.org/zap"

	"payments/internal/csvio"
	"payments/internal/engine"
)

// Stats counts what happened to the rows of one feed.
type Stats struct {
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
}

// Feed streams the transaction log from r into e. Malformed rows are
// counted and logged, never fatal. The log may be nil.
func Feed(e *engine.Engine, r io.Reader, log *zap.Logger) (Stats, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var stats Stats
	reader := csvio.NewReader(r)
	for {
		tx, err := reader.Read()
		if err == io.EOF {
			return stats, nil
		}
		if errors.Is(err, csvio.ErrBadRow) {
			stats.Skipped++
			log.Warn("skipping transaction row", zap.Error(err))
			continue
		}
		if err != nil {
			return stats, err
		}

		if outcome := e.Apply(tx); outcome != engine.Applied {
			log.Debug("transaction not applied",
				zap.Stringer("kind", tx.Kind),
				zap.Uint16("client", tx.Client),
				zap.Uint32("tx", tx.TX),
				zap.Stringer("outcome", outcome),
			)
		}
		stats.Processed++
	}
}

// Run replays a whole log from r through a fresh engine and writes the
// final account snapshot to w.
func Run(r io.Reader, w io.Writer, log *zap.Logger) error {
	e := engine.New()
	if _, err := Feed(e, r, log); err != nil {
		return err
	}
	return csvio.WriteAccounts(w, e.Snapshot())
}
