// internal/server/handler.go
//
// Package server exposes the replay engine over HTTP for interactive
// use. Each handler does three things: validate the request shape, call
// the engine (which never errors — inapplicable transactions are
// no-ops), and return a standard JSON response. The engine stays
// transport-free; all text decoding happens here or in csvio.
package server

import (
	"bytes"
	"sort"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"payments/internal/engine"
	"payments/internal/replay"
)

// transactionRequest is the JSON form of one transaction record. Amount
// accepts both a JSON number and a quoted decimal string; it must be
// present for deposit/withdrawal and absent otherwise.
type transactionRequest struct {
	Type   string           `json:"type"`
	Client uint16           `json:"client"`
	TX     uint32           `json:"tx"`
	Amount *decimal.Decimal `json:"amount"`
}

// health serves the liveness probe.
func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// listAccounts returns the full snapshot, sorted by client id.
func (s *Server) listAccounts(c *fiber.Ctx) error {
	snap := s.engine.Snapshot()
	sort.Slice(snap, func(i, j int) bool { return snap[i].Client < snap[j].Client })
	return c.JSON(snap)
}

// getAccount returns one client's account, 404 when the client was
// never referenced by any transaction.
func (s *Server) getAccount(c *fiber.Ctx) error {
	client, err := strconv.ParseUint(c.Params("client"), 10, 16)
	if err != nil {
		return writeErr(c, fiber.StatusBadRequest, "bad client id")
	}
	a, ok := s.engine.Account(uint16(client))
	if !ok {
		return writeErr(c, fiber.StatusNotFound, "account not found")
	}
	return c.JSON(a)
}

// applyTransaction feeds one JSON record into the engine. Shape errors
// are 400s; a well-formed transaction is always accepted (202) and the
// body carries the internal outcome for observability.
func (s *Server) applyTransaction(c *fiber.Ctx) error {
	var req transactionRequest
	if err := c.BodyParser(&req); err != nil {
		return writeErr(c, fiber.StatusBadRequest, "bad request body")
	}

	kind, ok := engine.ParseKind(req.Type)
	if !ok {
		return writeErr(c, fiber.StatusBadRequest, "unknown transaction type")
	}

	tx := engine.Transaction{Kind: kind, Client: req.Client, TX: req.TX}
	switch kind {
	case engine.Deposit, engine.Withdrawal:
		if req.Amount == nil {
			return writeErr(c, fiber.StatusBadRequest, "amount required")
		}
		if req.Amount.IsNegative() {
			return writeErr(c, fiber.StatusBadRequest, "amount must not be negative")
		}
		tx.Amount = *req.Amount
	default:
		if req.Amount != nil {
			return writeErr(c, fiber.StatusBadRequest, "amount not allowed for "+req.Type)
		}
	}

	outcome := s.engine.Apply(tx)
	if outcome != engine.Applied {
		s.log.Debug("transaction not applied",
			zap.Stringer("kind", tx.Kind),
			zap.Uint16("client", tx.Client),
			zap.Uint32("tx", tx.TX),
			zap.Stringer("outcome", outcome),
		)
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"outcome": outcome.String()})
}

// importTransactions streams a CSV transaction log from the request body
// through the shared engine. Malformed rows are skipped and counted,
// same as the batch CLI.
func (s *Server) importTransactions(c *fiber.Ctx) error {
	stats, err := replay.Feed(s.engine, bytes.NewReader(c.Body()), s.log)
	if err != nil {
		return writeErr(c, fiber.StatusBadRequest, err.Error())
	}

	job := uuid.NewString()
	s.log.Info("imported transaction log",
		zap.String("job_id", job),
		zap.Int("processed", stats.Processed),
		zap.Int("skipped", stats.Skipped),
	)
	return c.JSON(fiber.Map{
		"job_id":    job,
		"processed": stats.Processed,
		"skipped":   stats.Skipped,
	})
}
