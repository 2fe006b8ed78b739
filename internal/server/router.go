// internal/server/router.go
//
// Route registration, kept apart from the handlers so the Server struct
// stays single-purpose: handler.go defines how a request is processed,
// router.go defines where requests go, main.go assembles the app.
package server

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"payments/internal/engine"
)

// Server is the HTTP layer over one shared engine. The engine's own
// mutex serialises concurrent requests; the server holds no state of its
// own beyond the logger.
type Server struct {
	engine *engine.Engine
	log    *zap.Logger
}

// New wires a server around e. log may be nil.
func New(e *engine.Engine, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{engine: e, log: log}
}

// App builds the Fiber application with all routes registered.
func (s *Server) App() *fiber.App {
	app := fiber.New()

	// Liveness probe.
	app.Get("/health", s.health)

	// Account snapshots:
	//   GET /accounts          → every account ever referenced
	//   GET /accounts/:client  → one account
	app.Get("/accounts", s.listAccounts)
	app.Get("/accounts/:client", s.getAccount)

	// Transaction ingest:
	//   POST /transactions         → one JSON record
	//   POST /transactions/import  → a CSV log in the request body
	app.Post("/transactions", s.applyTransaction)
	app.Post("/transactions/import", s.importTransactions)

	return app
}
