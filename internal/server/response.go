// internal/server/response.go
//
// Uniform error body for the whole API. Success paths use c.JSON
// directly; every failure goes through writeErr so the error shape stays
// consistent across handlers.
package server

import "github.com/gofiber/fiber/v2"

func writeErr(c *fiber.Ctx, code int, msg string) error {
	return c.Status(code).JSON(fiber.Map{"error": msg})
}
