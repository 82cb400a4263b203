package server

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

type singleRequest struct {
	Email string `json:"email" validate:"required"`
}

type bulkRequest struct {
	Emails []string `json:"emails"`
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "running"})
}

// handleVerifySingle verifies one address. Missing or malformed input is
// a client error; the verification outcome itself is always a 200 with
// the verdict encoded in the result.
func (s *Server) handleVerifySingle(c *fiber.Ctx) error {
	timer := prometheus.NewTimer(requestDuration.WithLabelValues("verify_email"))
	defer timer.ObserveDuration()

	var req singleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email is required",
		})
	}
	if err := validateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), s.cfg.RequestTimeout)
	defer cancel()

	result, err := s.verifier.Verify(ctx, req.Email)
	if err != nil {
		s.log.WithError(err).Error("verification failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to verify email",
		})
	}

	verificationResults.WithLabelValues(result.Status).Inc()
	return c.JSON(result)
}

// handleVerifyBulk verifies every address in the request concurrently
// and responds in input order. Chunking and progress belong to the
// orchestrator driving repeated calls, not to this operation. The whole
// request runs under the configured deadline; exceeding it aborts with
// no partial result.
func (s *Server) handleVerifyBulk(c *fiber.Ctx) error {
	timer := prometheus.NewTimer(requestDuration.WithLabelValues("verify_bulk"))
	defer timer.ObserveDuration()

	var req bulkRequest
	if err := c.BodyParser(&req); err != nil || req.Emails == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Emails array is required",
		})
	}
	if len(req.Emails) > s.cfg.BulkMaxAddresses {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("too many addresses: %d exceeds the limit of %d",
				len(req.Emails), s.cfg.BulkMaxAddresses),
		})
	}

	bulkBatchSize.Observe(float64(len(req.Emails)))

	ctx, cancel := context.WithTimeout(c.Context(), s.cfg.RequestTimeout)
	defer cancel()

	results, err := s.verifier.VerifyAll(ctx, req.Emails)
	if err != nil {
		s.log.WithError(err).WithField("count", len(req.Emails)).Error("bulk verification failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to verify emails",
		})
	}

	for _, r := range results {
		verificationResults.WithLabelValues(r.Status).Inc()
	}
	return c.JSON(fiber.Map{"results": results})
}
