package services

import "errors"

// Sentinel errors for the assistant pipeline. A catalog failure is recovered
// inside the orchestrator (the prompt is composed without a digest); a model
// failure aborts the request.
var (
	ErrCatalogUnavailable = errors.New("catalog service unavailable")
	ErrModelUnavailable   = errors.New("model service unavailable")
)

// Typed service errors mapped to HTTP statuses by the handlers.

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }

type ConflictError struct{ Message string }

func (e *ConflictError) Error() string { return e.Message }

type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }

type UnauthorizedError struct{ Message string }

func (e *UnauthorizedError) Error() string { return e.Message }
