package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and infrastructure layers
// return these (optionally wrapped) so services can translate them into coded
// domain errors.
//
// These represent factual states about resources, not precondition failures:
// - ErrNotFound: record does not exist in the store
// - ErrConflict: record already exists or was concurrently modified
// - ErrUnavailable: backing service temporarily unreachable
//
// For precondition failures (not owner, locked, poll not ended), use
// pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)
