package ports

import "go.trai.ch/piper/internal/core/domain"

// RunStore defines the interface for persisting run outcomes.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RunStore interface {
	// Append records one completed run.
	Append(rec domain.RunRecord) error

	// List returns all recorded runs in append order.
	List() ([]domain.RunRecord, error)
}
