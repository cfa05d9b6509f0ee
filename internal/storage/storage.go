package storage

import (
	"time"

	"nat/internal/config"
	"nat/internal/domain"
)

// Storage persists and loads harness run results (e.g. for the faills viewer).
type Storage interface {
	Save(verdicts []domain.Verdict, duration time.Duration, runDir string) error
	Load() (*domain.RunOutput, error)
	// SaveOutput writes the full output (e.g. after resolved-status updates).
	SaveOutput(output *domain.RunOutput) error
}

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
