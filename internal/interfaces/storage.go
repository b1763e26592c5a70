package interfaces

import "github.com/chandeepa/cse-research/internal/models"

// StorageManager provides access to the persistent stores.
type StorageManager interface {
	// Companies returns the company snapshot store.
	Companies() CompanyStore

	// Analyses returns the analysis result store.
	Analyses() AnalysisStore

	// KV returns the small key-value store for operational metadata.
	KV() KVStore

	// Close releases any held resources.
	Close() error
}

// CompanyStore persists company records collected from the exchange.
type CompanyStore interface {
	// Save stores a snapshot for a symbol, keeping version history.
	Save(snapshot *models.CompanySnapshot) error

	// Get returns the latest snapshot for a symbol.
	Get(symbol string) (*models.CompanySnapshot, error)

	// List returns the latest snapshot for every stored symbol.
	List() ([]*models.CompanySnapshot, error)

	// Delete removes all snapshots for a symbol.
	Delete(symbol string) error
}

// KVStore holds small operational values such as fetch metadata.
type KVStore interface {
	// Set stores a value under a key.
	Set(key string, value any) error

	// Get loads a value into dest. Returns an error when the key is
	// absent.
	Get(key string, dest any) error
}

// AnalysisStore persists analysis runs.
type AnalysisStore interface {
	// SaveRun stores a full analysis run under a named key.
	SaveRun(key string, analyses []models.Analysis) error

	// GetRun loads a stored run.
	GetRun(key string) ([]models.Analysis, error)

	// ListRuns returns the stored run keys, newest first.
	ListRuns() ([]string, error)
}
