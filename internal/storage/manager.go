package storage

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/chandeepa/cse-research/internal/common"
	"github.com/chandeepa/cse-research/internal/interfaces"
	"github.com/chandeepa/cse-research/internal/models"
)

// Manager wires the file store into the storage contracts.
type Manager struct {
	files     *FileStore
	companies *companyStore
	analyses  *analysisStore
	kv        *kvStore
	logger    *common.Logger
}

// NewManager creates a storage manager backed by the file store.
func NewManager(logger *common.Logger, config *common.StorageConfig) (*Manager, error) {
	files, err := NewFileStore(logger, config)
	if err != nil {
		return nil, fmt.Errorf("failed to open file store: %w", err)
	}

	return &Manager{
		files:     files,
		companies: &companyStore{files: files},
		analyses:  &analysisStore{files: files},
		kv:        &kvStore{files: files},
		logger:    logger,
	}, nil
}

// Companies returns the company snapshot store.
func (m *Manager) Companies() interfaces.CompanyStore {
	return m.companies
}

// Analyses returns the analysis result store.
func (m *Manager) Analyses() interfaces.AnalysisStore {
	return m.analyses
}

// KV returns the operational metadata store.
func (m *Manager) KV() interfaces.KVStore {
	return m.kv
}

// Close releases any held resources.
func (m *Manager) Close() error {
	return nil
}

// kvStore holds small operational values, one file per key.
type kvStore struct {
	files *FileStore
}

func (s *kvStore) Set(key string, value any) error {
	if key == "" {
		return fmt.Errorf("kv key must not be empty")
	}
	return s.files.writeJSON("kv", key, value, false)
}

func (s *kvStore) Get(key string, dest any) error {
	return s.files.readJSON("kv", key, dest)
}

// companyStore persists company snapshots, versioned so recent history
// survives a refresh.
type companyStore struct {
	files *FileStore
}

func (s *companyStore) Save(snapshot *models.CompanySnapshot) error {
	if snapshot == nil || snapshot.Symbol == "" {
		return fmt.Errorf("snapshot requires a symbol")
	}
	if snapshot.CollectedAt.IsZero() {
		snapshot.CollectedAt = time.Now().UTC()
	}
	return s.files.writeJSON("companies", snapshot.Symbol, snapshot, true)
}

func (s *companyStore) Get(symbol string) (*models.CompanySnapshot, error) {
	var snapshot models.CompanySnapshot
	if err := s.files.readJSON("companies", symbol, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (s *companyStore) List() ([]*models.CompanySnapshot, error) {
	keys, err := s.files.listKeys("companies")
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)

	snapshots := make([]*models.CompanySnapshot, 0, len(keys))
	for _, key := range keys {
		snapshot, err := s.Get(key)
		if err != nil {
			s.files.logger.Warn().Str("symbol", key).Err(err).Msg("Skipping unreadable snapshot")
			continue
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, nil
}

func (s *companyStore) Delete(symbol string) error {
	return s.files.deleteJSON("companies", symbol)
}

// analysisStore persists whole analysis runs under named keys.
type analysisStore struct {
	files *FileStore
}

func (s *analysisStore) SaveRun(key string, analyses []models.Analysis) error {
	if key == "" {
		return fmt.Errorf("run key must not be empty")
	}
	return s.files.writeJSON("analyses", key, analyses, false)
}

func (s *analysisStore) GetRun(key string) ([]models.Analysis, error) {
	var analyses []models.Analysis
	if err := s.files.readJSON("analyses", key, &analyses); err != nil {
		return nil, err
	}
	return analyses, nil
}

// ListRuns returns stored run keys, newest first by file modification time.
func (s *analysisStore) ListRuns() ([]string, error) {
	keys, err := s.files.listKeys("analyses")
	if err != nil {
		return nil, err
	}

	type keyed struct {
		key string
		mod time.Time
	}
	entries := make([]keyed, 0, len(keys))
	for _, key := range keys {
		info, err := os.Stat(s.files.filePath("analyses", key))
		if err != nil {
			continue
		}
		entries = append(entries, keyed{key: key, mod: info.ModTime()})
	}
	sort.Slice(entries, func(a, b int) bool {
		if !entries[a].mod.Equal(entries[b].mod) {
			return entries[a].mod.After(entries[b].mod)
		}
		return entries[a].key < entries[b].key
	})

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.key
	}
	return out, nil
}
