package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chandeepa/cse-research/internal/common"
	"github.com/chandeepa/cse-research/internal/models"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(common.NewSilentLogger(), &common.StorageConfig{
		Path:     t.TempDir(),
		Versions: 2,
	})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}

func TestFileStoreCreatesSubdirectories(t *testing.T) {
	dir := t.TempDir()
	if _, err := NewFileStore(common.NewSilentLogger(), &common.StorageConfig{Path: dir}); err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	for _, sub := range subdirectories {
		if _, err := os.Stat(filepath.Join(dir, sub)); err != nil {
			t.Errorf("subdirectory %s missing: %v", sub, err)
		}
	}
}

func TestSanitizeKey(t *testing.T) {
	fs := &FileStore{}
	tests := []struct {
		in, want string
	}{
		{"JKH.N0000", "JKH.N0000"},
		{"a/b", "a_b"},
		{"a\\b", "a_b"},
		{"a:b", "a_b"},
		{"..", "_"},
	}
	for _, tt := range tests {
		if got := fs.sanitizeKey(tt.in); got != tt.want {
			t.Errorf("sanitizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	// Traversal sequences never survive.
	if got := fs.sanitizeKey("../../x"); strings.Contains(got, "..") || strings.Contains(got, "/") {
		t.Errorf("path traversal not neutralised: %q", got)
	}
}

func TestCompanyStoreRoundTrip(t *testing.T) {
	m := newTestManager(t)

	snap := &models.CompanySnapshot{
		Symbol: "JKH.N0000",
		Source: "cse-api",
		Record: models.CompanyRecord{
			"symbol":            "JKH.N0000",
			"last_traded_price": 195.5,
			"eps":               12.4,
		},
	}
	if err := m.Companies().Save(snap); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if snap.CollectedAt.IsZero() {
		t.Error("Save must stamp CollectedAt")
	}

	got, err := m.Companies().Get("JKH.N0000")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Symbol != "JKH.N0000" || got.Source != "cse-api" {
		t.Errorf("unexpected snapshot: %+v", got)
	}
	if price := got.Record.FloatOr("last_traded_price", 0); price != 195.5 {
		t.Errorf("price = %v, want 195.5", price)
	}
}

func TestCompanyStoreGetMissing(t *testing.T) {
	m := newTestManager(t)
	if _, err := m.Companies().Get("NOPE.N0000"); err == nil {
		t.Fatal("expected error for missing symbol")
	}
}

func TestCompanyStoreSaveRequiresSymbol(t *testing.T) {
	m := newTestManager(t)
	if err := m.Companies().Save(&models.CompanySnapshot{}); err == nil {
		t.Fatal("expected error for empty symbol")
	}
}

func TestCompanyStoreListSorted(t *testing.T) {
	m := newTestManager(t)
	for _, sym := range []string{"SAMP.N0000", "COMB.N0000", "JKH.N0000"} {
		if err := m.Companies().Save(&models.CompanySnapshot{
			Symbol: sym,
			Record: models.CompanyRecord{"symbol": sym},
		}); err != nil {
			t.Fatalf("Save %s: %v", sym, err)
		}
	}

	snaps, err := m.Companies().List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(snaps) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(snaps))
	}
	if snaps[0].Symbol != "COMB.N0000" || snaps[2].Symbol != "SAMP.N0000" {
		t.Errorf("list not sorted by symbol: %s, %s, %s",
			snaps[0].Symbol, snaps[1].Symbol, snaps[2].Symbol)
	}
}

func TestCompanyStoreVersionRotation(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(common.NewSilentLogger(), &common.StorageConfig{Path: dir, Versions: 2})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := m.Companies().Save(&models.CompanySnapshot{
			Symbol: "JKH.N0000",
			Record: models.CompanyRecord{"revision": float64(i)},
		}); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}

	base := filepath.Join(dir, "companies", "JKH.N0000.json")
	if _, err := os.Stat(base); err != nil {
		t.Errorf("current file missing: %v", err)
	}
	if _, err := os.Stat(base + ".v1"); err != nil {
		t.Errorf("v1 backup missing: %v", err)
	}
	if _, err := os.Stat(base + ".v2"); err != nil {
		t.Errorf("v2 backup missing: %v", err)
	}

	got, err := m.Companies().Get("JKH.N0000")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rev := got.Record.FloatOr("revision", -1); rev != 2 {
		t.Errorf("current revision = %v, want 2", rev)
	}
}

func TestCompanyStoreDeleteRemovesVersions(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(common.NewSilentLogger(), &common.StorageConfig{Path: dir, Versions: 2})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	for i := 0; i < 2; i++ {
		m.Companies().Save(&models.CompanySnapshot{
			Symbol: "JKH.N0000",
			Record: models.CompanyRecord{"revision": float64(i)},
		})
	}
	if err := m.Companies().Delete("JKH.N0000"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "companies"))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty directory after delete, found %d entries", len(entries))
	}
}

func TestAnalysisStoreRoundTrip(t *testing.T) {
	m := newTestManager(t)

	run := []models.Analysis{
		{Symbol: "JKH.N0000", Composite: 72, Grade: models.GradeB, Recommendation: models.RecBuy},
		{Symbol: "HHL.N0000", Composite: 55, Grade: models.GradeC, Recommendation: models.RecHold},
	}
	if err := m.Analyses().SaveRun("2026-08-31", run); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	got, err := m.Analyses().GetRun("2026-08-31")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].Grade != models.GradeB || got[0].Recommendation != models.RecBuy {
		t.Errorf("grade or recommendation lost in round trip: %+v", got[0])
	}
}

func TestAnalysisStoreListRunsNewestFirst(t *testing.T) {
	m := newTestManager(t)

	if err := m.Analyses().SaveRun("older", []models.Analysis{{Symbol: "A"}}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	// Filesystem mtime resolution can be coarse.
	time.Sleep(20 * time.Millisecond)
	if err := m.Analyses().SaveRun("newer", []models.Analysis{{Symbol: "B"}}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	keys, err := m.Analyses().ListRuns()
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(keys) != 2 || keys[0] != "newer" {
		t.Errorf("expected newest first, got %v", keys)
	}
}

func TestAnalysisStoreEmptyKeyRejected(t *testing.T) {
	m := newTestManager(t)
	if err := m.Analyses().SaveRun("", nil); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestKVStoreRoundTrip(t *testing.T) {
	m := newTestManager(t)

	type meta struct {
		Count int    `json:"count"`
		Note  string `json:"note"`
	}
	if err := m.KV().Set("last_fetch", meta{Count: 12, Note: "daily"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var got meta
	if err := m.KV().Get("last_fetch", &got); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Count != 12 || got.Note != "daily" {
		t.Errorf("unexpected value: %+v", got)
	}
}

func TestKVStoreMissingKey(t *testing.T) {
	m := newTestManager(t)

	var dest map[string]any
	if err := m.KV().Get("absent", &dest); err == nil {
		t.Fatal("expected error for missing key")
	}
	if err := m.KV().Set("", 1); err == nil {
		t.Fatal("expected error for empty key")
	}
}
