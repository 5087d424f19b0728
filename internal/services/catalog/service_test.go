package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/k-mensah/ussd-dash-tui/internal/models"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()

	tmpDir := t.TempDir()
	catalogPath := filepath.Join(tmpDir, "services.json")

	svc, err := New(catalogPath)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	t.Cleanup(func() {
		if err := svc.Close(); err != nil {
			t.Logf("Close() failed: %v", err)
		}
	})

	return svc, catalogPath
}

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()
	catalogPath := filepath.Join(tmpDir, "services.json")

	svc, err := New(catalogPath)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer func() {
		_ = svc.Close()
	}()

	if _, err := os.Stat(catalogPath); err != nil {
		t.Errorf("catalog file was not created: %v", err)
	}
}

func TestUpsert(t *testing.T) {
	svc, _ := newTestService(t)

	entry := Entry{
		Code:     "*121#",
		Name:     "Airtime Top-up",
		Category: "airtime",
		Enabled:  true,
	}
	if err := svc.Upsert(entry); err != nil {
		t.Fatalf("Upsert() failed: %v", err)
	}

	if svc.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", svc.Count())
	}

	got := svc.Lookup("*121#")
	if got == nil {
		t.Fatal("Lookup() returned nil for known code")
	}
	if got.Name != "Airtime Top-up" {
		t.Errorf("entry name = %q, want %q", got.Name, "Airtime Top-up")
	}
	if got.ServiceCategory() != models.ServiceAirtime {
		t.Errorf("category = %v, want ServiceAirtime", got.ServiceCategory())
	}

	// Same code replaces in place.
	entry.Name = "Airtime"
	if err := svc.Upsert(entry); err != nil {
		t.Fatalf("Upsert() update failed: %v", err)
	}
	if svc.Count() != 1 {
		t.Errorf("Count() = %d after update, want 1", svc.Count())
	}
	if got := svc.Lookup("*121#"); got.Name != "Airtime" {
		t.Errorf("updated name = %q, want %q", got.Name, "Airtime")
	}
}

func TestUpsert_RequiresCode(t *testing.T) {
	svc, _ := newTestService(t)

	if err := svc.Upsert(Entry{Name: "nameless"}); err == nil {
		t.Error("Upsert() should reject an entry without a code")
	}
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService(t)

	if err := svc.Upsert(Entry{Code: "*134#", Name: "Data Bundles", Category: "data", Enabled: true}); err != nil {
		t.Fatalf("Upsert() failed: %v", err)
	}
	if err := svc.Delete("*134#"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if svc.Count() != 0 {
		t.Errorf("Count() = %d after delete, want 0", svc.Count())
	}

	if err := svc.Delete("*999#"); err == nil {
		t.Error("Delete() should fail for unknown code")
	}
}

func TestNamesFor(t *testing.T) {
	svc, _ := newTestService(t)

	entries := []Entry{
		{Code: "*170#", Name: "MoMo Wallet", Category: "momo", Enabled: true},
		{Code: "*171#", Name: "MoMo Pay", Category: "momo", Enabled: true},
		{Code: "*172#", Name: "MoMo Legacy", Category: "momo", Enabled: false},
		{Code: "*121#", Name: "Airtime", Category: "airtime", Enabled: true},
	}
	for _, e := range entries {
		if err := svc.Upsert(e); err != nil {
			t.Fatalf("Upsert(%s) failed: %v", e.Code, err)
		}
	}

	names := svc.NamesFor(models.ServiceMobileMoney)
	if len(names) != 2 {
		t.Fatalf("NamesFor() returned %d names, want 2 (disabled excluded)", len(names))
	}
	if names[0] != "MoMo Pay" || names[1] != "MoMo Wallet" {
		t.Errorf("names = %v, want sorted [MoMo Pay, MoMo Wallet]", names)
	}
}

func TestPersistence(t *testing.T) {
	tmpDir := t.TempDir()
	catalogPath := filepath.Join(tmpDir, "services.json")

	svc, err := New(catalogPath)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := svc.Upsert(Entry{Code: "*121#", Name: "Airtime", Category: "airtime", Enabled: true}); err != nil {
		t.Fatalf("Upsert() failed: %v", err)
	}
	if err := svc.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	// A fresh service sees the persisted entry.
	svc2, err := New(catalogPath)
	if err != nil {
		t.Fatalf("New() reopen failed: %v", err)
	}
	defer func() { _ = svc2.Close() }()

	if svc2.Count() != 1 {
		t.Errorf("reopened Count() = %d, want 1", svc2.Count())
	}
}

func TestExternalFileChange(t *testing.T) {
	svc, catalogPath := newTestService(t)

	// Drain startup events.
	for len(svc.Events()) > 0 {
		<-svc.Events()
	}

	file := File{
		Services: []Entry{{Code: "*500#", Name: "Bill Pay", Category: "billpay", Enabled: true}},
		Version:  1,
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if err := os.WriteFile(catalogPath, data, 0600); err != nil {
		t.Fatalf("external write failed: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-svc.Events():
			if ev.Type == EventChanged {
				if svc.Count() != 1 || svc.Lookup("*500#") == nil {
					t.Errorf("catalog not reloaded: count=%d", svc.Count())
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload event")
		}
	}
}
