package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestProfileSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	body := []byte("claims:\n  base_reward: 9\n")
	if err := store.SaveProfile("midgame", body); err != nil {
		t.Fatalf("SaveProfile() failed: %v", err)
	}

	got, err := store.GetProfile("midgame")
	if err != nil {
		t.Fatalf("GetProfile() failed: %v", err)
	}
	if string(got) != string(body) {
		t.Errorf("GetProfile() = %q, want %q", got, body)
	}
}

func TestProfileUpsert(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if err := store.SaveProfile("midgame", []byte("v1")); err != nil {
		t.Fatalf("SaveProfile() failed: %v", err)
	}
	if err := store.SaveProfile("midgame", []byte("v2")); err != nil {
		t.Fatalf("SaveProfile() overwrite failed: %v", err)
	}

	got, err := store.GetProfile("midgame")
	if err != nil {
		t.Fatalf("GetProfile() failed: %v", err)
	}
	if string(got) != "v2" {
		t.Errorf("GetProfile() = %q, want the replaced body", got)
	}

	entries, err := store.ListProfiles()
	if err != nil {
		t.Fatalf("ListProfiles() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected 1 profile after upsert, got %d", len(entries))
	}
}

func TestProfileMissing(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	got, err := store.GetProfile("nope")
	if err != nil {
		t.Fatalf("GetProfile() failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil body for a missing profile, got %q", got)
	}
}

func TestDeleteProfileRemovesSnapshots(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if err := store.SaveProfile("midgame", []byte("v1")); err != nil {
		t.Fatalf("SaveProfile() failed: %v", err)
	}
	if _, err := store.SaveSnapshot("midgame", "total", 123.4); err != nil {
		t.Fatalf("SaveSnapshot() failed: %v", err)
	}

	if err := store.DeleteProfile("midgame"); err != nil {
		t.Fatalf("DeleteProfile() failed: %v", err)
	}

	body, err := store.GetProfile("midgame")
	if err != nil {
		t.Fatalf("GetProfile() failed: %v", err)
	}
	if body != nil {
		t.Error("Profile still present after delete")
	}

	snaps, err := store.RecentSnapshots("midgame", 10)
	if err != nil {
		t.Fatalf("RecentSnapshots() failed: %v", err)
	}
	if len(snaps) != 0 {
		t.Errorf("Expected no snapshots after delete, got %d", len(snaps))
	}
}

func TestSnapshotsAndBestTotal(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, hourly := range []float64{100, 250.5, 175} {
		if _, err := store.SaveSnapshot("midgame", "total", hourly); err != nil {
			t.Fatalf("SaveSnapshot() failed: %v", err)
		}
	}
	if _, err := store.SaveSnapshot("midgame", "claims", 80); err != nil {
		t.Fatalf("SaveSnapshot() failed: %v", err)
	}
	if _, err := store.SaveSnapshot("lategame", "total", 9000); err != nil {
		t.Fatalf("SaveSnapshot() failed: %v", err)
	}

	snaps, err := store.RecentSnapshots("midgame", 10)
	if err != nil {
		t.Fatalf("RecentSnapshots() failed: %v", err)
	}
	if len(snaps) != 4 {
		t.Errorf("Expected 4 midgame snapshots, got %d", len(snaps))
	}

	best, err := store.BestTotal("midgame")
	if err != nil {
		t.Fatalf("BestTotal() failed: %v", err)
	}
	if best != 250.5 {
		t.Errorf("BestTotal() = %v, want 250.5", best)
	}

	// BestTotal only counts the grand total category
	if best, _ := store.BestTotal("lategame"); best != 9000 {
		t.Errorf("BestTotal(lategame) = %v, want 9000", best)
	}
}

func TestBestTotalEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestTotal("nobody")
	if err != nil {
		t.Fatalf("BestTotal() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestTotal() on empty store = %v, want 0", best)
	}
}
