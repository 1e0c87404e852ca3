package sqlitedb

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInit(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "nested", "data")

	db, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(filepath.Join(tmpDir, FileName)); os.IsNotExist(err) {
		t.Errorf("database file not created")
	}

	for _, table := range []string{"subtasks", "recurring_task_completions"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s not found: %v", table, err)
		}
	}

	version, err := GetUserVersion(db)
	if err != nil {
		t.Fatalf("GetUserVersion() error = %v", err)
	}
	if version != CurrentSchemaVersion {
		t.Errorf("user_version = %d, want %d", version, CurrentSchemaVersion)
	}
}

func TestInit_Reopen(t *testing.T) {
	tmpDir := t.TempDir()

	db, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if _, err := db.Exec(`INSERT INTO subtasks (id, task_id, title, created_at, updated_at) VALUES ('a', 't', 'x', 1, 1)`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	db.Close()

	db, err = Init(tmpDir)
	if err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM subtasks`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected rows to survive reopen, got %d", count)
	}
}
