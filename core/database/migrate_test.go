package database

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestListMigrationFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"0002_b.up.sql", "0001_a.up.sql", "0001_a.down.sql", "README.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	got := listMigrationFiles(dir)
	want := []string{"0001_a.up.sql", "0002_b.up.sql"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("files = %v, want %v", got, want)
	}
}

func TestCountApplied(t *testing.T) {
	files := []string{"0001_groups.up.sql", "0002_thumbs.up.sql", "0003_x.up.sql"}
	if n := countApplied(files, 0, 2); n != 2 {
		t.Fatalf("applied = %d, want 2", n)
	}
	if n := countApplied(files, 3, 3); n != 0 {
		t.Fatalf("applied = %d, want 0", n)
	}
}

func TestResolveMigrationsDir(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "m")
	got, err := resolveMigrationsDir(abs)
	if err != nil || got != abs {
		t.Fatalf("resolve(%s) = %s, %v", abs, got, err)
	}
	got, err = resolveMigrationsDir("")
	if err != nil || filepath.Base(got) != defaultMigrationsDir {
		t.Fatalf("default dir = %s, %v", got, err)
	}
}

func TestConfigDSNDefaultsSSLMode(t *testing.T) {
	cfg := Config{User: "u", Password: "p", Host: "h", Port: "5432", Name: "d"}
	if got := cfg.URL(); got != "postgres://u:p@h:5432/d?sslmode=disable" {
		t.Fatalf("URL = %s", got)
	}
}
