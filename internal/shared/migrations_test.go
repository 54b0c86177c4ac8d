package shared

import (
	"testing"
)

func TestMigrationRunner(t *testing.T) {
	t.Run("loadMigrations", func(t *testing.T) {
		migrations, err := loadMigrations()
		if err != nil {
			t.Fatalf("failed to load migrations: %v", err)
		}

		if len(migrations) == 0 {
			t.Fatal("expected at least one migration")
		}

		for i := 1; i < len(migrations); i++ {
			if migrations[i].Version <= migrations[i-1].Version {
				t.Errorf("migrations not sorted: version %d comes after %d", migrations[i].Version, migrations[i-1].Version)
			}
		}

		for _, m := range migrations {
			if m.SQL == "" {
				t.Errorf("migration version %d missing SQL", m.Version)
			}
		}
	})

	t.Run("RunMigrations", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}

		version, err := CurrentVersion(db)
		if err != nil {
			t.Fatalf("failed to read version: %v", err)
		}
		if version == 0 {
			t.Error("expected a non-zero schema version after migrating")
		}

		if _, err := db.Exec("INSERT INTO settings (key, value) VALUES ('probe', 'ok')"); err != nil {
			t.Errorf("expected settings table to exist: %v", err)
		}
	})

	t.Run("RunMigrations is idempotent", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		if err := RunMigrations(db); err != nil {
			t.Fatalf("first run failed: %v", err)
		}
		first, _ := CurrentVersion(db)

		if err := RunMigrations(db); err != nil {
			t.Fatalf("second run failed: %v", err)
		}
		second, _ := CurrentVersion(db)

		if first != second {
			t.Errorf("expected version unchanged, got %d then %d", first, second)
		}
	})
}

func TestDatabase(t *testing.T) {
	t.Run("NewDatabase opens and pings", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			t.Errorf("expected ping to succeed: %v", err)
		}
	})

	t.Run("ConfigureDatabase applies pool limits", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		ConfigureDatabase(db, 3, 1)

		if got := db.Stats().MaxOpenConnections; got != 3 {
			t.Errorf("expected max open conns 3, got %d", got)
		}
	})
}
