package database

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"wallet-service/internal/config"
	"wallet-service/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetries(t *testing.T, retries int) {
	t.Helper()
	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = retries
	retryInterval = 10 * time.Millisecond
	t.Cleanup(func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	})
}

func TestNewMigrationRunner_Defaults(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, nil)

	assert.Equal(t, db, runner.db)
	assert.Equal(t, defaultMigrationsPath, runner.migrationsPath)
	assert.Equal(t, defaultSeedsPath, runner.seedsPath)
	assert.False(t, runner.seedEnabled)
}

func TestNewMigrationRunner_FromConfig(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, &config.DatabaseConfig{
		MigrationsPath: "custom/migrations",
		SeedsPath:      "custom/seeds",
		SeedDatabase:   true,
	})

	assert.Equal(t, "custom/migrations", runner.migrationsPath)
	assert.Equal(t, "custom/seeds", runner.seedsPath)
	assert.True(t, runner.seedEnabled)
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	fastRetries(t, 2)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(nil)

	err = NewMigrationRunner(db, nil).WaitForDatabase()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_AlwaysFails(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	fastRetries(t, 2)

	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	err = NewMigrationRunner(db, nil).WaitForDatabase()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database not ready after")
}

func TestRunMigrations_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, &config.DatabaseConfig{MigrationsPath: "/nonexistent/migrations"})

	assert.NoError(t, runner.RunMigrations())
}

func TestLoadSeeds_Disabled(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = NewMigrationRunner(db, &config.DatabaseConfig{SeedDatabase: false}).LoadSeeds()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, &config.DatabaseConfig{SeedDatabase: true, SeedsPath: "/nonexistent/seeds"})

	assert.NoError(t, runner.LoadSeeds())
}

func TestLoadSeeds_ExecutionFailureIsSkipped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "001_bad.sql"), []byte("INSERT INTO missing VALUES (1);"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "002_categories.sql"), []byte("INSERT INTO categories (id, name) VALUES ('gifts', 'Gifts');"), 0644))

	mock.ExpectExec("INSERT INTO missing").WillReturnError(errors.New("no such table"))
	mock.ExpectExec("INSERT INTO categories").WillReturnResult(sqlmock.NewResult(0, 1))

	runner := NewMigrationRunner(db, &config.DatabaseConfig{SeedDatabase: true, SeedsPath: tempDir})

	assert.NoError(t, runner.LoadSeeds())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_ReadFileError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tempDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "001_dir.sql"), 0755))

	runner := NewMigrationRunner(db, &config.DatabaseConfig{SeedDatabase: true, SeedsPath: tempDir})
	err = runner.LoadSeeds()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read seed file")
}

func TestGetMigrationStatus_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, &config.DatabaseConfig{MigrationsPath: "/nonexistent/migrations"})
	_, _, err = runner.GetMigrationStatus()

	assert.ErrorIs(t, err, ErrMigrationsDirNotFound)
}

func TestRunMigrationsIfEnabled_Disabled(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, RunMigrationsIfEnabled(db, &config.DatabaseConfig{AutoMigrate: false}))
	assert.NoError(t, RunMigrationsIfEnabled(db, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrationsIfEnabled_DatabaseNotReady(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	fastRetries(t, 2)

	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	err = RunMigrationsIfEnabled(db, &config.DatabaseConfig{AutoMigrate: true})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database readiness check failed")
}

func TestSetupTestDB_SeedsCategories(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	var count int64
	require.NoError(t, db.Table("categories").Count(&count).Error)
	assert.Equal(t, int64(len(models.DefaultCategories())), count)

	// Seeding twice keeps existing rows
	require.NoError(t, db.SeedCategories())
	require.NoError(t, db.Table("categories").Count(&count).Error)
	assert.Equal(t, int64(len(models.DefaultCategories())), count)
}
