// Package databasetest provides throwaway databases for tests.
package databasetest

import (
	"testing"

	"trivia-backend/internal/database"
	"trivia-backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewSQLite returns a migrated in-memory database private to the test.
func NewSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// every pooled connection to ":memory:" would get its own database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// SeedCategories inserts categories with explicit ids.
func SeedCategories(t *testing.T, db *gorm.DB, categories ...models.Category) {
	t.Helper()

	for i := range categories {
		require.NoError(t, db.Create(&categories[i]).Error)
	}
}

// SeedQuestions inserts questions and returns them with their assigned ids.
func SeedQuestions(t *testing.T, db *gorm.DB, questions ...models.Question) []models.Question {
	t.Helper()

	for i := range questions {
		require.NoError(t, db.Create(&questions[i]).Error)
	}
	return questions
}
