package database_test

import (
	"context"
	"os"
	"testing"

	"trivia-backend/internal/config"
	"trivia-backend/internal/database"
	"trivia-backend/internal/logger"
	"trivia-backend/internal/models"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Runs against a throwaway postgres container. Needs a docker daemon, so it
// only runs with TRIVIA_DOCKER_TESTS=1.
func TestPostgres_MigrateAndSeed(t *testing.T) {
	if os.Getenv("TRIVIA_DOCKER_TESTS") != "1" {
		t.Skip("set TRIVIA_DOCKER_TESTS=1 to run postgres integration tests")
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "could not construct pool")
	require.NoError(t, pool.Client.Ping(), "could not connect to docker")

	cfg := config.Database{
		Driver:   config.DriverPostgres,
		Host:     "localhost",
		User:     "postgres",
		Password: "postgres",
		Name:     "trivia_test",
		SSLMode:  "disable",
	}

	resource, err := pool.Run("postgres", "16-alpine", []string{
		"POSTGRES_USER=" + cfg.User,
		"POSTGRES_PASSWORD=" + cfg.Password,
		"POSTGRES_DB=" + cfg.Name,
	})
	require.NoError(t, err, "could not start resource")
	t.Cleanup(func() {
		assert.NoError(t, pool.Purge(resource))
	})

	cfg.Port = resource.GetPort("5432/tcp")

	ctx := context.Background()
	var db *gorm.DB
	err = pool.Retry(func() error {
		var err error
		db, err = database.Connect(cfg, logger.Nop())
		if err != nil {
			return err
		}
		return database.Ping(ctx, db)
	})
	require.NoError(t, err, "could not connect to database")
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.AutoMigrate(db))

	inserted, err := database.SeedCategories(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, len(database.DefaultCategories), inserted)

	question := models.Question{Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: 4, Difficulty: 2}
	require.NoError(t, db.Create(&question).Error)
	assert.NotZero(t, question.ID)
}
