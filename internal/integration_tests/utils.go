package integrationtests

import (
	"context"
	"net/http/httptest"
	"testing"

	"message-board/internal/api"
	"message-board/internal/config"
	"message-board/internal/database"
	"message-board/internal/telemetry"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mysql"
	"gorm.io/gorm"
)

func setupMySQLContainer(t *testing.T, ctx context.Context) string {
	dbName, dbUser, dbPassword := "test_db", "test_user", "test_password"

	mysqlContainer, err := mysql.Run(ctx,
		"mysql:8.0.36",
		mysql.WithDatabase(dbName),
		mysql.WithUsername(dbUser),
		mysql.WithPassword(dbPassword),
	)
	require.NoError(t, err, "Failed to start MySQL container")

	t.Cleanup(func() {
		err := mysqlContainer.Terminate(context.Background())
		require.NoError(t, err, "Failed to terminate MySQL container")
	})

	connStr, err := mysqlContainer.ConnectionString(ctx, "parseTime=true", "charset=utf8mb4")
	require.NoError(t, err, "Failed to get MySQL connection string")

	return connStr
}

func createDB(t *testing.T) *gorm.DB {
	if testing.Short() {
		t.Skip("skipping container backed test in short mode")
	}

	dsn := setupMySQLContainer(t, context.Background())
	db, err := database.NewDatabase(dsn)
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func createServer(t *testing.T, db *gorm.DB) *httptest.Server {
	tracer, err := telemetry.New(config.APMConfig{})
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Use(tracer.Middleware)
	api.NewBoardService(db).AddRoutes(router)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server
}
