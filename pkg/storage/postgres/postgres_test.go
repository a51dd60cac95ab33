package postgres_test

import (
	"catconnect"
	"catconnect/pkg/domain"
	"catconnect/pkg/storage/postgres"
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "testdb"
)

type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

func startPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(time.Minute),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &postgresContainer{
		Container: container,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(catconnect.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := startPostgresContainer(ctx)
	require.NoError(t, err)

	pgSQL, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               pgContainer.Host,
		Port:               pgContainer.Port,
		Database:           testDB,
		SslMode:            "disable",
		ApplicationName:    "catconnect-test",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 1,
	})
	require.NoError(t, err)
	require.NoError(t, pgSQL.Ping(ctx))

	require.NoError(t, runMigrations(pgSQL.DB.(*sql.DB)))

	return pgSQL, func() {
		_ = pgSQL.Close()
		_ = pgContainer.Container.Terminate(ctx)
	}
}

func createUser(t *testing.T, pg *postgres.PgSQL, email string, role domain.Role) *domain.User {
	t.Helper()
	u, err := pg.CreateUser(t.Context(), domain.User{
		Email:        email,
		PasswordHash: "hash",
		Name:         "Juan Dela Cruz",
		Role:         role,
		Municipality: "Virac",
		Active:       true,
	})
	require.NoError(t, err)

	return u
}

func createBusiness(t *testing.T,
	pg *postgres.PgSQL,
	owner domain.UserID,
	permit string,
	status domain.BusinessStatus) *domain.Business {
	t.Helper()
	b, err := pg.CreateBusiness(t.Context(), domain.Business{
		OwnerID:      owner,
		Name:         "Bato Bakery " + permit,
		Category:     "Food",
		PermitNumber: permit,
		Address:      "Rizal St.",
		Municipality: "Bato",
		Status:       status,
	})
	require.NoError(t, err)

	return b
}

func TestOptions_DSN(t *testing.T) {
	dsn := postgres.Options{
		Username:        "app",
		Password:        "p@ss word",
		Host:            "db",
		Port:            5432,
		Database:        "catconnect",
		SslMode:         "disable",
		ApplicationName: "catconnect",
	}.DSN()

	require.Equal(t, "postgres://app:p%40ss%20word@db:5432/catconnect?application_name=catconnect&sslmode=disable", dsn)
}
