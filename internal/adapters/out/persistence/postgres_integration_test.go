package persistence_test

import (
	"context"
	"testing"
	"time"

	"catalog/internal/adapters/out/persistence"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// PostgresIntegrationTestSuite runs the ordering scenarios against a real
// PostgreSQL, where the series row lock is what keeps concurrent writers
// apart.
type PostgresIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *PostgresIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := persistence.Open(persistence.Options{Driver: persistence.DriverPostgres, DSN: dsn})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(persistence.Migrate(db))
}

func (suite *PostgresIntegrationTestSuite) TearDownSuite() {
	if suite.db != nil {
		_ = persistence.Close(suite.db)
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PostgresIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE character_info, characters, entries, entry_types, series CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *PostgresIntegrationTestSuite) TestReferenceScenario() {
	runReferenceScenario(suite.T(), suite.db)
}

func (suite *PostgresIntegrationTestSuite) TestRelocation() {
	runRelocation(suite.T(), suite.db)
}

func (suite *PostgresIntegrationTestSuite) TestRollbackKeepsPositions() {
	runRollbackKeepsPositions(suite.T(), suite.db)
}

func (suite *PostgresIntegrationTestSuite) TestUnknownSeries() {
	runUnknownSeries(suite.T(), suite.db)
}

func (suite *PostgresIntegrationTestSuite) TestReferentialIntegrity() {
	runReferentialIntegrity(suite.T(), suite.db)
}

func (suite *PostgresIntegrationTestSuite) TestRepositoryRoundTrip() {
	runRepositoryRoundTrip(suite.T(), suite.db)
}

func (suite *PostgresIntegrationTestSuite) TestConcurrentInserts() {
	runConcurrentInserts(suite.T(), suite.db, 25)
}

func TestPostgresIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	suite.Run(t, new(PostgresIntegrationTestSuite))
}
