package transitionrepo_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/transitionrepo"
	"storefront/internal/core/domain/model/item"
	"storefront/internal/core/domain/services"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TransitionRepositoryIntegrationTestSuite provides integration tests for
// TransitionRepository using PostgreSQL containers.
type TransitionRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *transitionrepo.GormTransitionRepository
}

func (suite *TransitionRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&transitionrepo.TransitionDTO{}))
}

func (suite *TransitionRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE item_transitions").Error)
	suite.repository = transitionrepo.NewGormTransitionRepository(suite.db)
}

func (suite *TransitionRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TransitionRepositoryIntegrationTestSuite) TestAdd_IsIdempotent() {
	ctx := context.Background()

	edge := suite.transition(item.StateAvailable, item.StateHeld, "customer hold")

	suite.Require().NoError(suite.repository.Add(ctx, edge))
	suite.Require().NoError(suite.repository.Add(ctx, edge), "seeding the same edge twice must not fail")

	transitions, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(transitions, 1)
}

func (suite *TransitionRepositoryIntegrationTestSuite) TestGetAll_FeedsTransitionGraph() {
	ctx := context.Background()

	edges := []item.Transition{
		suite.transition(item.StateAvailable, item.StateHeld, "customer hold"),
		suite.transition(item.StateHeld, item.StateAvailable, "hold released"),
		suite.transition(item.StateHeld, item.StateSold, "sale completed"),
		suite.transition(item.StateAvailable, item.StateTesting, "bench check"),
		suite.transition(item.StateTesting, item.StateAvailable, "passed inspection"),
		suite.transition(item.StateTesting, item.StateDisposed, "failed inspection"),
	}
	for _, edge := range edges {
		suite.Require().NoError(suite.repository.Add(ctx, edge))
	}

	loaded, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(loaded, len(edges))

	// Loaded rows must satisfy the graph constructor
	graph, err := services.NewTransitionGraph(loaded)
	suite.Require().NoError(err)
	suite.True(graph.CanTransition(item.StateAvailable, item.StateHeld))
	suite.True(graph.CanTransition(item.StateTesting, item.StateDisposed))
	suite.False(graph.CanTransition(item.StateDisposed, item.StateAvailable))
}

func (suite *TransitionRepositoryIntegrationTestSuite) TestGetAll_EmptyTable_ReturnsEmptySlice() {
	ctx := context.Background()

	transitions, err := suite.repository.GetAll(ctx)

	suite.Require().NoError(err)
	suite.Empty(transitions)
}

func (suite *TransitionRepositoryIntegrationTestSuite) transition(from, to item.State, description string) item.Transition {
	edge, err := item.NewTransition(from, to, description)
	suite.Require().NoError(err)
	return edge
}

func TestTransitionRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TransitionRepositoryIntegrationTestSuite))
}
