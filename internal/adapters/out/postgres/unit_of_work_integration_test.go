package postgres_test

import (
	"context"
	"testing"
	"time"

	"shiplabel/internal/adapters/out/postgres"
	"shiplabel/internal/adapters/out/postgres/expeditionrepo"
	"shiplabel/internal/core/domain/model/catalog"
	"shiplabel/internal/core/domain/model/expedition"
	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction behavior of the GORM
// unit of work against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&expeditionrepo.ExpeditionDTO{}))
	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE expeditions").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestExpedition(orderRef string, sequence int) *expedition.Expedition {
	agency, err := kernel.NewAgency("0001/001")
	suite.Require().NoError(err)
	code, err := kernel.GenerateExpeditionCode(agency, sequence)
	suite.Require().NoError(err)

	e, err := expedition.NewExpedition(expedition.NewExpeditionParams{
		OrderRef: orderRef,
		Code:     code,
		Recipient: expedition.Recipient{
			Name:       "Juan Garcia Lopez",
			Address:    "Calle Gran Via, 45 3o B",
			City:       "Madrid",
			PostalCode: "28013",
			Country:    "ES",
		},
		Service: expedition.ServiceInfo{
			Code:   "04",
			Name:   "NACEX 19:00H",
			Family: catalog.FamilyStandard,
		},
		Agency:       agency,
		Department:   kernel.DefaultDepartment(),
		ShipmentDate: time.Date(2026, 2, 22, 0, 0, 0, 0, time.UTC),
		Parcels:      1,
		Options: expedition.Options{
			Packaging: "2",
			Payer:     "O",
		},
		Route: expedition.Route{ID: "R015", Color: "#00B050", Zone: "NACIONAL"},
	})
	suite.Require().NoError(err)
	return e
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	first := suite.factory.Create()
	second := suite.factory.Create()

	suite.NotNil(first)
	suite.NotNil(second)
	suite.NotSame(first, second)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	// Begin is idempotent within one unit of work.
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	// Commit without active transaction fails.
	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsExpedition() {
	ctx := context.Background()
	aggregate := suite.createTestExpedition("1042", 1234567)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ExpeditionRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	other := suite.factory.Create()
	restored, err := other.ExpeditionRepository().GetByOrderRef(ctx, "1042")
	suite.Require().NoError(err)
	suite.True(aggregate.IsEqual(restored))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsExpedition() {
	ctx := context.Background()
	aggregate := suite.createTestExpedition("1042", 1234567)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ExpeditionRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Rollback(ctx))

	other := suite.factory.Create()
	_, err := other.ExpeditionRepository().GetByOrderRef(ctx, "1042")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUncommittedChangesInvisibleOutside() {
	ctx := context.Background()
	aggregate := suite.createTestExpedition("1042", 1234567)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ExpeditionRepository().Add(ctx, aggregate))

	outside := suite.factory.Create()
	_, err := outside.ExpeditionRepository().GetByOrderRef(ctx, "1042")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(uow.Commit(ctx))

	_, err = outside.ExpeditionRepository().GetByOrderRef(ctx, "1042")
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransaction_ExecutesDirectly() {
	ctx := context.Background()
	aggregate := suite.createTestExpedition("1042", 1234567)

	uow := suite.factory.Create()
	// No Begin: the repository uses the main connection.
	suite.Require().NoError(uow.ExpeditionRepository().Add(ctx, aggregate))

	restored, err := uow.ExpeditionRepository().GetByOrderRef(ctx, "1042")
	suite.Require().NoError(err)
	suite.Equal("1042", restored.OrderRef())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestGenerateThenCancelWorkflow() {
	ctx := context.Background()
	aggregate := suite.createTestExpedition("1042", 1234567)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ExpeditionRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	cancelUow := suite.factory.Create()
	suite.Require().NoError(cancelUow.Begin(ctx))

	repo := cancelUow.ExpeditionRepository()
	stored, err := repo.GetByOrderRef(ctx, "1042")
	suite.Require().NoError(err)
	suite.Require().NoError(stored.Cancel())
	suite.Require().NoError(repo.Update(ctx, stored))
	suite.Require().NoError(cancelUow.Commit(ctx))

	final, err := suite.factory.Create().ExpeditionRepository().GetByOrderRef(ctx, "1042")
	suite.Require().NoError(err)
	suite.Equal(expedition.Cancelled, final.Status())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
