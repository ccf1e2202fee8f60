package ledgerrepo_test

import (
	"context"
	"testing"
	"time"

	"printflow/internal/adapters/out/postgres/ledgerrepo"
	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/job"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/transition"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LedgerRepositoryIntegrationTestSuite provides integration tests for
// LedgerRepository using PostgreSQL containers. The append-only chain rule
// is enforced against real stored rows, so it needs a real database.
type LedgerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *ledgerrepo.GormLedgerRepository
}

func (suite *LedgerRepositoryIntegrationTestSuite) SetupSuite() {
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
	suite.Require().NoError(db.AutoMigrate(&ledgerrepo.TransitionDTO{}))
}

func (suite *LedgerRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE job_transitions").Error)

	suite.repository = ledgerrepo.NewGormLedgerRepository(suite.db)
}

func (suite *LedgerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *LedgerRepositoryIntegrationTestSuite) TestAppend_CreationRecord_Success() {
	ctx := context.Background()

	jobID := kernel.NewUUID()
	record := suite.creationRecord(jobID)

	err := suite.repository.Append(ctx, record)
	suite.Require().NoError(err)

	records, err := suite.repository.GetByJob(ctx, jobID)
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.True(records[0].IsCreation())
	suite.Equal(job.InProgress, records[0].To())
}

func (suite *LedgerRepositoryIntegrationTestSuite) TestAppend_ChainedRecords_PreserveOrder() {
	ctx := context.Background()

	jobID := kernel.NewUUID()
	actorID := kernel.NewUUID()
	now := time.Now().UTC().Truncate(time.Microsecond)

	suite.Require().NoError(suite.repository.Append(ctx, suite.creationRecord(jobID)))
	suite.Require().NoError(suite.repository.Append(ctx,
		suite.chainedRecord(jobID, actorID, job.InProgress, job.ReadyForPrint, now.Add(time.Minute))))
	suite.Require().NoError(suite.repository.Append(ctx,
		suite.chainedRecord(jobID, actorID, job.ReadyForPrint, job.Printing, now.Add(2*time.Minute))))

	records, err := suite.repository.GetByJob(ctx, jobID)
	suite.Require().NoError(err)
	suite.Require().Len(records, 3)

	suite.True(records[0].IsCreation())
	suite.Equal(job.ReadyForPrint, records[1].To())
	suite.Equal(job.Printing, records[2].To())
	suite.Equal(job.ReadyForPrint, *records[2].From())
}

func (suite *LedgerRepositoryIntegrationTestSuite) TestAppend_SecondCreationRecord_OutOfSequence() {
	ctx := context.Background()

	jobID := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Append(ctx, suite.creationRecord(jobID)))

	err := suite.repository.Append(ctx, suite.creationRecord(jobID))
	suite.Require().ErrorIs(err, ledgerrepo.ErrOutOfSequence)

	records, err := suite.repository.GetByJob(ctx, jobID)
	suite.Require().NoError(err)
	suite.Len(records, 1)
}

func (suite *LedgerRepositoryIntegrationTestSuite) TestAppend_NonCreationWithEmptyLedger_OutOfSequence() {
	ctx := context.Background()

	jobID := kernel.NewUUID()
	record := suite.chainedRecord(jobID, kernel.NewUUID(), job.InProgress, job.ReadyForPrint, time.Now().UTC())

	err := suite.repository.Append(ctx, record)
	suite.Require().ErrorIs(err, ledgerrepo.ErrOutOfSequence)
}

func (suite *LedgerRepositoryIntegrationTestSuite) TestAppend_FromDoesNotMatchHead_OutOfSequence() {
	ctx := context.Background()

	jobID := kernel.NewUUID()
	actorID := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Append(ctx, suite.creationRecord(jobID)))

	// Head leaves the job in InProgress, so a record from Printing cannot chain.
	record := suite.chainedRecord(jobID, actorID, job.Printing, job.Printed, time.Now().UTC())
	err := suite.repository.Append(ctx, record)
	suite.Require().ErrorIs(err, ledgerrepo.ErrOutOfSequence)
}

func (suite *LedgerRepositoryIntegrationTestSuite) TestGetByJob_KeepsComments() {
	ctx := context.Background()

	jobID := kernel.NewUUID()
	actorID := kernel.NewUUID()
	now := time.Now().UTC().Truncate(time.Microsecond)

	suite.Require().NoError(suite.repository.Append(ctx, suite.creationRecord(jobID)))

	comment := "registration marks are off on the second plate"
	from := job.InProgress
	record, err := transition.NewRecord(
		jobID, &from, job.NeedsRevision, actorID, actor.RoleAdmin, &comment, now.Add(time.Minute),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Append(ctx, record))

	records, err := suite.repository.GetByJob(ctx, jobID)
	suite.Require().NoError(err)
	suite.Require().Len(records, 2)
	suite.Require().NotNil(records[1].Comment())
	suite.Equal(comment, *records[1].Comment())
	suite.Equal(actor.RoleAdmin, records[1].ActorRole())
}

func (suite *LedgerRepositoryIntegrationTestSuite) TestGetByJob_UnknownJob_ReturnsEmpty() {
	ctx := context.Background()

	records, err := suite.repository.GetByJob(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(records)
}

// Helper methods

func (suite *LedgerRepositoryIntegrationTestSuite) creationRecord(jobID kernel.UUID) transition.Record {
	record, err := transition.NewRecord(
		jobID, nil, job.InProgress, kernel.NewUUID(), actor.RolePreparer, nil,
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	return record
}

func (suite *LedgerRepositoryIntegrationTestSuite) chainedRecord(
	jobID, actorID kernel.UUID,
	from, to job.Status,
	occurredAt time.Time,
) transition.Record {
	record, err := transition.NewRecord(jobID, &from, to, actorID, actor.RolePreparer, nil, occurredAt)
	suite.Require().NoError(err)
	return record
}

func TestLedgerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerRepositoryIntegrationTestSuite))
}
