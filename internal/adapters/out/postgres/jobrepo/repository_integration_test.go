package jobrepo_test

import (
	"context"
	"testing"
	"time"

	"printflow/internal/adapters/out/postgres/jobrepo"
	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/job"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// JobRepositoryIntegrationTestSuite provides integration tests for JobRepository
// using PostgreSQL containers to verify database persistence behavior.
type JobRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *jobrepo.GormJobRepository
	tracker    *MockAggregateTracker
}

func (suite *JobRepositoryIntegrationTestSuite) SetupSuite() {
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
	suite.Require().NoError(db.AutoMigrate(&jobrepo.JobDTO{}))
}

func (suite *JobRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE jobs").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = jobrepo.NewGormJobRepository(suite.db, suite.tracker)
}

func (suite *JobRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *JobRepositoryIntegrationTestSuite) TestAdd_ValidJob_Success() {
	ctx := context.Background()

	testJob := suite.createTestJob()

	suite.tracker.On("TrackAggregate", testJob.ID(), testJob).Once()

	err := suite.repository.Add(ctx, testJob)
	suite.Require().NoError(err)

	suite.assertJobCount(1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *JobRepositoryIntegrationTestSuite) TestGet_ExistingJob_ReturnsJob() {
	ctx := context.Background()

	id := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	createdAt := time.Now().UTC().Truncate(time.Microsecond)

	originalJob, err := job.NewJob(id, actor.MachineTypeA, ownerID, "blobs/plate-42.pdf", createdAt)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", id, originalJob).Once()

	err = suite.repository.Add(ctx, originalJob)
	suite.Require().NoError(err)

	retrievedJob, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)

	suite.Equal(id, retrievedJob.ID())
	suite.Equal(actor.MachineTypeA, retrievedJob.MachineType())
	suite.Equal(ownerID, retrievedJob.OwnerID())
	suite.Equal("blobs/plate-42.pdf", retrievedJob.AttachmentRef())
	suite.Equal(job.InProgress, retrievedJob.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *JobRepositoryIntegrationTestSuite) TestGet_NonExistentJob_ReturnsNotFoundError() {
	ctx := context.Background()

	nonExistentID := kernel.NewUUID()
	retrievedJob, err := suite.repository.Get(ctx, nonExistentID)

	suite.Nil(retrievedJob)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *JobRepositoryIntegrationTestSuite) TestUpdate_StatusMoves() {
	testCases := []struct {
		name          string
		initialStatus job.Status
		updatedStatus job.Status
	}{
		{
			name:          "in progress to ready for print",
			initialStatus: job.InProgress,
			updatedStatus: job.ReadyForPrint,
		},
		{
			name:          "printing to printed",
			initialStatus: job.Printing,
			updatedStatus: job.Printed,
		},
		{
			name:          "delivered to closed",
			initialStatus: job.Delivered,
			updatedStatus: job.Closed,
		},
	}

	ctx := context.Background()
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			initialJob := suite.createTestJobInStatus(tc.initialStatus)
			suite.tracker.On("TrackAggregate", initialJob.ID(), initialJob).Once()
			err := suite.repository.Add(ctx, initialJob)
			suite.Require().NoError(err)

			updatedJob, err := job.RestoreJob(
				initialJob.ID(),
				initialJob.MachineType(),
				initialJob.OwnerID(),
				initialJob.AttachmentRef(),
				tc.updatedStatus,
				initialJob.CreatedAt(),
				time.Now().UTC().Truncate(time.Microsecond),
			)
			suite.Require().NoError(err)

			suite.tracker.On("TrackAggregate", updatedJob.ID(), updatedJob).Once()
			err = suite.repository.Update(ctx, updatedJob)
			suite.Require().NoError(err)

			retrievedJob, err := suite.repository.Get(ctx, initialJob.ID())
			suite.Require().NoError(err)
			suite.Equal(tc.updatedStatus, retrievedJob.Status())

			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

func (suite *JobRepositoryIntegrationTestSuite) TestUpdate_NonExistentJob_ReturnsError() {
	ctx := context.Background()

	nonExistentJob := suite.createTestJob()

	// No expectations on tracker since operation should fail
	err := suite.repository.Update(ctx, nonExistentJob)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *JobRepositoryIntegrationTestSuite) TestGetAllInStatus_FiltersByStatus() {
	ctx := context.Background()

	inProgress := suite.createTestJobInStatus(job.InProgress)
	printing := suite.createTestJobInStatus(job.Printing)
	alsoPrinting := suite.createTestJobInStatus(job.Printing)

	for _, testJob := range []*job.Job{inProgress, printing, alsoPrinting} {
		suite.tracker.On("TrackAggregate", testJob.ID(), testJob).Once()
		suite.Require().NoError(suite.repository.Add(ctx, testJob))
	}

	printingJobs, err := suite.repository.GetAllInStatus(ctx, job.Printing)
	suite.Require().NoError(err)
	suite.Len(printingJobs, 2)
	for _, retrieved := range printingJobs {
		suite.Equal(job.Printing, retrieved.Status())
	}

	suite.tracker.AssertExpectations(suite.T())
}

// Helper methods

func (suite *JobRepositoryIntegrationTestSuite) createTestJob() *job.Job {
	createdAt := time.Now().UTC().Truncate(time.Microsecond)
	testJob, err := job.NewJob(kernel.NewUUID(), actor.MachineTypeA, kernel.NewUUID(), "", createdAt)
	suite.Require().NoError(err)
	return testJob
}

func (suite *JobRepositoryIntegrationTestSuite) createTestJobInStatus(status job.Status) *job.Job {
	createdAt := time.Now().UTC().Truncate(time.Microsecond)
	testJob, err := job.RestoreJob(
		kernel.NewUUID(), actor.MachineTypeB, kernel.NewUUID(), "", status, createdAt, createdAt,
	)
	suite.Require().NoError(err)
	return testJob
}

// assertJobCount verifies the number of jobs in the database.
func (suite *JobRepositoryIntegrationTestSuite) assertJobCount(expected int) {
	var count int64
	err := suite.db.Model(&jobrepo.JobDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestJobRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(JobRepositoryIntegrationTestSuite))
}
