//go:build integration
// +build integration

package repository

import (
	"testing"

	"rotation-manager-backend/internal/database/models"
	"rotation-manager-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// EngineerRepositoryTestSuite tests the EngineerRepository
type EngineerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *EngineerRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *EngineerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewEngineerRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *EngineerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *EngineerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *EngineerRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new engineer
func (suite *EngineerRepositoryTestSuite) TestCreate() {
	engineer := suite.factories.Engineer.Create()

	err := suite.repo.Create(engineer)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, engineer.ID)
	suite.NotZero(engineer.CreatedAt)
}

// TestCreateDuplicateName tests the unique index on name
func (suite *EngineerRepositoryTestSuite) TestCreateDuplicateName() {
	first := suite.factories.Engineer.WithName("Alex")
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Engineer.WithName("Alex")
	suite.Error(suite.repo.Create(second))
}

// TestGetByName tests looking up an engineer by name
func (suite *EngineerRepositoryTestSuite) TestGetByName() {
	engineer := suite.factories.Engineer.WithName("Blake")
	suite.NoError(suite.repo.Create(engineer))

	found, err := suite.repo.GetByName("Blake")
	suite.NoError(err)
	suite.Equal(engineer.ID, found.ID)

	_, err = suite.repo.GetByName("Nobody")
	suite.True(IsNotFound(err))
}

// TestGetAllOrdersBySeniority tests roster ordering
func (suite *EngineerRepositoryTestSuite) TestGetAllOrdersBySeniority() {
	junior := suite.factories.Engineer.WithName("Casey")
	junior.Seniority = 3
	senior := suite.factories.Engineer.WithName("Alex")
	senior.Seniority = 1
	mid := suite.factories.Engineer.WithName("Blake")
	mid.Seniority = 2

	suite.NoError(suite.repo.Create(junior))
	suite.NoError(suite.repo.Create(senior))
	suite.NoError(suite.repo.Create(mid))

	all, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Len(all, 3)
	suite.Equal("Alex", all[0].Name)
	suite.Equal("Blake", all[1].Name)
	suite.Equal("Casey", all[2].Name)
}

// TestSyncRoster tests upserting the configured roster
func (suite *EngineerRepositoryTestSuite) TestSyncRoster() {
	existing := suite.factories.Engineer.WithName("Alex")
	existing.Letter = "A"
	existing.Seniority = 1
	suite.NoError(suite.repo.Create(existing))

	roster := []models.Engineer{
		{Name: "Alex", Letter: "A", Seniority: 2, Country: "US", Region: "CA"},
		{Name: "Blake", Letter: "B", Seniority: 1, Country: "CA", Region: "ON"},
	}
	suite.NoError(suite.repo.SyncRoster(roster))

	all, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Len(all, 2)

	alex, err := suite.repo.GetByName("Alex")
	suite.NoError(err)
	suite.Equal(2, alex.Seniority)
	suite.Equal(existing.ID, alex.ID, "upsert must not replace the existing row")
}

// TestSyncRosterDeactivatesRemoved tests that engineers dropped from
// configuration are kept but marked inactive
func (suite *EngineerRepositoryTestSuite) TestSyncRosterDeactivatesRemoved() {
	roster := []models.Engineer{
		{Name: "Alex", Letter: "A", Seniority: 1},
		{Name: "Blake", Letter: "B", Seniority: 2},
	}
	suite.NoError(suite.repo.SyncRoster(roster))

	suite.NoError(suite.repo.SyncRoster([]models.Engineer{
		{Name: "Alex", Letter: "A", Seniority: 1},
	}))

	blake, err := suite.repo.GetByName("Blake")
	suite.NoError(err)
	suite.False(blake.Active)

	alex, err := suite.repo.GetByName("Alex")
	suite.NoError(err)
	suite.True(alex.Active)
}

// TestEngineerRepositorySuite runs the test suite
func TestEngineerRepositorySuite(t *testing.T) {
	suite.Run(t, new(EngineerRepositoryTestSuite))
}
