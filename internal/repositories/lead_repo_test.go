package repositories

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"xestetik/internal/models"
	"xestetik/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type LeadRepoTestSuite struct {
	suite.Suite
	db      *sql.DB
	repo    LeadRepository
	context context.Context
}

func (suite *LeadRepoTestSuite) SetupTest() {
	suite.context = context.Background()
	db, err := database.OpenSQLite(suite.context, filepath.Join(suite.T().TempDir(), "app.db"))
	require.NoError(suite.T(), err)
	suite.db = db
	suite.repo = NewLeadRepo(db)
}

func (suite *LeadRepoTestSuite) TearDownTest() {
	suite.db.Close()
}

func TestLeadRepoTestSuite(t *testing.T) {
	suite.Run(t, new(LeadRepoTestSuite))
}

func (suite *LeadRepoTestSuite) TestCreate_AssignsIDAndPersists() {
	created := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	lead := &models.Lead{
		CreatedAt:  created,
		Name:       "Anna",
		Email:      "anna@example.com",
		Phone:      "+48 600 000 000",
		Message:    "Proszę o ofertę.",
		SourcePath: "/produkt/x-levage",
	}

	err := suite.repo.Create(suite.context, lead)
	require.NoError(suite.T(), err)
	assert.NotZero(suite.T(), lead.ID)

	leads, err := suite.repo.List(suite.context, 10, 0)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), leads, 1)
	assert.Equal(suite.T(), lead.ID, leads[0].ID)
	assert.True(suite.T(), created.Equal(leads[0].CreatedAt))
	assert.Equal(suite.T(), "Anna", leads[0].Name)
	assert.Equal(suite.T(), "anna@example.com", leads[0].Email)
	assert.Equal(suite.T(), "+48 600 000 000", leads[0].Phone)
	assert.Equal(suite.T(), "Proszę o ofertę.", leads[0].Message)
	assert.Equal(suite.T(), "/produkt/x-levage", leads[0].SourcePath)
}

func (suite *LeadRepoTestSuite) TestCreate_StoresSecondPrecisionUTC() {
	local := time.FixedZone("CET", 3600)
	lead := &models.Lead{
		CreatedAt: time.Date(2025, 1, 2, 10, 0, 0, 999, local),
		Name:      "A", Email: "a@b.c", Message: "m",
	}
	require.NoError(suite.T(), suite.repo.Create(suite.context, lead))

	var raw string
	err := suite.db.QueryRowContext(suite.context, `SELECT created_at FROM leads WHERE id = ?`, lead.ID).Scan(&raw)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "2025-01-02T09:00:00", raw)
}

func (suite *LeadRepoTestSuite) TestListAndCount_NewestFirst() {
	for _, name := range []string{"first", "second", "third"} {
		require.NoError(suite.T(), suite.repo.Create(suite.context, &models.Lead{
			CreatedAt: time.Now(), Name: name, Email: name + "@example.com", Message: "hi",
		}))
	}

	n, err := suite.repo.Count(suite.context)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), n)

	leads, err := suite.repo.List(suite.context, 2, 0)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), leads, 2)
	assert.Equal(suite.T(), "third", leads[0].Name)
	assert.Equal(suite.T(), "second", leads[1].Name)

	leads, err = suite.repo.List(suite.context, 2, 2)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), leads, 1)
	assert.Equal(suite.T(), "first", leads[0].Name)
}

func (suite *LeadRepoTestSuite) TestPing() {
	assert.NoError(suite.T(), suite.repo.Ping(suite.context))
}

func (suite *LeadRepoTestSuite) TestCreate_ClosedDatabase() {
	suite.db.Close()
	err := suite.repo.Create(suite.context, &models.Lead{CreatedAt: time.Now(), Name: "a", Email: "a@b", Message: "m"})
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to insert lead")
}
