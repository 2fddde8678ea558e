package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"xestetik/internal/models"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type PgLeadRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    LeadRepository
	context context.Context
}

func (suite *PgLeadRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock
	suite.repo = NewPgLeadRepo(mock)
	suite.context = context.Background()
}

func (suite *PgLeadRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestPgLeadRepoTestSuite(t *testing.T) {
	suite.Run(t, new(PgLeadRepoTestSuite))
}

func (suite *PgLeadRepoTestSuite) TestCreate_Success() {
	lead := &models.Lead{
		CreatedAt:  time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
		Name:       "Jan",
		Email:      "jan@example.com",
		Phone:      "",
		Message:    "Interesuje mnie wynajem.",
		SourcePath: "/akcesoria",
	}

	suite.mock.ExpectQuery(`
		INSERT INTO leads \(created_at, name, email, phone, message, source_path\)
		VALUES \(\$1, \$2, \$3, \$4, \$5, \$6\)
		RETURNING id
	`).WithArgs(lead.CreatedAt, lead.Name, lead.Email, lead.Phone, lead.Message, lead.SourcePath).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))

	err := suite.repo.Create(suite.context, lead)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(42), lead.ID)
}

func (suite *PgLeadRepoTestSuite) TestCreate_DatabaseError() {
	lead := &models.Lead{CreatedAt: time.Now(), Name: "Jan", Email: "jan@example.com", Message: "m"}

	suite.mock.ExpectQuery(`INSERT INTO leads`).
		WithArgs(lead.CreatedAt, lead.Name, lead.Email, lead.Phone, lead.Message, lead.SourcePath).
		WillReturnError(errors.New("connection refused"))

	err := suite.repo.Create(suite.context, lead)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "connection refused")
	assert.Zero(suite.T(), lead.ID)
}

func (suite *PgLeadRepoTestSuite) TestList_Success() {
	created := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{"id", "created_at", "name", "email", "phone", "message", "source_path"}).
		AddRow(int64(2), created, "B", "b@example.com", "", "second", "/").
		AddRow(int64(1), created, "A", "a@example.com", "123", "first", "/lasery")

	suite.mock.ExpectQuery(`SELECT id, created_at, name, email`).
		WithArgs(10, 0).
		WillReturnRows(rows)

	leads, err := suite.repo.List(suite.context, 10, 0)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), leads, 2)
	assert.Equal(suite.T(), int64(2), leads[0].ID)
	assert.Equal(suite.T(), "/lasery", leads[1].SourcePath)
}

func (suite *PgLeadRepoTestSuite) TestCount_Success() {
	suite.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM leads`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(5)))

	n, err := suite.repo.Count(suite.context)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(5), n)
}

func (suite *PgLeadRepoTestSuite) TestPing() {
	suite.mock.ExpectPing()
	assert.NoError(suite.T(), suite.repo.Ping(suite.context))
}
