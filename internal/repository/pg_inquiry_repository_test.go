package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/devsolutions/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inquiryCols = []string{"id", "name", "email", "company", "phone", "project_type", "budget_range",
	"description", "timeline", "submitted_at", "status"}

func TestPgInquiryRepository_Create_ForcesNewStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgInquiryRepository(db, testClock())

	mock.ExpectQuery(`INSERT INTO project_inquiries`).
		WithArgs("Bob", "b@x.com", "Acme", nil, "mobile", "$10k", "An app", nil, testNow, "new").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	i := &model.ProjectInquiry{
		Name:        "Bob",
		Email:       "b@x.com",
		Company:     strPtr("Acme"),
		ProjectType: model.ProjectTypeMobile,
		BudgetRange: strPtr("$10k"),
		Description: "An app",
		Status:      model.InquiryStatusClosed,
	}
	require.NoError(t, repo.Create(context.Background(), i))
	assert.Equal(t, int64(11), i.ID)
	assert.Equal(t, model.InquiryStatusNew, i.Status)
}

func TestPgInquiryRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgInquiryRepository(db, testClock())

	mock.ExpectQuery(`FROM project_inquiries ORDER BY submitted_at DESC, id DESC`).
		WillReturnRows(sqlmock.NewRows(inquiryCols).
			AddRow(int64(1), "Bob", "b@x.com", nil, nil, "web", nil, "site", "3 months", testNow, "quoted"))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, model.ProjectTypeWeb, items[0].ProjectType)
	assert.Equal(t, model.InquiryStatusQuoted, items[0].Status)
	require.NotNil(t, items[0].Timeline)
	assert.Equal(t, "3 months", *items[0].Timeline)
}

func TestPgInquiryRepository_UpdateStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgInquiryRepository(db, testClock())

	mock.ExpectQuery(`UPDATE project_inquiries SET status = \$2 WHERE id = \$1 RETURNING`).
		WithArgs(int64(1), "contacted").
		WillReturnRows(sqlmock.NewRows(inquiryCols).
			AddRow(int64(1), "Bob", "b@x.com", nil, nil, "web", nil, "site", nil, testNow, "contacted"))

	i, err := repo.UpdateStatus(context.Background(), 1, model.InquiryStatusContacted)
	require.NoError(t, err)
	assert.Equal(t, model.InquiryStatusContacted, i.Status)
}

func TestPgInquiryRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgInquiryRepository(db, testClock())

	mock.ExpectQuery(`FROM project_inquiries WHERE id = \$1`).
		WithArgs(int64(2)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrNotFound)
}
