package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	_ "github.com/glebarez/sqlite"
	"github.com/rfberaldo/sqlz"
	"github.com/rfberaldo/sqlz/binds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mugisham37/moses-mugisha/pkg/models"
	"github.com/mugisham37/moses-mugisha/pkg/services"
)

var registerSqliteBind sync.Once

func newInquiryService(t *testing.T) services.InquiryService {
	t.Helper()

	registerSqliteBind.Do(func() {
		binds.Register("sqlite", binds.BindByDriver("sqlite3"))
	})

	db, err := sqlz.Connect("sqlite", "file::memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Pool().Close()
	})

	schema := `
CREATE TABLE IF NOT EXISTS inquiries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP NOT NULL,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    message TEXT NOT NULL
);
`

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	_, err = db.Exec(ctx, schema)
	require.NoError(t, err)

	return services.NewInquiryService(services.InquiryServiceConfig{
		DB: db,
	})
}

func TestSaveAndGetByID(t *testing.T) {
	service := newInquiryService(t)

	id, err := service.Save(models.Inquiry{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Message: "I would like to talk about a product design engagement.",
	})

	require.NoError(t, err)
	require.NotZero(t, id)

	inquiry, err := service.GetByID(id)

	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", inquiry.Name)
	assert.Equal(t, "ada@example.com", inquiry.Email)
	assert.False(t, inquiry.CreatedAt.IsZero())
}

func TestGetByIDNotFound(t *testing.T) {
	service := newInquiryService(t)

	_, err := service.GetByID(42)

	assert.ErrorIs(t, err, models.ErrInquiryNotFound)
}

func TestGetAll(t *testing.T) {
	service := newInquiryService(t)

	_, err := service.Save(models.Inquiry{Name: "One", Email: "one@example.com", Message: "First message"})
	require.NoError(t, err)

	_, err = service.Save(models.Inquiry{Name: "Two", Email: "two@example.com", Message: "Second message"})
	require.NoError(t, err)

	inquiries, err := service.GetAll()

	require.NoError(t, err)
	require.Len(t, inquiries, 2)

	names := []string{inquiries[0].Name, inquiries[1].Name}
	assert.Contains(t, names, "One")
	assert.Contains(t, names, "Two")
}

func TestSaveRejectsInvalidInquiries(t *testing.T) {
	service := newInquiryService(t)

	cases := []models.Inquiry{
		{Name: "", Email: "a@example.com", Message: "hello"},
		{Name: "A", Email: "", Message: "hello"},
		{Name: "A", Email: "not-an-email", Message: "hello"},
		{Name: "A", Email: "a@example.com", Message: "   "},
	}

	for _, inquiry := range cases {
		_, err := service.Save(inquiry)
		assert.ErrorIs(t, err, services.ErrInvalidInquiry)
	}
}
