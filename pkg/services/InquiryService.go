package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mugisham37/moses-mugisha/pkg/models"
	"github.com/rfberaldo/sqlz"
)

var (
	ErrInvalidInquiry = fmt.Errorf("invalid inquiry")
)

type InquiryServicer interface {
	Save(inquiry models.Inquiry) (uint, error)
	GetAll() ([]models.Inquiry, error)
	GetByID(id uint) (*models.Inquiry, error)
}

type InquiryServiceConfig struct {
	DB *sqlz.DB
}

type InquiryService struct {
	db *sqlz.DB
}

func NewInquiryService(config InquiryServiceConfig) InquiryService {
	return InquiryService{
		db: config.DB,
	}
}

func (s InquiryService) Save(inquiry models.Inquiry) (uint, error) {
	var (
		err error
	)

	if err = validateInquiry(inquiry); err != nil {
		return 0, err
	}

	sql := `
INSERT INTO inquiries (
    created_at,
    name,
    email,
    message
) VALUES (?, ?, ?, ?)
`

	params := []any{
		time.Now().UTC(),
		strings.TrimSpace(inquiry.Name),
		strings.TrimSpace(inquiry.Email),
		strings.TrimSpace(inquiry.Message),
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	result, err := s.db.Exec(ctx, sql, params...)

	if err != nil {
		return 0, fmt.Errorf("error saving inquiry from %s: %w", inquiry.Email, err)
	}

	id, err := result.LastInsertId()

	if err != nil {
		return 0, fmt.Errorf("error reading new inquiry ID: %w", err)
	}

	return uint(id), nil
}

func (s InquiryService) GetAll() ([]models.Inquiry, error) {
	var (
		err       error
		inquiries []models.Inquiry
	)

	sql := `
SELECT
   i.id
   , i.created_at
   , i.name
   , i.email
   , i.message
FROM inquiries AS i
ORDER BY i.created_at DESC
`

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = s.db.Query(ctx, &inquiries, sql); err != nil {
		return nil, fmt.Errorf("error querying for all inquiries: %w", err)
	}

	return inquiries, nil
}

func (s InquiryService) GetByID(id uint) (*models.Inquiry, error) {
	var (
		err error
	)

	result := &models.Inquiry{}

	sql := `
SELECT
   i.id
   , i.created_at
   , i.name
   , i.email
   , i.message
FROM inquiries AS i
WHERE 1=1
   AND i.id=?
   `

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = s.db.QueryRow(ctx, result, sql, id); err != nil {
		if sqlz.IsNotFound(err) {
			return nil, models.ErrInquiryNotFound
		}

		return result, fmt.Errorf("error querying for inquiry %d: %w", id, err)
	}

	return result, nil
}

func validateInquiry(inquiry models.Inquiry) error {
	if strings.TrimSpace(inquiry.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInquiry)
	}

	email := strings.TrimSpace(inquiry.Email)

	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: a valid email is required", ErrInvalidInquiry)
	}

	if strings.TrimSpace(inquiry.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidInquiry)
	}

	return nil
}
