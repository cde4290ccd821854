package models

import (
	"fmt"
	"time"
)

var (
	ErrInquiryNotFound = fmt.Errorf("inquiry not found")
)

type Inquiry struct {
	ID        uint
	CreatedAt time.Time
	Name      string
	Email     string
	Message   string
}
