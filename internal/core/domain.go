package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the fixed ISO-8601 form used whenever a Date is stored.
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

type (
	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Expense is a committed entry. Identity is ID; every other field may be
	// replaced by an update.
	Expense struct {
		ID       string `json:"id"`
		Name     string `json:"expenseName"`
		Amount   Money  `json:"amount"`
		Category string `json:"category"`
		Date     Date   `json:"date"`
	}

	// DraftExpense is an expense being composed, before it has an ID.
	// Date may be empty while the user has not picked one.
	DraftExpense struct {
		Name     string `json:"expenseName" validate:"required"`
		Amount   Money  `json:"amount"`
		Category string `json:"category" validate:"required"`
		Date     Date   `json:"date"`
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrEmptyName       = errors.New("empty expense name")
	ErrEmptyCategory   = errors.New("empty category")
	ErrUnknownCategory = errors.New("unknown category")
	ErrEmptyDate       = errors.New("empty date")
	ErrBudgetExceeded  = errors.New("budget exceeded")
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// IsEmpty returns true if no date has been picked.
func (d Date) IsEmpty() bool {
	return d.IsZero()
}

// String formats the date with DateLayout in UTC, or "" when empty.
func (d Date) String() string {
	if d.IsEmpty() {
		return ""
	}
	return d.UTC().Format(DateLayout)
}

// ParseDate accepts RFC 3339 timestamps (with or without fractional
// seconds) and plain YYYY-MM-DD dates. An empty string yields an empty Date.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return Date{Time: t.UTC()}, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsEmpty() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Draft strips the identity, giving back the editable part of the expense.
func (e Expense) Draft() DraftExpense {
	return DraftExpense{Name: e.Name, Amount: e.Amount, Category: e.Category, Date: e.Date}
}

// WithID commits the draft under the given identity.
func (d DraftExpense) WithID(id string) Expense {
	return Expense{ID: id, Name: d.Name, Amount: d.Amount, Category: d.Category, Date: d.Date}
}

// Validate reports the first missing or malformed field: every field is
// required, the amount must be positive and the category must be in the
// catalog.
func (d DraftExpense) Validate() error {
	if err := structValidator().Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].StructField() {
			case "Name":
				return ErrEmptyName
			case "Category":
				return ErrEmptyCategory
			}
		}
		return err
	}
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyName
	}
	if len(d.Name) > 200 {
		return errors.New("expense name too long (max 200 characters)")
	}
	if err := d.Amount.Validate(); err != nil {
		return err
	}
	if _, ok := CategoryByID(d.Category); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, d.Category)
	}
	if d.Date.IsEmpty() {
		return ErrEmptyDate
	}
	return nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}
