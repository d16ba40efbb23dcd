package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Cat is a spy cat record as returned by the backend.
// ID, CreatedAt and UpdatedAt are assigned by the server and never changed
// by the client.
type Cat struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	YearsOfExperience int       `json:"years_of_experience"`
	Breed             string    `json:"breed"`
	Salary            float64   `json:"salary"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// UnmarshalJSON accepts salary either as a JSON number or as a quoted decimal,
// which is how Python backends commonly serialize Decimal fields.
func (c *Cat) UnmarshalJSON(data []byte) error {
	type plain Cat
	var aux struct {
		plain
		Salary json.RawMessage `json:"salary"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*c = Cat(aux.plain)

	raw := bytes.Trim(bytes.TrimSpace(aux.Salary), `"`)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		c.Salary = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return fmt.Errorf("salary: %w", err)
	}
	c.Salary = v
	return nil
}

// CatCreate is the payload submitted to register a new cat.
type CatCreate struct {
	Name              string  `json:"name"`
	YearsOfExperience int     `json:"years_of_experience"`
	Breed             string  `json:"breed"`
	Salary            float64 `json:"salary"`
}

// CatUpdate carries the only field the client may change after creation.
type CatUpdate struct {
	Salary float64 `json:"salary"`
}

// CatList is the list endpoint response. Ordering is defined by the server.
type CatList struct {
	Cats  []Cat `json:"cats"`
	Total int   `json:"total"`
}

const (
	MsgNameRequired      = "Name is required"
	MsgBreedRequired     = "Breed is required"
	MsgNegativeYears     = "Years of experience cannot be negative"
	MsgSalaryNotPositive = "Salary must be greater than 0"
	MsgSalaryInvalid     = "Salary must be a positive number"
)

// ValidationError is a client-side validation failure detected before any
// request is sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks the payload in field order; the first failure wins.
func (c CatCreate) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return &ValidationError{Field: "name", Message: MsgNameRequired}
	}
	if strings.TrimSpace(c.Breed) == "" {
		return &ValidationError{Field: "breed", Message: MsgBreedRequired}
	}
	if c.YearsOfExperience < 0 {
		return &ValidationError{Field: "years_of_experience", Message: MsgNegativeYears}
	}
	if c.Salary <= 0 {
		return &ValidationError{Field: "salary", Message: MsgSalaryNotPositive}
	}
	return nil
}

// Canonical returns a copy of c with the breed canonicalized.
func (c CatCreate) Canonical() CatCreate {
	c.Breed = CanonicalBreed(c.Breed)
	return c
}

// CanonicalBreed upper-cases the first character of s and lower-cases the rest:
// "persian" -> "Persian", "SIAMESE" -> "Siamese".
func CanonicalBreed(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// ParseSalary parses user-entered salary text. Anything that is not a finite
// number greater than zero is rejected.
func ParseSalary(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, &ValidationError{Field: "salary", Message: MsgSalaryInvalid}
	}
	return v, nil
}

// FormatSalary renders v as the shortest decimal text that parses back to v.
func FormatSalary(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
