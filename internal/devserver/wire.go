package devserver

import (
	"strconv"
	"time"
)

type createRequest struct {
	Name              *string      `json:"name" validate:"required,min=1,max=100,notblank"`
	YearsOfExperience *int         `json:"years_of_experience" validate:"required,gte=0,lte=50"`
	Breed             *string      `json:"breed" validate:"required,min=1,max=100,notblank"`
	Salary            *decimalText `json:"salary" validate:"required,decimal,positive,places"`
}

// updateRequest leaves Salary nil when it is absent or null.
type updateRequest struct {
	Salary *decimalText `json:"salary" validate:"omitempty,decimal,positive,places"`
}

type catResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	YearsOfExperience int       `json:"years_of_experience"`
	Breed             string    `json:"breed"`
	Salary            string    `json:"salary"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type listResponse struct {
	Cats  []catResponse `json:"cats"`
	Total int           `json:"total"`
}

// fieldError is one entry of a 422 detail list.
type fieldError struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

type detailResponse struct {
	Detail any `json:"detail"`
}

func toResponse(c Cat) catResponse {
	return catResponse{
		ID:                c.ID,
		Name:              c.Name,
		YearsOfExperience: c.YearsOfExperience,
		Breed:             c.Breed,
		Salary:            strconv.FormatFloat(c.Salary, 'f', 2, 64),
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
