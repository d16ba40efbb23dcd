package devserver

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }
func intp(n int) *int { return &n }

func dec(s string) *decimalText {
	d := decimalText(s)
	return &d
}

func TestValidateCreate_OK(t *testing.T) {
	c, errs := validateCreate(createRequest{
		Name:              strp("  Tom "),
		YearsOfExperience: intp(3),
		Breed:             strp("Persian"),
		Salary:            dec("1500.50"),
	})
	require.Empty(t, errs)
	assert.Equal(t, "Tom", c.Name)
	assert.Equal(t, 1500.5, c.Salary)
}

func TestValidateCreate_ZeroYearsAllowed(t *testing.T) {
	c, errs := validateCreate(createRequest{
		Name:              strp("Rookie"),
		YearsOfExperience: intp(0),
		Breed:             strp("Bengal"),
		Salary:            dec("10"),
	})
	require.Empty(t, errs)
	assert.Equal(t, 0, c.YearsOfExperience)
}

func TestValidateCreate_CollectsAllErrors(t *testing.T) {
	_, errs := validateCreate(createRequest{
		Name:              strp("   "),
		YearsOfExperience: intp(51),
		Breed:             strp(strings.Repeat("x", 101)),
	})
	require.Len(t, errs, 4)
	assert.Equal(t, []any{"body", "name"}, errs[0].Loc)
	assert.Equal(t, "value_error", errs[0].Type)
	assert.Equal(t, "Input should be less than or equal to 50", errs[1].Msg)
	assert.Equal(t, "string_too_long", errs[2].Type)
	assert.Equal(t, []any{"body", "salary"}, errs[3].Loc)
	assert.Equal(t, "Field required", errs[3].Msg)
}

func TestValidateCreate_Missing(t *testing.T) {
	var req createRequest
	require.NoError(t, json.Unmarshal([]byte(`{"salary": null}`), &req))

	_, errs := validateCreate(req)
	require.Len(t, errs, 4)
	for _, fe := range errs {
		assert.Equal(t, "missing", fe.Type)
	}
}

func TestValidateCreate_EmptyName(t *testing.T) {
	_, errs := validateCreate(createRequest{
		Name:              strp(""),
		YearsOfExperience: intp(-1),
		Breed:             strp("Persian"),
		Salary:            dec("5"),
	})
	require.Len(t, errs, 2)
	assert.Equal(t, "String should have at least 1 character", errs[0].Msg)
	assert.Equal(t, "string_too_short", errs[0].Type)
	assert.Equal(t, "greater_than_equal", errs[1].Type)
}

func TestUpdateSalaryValidation(t *testing.T) {
	tests := []struct {
		body    string
		want    float64
		errType string
	}{
		{body: `{"salary": 1200}`, want: 1200},
		{body: `{"salary": "99.90"}`, want: 99.9},
		{body: `{"salary": " 42 "}`, want: 42},
		{body: `{"salary": 1.5e2}`, want: 150},
		{body: `{"salary": 0}`, errType: "greater_than"},
		{body: `{"salary": -1}`, errType: "greater_than"},
		{body: `{"salary": "abc"}`, errType: "decimal_parsing"},
		{body: `{"salary": true}`, errType: "decimal_parsing"},
		{body: `{"salary": 1.234}`, errType: "decimal_max_places"},
		{body: `{"salary": 1.2e-3}`, errType: "decimal_max_places"},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var req updateRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			require.NotNil(t, req.Salary)

			errs := checkStruct(req)
			if tt.errType != "" {
				require.Len(t, errs, 1)
				assert.Equal(t, tt.errType, errs[0].Type)
				assert.Equal(t, []any{"body", "salary"}, errs[0].Loc)
				return
			}
			require.Empty(t, errs)
			assert.Equal(t, tt.want, req.Salary.float())
		})
	}
}

func TestUpdateRequest_NullSalaryIsUnset(t *testing.T) {
	for _, body := range []string{`{}`, `{"salary": null}`} {
		var req updateRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		assert.Nil(t, req.Salary, body)
		assert.Empty(t, checkStruct(req), body)
	}
}

func TestDecimalPlaces(t *testing.T) {
	assert.Equal(t, 0, decimalPlaces("12"))
	assert.Equal(t, 1, decimalPlaces("12.50"))
	assert.Equal(t, 2, decimalPlaces("0.01"))
	assert.Equal(t, 0, decimalPlaces("1.5e2"))
	assert.Equal(t, 3, decimalPlaces("1e-3"))
}
