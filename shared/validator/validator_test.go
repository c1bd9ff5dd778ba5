package validator_test

import (
	"strings"
	"testing"

	"tripbook/shared/failure"
	"tripbook/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type traveler struct {
	FirstName string `json:"first_name" validate:"required"`
	Email     string `json:"email"      validate:"omitempty,email"`
	BirthDate string `json:"birth_date" validate:"omitempty,day"`
	Departure string `json:"departure"  validate:"omitempty,clock"`
	Adults    int    `json:"adults"     validate:"gte=1,lte=9"`
	Cabin     string `json:"cabin"      validate:"omitempty,oneof=economy business"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    traveler
		wantMsg string
	}{
		{name: "valid", data: traveler{FirstName: "Rahim", Adults: 1, BirthDate: "1990-04-01", Departure: "07:45"}},
		{name: "missing required", data: traveler{Adults: 1}, wantMsg: "first_name is required"},
		{name: "bad email", data: traveler{FirstName: "R", Email: "nope", Adults: 1}, wantMsg: "email must be a valid email address"},
		{name: "bad day", data: traveler{FirstName: "R", BirthDate: "01/04/1990", Adults: 1}, wantMsg: "birth_date must be a date formatted as YYYY-MM-DD"},
		{name: "bad clock", data: traveler{FirstName: "R", Departure: "7pm", Adults: 1}, wantMsg: "departure must be a clock time formatted as HH:MM"},
		{name: "range", data: traveler{FirstName: "R", Adults: 10}, wantMsg: "adults must be less than or equal to 9"},
		{name: "oneof", data: traveler{FirstName: "R", Adults: 1, Cabin: "cargo"}, wantMsg: "cabin must be one of economy business"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, 400, failure.GetCode(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidate(t *testing.T) {
	var data traveler

	err := validator.Validate(strings.NewReader(`{"first_name":"Karim","adults":2}`), &data)
	require.NoError(t, err)
	assert.Equal(t, "Karim", data.FirstName)

	err = validator.Validate(strings.NewReader(`{"first_name":`), &data)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestFirstInvalidField(t *testing.T) {
	field, err := validator.FirstInvalidField(&traveler{Adults: 0})
	require.Error(t, err)
	assert.Equal(t, "first_name", field)

	field, err = validator.FirstInvalidField(&traveler{FirstName: "R", Adults: 1})
	require.NoError(t, err)
	assert.Empty(t, field)
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2026-11-02", "day"))
	assert.Error(t, validator.ValidateVar("2026-13-02", "day"))
}

func TestValidateStructDetails(t *testing.T) {
	err := validator.ValidateStruct(&traveler{Email: "nope", Adults: 12})
	require.Error(t, err)

	var invalid *validator.Invalid
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 400, failure.GetCode(err))
	assert.Equal(t, "first_name is required", err.Error())
	assert.Equal(t, map[string]any{"fields": map[string]string{
		"first_name": "first_name is required",
		"email":      "email must be a valid email address",
		"adults":     "adults must be less than or equal to 9",
	}}, invalid.Details())
}

func TestNotBlank(t *testing.T) {
	type document struct {
		Number string `json:"number" validate:"notblank"`
	}

	tests := []struct {
		name    string
		number  string
		wantErr bool
	}{
		{name: "filled", number: "A100"},
		{name: "empty", number: "", wantErr: true},
		{name: "whitespace", number: " \t ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&document{Number: tt.number})
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, "number is required")
		})
	}
}
