package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kjohnson1213/outfitter-finance/internal/apperror"
	"github.com/Kjohnson1213/outfitter-finance/internal/validation"
)

type request struct {
	Title   string `json:"title" validate:"required" msg:"Please enter a title."`
	Start   string `json:"start" validate:"required,flexdate"`
	Email   string `json:"email" validate:"omitempty,email"`
	Price   string `json:"price" validate:"omitempty,money"`
	Percent string `json:"percent" validate:"required,percent"`
	Type    string `json:"type" validate:"required,hunttype"`
}

func valid() request {
	return request{
		Title:   "Early Elk",
		Start:   "9/1/2026",
		Email:   "client@example.com",
		Price:   "$6,000.00",
		Percent: "50",
		Type:    "elk",
	}
}

func TestStruct_Valid(t *testing.T) {
	r := valid()
	assert.NoError(t, validation.Struct(r))
	assert.NoError(t, validation.Struct(&r))

	r.Email = ""
	r.Price = ""
	assert.NoError(t, validation.Struct(r))
}

func TestStruct_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *request)
		field  string
		reason string
	}{
		{"missing title uses msg tag", func(r *request) { r.Title = "" }, "title", "Please enter a title."},
		{"missing start", func(r *request) { r.Start = "" }, "start", "This field is required"},
		{"bad start", func(r *request) { r.Start = "2026-02-30" }, "start", "Use YYYY-MM-DD or MM/DD/YYYY"},
		{"bad email", func(r *request) { r.Email = "nope" }, "email", "Invalid email format"},
		{"negative price", func(r *request) { r.Price = "-5" }, "price", "Must be a non-negative amount"},
		{"garbage price", func(r *request) { r.Price = "six grand" }, "price", "Must be a non-negative amount"},
		{"price too large for cents", func(r *request) { r.Price = "1e30" }, "price", "Must be a non-negative amount"},
		{"price with huge exponent", func(r *request) { r.Price = "1e100000000" }, "price", "Must be a non-negative amount"},
		{"percent with huge exponent", func(r *request) { r.Percent = "1e100000000" }, "percent", "Must be between 0 and 100"},
		{"percent over 100", func(r *request) { r.Percent = "100.5" }, "percent", "Must be between 0 and 100"},
		{"percent not a number", func(r *request) { r.Percent = "half" }, "percent", "Must be between 0 and 100"},
		{"unknown type", func(r *request) { r.Type = "Moose" }, "type", "Must be one of: Elk, Deer, Turkey, Bear"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid()
			tt.mutate(&r)

			err := validation.Struct(r)
			var ve *apperror.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, tt.reason, ve.Reason)
		})
	}
}

func TestStruct_PercentBounds(t *testing.T) {
	for _, p := range []string{"0", "100", "12.5", " 33 ", "5e1", "1e-100000000"} {
		r := valid()
		r.Percent = p
		assert.NoError(t, validation.Struct(r), p)
	}
}
