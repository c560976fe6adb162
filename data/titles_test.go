package data

import (
	"encoding/json"
	"testing"

	"github.com/emzola/kritika/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetRatingFromAverage(t *testing.T) {
	tests := []struct {
		name       string
		avg        float64
		hasReviews bool
		want       *int32
	}{
		{"no reviews", 0, false, nil},
		{"whole average", 7.0, true, ptrInt32(7)},
		{"truncates toward zero", 7.9, true, ptrInt32(7)},
		{"truncates just above integer", 5.0001, true, ptrInt32(5)},
		{"minimum score", 1.0, true, ptrInt32(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var title Title
			title.SetRatingFromAverage(tt.avg, tt.hasReviews)
			assert.Equal(t, tt.want, title.Rating)
		})
	}
}

func TestTitleRatingJSONNull(t *testing.T) {
	var title Title
	title.Name = "Solaris"
	title.SetRatingFromAverage(0, false)
	js, err := json.Marshal(&title)
	require.NoError(t, err)
	assert.Contains(t, string(js), `"rating":null`)

	title.SetRatingFromAverage(8.6, true)
	js, err = json.Marshal(&title)
	require.NoError(t, err)
	assert.Contains(t, string(js), `"rating":8`)
}

func TestValidateTitle(t *testing.T) {
	t.Run("valid title", func(t *testing.T) {
		v := validator.New()
		ValidateTitle(v, &Title{Name: "Solaris", Year: 1972})
		assert.True(t, v.Valid(), "errors: %v", v.Errors)
	})

	t.Run("missing name", func(t *testing.T) {
		v := validator.New()
		ValidateTitle(v, &Title{Year: 1972})
		assert.Contains(t, v.Errors, "name")
	})

	t.Run("future year", func(t *testing.T) {
		v := validator.New()
		ValidateTitle(v, &Title{Name: "Solaris", Year: 3000})
		assert.Contains(t, v.Errors, "year")
	})

	t.Run("year omitted is fine", func(t *testing.T) {
		v := validator.New()
		ValidateTitle(v, &Title{Name: "Solaris"})
		assert.True(t, v.Valid(), "errors: %v", v.Errors)
	})
}

func ptrInt32(n int32) *int32 {
	return &n
}
