package data

import (
	"testing"

	"github.com/emzola/kritika/internal/validator"
	"github.com/stretchr/testify/assert"
)

func TestValidateReview(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		score     int8
		wantField string
	}{
		{"valid review", "a fine piece of work", 8, ""},
		{"lowest score", "weak", 1, ""},
		{"highest score", "flawless", 10, ""},
		{"score of zero", "text", 0, "score"},
		{"score above ten", "text", 11, "score"},
		{"negative score", "text", -3, "score"},
		{"missing text", "", 5, "text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()
			ValidateReview(v, &Review{Text: tt.text, Score: tt.score})
			if tt.wantField == "" {
				assert.True(t, v.Valid(), "errors: %v", v.Errors)
			} else {
				assert.Contains(t, v.Errors, tt.wantField)
			}
		})
	}
}

func TestValidateComment(t *testing.T) {
	v := validator.New()
	ValidateComment(v, &Comment{Text: "agreed"})
	assert.True(t, v.Valid(), "errors: %v", v.Errors)

	v = validator.New()
	ValidateComment(v, &Comment{})
	assert.Contains(t, v.Errors, "text")
}
