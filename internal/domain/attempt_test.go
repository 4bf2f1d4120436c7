package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestNewAttempt_NormalizesTrack(t *testing.T) {
	a := NewAttempt("u1", "  JavaScript ", 8, 10, nil)
	assert.Equal(t, "javascript", a.Track)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestAttemptValidate(t *testing.T) {
	tests := []struct {
		name    string
		attempt *Attempt
		wantErr bool
	}{
		{"valid", NewAttempt("u1", "javascript", 8, 10, floatPtr(42)), false},
		{"valid without time", NewAttempt("u1", "javascript", 0, 1, nil), false},
		{"missing user", NewAttempt("", "javascript", 8, 10, nil), true},
		{"missing track", NewAttempt("u1", "   ", 8, 10, nil), true},
		{"negative score", NewAttempt("u1", "javascript", -1, 10, nil), true},
		{"score above total", NewAttempt("u1", "javascript", 11, 10, nil), true},
		{"zero total", NewAttempt("u1", "javascript", 0, 0, nil), true},
		{"total above max", NewAttempt("u1", "javascript", 50, 101, nil), true},
		{"negative time", NewAttempt("u1", "javascript", 8, 10, floatPtr(-1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.attempt.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, IsCode(err, ErrValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuizQuestionValidate(t *testing.T) {
	valid := NewQuizQuestion("Web", "What does CSS stand for?", []string{"a", "b", "c", "d"}, 1, 0)
	assert.NoError(t, valid.Validate())
	assert.Equal(t, "web", valid.Track)

	threeOptions := NewQuizQuestion("web", "q", []string{"a", "b", "c"}, 0, 0)
	assert.Error(t, threeOptions.Validate())

	badAnswer := NewQuizQuestion("web", "q", []string{"a", "b", "c", "d"}, 4, 0)
	assert.Error(t, badAnswer.Validate())
}
