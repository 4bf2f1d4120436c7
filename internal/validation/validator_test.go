package validation

import (
	"testing"

	"campus-quiz/internal/domain"
	"campus-quiz/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTrack(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain", input: "web", want: "web"},
		{name: "normalizes case and spaces", input: "  AIML ", want: "aiml"},
		{name: "allows hyphens and digits", input: "cloud-2", want: "cloud-2"},
		{name: "empty", input: "   ", wantErr: true},
		{name: "rejects slashes", input: "web/dev", wantErr: true},
		{name: "rejects leading hyphen", input: "-web", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ValidateTrack(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsCode(err, domain.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateSubmitScoreRequest(t *testing.T) {
	v := NewValidator()
	neg := -1.0

	tests := []struct {
		name    string
		req     dto.SubmitScoreRequest
		wantErr bool
	}{
		{name: "valid", req: dto.SubmitScoreRequest{Track: "web", Score: 7, Total: 10}},
		{name: "perfect score", req: dto.SubmitScoreRequest{Track: "web", Score: 10, Total: 10}},
		{name: "score above total", req: dto.SubmitScoreRequest{Track: "web", Score: 11, Total: 10}, wantErr: true},
		{name: "negative score", req: dto.SubmitScoreRequest{Track: "web", Score: -1, Total: 10}, wantErr: true},
		{name: "zero total", req: dto.SubmitScoreRequest{Track: "web", Score: 0, Total: 0}, wantErr: true},
		{name: "total above cap", req: dto.SubmitScoreRequest{Track: "web", Score: 0, Total: 101}, wantErr: true},
		{name: "negative time", req: dto.SubmitScoreRequest{Track: "web", Score: 5, Total: 10, TimeTaken: &neg}, wantErr: true},
		{name: "missing track", req: dto.SubmitScoreRequest{Score: 5, Total: 10}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateSubmitScoreRequest(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateSubmitScoreRequest_NormalizesTrackInPlace(t *testing.T) {
	v := NewValidator()
	req := dto.SubmitScoreRequest{Track: " Web ", Score: 5, Total: 10}

	require.NoError(t, v.ValidateSubmitScoreRequest(&req))
	assert.Equal(t, "web", req.Track)
}

func TestValidateRegisterRequest(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateRegisterRequest(&dto.RegisterRequest{
		Name: "Jiya", Email: "jiya@csmu.edu", Password: "long enough",
	}))
	assert.Error(t, v.ValidateRegisterRequest(&dto.RegisterRequest{
		Name: "", Email: "jiya@csmu.edu", Password: "long enough",
	}))
	assert.Error(t, v.ValidateRegisterRequest(&dto.RegisterRequest{
		Name: "Jiya", Email: "not-an-email", Password: "long enough",
	}))
	assert.Error(t, v.ValidateRegisterRequest(&dto.RegisterRequest{
		Name: "Jiya", Email: "jiya@csmu.edu", Password: "short",
	}))
}
