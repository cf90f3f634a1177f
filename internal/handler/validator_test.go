package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorPlatformTag(t *testing.T) {
	InitValidator()

	type probe struct {
		Platform string `validate:"required,platform"`
	}

	tests := []struct {
		name     string
		platform string
		wantErr  bool
	}{
		{"discord", "discord", false},
		{"twitch", "twitch", false},
		{"youtube", "youtube", false},
		{"mixed case", "Discord", false},
		{"unsupported", "myspace", true},
		{"empty fails required", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GetValidator().ValidateStruct(probe{Platform: tt.platform})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()

	type probe struct {
		Username string `validate:"required,max=10"`
		Platform string `validate:"required,platform"`
	}

	err := GetValidator().ValidateStruct(probe{Username: "this-name-is-far-too-long", Platform: "myspace"})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "Must be at most 10 characters", fields["username"])
	assert.Equal(t, "Invalid platform", fields["platform"])
}
