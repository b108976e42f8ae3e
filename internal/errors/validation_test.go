package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachfight/arena-api/internal/errors"
)

func TestValidationBuilder_NoErrors(t *testing.T) {
	vb := errors.NewValidationBuilder()
	assert.NoError(t, vb.Build())
}

func TestValidationBuilder_RequiredFields(t *testing.T) {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("Roller")
	vb.RequiredField("EventBus")

	err := vb.Build()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	fields, ok := meta["validation_errors"].(map[string][]string)
	require.True(t, ok)
	assert.Contains(t, fields, "Roller")
	assert.Contains(t, fields, "EventBus")
}

func TestValidationBuilder_Fieldf(t *testing.T) {
	vb := errors.NewValidationBuilder()
	vb.Fieldf("RoundCap", "must be positive, got %d", -1)

	err := vb.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RoundCap")
	assert.Contains(t, err.Error(), "must be positive, got -1")
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"below range", -5, true},
		{"lower bound", 0, false},
		{"upper bound", 100, false},
		{"above range", 101, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vb := errors.NewValidationBuilder()
			errors.ValidateRange("morale", tt.value, 0, 100, vb)

			err := vb.Build()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
