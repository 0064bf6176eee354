package services

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/beerkeeper/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple", input: "IPA"},
		{name: "single character", input: "X"},
		{name: "surrounding spaces kept valid", input: "  Stout  "},
		{name: "unicode", input: "Café Brü"},
		{name: "empty", input: "", wantErr: true},
		{name: "spaces only", input: "   ", wantErr: true},
		{name: "tabs and newlines", input: "\t\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, common.ErrValidation))
			var ve *common.ValidationError
			if assert.True(t, errors.As(err, &ve)) {
				assert.Equal(t, MsgEmptyName, ve.Message)
				assert.Equal(t, "name", ve.Field)
			}
		})
	}
}
