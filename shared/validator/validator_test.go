package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdesk/shared/failure"
	"taskdesk/shared/validator"
)

type createRequest struct {
	Title    string `json:"title"    validate:"required,max=100"`
	Priority string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid body", body: `{"title":"Test","priority":"high"}`},
		{name: "missing required field", body: `{"priority":"high"}`, wantErr: true},
		{name: "invalid enum value", body: `{"title":"Test","priority":"urgent"}`, wantErr: true},
		{name: "malformed json", body: `{"title":`, wantErr: true},
		{name: "wrong field type", body: `{"title":42}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req createRequest
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestValidateStruct(t *testing.T) {
	valid := createRequest{Title: "Test"}
	assert.NoError(t, validator.ValidateStruct(&valid))

	invalid := createRequest{}
	err := validator.ValidateStruct(&invalid)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("#2575fc", "hexcolor"))
	assert.Error(t, validator.ValidateVar("blue", "hexcolor"))
}
