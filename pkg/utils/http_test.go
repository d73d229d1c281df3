package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/green-basket/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	Quantity int `validate:"gt=0"`
}

type checkout struct {
	Items []line `validate:"required,min=1,dive"`
}

func TestDecodeBody(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"Items":[{"Quantity":2}]}`},
		{name: "unknown field", body: `{"Items":[],"coupon":"FREE"}`, wantErr: true},
		{name: "malformed", body: `{"Items":`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			var v checkout
			err := utils.DecodeBody(r, &v)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2, v.Items[0].Quantity)
		})
	}
}

func TestWriteValidationError(t *testing.T) {
	err := validator.New().Struct(checkout{Items: []line{{Quantity: 0}}})
	require.Error(t, err)

	rr := httptest.NewRecorder()
	require.NoError(t, utils.WriteValidationError(rr, err))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var res utils.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	assert.Equal(t, "invalid request", res.Message)
	assert.Equal(t, map[string]string{"Items[0].Quantity": "gt"}, res.Fields)
}

func TestWriteSuccess(t *testing.T) {
	rr := httptest.NewRecorder()
	require.NoError(t, utils.WriteSuccess(rr, "no delivery partner available"))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"warning":"no delivery partner available"}`, rr.Body.String())
}
