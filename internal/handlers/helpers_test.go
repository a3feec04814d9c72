package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"study_assist/internal/model"
)

// doRequest runs a request through the shared test router and decodes the
// response body into out when it is non-nil.
func doRequest(t *testing.T, method, path string, body interface{}, out interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		if raw, ok := body.(string); ok {
			reqBody = strings.NewReader(raw)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			reqBody = bytes.NewReader(b)
		}
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)

	if out != nil && rec.Code < 300 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

// decodeError decodes the standard error envelope from a response body.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) model.APIErrorResponse {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// registerTestUser creates an account through the API and returns its id.
func registerTestUser(t *testing.T, name, email string) string {
	t.Helper()
	var resp model.RegisterResponse
	rec := doRequest(t, http.MethodPost, "/api/v1/register", map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": "password123",
	}, &resp)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return resp.UserID.String()
}
