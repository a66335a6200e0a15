package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-service/internal/middlewares"
	"github.com/sbilibin2017/roommate-service/internal/models"
	"github.com/stretchr/testify/require"
)

// newRequest builds a request carrying chi URL params and, when user is
// not nil, the authenticated user.
func newRequest(method, target, body string, params map[string]string, user *models.User) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = http.NoBody
	}
	req := httptest.NewRequest(method, target, reader)

	ctx := req.Context()
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	if user != nil {
		ctx = middlewares.WithUser(ctx, user)
	}
	return req.WithContext(ctx)
}

func testUser() *models.User {
	return &models.User{
		ID:       uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Email:    "john@example.com",
		IsActive: true,
	}
}

func decodeDetail(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.DetailResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp.Detail
}

func decodeFieldErrors(t *testing.T, rr *httptest.ResponseRecorder) []models.FieldError {
	t.Helper()
	var resp ValidationErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp.Detail
}
