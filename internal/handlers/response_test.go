package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		ok       bool
		wantLoc  []string
		wantType string
	}{
		{name: "valid", body: `{"email":"a@b.io"}`, ok: true},
		{name: "empty body", body: "", wantLoc: []string{"body"}, wantType: "value_error.missing"},
		{name: "malformed", body: `{"email":`, wantLoc: []string{"body"}, wantType: "value_error.jsondecode"},
		{name: "invalid email", body: `{"email":"nope"}`, wantLoc: []string{"body", "email"}, wantType: "value_error.email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			var dst models.EmailRequest
			ok := decodeBody(rr, newRequest(http.MethodPost, "/", tt.body, nil, nil), &dst)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				return
			}
			assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
			errs := decodeFieldErrors(t, rr)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantLoc, errs[0].Loc)
			assert.Equal(t, tt.wantType, errs[0].Type)
		})
	}
}

func TestUUIDParam(t *testing.T) {
	id := uuid.New()

	rr := httptest.NewRecorder()
	got, ok := uuidParam(rr, newRequest(http.MethodGet, "/", "", map[string]string{"ad_id": id.String()}, nil), "ad_id")
	assert.True(t, ok)
	assert.Equal(t, id, got)

	rr = httptest.NewRecorder()
	_, ok = uuidParam(rr, newRequest(http.MethodGet, "/", "", map[string]string{"ad_id": "42"}, nil), "ad_id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	errs := decodeFieldErrors(t, rr)
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"path", "ad_id"}, errs[0].Loc)
	assert.Equal(t, "type_error.uuid", errs[0].Type)
}

func TestCurrentUser(t *testing.T) {
	rr := httptest.NewRecorder()
	assert.Nil(t, currentUser(rr, newRequest(http.MethodGet, "/", "", nil, nil)))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	user := testUser()
	rr = httptest.NewRecorder()
	assert.Equal(t, user, currentUser(rr, newRequest(http.MethodGet, "/", "", nil, user)))
}

func TestRootHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewRootHandler("Roommate Service")(rr, newRequest(http.MethodGet, "/", "", nil, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"online","message":"Welcome to the Roommate Service. Visit /docs for API documentation."}`, rr.Body.String())
}
