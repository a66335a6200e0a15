package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/roommate-service/internal/models"
	"github.com/sbilibin2017/roommate-service/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFormRequest(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/auth/jwt/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		form         url.Values
		mockSetup    func(m *MockLoginer)
		expectedCode int
		check        func(t *testing.T, rr *httptest.ResponseRecorder)
	}{
		{
			name: "success",
			form: url.Values{"username": {"john@example.com"}, "password": {"secret123"}},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "secret123").
					Return("jwt-token", nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, rr *httptest.ResponseRecorder) {
				var got models.BearerResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				assert.Equal(t, models.BearerResponse{AccessToken: "jwt-token", TokenType: "bearer"}, got)
			},
		},
		{
			name: "bad credentials",
			form: url.Values{"username": {"john@example.com"}, "password": {"wrong"}},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "wrong").
					Return("", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusBadRequest,
			check: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.Equal(t, "LOGIN_BAD_CREDENTIALS", decodeDetail(t, rr))
			},
		},
		{
			name: "internal error",
			form: url.Values{"username": {"john@example.com"}, "password": {"secret123"}},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "missing fields",
			form:         url.Values{},
			expectedCode: http.StatusUnprocessableEntity,
			check: func(t *testing.T, rr *httptest.ResponseRecorder) {
				errs := decodeFieldErrors(t, rr)
				require.Len(t, errs, 2)
				assert.Equal(t, []string{"body", "username"}, errs[0].Loc)
				assert.Equal(t, []string{"body", "password"}, errs[1].Loc)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			NewLoginHandler(mockSvc).ServeHTTP(rr, newFormRequest(tt.form))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.check != nil {
				tt.check(t, rr)
			}
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "success", expectedCode: http.StatusNoContent},
		{name: "invalid token", err: services.ErrInvalidCredentials, expectedCode: http.StatusUnauthorized},
		{name: "redis failure", err: errors.New("redis down"), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLogouter(ctrl)
			mockSvc.EXPECT().Logout(gomock.Any(), gomock.Any()).Return(tt.err)

			rr := httptest.NewRecorder()
			NewLogoutHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/auth/jwt/logout", "", nil, testUser()))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
