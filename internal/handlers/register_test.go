package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/roommate-service/internal/models"
	"github.com/sbilibin2017/roommate-service/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := testUser()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		check        func(t *testing.T, rr *httptest.ResponseRecorder)
	}{
		{
			name: "success",
			body: `{"email":"john@example.com","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "secret123").
					Return(user, nil)
			},
			expectedCode: http.StatusCreated,
			check: func(t *testing.T, rr *httptest.ResponseRecorder) {
				var got models.UserRead
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				assert.Equal(t, models.NewUserRead(user), got)
				assert.NotContains(t, rr.Body.String(), "hashed_password")
			},
		},
		{
			name: "user already exists",
			body: `{"email":"john@example.com","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "secret123").
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
			check: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.Equal(t, "REGISTER_USER_ALREADY_EXISTS", decodeDetail(t, rr))
			},
		},
		{
			name: "invalid password",
			body: `{"email":"john@example.com","password":"short"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "short").
					Return(nil, fmt.Errorf("%w: password should be at least 8 characters", services.ErrInvalidPassword))
			},
			expectedCode: http.StatusBadRequest,
			check: func(t *testing.T, rr *httptest.ResponseRecorder) {
				var got CodeReasonResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				assert.Equal(t, "REGISTER_INVALID_PASSWORD", got.Detail.Code)
				assert.Contains(t, got.Detail.Reason, "at least 8 characters")
			},
		},
		{
			name: "internal server error",
			body: `{"email":"john@example.com","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			check: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.Equal(t, "Internal server error", decodeDetail(t, rr))
			},
		},
		{
			name:         "invalid json",
			body:         `{"email":`,
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "invalid email",
			body:         `{"email":"not-an-email","password":"secret123"}`,
			expectedCode: http.StatusUnprocessableEntity,
			check: func(t *testing.T, rr *httptest.ResponseRecorder) {
				errs := decodeFieldErrors(t, rr)
				require.Len(t, errs, 1)
				assert.Equal(t, []string{"body", "email"}, errs[0].Loc)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			NewRegisterHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/auth/register", tt.body, nil, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.check != nil {
				tt.check(t, rr)
			}
		})
	}
}
