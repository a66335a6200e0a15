package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/roommate-service/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRequestVerifyTokenHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockVerifyTokenRequester(ctrl)
	mockSvc.EXPECT().RequestVerifyToken(gomock.Any(), "john@example.com").Return(nil)

	rr := httptest.NewRecorder()
	NewRequestVerifyTokenHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/auth/request-verify-token", `{"email":"john@example.com"}`, nil, nil))

	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestVerifyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{name: "success", expectedCode: http.StatusOK},
		{name: "bad token", err: services.ErrBadToken, expectedCode: http.StatusBadRequest, expectedBody: `{"detail":"VERIFY_USER_BAD_TOKEN"}`},
		{name: "already verified", err: services.ErrUserAlreadyVerified, expectedCode: http.StatusBadRequest, expectedBody: `{"detail":"VERIFY_USER_ALREADY_VERIFIED"}`},
		{name: "internal error", err: errors.New("boom"), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockVerifier(ctrl)
			call := mockSvc.EXPECT().Verify(gomock.Any(), "tok")
			if tt.err != nil {
				call.Return(nil, tt.err)
			} else {
				u := testUser()
				u.IsVerified = true
				call.Return(u, nil)
			}

			rr := httptest.NewRecorder()
			NewVerifyHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/auth/verify", `{"token":"tok"}`, nil, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}

	t.Run("missing token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewVerifyHandler(NewMockVerifier(ctrl)).ServeHTTP(rr, newRequest(http.MethodPost, "/auth/verify", `{}`, nil, nil))
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}
