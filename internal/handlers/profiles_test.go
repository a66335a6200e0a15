package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-service/internal/models"
	"github.com/sbilibin2017/roommate-service/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := testUser()

	tests := []struct {
		name         string
		body         string
		user         *models.User
		mockSetup    func(m *MockProfileCreator)
		expectedCode int
		expectedBody string
	}{
		{
			name: "created",
			body: `{"first_name":"John","gender":"male","birth_date":"1990-05-17"}`,
			user: user,
			mockSetup: func(m *MockProfileCreator) {
				m.EXPECT().
					Create(gomock.Any(), user.ID, gomock.Any()).
					DoAndReturn(func(_ any, userID uuid.UUID, in models.ProfileCreate) (*models.UserProfile, error) {
						require.NotNil(t, in.BirthDate)
						assert.Equal(t, "1990-05-17", in.BirthDate.String())
						return &models.UserProfile{ID: uuid.New(), UserID: userID, FirstName: in.FirstName}, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "already exists",
			body: `{"first_name":"John"}`,
			user: user,
			mockSetup: func(m *MockProfileCreator) {
				m.EXPECT().
					Create(gomock.Any(), user.ID, gomock.Any()).
					Return(nil, fmt.Errorf("create profile: %w", &repositories.ConstraintError{Code: "23505", Constraint: "user_profiles_user_id_key"}))
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"detail":"Profile already exists"}`,
		},
		{
			name:         "invalid gender",
			body:         `{"gender":"robot"}`,
			user:         user,
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "invalid birth date",
			body:         `{"birth_date":"17/05/1990"}`,
			user:         user,
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "unauthenticated",
			body:         `{}`,
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := NewMockProfileCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockRepo)
			}

			rr := httptest.NewRecorder()
			NewCreateProfileHandler(mockRepo).ServeHTTP(rr, newRequest(http.MethodPost, "/profiles", tt.body, nil, tt.user))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestListProfilesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockProfileLister(ctrl)
	mockRepo.EXPECT().List(gomock.Any()).Return([]models.UserProfile{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	rr := httptest.NewRecorder()
	NewListProfilesHandler(mockRepo).ServeHTTP(rr, newRequest(http.MethodGet, "/profiles", "", nil, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []models.UserProfile
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Len(t, got, 2)
}

func TestGetProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	tests := []struct {
		name         string
		profile      *models.UserProfile
		err          error
		expectedCode int
	}{
		{name: "found", profile: &models.UserProfile{ID: id}, expectedCode: http.StatusOK},
		{name: "not found", expectedCode: http.StatusNotFound},
		{name: "store failure", err: errors.New("db down"), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := NewMockProfileGetter(ctrl)
			mockRepo.EXPECT().GetByID(gomock.Any(), id).Return(tt.profile, tt.err)

			rr := httptest.NewRecorder()
			NewGetProfileHandler(mockRepo).ServeHTTP(rr, newRequest(http.MethodGet, "/profiles/"+id.String(), "", map[string]string{"profile_id": id.String()}, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetMyProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := testUser()

	mockRepo := NewMockOwnProfileGetter(ctrl)
	mockRepo.EXPECT().GetByUserID(gomock.Any(), user.ID).Return(nil, nil)

	rr := httptest.NewRecorder()
	NewGetMyProfileHandler(mockRepo).ServeHTTP(rr, newRequest(http.MethodGet, "/profiles/me", "", nil, user))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Profile not found", decodeDetail(t, rr))
}

func TestUpdateMyProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := testUser()

	t.Run("partial update", func(t *testing.T) {
		mockRepo := NewMockOwnProfileUpdater(ctrl)
		mockRepo.EXPECT().
			UpdateByUserID(gomock.Any(), user.ID, gomock.Any()).
			DoAndReturn(func(_ any, userID uuid.UUID, patch models.ProfileUpdate) (*models.UserProfile, error) {
				assert.True(t, patch.City.IsSet())
				assert.True(t, patch.Bio.IsNull())
				assert.False(t, patch.FirstName.IsSet())
				return &models.UserProfile{UserID: userID, City: patch.City.Get()}, nil
			})

		rr := httptest.NewRecorder()
		NewUpdateMyProfileHandler(mockRepo).ServeHTTP(rr, newRequest(http.MethodPut, "/profiles/me", `{"city":"Berlin","bio":null}`, nil, user))

		assert.Equal(t, http.StatusOK, rr.Code)
		var got models.UserProfile
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, strPtr("Berlin"), got.City)
	})

	t.Run("no profile", func(t *testing.T) {
		mockRepo := NewMockOwnProfileUpdater(ctrl)
		mockRepo.EXPECT().UpdateByUserID(gomock.Any(), user.ID, gomock.Any()).Return(nil, nil)

		rr := httptest.NewRecorder()
		NewUpdateMyProfileHandler(mockRepo).ServeHTTP(rr, newRequest(http.MethodPut, "/profiles/me", `{"city":"Berlin"}`, nil, user))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("out of range latitude", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewUpdateMyProfileHandler(NewMockOwnProfileUpdater(ctrl)).ServeHTTP(rr, newRequest(http.MethodPut, "/profiles/me", `{"latitude":91}`, nil, user))

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}

func TestDeleteMyProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := testUser()

	tests := []struct {
		name         string
		deleted      bool
		err          error
		expectedCode int
		expectedBody string
	}{
		{name: "deleted", deleted: true, expectedCode: http.StatusOK, expectedBody: `{"detail":"Profile deleted successfully"}`},
		{name: "not found", expectedCode: http.StatusNotFound, expectedBody: `{"detail":"Profile not found"}`},
		{name: "store failure", err: errors.New("db down"), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := NewMockOwnProfileDeleter(ctrl)
			mockRepo.EXPECT().DeleteByUserID(gomock.Any(), user.ID).Return(tt.deleted, tt.err)

			rr := httptest.NewRecorder()
			NewDeleteMyProfileHandler(mockRepo).ServeHTTP(rr, newRequest(http.MethodDelete, "/profiles/me", "", nil, user))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}
