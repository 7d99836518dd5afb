package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aquadrill/fieldops/internal/auth"
	"github.com/aquadrill/fieldops/internal/db"
	"github.com/aquadrill/fieldops/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserCollection is a mock implementation of UserCollection
type MockUserCollection struct {
	mock.Mock
}

func (m *MockUserCollection) InsertUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserCollection) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) UpdateUser(ctx context.Context, id string, user models.User) error {
	args := m.Called(ctx, id, user)
	return args.Error(0)
}

func (m *MockUserCollection) DeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserCollection) UpdateLastLogin(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestAuthHandler_Login(t *testing.T) {
	authService := auth.NewService("test-secret", 0)

	t.Run("successful login", func(t *testing.T) {
		mockUserCollection := new(MockUserCollection)
		handler := NewAuthHandler(authService, db.UserCollection(mockUserCollection))

		passwordHash, err := authService.HashPassword("password123")
		if err != nil {
			t.Fatalf("Failed to hash password: %v", err)
		}
		user := &models.User{
			ID:           primitive.NewObjectID(),
			Username:     "asha",
			Name:         "Asha",
			Email:        "asha@example.com",
			PasswordHash: passwordHash,
			Role:         models.RoleStaff,
			IsActive:     true,
		}

		mockUserCollection.On("FindUserByUsername", mock.Anything, "asha").Return(user, nil)
		mockUserCollection.On("UpdateLastLogin", mock.Anything, user.ID.Hex()).Return(nil)

		body, _ := json.Marshal(models.LoginRequest{Username: "asha", Password: "password123"})
		req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response models.LoginResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotEmpty(t, response.Token)
		assert.NotEmpty(t, response.RefreshToken)
		assert.Equal(t, "Asha", response.User.Name)

		claims, err := authService.ValidateToken(response.Token)
		assert.NoError(t, err)
		assert.Equal(t, "Asha", claims.Name)
		assert.Equal(t, models.RoleStaff, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockUserCollection := new(MockUserCollection)
		handler := NewAuthHandler(authService, db.UserCollection(mockUserCollection))

		passwordHash, _ := authService.HashPassword("password123")
		user := &models.User{
			ID:           primitive.NewObjectID(),
			Username:     "asha",
			PasswordHash: passwordHash,
			IsActive:     true,
		}
		mockUserCollection.On("FindUserByUsername", mock.Anything, "asha").Return(user, nil)

		body, _ := json.Marshal(models.LoginRequest{Username: "asha", Password: "wrong"})
		req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockUserCollection := new(MockUserCollection)
		handler := NewAuthHandler(authService, db.UserCollection(mockUserCollection))

		mockUserCollection.On("FindUserByUsername", mock.Anything, "nobody").Return(nil, assert.AnError)

		body, _ := json.Marshal(models.LoginRequest{Username: "nobody", Password: "password123"})
		req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("inactive account", func(t *testing.T) {
		mockUserCollection := new(MockUserCollection)
		handler := NewAuthHandler(authService, db.UserCollection(mockUserCollection))

		passwordHash, _ := authService.HashPassword("password123")
		user := &models.User{
			ID:           primitive.NewObjectID(),
			Username:     "asha",
			PasswordHash: passwordHash,
			IsActive:     false,
		}
		mockUserCollection.On("FindUserByUsername", mock.Anything, "asha").Return(user, nil)

		body, _ := json.Marshal(models.LoginRequest{Username: "asha", Password: "password123"})
		req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		handler := NewAuthHandler(authService, new(MockUserCollection))

		body, _ := json.Marshal(models.LoginRequest{Username: "asha"})
		req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Register(t *testing.T) {
	authService := auth.NewService("test-secret", 0)

	t.Run("successful registration", func(t *testing.T) {
		mockUserCollection := new(MockUserCollection)
		handler := NewAuthHandler(authService, db.UserCollection(mockUserCollection))

		mockUserCollection.On("FindUserByUsername", mock.Anything, "ravi").Return(nil, assert.AnError)
		mockUserCollection.On("FindUserByEmail", mock.Anything, "ravi@example.com").Return(nil, assert.AnError)
		mockUserCollection.On("InsertUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
			return u.Username == "ravi" && u.Name == "Ravi" &&
				u.Role == models.RoleStaff && u.PasswordHash != "password123"
		})).Return(nil)

		body, _ := json.Marshal(models.RegisterRequest{
			Username: "ravi",
			Name:     "Ravi",
			Email:    "ravi@example.com",
			Password: "password123",
			Role:     models.RoleStaff,
		})
		req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
		mockUserCollection.AssertExpectations(t)
	})

	t.Run("duplicate username", func(t *testing.T) {
		mockUserCollection := new(MockUserCollection)
		handler := NewAuthHandler(authService, db.UserCollection(mockUserCollection))

		existing := &models.User{Username: "ravi"}
		mockUserCollection.On("FindUserByUsername", mock.Anything, "ravi").Return(existing, nil)

		body, _ := json.Marshal(models.RegisterRequest{
			Username: "ravi",
			Name:     "Ravi",
			Email:    "ravi@example.com",
			Password: "password123",
			Role:     models.RoleStaff,
		})
		req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invalid role", func(t *testing.T) {
		handler := NewAuthHandler(authService, new(MockUserCollection))

		body, _ := json.Marshal(models.RegisterRequest{
			Username: "ravi",
			Name:     "Ravi",
			Email:    "ravi@example.com",
			Password: "password123",
			Role:     "superuser",
		})
		req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing display name", func(t *testing.T) {
		handler := NewAuthHandler(authService, new(MockUserCollection))

		body, _ := json.Marshal(models.RegisterRequest{
			Username: "ravi",
			Email:    "ravi@example.com",
			Password: "password123",
			Role:     models.RoleStaff,
		})
		req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("weak password", func(t *testing.T) {
		handler := NewAuthHandler(authService, new(MockUserCollection))

		body, _ := json.Marshal(models.RegisterRequest{
			Username: "ravi",
			Name:     "Ravi",
			Email:    "ravi@example.com",
			Password: "short",
			Role:     models.RoleStaff,
		})
		req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
