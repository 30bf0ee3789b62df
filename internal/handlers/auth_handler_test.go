package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devconnect/backend/internal/models"
)

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{name: "missing name", req: models.RegisterRequest{Email: "a@b.co", Password: "secret1"}},
		{name: "bad email", req: models.RegisterRequest{Name: "Ada", Email: "nope", Password: "secret1"}},
		{name: "short password", req: models.RegisterRequest{Name: "Ada", Email: "a@b.co", Password: "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/users", "", tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			resp := decodeJSON[models.ValidationErrorResponse](t, rec)
			assert.NotEmpty(t, resp.Errors)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	env.register(t, "Ada", "ada@example.com")

	rec := env.do(t, http.MethodPost, "/api/users", "", models.RegisterRequest{
		Name:     "Imposter",
		Email:    "ada@example.com",
		Password: "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeJSON[models.ValidationErrorResponse](t, rec)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "User already exists", resp.Errors[0].Msg)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "Ada", "ada@example.com")

	rec := env.do(t, http.MethodPost, "/api/auth", "", models.LoginRequest{
		Email:    "ada@example.com",
		Password: "secret1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[models.TokenResponse](t, rec)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginInvalidCredentialsIndistinguishable(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "Ada", "ada@example.com")

	wrongPassword := env.do(t, http.MethodPost, "/api/auth", "", models.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong-password",
	})
	unknownEmail := env.do(t, http.MethodPost, "/api/auth", "", models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "secret1",
	})

	// Wrong password and unknown email must be indistinguishable.
	assert.Equal(t, http.StatusBadRequest, wrongPassword.Code)
	assert.Equal(t, http.StatusBadRequest, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestCurrentUser(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "Ada", "ada@example.com")

	rec := env.do(t, http.MethodGet, "/api/auth", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	user := decodeJSON[models.User](t, rec)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEmpty(t, user.Avatar)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestCurrentUserRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/auth", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	resp := decodeJSON[models.ErrorResponse](t, rec)
	assert.Equal(t, "No token, authorization denied", resp.Msg)
}
