package services_test

import (
	"fmt"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumina/internal/models"
	"lumina/internal/services"
)

const testJWTSecret = "test_jwt_secret"

func TestAuthService_Login(t *testing.T) {
	st := newTestStore(t)
	auth := services.NewAuthService(st, testJWTSecret)

	user, err := auth.Login("admin@lumina.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, models.RoleAdmin, user.Role)

	current := st.Current().CurrentUser
	require.NotNil(t, current)
	assert.Equal(t, "u1", current.ID)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	st := newTestStore(t)
	auth := services.NewAuthService(st, testJWTSecret)

	user, err := auth.Login("nobody@lumina.com")
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Nil(t, user)
	assert.Nil(t, st.Current().CurrentUser)
}

func TestAuthService_LogoutClearsUserAndCart(t *testing.T) {
	st := newTestStore(t)
	auth := services.NewAuthService(st, testJWTSecret)
	cart := services.NewCartService(st)

	_, err := auth.Login("user@lumina.com")
	require.NoError(t, err)
	require.NoError(t, cart.Add("p1", 2))
	require.NotEmpty(t, st.Current().Cart)

	require.NoError(t, auth.Logout())

	state := st.Current()
	assert.Nil(t, state.CurrentUser)
	assert.Empty(t, state.Cart)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	st := newTestStore(t)
	auth := services.NewAuthService(st, testJWTSecret)

	_, err := auth.Login("user@lumina.com")
	require.NoError(t, err)

	name := "Jane Doe"
	phone := "555-0101"
	updated, err := auth.UpdateProfile(services.ProfilePatch{Name: &name, Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, "555-0101", updated.Phone)
	// Untouched fields survive the merge.
	assert.Equal(t, "user@lumina.com", updated.Email)

	// Both the current user and the users collection reflect the change.
	state := st.Current()
	assert.Equal(t, "Jane Doe", state.CurrentUser.Name)
	assert.Equal(t, "Jane Doe", state.UserByID("u2").Name)
}

func TestAuthService_UpdateProfileRequiresLogin(t *testing.T) {
	st := newTestStore(t)
	auth := services.NewAuthService(st, testJWTSecret)

	name := "Nobody"
	_, err := auth.UpdateProfile(services.ProfilePatch{Name: &name})
	assert.ErrorIs(t, err, services.ErrNotAuthenticated)
}

func TestAuthService_IssueAndValidateToken(t *testing.T) {
	st := newTestStore(t)
	auth := services.NewAuthService(st, testJWTSecret)

	user, err := auth.Login("admin@lumina.com")
	require.NoError(t, err)

	token, err := auth.IssueToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Validate through the service.
	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims["user_id"])
	assert.Equal(t, "admin@lumina.com", claims["email"])
	assert.Equal(t, string(models.RoleAdmin), claims["role"])

	// And independently, to pin the signing method and secret.
	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
}

func TestAuthService_ValidateTokenRejectsGarbage(t *testing.T) {
	st := newTestStore(t)
	auth := services.NewAuthService(st, testJWTSecret)

	_, err := auth.ValidateToken("invalid.token.string")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}
