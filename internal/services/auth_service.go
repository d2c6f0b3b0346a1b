package services

import (
	"fmt"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"

	"lumina/internal/models"
	"lumina/internal/store"
)

// AuthService handles sign-in, sign-out and profile updates. The store-level
// contract is a role-switch simulation: users are looked up by email alone.
// On top of that the service issues JWT session tokens for the HTTP layer.
type AuthService struct {
	store      *store.Store
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(st *store.Store, jwtSecret string) *AuthService {
	return &AuthService{
		store:      st,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// Login looks up a user by exact email match, makes them the current user and
// commits. Returns ErrNotFound when no user has that email.
func (s *AuthService) Login(email string) (*models.User, error) {
	var result models.User
	err := s.store.Update("auth.login", func(state *models.AppState) error {
		user := state.UserByEmail(email)
		if user == nil {
			return fmt.Errorf("user with email %s: %w", email, ErrNotFound)
		}
		cu := user.Clone()
		state.CurrentUser = &cu
		result = cu.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout clears the current user and empties the cart.
func (s *AuthService) Logout() error {
	return s.store.Update("auth.logout", func(state *models.AppState) error {
		state.CurrentUser = nil
		state.Cart = []models.CartItem{}
		return nil
	})
}

// ProfilePatch carries the fields of a profile update. Nil fields are left
// unchanged.
type ProfilePatch struct {
	Name      *string           `json:"name,omitempty"`
	Phone     *string           `json:"phone,omitempty"`
	Addresses *[]models.Address `json:"addresses,omitempty"`
	Wishlist  *[]string         `json:"wishlist,omitempty"`
}

// UpdateProfile merges the patch into the current user and their entry in the
// users collection. Returns ErrNotAuthenticated when nobody is signed in.
func (s *AuthService) UpdateProfile(patch ProfilePatch) (*models.User, error) {
	var updated models.User
	err := s.store.Update("auth.updateProfile", func(state *models.AppState) error {
		if state.CurrentUser == nil {
			return ErrNotAuthenticated
		}

		updated = state.CurrentUser.Clone()
		if patch.Name != nil {
			updated.Name = *patch.Name
		}
		if patch.Phone != nil {
			updated.Phone = *patch.Phone
		}
		if patch.Addresses != nil {
			updated.Addresses = append([]models.Address(nil), *patch.Addresses...)
		}
		if patch.Wishlist != nil {
			updated.Wishlist = append([]string(nil), *patch.Wishlist...)
		}

		if entry := state.UserByID(updated.ID); entry != nil {
			*entry = updated.Clone()
		}
		cu := updated.Clone()
		state.CurrentUser = &cu
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// CurrentUser returns the signed-in user, or nil.
func (s *AuthService) CurrentUser() *models.User {
	return s.store.Current().CurrentUser
}

// IssueToken generates a signed JWT session token for the given user.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     time.Now().Add(s.tokenDurat).Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
