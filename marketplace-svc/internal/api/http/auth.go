package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tiffinbox/marketplace-svc/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

type userCtxKey struct{}

// Principals resolves the caller behind a token.
type Principals interface {
	GetUser(ctx context.Context, id int) (*domain.User, error)
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
}

// Authenticator verifies HS256 bearer tokens whose subject is a user id.
type Authenticator struct {
	secret []byte
	users  Principals
}

func NewAuthenticator(secret string, users Principals) *Authenticator {
	return &Authenticator{secret: []byte(secret), users: users}
}

// IssueToken signs a token for userID. Used by the seed command and tests.
func IssueToken(secret string, userID int, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func (a *Authenticator) userID(r *http.Request) (int, bool) {
	header := r.Header.Get("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return 0, false
	}
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return 0, false
	}
	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Require admits verified users holding one of roles; no roles admits any verified user.
func (a *Authenticator) Require(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := a.userID(r)
			if !ok {
				writeMessage(w, http.StatusUnauthorized, "not authorized, token failed")
				return
			}
			user, err := a.users.GetUser(r.Context(), id)
			if err != nil {
				writeMessage(w, http.StatusUnauthorized, "not authorized, user not found")
				return
			}
			if !user.IsVerified {
				writeMessage(w, http.StatusUnauthorized, "account is not verified")
				return
			}
			if len(roles) > 0 && !hasRole(user.Role, roles) {
				writeMessage(w, http.StatusUnauthorized, "not authorized for this action")
				return
			}
			if user.Role == domain.RoleRestaurant && user.RestaurantID != nil {
				rest, err := a.users.GetRestaurant(r.Context(), *user.RestaurantID)
				if err == nil && rest.IsBlocked {
					writeMessage(w, http.StatusUnauthorized, "restaurant is blocked")
					return
				}
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userCtxKey{}, user)))
		})
	}
}

func hasRole(role domain.Role, allowed []domain.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

func currentUser(r *http.Request) *domain.User {
	u, _ := r.Context().Value(userCtxKey{}).(*domain.User)
	return u
}
