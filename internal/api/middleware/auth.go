package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/chargemate-booking/internal/api/handlers"
	"github.com/m04kA/chargemate-booking/internal/domain"
)

const (
	msgMissingToken = "отсутствует токен авторизации"
	msgInvalidToken = "некорректный токен авторизации"
)

// ErrInvalidToken токен не прошёл проверку подписи или claims
var ErrInvalidToken = errors.New("middleware: invalid token")

// Claims полезная нагрузка JWT
type Claims struct {
	Sub   string `json:"sub"`
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type actorKey struct{}

// WithActor кладёт пользователя в контекст
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// GetActor достаёт пользователя, положенный middleware Auth
func GetActor(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(domain.Actor)
	if !ok || actor.IsZero() {
		return domain.Actor{}, false
	}
	return actor, true
}

// Authenticator проверяет bearer токены, подписанные HS256
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

// IssueToken выпускает токен для пользователя
func (a *Authenticator) IssueToken(actor domain.Actor, ttl time.Duration) (string, error) {
	claims := Claims{
		Sub:   actor.UserID,
		Role:  actor.Role,
		Email: actor.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.UserID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// Parse проверяет токен и возвращает пользователя
func (a *Authenticator) Parse(tokenStr string) (domain.Actor, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return domain.Actor{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return domain.Actor{}, ErrInvalidToken
	}

	actor := domain.Actor{UserID: claims.Sub, Email: claims.Email, Role: claims.Role}
	if actor.UserID == "" {
		actor.UserID = claims.Subject
	}
	if actor.IsZero() {
		return domain.Actor{}, fmt.Errorf("%w: no subject", ErrInvalidToken)
	}
	return actor, nil
}

// Auth требует заголовок Authorization: Bearer <token>
func (a *Authenticator) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(tokenStr) == "" {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		actor, err := a.Parse(strings.TrimSpace(tokenStr))
		if err != nil {
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}
