package security

import (
	"context"
	"fmt"
	"log"
	"net/http"
)

type contextKey string

const (
	IdentityContextKey contextKey = "identity"
)

// AuthorizationGate разрешает учётные данные запроса в Identity
type AuthorizationGate interface {
	Authorize(ctx context.Context, credentials Credentials) (*Identity, error)
}

// AuthMiddleware прогоняет каждый запрос через авторизационный шлюз до обработчика.
// Разрешённая Identity кладётся в context запроса явно,
// обработчики не делают собственных проверок токена
func AuthMiddleware(gate AuthorizationGate) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			credentials, err := ParseAuthorizationHeader(request.Header.Get("Authorization"))
			if err != nil {
				http.Error(writer, "unauthorized", http.StatusUnauthorized)
				return
			}

			identity, err := gate.Authorize(request.Context(), credentials)
			if err != nil {
				log.Printf("не удалось авторизовать запрос: %v", err)
				http.Error(writer, "unauthorized", http.StatusUnauthorized)
				return
			}

			req := request.WithContext(context.WithValue(request.Context(), IdentityContextKey, identity))
			next.ServeHTTP(writer, req)
		})
	}
}

// AdminOnlyMiddleware пускает дальше только администраторов.
// Для валидного токена без привилегий ответ тот же 401,
// чтобы не раскрывать, какая именно проверка не прошла
func AdminOnlyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		identity, err := GetIdentityFromContext(request.Context())
		if err != nil || !identity.IsAdmin {
			http.Error(writer, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(writer, request)
	})
}

func GetIdentityFromContext(ctx context.Context) (*Identity, error) {
	identity, ok := ctx.Value(IdentityContextKey).(*Identity)
	if !ok || identity == nil {
		return nil, fmt.Errorf("пользователь не авторизован")
	}
	return identity, nil
}
