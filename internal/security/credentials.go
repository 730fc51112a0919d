package security

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrBadAuthorizationHeader : заголовок Authorization отсутствует или не распознан
var ErrBadAuthorizationHeader = errors.New("пустой или неверный заголовок Authorization")

// Credentials : вариантный тип учётных данных запроса.
// Авторизационный шлюз принимает либо логин/пароль, либо bearer-токен,
// вместо разрозненных веток if по обработчикам
type Credentials interface {
	isCredentials()
}

type BasicCredentials struct {
	Name     string
	Password string
}

type BearerToken struct {
	Token string
}

func (BasicCredentials) isCredentials() {}
func (BearerToken) isCredentials()      {}

// Identity : результат работы авторизационного шлюза.
// Состояние между запросами не хранится, identity выводится заново на каждый запрос
type Identity struct {
	UserUUID string
	Name     string
	IsAdmin  bool
}

// ParseAuthorizationHeader разбирает заголовок Authorization в Credentials
func ParseAuthorizationHeader(header string) (Credentials, error) {
	switch {
	case strings.HasPrefix(header, "Bearer "):
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" {
			return nil, ErrBadAuthorizationHeader
		}
		return BearerToken{Token: token}, nil

	case strings.HasPrefix(header, "Basic "):
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, "Basic "))
		if err != nil {
			return nil, ErrBadAuthorizationHeader
		}
		name, password, ok := strings.Cut(string(decoded), ":")
		if !ok {
			return nil, ErrBadAuthorizationHeader
		}
		return BasicCredentials{Name: name, Password: password}, nil
	}

	return nil, ErrBadAuthorizationHeader
}
