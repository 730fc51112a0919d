package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"logging-web-server/internal/model/requestresponse"
	"logging-web-server/internal/ports"
	"logging-web-server/internal/security"
	"logging-web-server/internal/service"

	"github.com/go-chi/chi/v5"
)

type AuthenticationHandler struct {
	ports.AuthenticationService
}

func NewAuthenticationHandler(authenticationService ports.AuthenticationService) *AuthenticationHandler {
	return &AuthenticationHandler{authenticationService}
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Получение пары access/refresh токенов по имени и паролю
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса"
// @Success 200 {object} requestresponse.LoginResponse "Успешная аутентификация"
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или пустые поля"
// @Failure 401 {object} requestresponse.ErrorResponse "Неверный логин или пароль"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	var req requestresponse.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, 400, "некорректный JSON")
		return
	}

	if req.Name == "" || req.Password == "" {
		sendErrorResponse(w, 400, "name и password обязательны")
		return
	}

	tokens, err := h.AuthenticationService.Login(ctx, req.Name, req.Password)
	if err != nil {
		log.Println(err)
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			sendErrorResponse(w, 401, "неверный логин или пароль")
		default:
			sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		}
		return
	}

	resp := requestresponse.LoginResponse{}
	resp.Response.AccessToken = tokens.AccessToken
	resp.Response.RefreshToken = tokens.RefreshToken

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// GetCurrentUser godoc
// @Summary Информация о текущем пользователе
// @Description Возвращает identity пользователя, авторизованного в системе
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Bearer токен или Basic" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.CurrentUserResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/auth/me [get]
func (h *AuthenticationHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	identity, err := security.GetIdentityFromContext(r.Context())
	if err != nil {
		sendErrorResponse(w, 401, "не авторизован")
		return
	}

	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}

	resp := requestresponse.CurrentUserResponse{}
	resp.Response.UserUUID = identity.UserUUID
	resp.Response.Name = identity.Name
	resp.Response.IsAdmin = identity.IsAdmin

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// RefreshToken godoc
// @Summary Обновление токенов
// @Description Выпускает новую пару токенов по действующему refresh токену, старая пара отзывается
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RefreshTokenRequest true "Тело запроса"
// @Success 200 {object} requestresponse.RefreshTokenResponse "Новые access и refresh токены"
// @Failure 400 {object} requestresponse.ErrorResponse "Неверный JSON"
// @Failure 401 {object} requestresponse.ErrorResponse "Невалидный или отозванный refresh токен"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/refresh [post]
func (h *AuthenticationHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	var req requestresponse.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, 400, "неверный JSON")
		return
	}

	if req.RefreshToken == "" {
		sendErrorResponse(w, 400, "refresh_token обязателен")
		return
	}

	tokensPair, err := h.AuthenticationService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Println(err)
		switch {
		case errors.Is(err, service.ErrUnauthenticated):
			sendErrorResponse(w, 401, "не удалось обновить токены")
		default:
			sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		}
		return
	}

	resp := requestresponse.RefreshTokenResponse{}
	resp.Response.AccessToken = tokensPair.AccessToken
	resp.Response.RefreshToken = tokensPair.RefreshToken

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// Logout godoc
// @Summary Завершение авторизованной сессии
// @Description Отзывает запись реестра по access-токену, переданному в URL. Повторный logout не ошибка
// @Tags Authentication
// @Produce json
// @Param token path string true "Access-токен пользователя (JWT)"
// @Success 200 {object} requestresponse.LogoutResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/auth/{token} [delete]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	accessToken := chi.URLParam(r, "token")
	if accessToken == "" {
		sendErrorResponse(w, http.StatusBadRequest, "токен не указан")
		return
	}

	if err := h.AuthenticationService.Logout(ctx, accessToken); err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			sendErrorResponse(w, http.StatusUnauthorized, "невалидный токен")
		} else {
			sendErrorResponse(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		}
		return
	}

	resp := requestresponse.LogoutResponse{}
	resp.Response.Message = "сессия завершена"

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Println("ошибка кодирования ответа:", err)
	}
}
