package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"logging-web-server/internal/model/requestresponse"
	"logging-web-server/internal/ports"
	"logging-web-server/internal/repository"
	"logging-web-server/internal/security"
	"logging-web-server/internal/service"
)

type UserHandler struct {
	ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService}
}

// RegisterUser godoc
// @Summary Регистрация нового пользователя
// @Description Создаёт пользователя по имени и паролю с подтверждением
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.RegisterRequest true "Тело запроса"
// @Success 200 {object} requestresponse.RegisterResponse "Успешная регистрация"
// @Failure 400 {object} requestresponse.ErrorResponse "Пароли не совпадают или имя не прошло проверку"
// @Failure 409 {object} requestresponse.ErrorResponse "Пользователь уже существует"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/register [post]
func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	var req requestresponse.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, 400, "некорректный JSON")
		return
	}

	if req.Name == "" || req.Password == "" {
		sendErrorResponse(w, 400, "name и password обязательны")
		return
	}

	user, err := h.UserService.Register(ctx, req.Name, req.Password, req.PasswordConfirm)
	if err != nil {
		log.Println(err)
		switch {
		case errors.Is(err, service.ErrPasswordMismatch):
			sendErrorResponse(w, 400, "пароли не совпадают")
		case errors.Is(err, repository.ErrUserExists):
			sendErrorResponse(w, 409, "пользователь уже существует")
		case errors.Is(err, service.ErrInvalidCredentials):
			sendErrorResponse(w, 400, "bad request")
		default:
			sendErrorResponse(w, 400, err.Error())
		}
		return
	}

	resp := requestresponse.RegisterResponse{}
	resp.Response.UUID = user.UUID
	resp.Response.Name = user.Name

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// ListUsers godoc
// @Summary Список пользователей
// @Description Возвращает страницу пользователей (cursor-based пагинация)
// @Tags Users
// @Produce json
// @Param Authorization header string true "Bearer токен или Basic" default(Bearer <access_token>)
// @Param cursor query string false "Курсор предыдущей страницы"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} requestresponse.ListUsersResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	cursor := r.URL.Query().Get("cursor")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	users, nextCursor, err := h.UserService.ListUsers(ctx, cursor, limit)
	if err != nil {
		log.Println(err)
		sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		return
	}

	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}

	resp := requestresponse.ListUsersResponse{}
	resp.Data.Users = users
	resp.Data.NextCursor = nextCursor

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// UpdatePassword godoc
// @Summary Смена пароля текущего пользователя
// @Description Меняет пароль после проверки старого, новый пароль передаётся с подтверждением
// @Tags Users
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен или Basic" default(Bearer <access_token>)
// @Param body body requestresponse.ChangePasswordRequest true "Тело запроса"
// @Success 200 {object} requestresponse.ChangePasswordResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Пароли не совпадают"
// @Failure 401 {object} requestresponse.ErrorResponse "Старый пароль неверен"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/users/password [put]
func (h *UserHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	identity, err := security.GetIdentityFromContext(ctx)
	if err != nil {
		sendErrorResponse(w, 401, "не авторизован")
		return
	}

	var req requestresponse.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, 400, "некорректный JSON")
		return
	}

	err = h.UserService.ChangePassword(ctx, identity.UserUUID, req.OldPassword, req.NewPassword, req.NewPasswordConfirm)
	if err != nil {
		log.Println(err)
		switch {
		case errors.Is(err, service.ErrPasswordMismatch):
			sendErrorResponse(w, 400, "пароли не совпадают")
		case errors.Is(err, service.ErrInvalidCredentials):
			sendErrorResponse(w, 401, "неверный логин или пароль")
		default:
			sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		}
		return
	}

	resp := requestresponse.ChangePasswordResponse{}
	resp.Response.Updated = true

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// sendErrorResponse отправляет ответ об ошибке JSON с указанным кодом статуса и сообщением
func sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(requestresponse.ErrorResponse{
		Error: requestresponse.ErrorDetail{
			Code: statusCode,
			Text: message,
		},
	})
}
