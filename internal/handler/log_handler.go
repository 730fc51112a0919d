package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"logging-web-server/internal/model"
	"logging-web-server/internal/model/requestresponse"
	"logging-web-server/internal/ports"
	"logging-web-server/internal/repository"
	"logging-web-server/internal/service"

	"github.com/go-chi/chi/v5"
)

type LogHandler struct {
	ports.LogService
}

func NewLogHandler(logService ports.LogService) *LogHandler {
	return &LogHandler{logService}
}

// CreateLog godoc
// @Summary Создание записи лога
// @Description Сохраняет запись с severity info, warning или error
// @Tags Logs
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен или Basic" default(Bearer <access_token>)
// @Param body body requestresponse.CreateLogRequest true "Тело запроса"
// @Success 200 {object} requestresponse.CreateLogResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Неверный JSON или severity"
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/logs [post]
func (h *LogHandler) CreateLog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	var req requestresponse.CreateLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, 400, "некорректный JSON")
		return
	}

	if req.Host == "" || req.Service == "" {
		sendErrorResponse(w, 400, "host и service обязательны")
		return
	}

	entry := &model.LogEntry{
		Host:      req.Host,
		Service:   req.Service,
		Message:   req.Message,
		Severity:  req.Severity,
		Timestamp: req.Timestamp,
	}

	id, err := h.LogService.CreateLog(ctx, entry)
	if err != nil {
		log.Println(err)
		switch {
		case errors.Is(err, service.ErrInvalidSeverity):
			sendErrorResponse(w, 400, "недопустимое значение severity")
		default:
			sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		}
		return
	}

	resp := requestresponse.CreateLogResponse{}
	resp.Response.ID = id

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// GetLog godoc
// @Summary Получение записи лога
// @Tags Logs
// @Produce json
// @Param Authorization header string true "Bearer токен или Basic" default(Bearer <access_token>)
// @Param id path int true "ID записи"
// @Success 200 {object} requestresponse.GetLogResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Запись не найдена"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/logs/{id} [get]
func (h *LogHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		sendErrorResponse(w, 400, "некорректный id")
		return
	}

	entry, err := h.LogService.GetLog(ctx, id)
	if err != nil {
		log.Println(err)
		switch {
		case errors.Is(err, repository.ErrLogNotFound):
			sendErrorResponse(w, 404, "запись не найдена")
		default:
			sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		}
		return
	}

	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}

	resp := requestresponse.GetLogResponse{Data: *entry}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// ListLogs godoc
// @Summary Список записей логов
// @Description Возвращает страницу записей с фильтрами по severity и service
// @Tags Logs
// @Produce json
// @Param Authorization header string true "Bearer токен или Basic" default(Bearer <access_token>)
// @Param severity query string false "Фильтр по severity (info, warning, error)"
// @Param service query string false "Фильтр по сервису"
// @Param cursor query string false "Курсор предыдущей страницы"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} requestresponse.ListLogsResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/logs [get]
func (h *LogHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	severity := r.URL.Query().Get("severity")
	serviceName := r.URL.Query().Get("service")
	cursor := r.URL.Query().Get("cursor")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, nextCursor, err := h.LogService.ListLogs(ctx, severity, serviceName, cursor, limit)
	if err != nil {
		log.Println(err)
		switch {
		case errors.Is(err, service.ErrInvalidSeverity):
			sendErrorResponse(w, 400, "недопустимое значение severity")
		default:
			sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		}
		return
	}

	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}

	resp := requestresponse.ListLogsResponse{}
	resp.Data.Logs = entries
	resp.NextCursor = nextCursor
	resp.Count = len(entries)

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// DeleteLog godoc
// @Summary Удаление записи лога
// @Description Доступно только администраторам
// @Tags Logs
// @Produce json
// @Param Authorization header string true "Bearer токен или Basic администратора" default(Bearer <access_token>)
// @Param id path int true "ID записи"
// @Success 200 {object} requestresponse.SuccessResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Запись не найдена"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/logs/{id} [delete]
func (h *LogHandler) DeleteLog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		sendErrorResponse(w, 400, "некорректный id")
		return
	}

	if err := h.LogService.DeleteLog(ctx, id); err != nil {
		log.Println(err)
		switch {
		case errors.Is(err, repository.ErrLogNotFound):
			sendErrorResponse(w, 404, "запись не найдена")
		default:
			sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		}
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.SuccessResponse{Message: "Операция выполнена успешно"})
}
