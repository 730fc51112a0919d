package requestresponse

import "logging-web-server/internal/model"

// CreateLogRequest : тело запроса на создание записи лога
type CreateLogRequest struct {
	Host      string `json:"host" example:"web-01"`
	Service   string `json:"service" example:"billing"`
	Message   string `json:"message" example:"payment declined"`
	Severity  string `json:"severity" example:"error"`
	Timestamp int64  `json:"timestamp" example:"1735689600"`
}

// CreateLogResponse : успешный ответ
type CreateLogResponse struct {
	Response struct {
		ID int64 `json:"id" example:"42"`
	} `json:"response"`
}

// GetLogResponse : ответ с одной записью лога
type GetLogResponse struct {
	Data model.LogEntry `json:"data"`
}

// ListLogsResponse : ответ API со списком записей
type ListLogsResponse struct {
	Data struct {
		Logs []model.LogEntry `json:"logs"`
	} `json:"data"`
	NextCursor string `json:"next_cursor,omitempty" example:"42"`
	Count      int    `json:"count" example:"10"`
}

// SuccessResponse : стандартный ответ успешного выполнения операции
type SuccessResponse struct {
	Message string `json:"message" example:"Операция выполнена успешно"`
}
