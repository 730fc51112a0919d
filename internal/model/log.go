package model

const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// ValidSeverity проверяет, что severity одно из допустимых значений
func ValidSeverity(severity string) bool {
	switch severity {
	case SeverityInfo, SeverityWarning, SeverityError:
		return true
	}
	return false
}

type LogEntry struct {
	ID        int64  `db:"id" json:"id"`
	Host      string `db:"host" json:"host"`
	Service   string `db:"service" json:"service"`
	Message   string `db:"message" json:"message"`
	Severity  string `db:"severity" json:"severity"`
	Timestamp int64  `db:"timestamp" json:"timestamp"`
}
