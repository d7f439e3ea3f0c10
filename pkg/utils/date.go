package utils

import (
	"time"

	"github.com/pkg/errors"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// ParseDate converte uma data ISO-8601 (com ou sem horário) para time.Time.
// String vazia retorna o valor zero sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr == "" {
		return &date, nil
	}

	for _, layout := range dateLayouts {
		incomingDate, err := time.Parse(layout, dateStr)
		if err == nil {
			return &incomingDate, nil
		}
	}

	return nil, errors.Errorf("data inválida: %q não está em formato ISO-8601", dateStr)
}

// MonthPeriod formata um ano/mês no formato de período mm-yyyy (ex: 01-2025)
func MonthPeriod(year, month int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("01-2006")
}
