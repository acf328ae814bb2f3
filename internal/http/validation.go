package http

import (
	"strings"

	"activities-service/internal/service"
)

// ValidateActivityName проверяет параметр пути {activityName}.
// Существование кружка проверяет сервисный слой, здесь только наличие.
func ValidateActivityName(name string) error {
	if strings.TrimSpace(name) == "" {
		return service.ErrBadRequest("activity name is required")
	}
	return nil
}

// ValidateEmail проверяет email студента из query или пути.
// Формат адреса исходный сервис не проверял, поэтому требуем только наличие.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return service.ErrBadRequest("email is required")
	}
	return nil
}
