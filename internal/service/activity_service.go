package service

import (
	"context"
	"errors"
	"fmt"

	"activities-service/internal/model"
	"activities-service/internal/registry"
)

// ActivityRegistry описывает контракт реестра кружков для бизнес-слоя.
type ActivityRegistry interface {
	List(ctx context.Context) (map[string]model.Activity, error)
	Signup(ctx context.Context, activity, email string) (model.Activity, error)
	Remove(ctx context.Context, activity, email string) (model.Activity, error)
}

// ActivityService содержит бизнес-логику записи и отписки студентов.
type ActivityService struct {
	reg ActivityRegistry
}

// NewActivityService создаёт новый сервис для операций над кружками.
func NewActivityService(reg ActivityRegistry) *ActivityService {
	return &ActivityService{reg: reg}
}

// List возвращает все кружки со списками участников.
func (s *ActivityService) List(ctx context.Context) (map[string]model.Activity, error) {
	activities, err := s.reg.List(ctx)
	if err != nil {
		return nil, &AppError{
			Code:    "INTERNAL",
			Message: "failed to list activities",
			Status:  500,
			Err:     err,
		}
	}
	return activities, nil
}

// Signup записывает студента в кружок и возвращает подтверждающее сообщение.
// Повторная запись того же email отклоняется доменной ошибкой ALREADY_SIGNED_UP.
func (s *ActivityService) Signup(ctx context.Context, activity, email string) (string, error) {
	if activity == "" {
		return "", ErrBadRequest("activity name is required")
	}
	if email == "" {
		return "", ErrBadRequest("email is required")
	}

	_, err := s.reg.Signup(ctx, activity, email)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrActivityNotFound):
			return "", ErrNotFound("Activity not found")
		case errors.Is(err, registry.ErrAlreadySignedUp):
			return "", ErrDomain("ALREADY_SIGNED_UP",
				fmt.Sprintf("%s is already signed up for %s", email, activity))
		default:
			return "", &AppError{
				Code:    "INTERNAL",
				Message: "failed to sign up",
				Status:  500,
				Err:     err,
			}
		}
	}
	return fmt.Sprintf("Signed up %s for %s", email, activity), nil
}

// Remove отписывает студента от кружка и возвращает подтверждающее сообщение.
// Неизвестный кружок и незаписанный студент дают 404 с разными сообщениями.
func (s *ActivityService) Remove(ctx context.Context, activity, email string) (string, error) {
	if activity == "" {
		return "", ErrBadRequest("activity name is required")
	}
	if email == "" {
		return "", ErrBadRequest("email is required")
	}

	_, err := s.reg.Remove(ctx, activity, email)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrActivityNotFound):
			return "", ErrNotFound("Activity not found")
		case errors.Is(err, registry.ErrNotSignedUp):
			return "", ErrNotFound(fmt.Sprintf("%s is not signed up for %s", email, activity))
		default:
			return "", &AppError{
				Code:    "INTERNAL",
				Message: "failed to remove participant",
				Status:  500,
				Err:     err,
			}
		}
	}
	return fmt.Sprintf("Removed %s from %s", email, activity), nil
}
