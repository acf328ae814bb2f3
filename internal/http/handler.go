package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"activities-service/internal/model"
	"activities-service/internal/observability"
	"activities-service/internal/service"
)

// ActivitiesService описывает контракт сервисного слоя для HTTP-обработчиков.
type ActivitiesService interface {
	List(ctx context.Context) (map[string]model.Activity, error)
	Signup(ctx context.Context, activity, email string) (string, error)
	Remove(ctx context.Context, activity, email string) (string, error)
}

// Handler объединяет HTTP-обработчики сервиса кружков.
type Handler struct {
	Activities ActivitiesService
	Log        *slog.Logger
}

// NewHandler создаёт HTTP-обработчик поверх сервисного слоя.
func NewHandler(activities ActivitiesService, log *slog.Logger) *Handler {
	return &Handler{
		Activities: activities,
		Log:        log,
	}
}

// Router собирает маршруты сервиса: API кружков, health, метрики
// и встроенный веб-портал записи на корне.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(observability.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/activities", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/{activityName}/signup", h.handleSignup)
		r.Delete("/{activityName}/participants/{email}", h.handleRemove)
	})

	// Статический портал записи на все остальные пути
	r.Handle("/*", http.FileServer(staticFS()))

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	appErr, ok := err.(*service.AppError)
	if !ok {
		appErr = &service.AppError{
			Code:    "INTERNAL",
			Message: "internal error",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	h.Log.Error("handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)

	// Формат тела ошибки совместим с исходным API: {"detail": "..."}
	_ = json.NewEncoder(w).Encode(errorResponse{Detail: appErr.Message})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
