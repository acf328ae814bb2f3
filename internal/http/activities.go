package http

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activities_list"

	ctx := r.Context()
	activities, err := h.Activities.List(ctx)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	resp := make(map[string]activityResponse, len(activities))
	for name, a := range activities {
		resp[name] = activityResponse{
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    a.Participants,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activity_signup"

	activityName := pathParam(r, "activityName")
	email := r.URL.Query().Get("email")

	if err := ValidateActivityName(activityName); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if err := ValidateEmail(email); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	msg, err := h.Activities.Signup(ctx, activityName, email)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(messageResponse{Message: msg})
}

func (h *Handler) handleRemove(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activity_remove"

	activityName := pathParam(r, "activityName")
	email := pathParam(r, "email")

	if err := ValidateActivityName(activityName); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if err := ValidateEmail(email); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	msg, err := h.Activities.Remove(ctx, activityName, email)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(messageResponse{Message: msg})
}

// pathParam достаёт параметр маршрута и снимает URL-экранирование:
// названия кружков содержат пробелы, email — символ @.
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if dec, err := url.PathUnescape(v); err == nil {
		return dec
	}
	return v
}
