// Package registry реализует реестр кружков в памяти процесса.
// Набор кружков фиксируется при старте из seed-данных; в рантайме
// меняются только списки участников. Состояние живёт до рестарта.
package registry

import (
	"context"
	"sync"

	"activities-service/internal/model"
	"activities-service/internal/observability"
)

// Registry хранит кружки и их участников. Все операции сериализуются
// через RWMutex: проверка на дубликат и вставка выполняются атомарно.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
}

// New создаёт реестр из seed-каталога. Входные данные копируются,
// чтобы реестр был единственным владельцем состояния.
func New(seed []model.Activity) *Registry {
	r := &Registry{
		activities: make(map[string]*model.Activity, len(seed)),
	}
	for _, a := range seed {
		c := a.Clone()
		r.activities[c.Name] = &c
		observability.SetParticipants(c.Name, len(c.Participants))
	}
	return r
}

// List возвращает снимок всех кружков по названию.
// Снимок независим от внутреннего состояния и безопасен для сериализации.
func (r *Registry) List(_ context.Context) (map[string]model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]model.Activity, len(r.activities))
	for name, a := range r.activities {
		out[name] = a.Clone()
	}
	return out, nil
}

// Signup добавляет email в список участников кружка.
// Возвращает ErrActivityNotFound или ErrAlreadySignedUp.
func (r *Registry) Signup(_ context.Context, activity, email string) (model.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[activity]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}
	for _, p := range a.Participants {
		if p == email {
			return model.Activity{}, ErrAlreadySignedUp
		}
	}

	a.Participants = append(a.Participants, email)
	observability.SetParticipants(a.Name, len(a.Participants))
	return a.Clone(), nil
}

// Remove убирает email из списка участников кружка.
// Возвращает ErrActivityNotFound или ErrNotSignedUp.
func (r *Registry) Remove(_ context.Context, activity, email string) (model.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[activity]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}

	for i, p := range a.Participants {
		if p == email {
			// Порядок записи сохраняем: участники хранятся в порядке добавления
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			observability.SetParticipants(a.Name, len(a.Participants))
			return a.Clone(), nil
		}
	}
	return model.Activity{}, ErrNotSignedUp
}
