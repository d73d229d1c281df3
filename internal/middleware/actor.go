package middleware

import (
	"context"
	"net/http"

	"github.com/SergeyBogomolovv/green-basket/internal/entities"
	"github.com/SergeyBogomolovv/green-basket/pkg/utils"
)

// Заголовки проставляет шлюз после аутентификации.
const (
	HeaderActorID   = "X-Actor-ID"
	HeaderActorRole = "X-Actor-Role"
)

type (
	actorKey     struct{}
	actorSlotKey struct{}
)

type actorSlot struct {
	actor entities.Actor
}

// withActorSlot переиспользует слот, если его уже положил внешний middleware.
func withActorSlot(r *http.Request) (*http.Request, *actorSlot) {
	if slot, ok := r.Context().Value(actorSlotKey{}).(*actorSlot); ok {
		return r, slot
	}
	slot := &actorSlot{}
	return r.WithContext(context.WithValue(r.Context(), actorSlotKey{}, slot)), slot
}

func WithActor(ctx context.Context, a entities.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

func ActorFrom(ctx context.Context) entities.Actor {
	a, _ := ctx.Value(actorKey{}).(entities.Actor)
	return a
}

// Actor кладет участника из заголовков в контекст. Запрос без участника получает 401.
func Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderActorID)
		role, ok := entities.ParseRole(r.Header.Get(HeaderActorRole))
		if id == "" || !ok {
			utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		actor := entities.Actor{ID: id, Role: role}
		if slot, ok := r.Context().Value(actorSlotKey{}).(*actorSlot); ok {
			slot.actor = actor
		}

		ctx := WithActor(r.Context(), actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
