package ctxutil

import (
	"context"

	"github.com/raghavan83/staffregistry/internal/domain"
)

type ctxKey string

const (
	actorIDKey   ctxKey = "actor_id"
	actorRoleKey ctxKey = "actor_role"
	originKey    ctxKey = "origin"
	requestIDKey ctxKey = "request_id"
)

// WithActor stores the acting principal's identity and role in the context.
func WithActor(ctx context.Context, id string, role domain.ActorRole) context.Context {
	ctx = context.WithValue(ctx, actorIDKey, id)
	return context.WithValue(ctx, actorRoleKey, role)
}

// ActorFromCtx extracts the actor identity from the context.
// Returns "" and false if the value is missing, empty, or the wrong type.
func ActorFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(actorIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// ActorRoleFromCtx extracts the actor role from the context.
func ActorRoleFromCtx(ctx context.Context) (domain.ActorRole, bool) {
	role, ok := ctx.Value(actorRoleKey).(domain.ActorRole)
	if !ok || !role.IsValid() {
		return "", false
	}
	return role, true
}

// WithOrigin stores the request's origin address in the context.
func WithOrigin(ctx context.Context, addr string) context.Context {
	return context.WithValue(ctx, originKey, addr)
}

// OriginFromCtx extracts the origin address from the context.
// Returns an empty string if absent.
func OriginFromCtx(ctx context.Context) string {
	addr, _ := ctx.Value(originKey).(string)
	return addr
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
