package service

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const ctxWorkspaceIDKey ctxKey = "workspaceID"

// WithWorkspaceID scopes a request context to one tenant. Every core
// operation resolves its workspace from the context explicitly; there is no
// ambient global state.
func WithWorkspaceID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxWorkspaceIDKey, id)
}

func WorkspaceIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	v, ok := ctx.Value(ctxWorkspaceIDKey).(uuid.UUID)
	return v, ok
}
