package employee

import (
	"context"
	"time"

	"github.com/raghavan83/staffregistry/internal/domain"
	"github.com/raghavan83/staffregistry/pkg/ctxutil"
)

// captureMetadata snapshots the acting principal from the ambient context at
// commit time. Capture never fails: missing values degrade to the sentinel
// defaults so an unauthenticated or internal caller still produces a valid,
// attributable revision.
func captureMetadata(ctx context.Context, op domain.Operation) domain.RevisionMetadata {
	actorID, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		actorID = domain.AnonymousActorID
	}

	role, ok := ctxutil.ActorRoleFromCtx(ctx)
	if !ok {
		role = domain.DefaultActorRole
	}

	origin := ctxutil.OriginFromCtx(ctx)
	if origin == "" {
		origin = domain.UnknownOrigin
	}

	return domain.RevisionMetadata{
		ActorID:     actorID,
		ActorRole:   role,
		Origin:      origin,
		Operation:   op,
		CommittedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}
