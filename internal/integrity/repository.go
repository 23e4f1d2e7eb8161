package integrity

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=integrity

import (
	"context"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

type Repository interface {
	AuditInactivePartite(ctx context.Context, comuneID *int64) ([]catasto.ClosureAudit, error)
	AuditImmobiliComune(ctx context.Context, comuneID *int64) ([]catasto.ImmobileComuneMismatch, error)
	AuditStaleDestinations(ctx context.Context, comuneID *int64) ([]catasto.StaleDestination, error)
	AuditLegamiSenzaTitolo(ctx context.Context, comuneID *int64) ([]*catasto.PartitaPossessore, error)
	AuditPartiteSenzaPossessori(ctx context.Context, comuneID *int64) ([]*catasto.Partita, error)
	AuditQuote(ctx context.Context, comuneID *int64) ([]*catasto.PartitaPossessore, error)
	AuditLocalitaDuplicate(ctx context.Context, comuneID *int64) ([]catasto.LocalitaDuplicate, error)
}
