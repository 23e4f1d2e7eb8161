package ownership

import (
	"context"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=ownership
type Repository interface {
	GetPartita(ctx context.Context, id int64) (*catasto.Partita, error)
	GetPossessore(ctx context.Context, id int64) (*catasto.Possessore, error)

	InsertLegame(ctx context.Context, l *catasto.PartitaPossessore) error
	GetLegame(ctx context.Context, id int64) (*catasto.PartitaPossessore, error)
	UpdateLegame(ctx context.Context, l *catasto.PartitaPossessore) error
	DeleteLegame(ctx context.Context, id int64) error
	ListLegami(ctx context.Context, partitaID int64) ([]*catasto.PartitaPossessore, error)
}
