package immobile

import (
	"context"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=immobile
type Repository interface {
	GetPartita(ctx context.Context, id int64) (*catasto.Partita, error)

	InsertLocalita(ctx context.Context, l *catasto.Localita) error
	GetLocalita(ctx context.Context, id int64) (*catasto.Localita, error)
	FindLocalita(ctx context.Context, comuneID int64, nome string, civico *int) (*catasto.Localita, error)
	ListLocalita(ctx context.Context, comuneID int64, filter string) ([]*catasto.Localita, error)

	InsertImmobile(ctx context.Context, im *catasto.Immobile) error
	GetImmobile(ctx context.Context, id int64) (*catasto.Immobile, error)
	ListImmobili(ctx context.Context, partitaID int64) ([]*catasto.Immobile, error)
	UpdateImmobilePartita(ctx context.Context, immobileID, partitaID int64) error
}
