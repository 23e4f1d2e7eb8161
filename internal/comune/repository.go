package comune

import (
	"context"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=comune
type Repository interface {
	InsertComune(ctx context.Context, c *catasto.Comune) error
	GetComune(ctx context.Context, id int64) (*catasto.Comune, error)
	GetComuneByNome(ctx context.Context, nome string) (*catasto.Comune, error)
	ListComuni(ctx context.Context, filter string) ([]*catasto.Comune, error)
}

// Cache keeps comuni by id. Entries never go stale since comuni are immutable.
type Cache interface {
	Get(ctx context.Context, id int64) (*catasto.Comune, bool, error)
	Put(ctx context.Context, c *catasto.Comune) error
}
