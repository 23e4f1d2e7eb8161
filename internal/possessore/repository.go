package possessore

import (
	"context"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=possessore
type Repository interface {
	GetComune(ctx context.Context, id int64) (*catasto.Comune, error)

	InsertPossessore(ctx context.Context, p *catasto.Possessore) error
	GetPossessore(ctx context.Context, id int64) (*catasto.Possessore, error)
	FindPossessore(ctx context.Context, comuneID int64, nomeCompleto string) (*catasto.Possessore, error)
	UpdatePossessore(ctx context.Context, p *catasto.Possessore) error
	ListPossessori(ctx context.Context, comuneID int64, filter string) ([]*catasto.Possessore, error)
}
