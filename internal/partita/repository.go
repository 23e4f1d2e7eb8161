package partita

import (
	"context"
	"time"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=partita
type Repository interface {
	GetComune(ctx context.Context, id int64) (*catasto.Comune, error)

	InsertPartita(ctx context.Context, p *catasto.Partita) error
	GetPartita(ctx context.Context, id int64) (*catasto.Partita, error)
	FindPartita(ctx context.Context, comuneID int64, numero int, suffisso *string) (*catasto.Partita, error)
	ListPartite(ctx context.Context, filter catasto.PartitaFilter) ([]*catasto.Partita, error)
	UpdatePartitaStato(ctx context.Context, id int64, stato catasto.StatoPartita, dataChiusura *time.Time) error

	ListVariazioni(ctx context.Context, filter catasto.VariazioneFilter) ([]*catasto.Variazione, error)

	InsertLegame(ctx context.Context, l *catasto.PartitaPossessore) error
	ListLegami(ctx context.Context, partitaID int64) ([]*catasto.PartitaPossessore, error)
	InsertImmobile(ctx context.Context, im *catasto.Immobile) error
	ListImmobili(ctx context.Context, partitaID int64) ([]*catasto.Immobile, error)

	UpsertDocumento(ctx context.Context, d *catasto.DocumentoPartita) error
	DeleteDocumento(ctx context.Context, documentoID, partitaID int64) error
	ListDocumenti(ctx context.Context, partitaID int64) ([]*catasto.DocumentoPartita, error)
}
