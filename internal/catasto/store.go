package catasto

import (
	"context"
	"time"
)

// TxOptions configures a ledger transaction.
type TxOptions struct {
	ReadOnly bool
}

// Store opens ledger transactions. Implementations: store.Store (Postgres)
// and memstore.Store.
type Store interface {
	Begin(ctx context.Context, opts TxOptions) (Tx, error)
}

// Tx is the transaction handle threaded through every component call.
// Nothing written through a Tx is visible to other transactions before Commit.
type Tx interface {
	ComuneStore
	PossessoreStore
	LocalitaStore
	ImmobileStore
	PartitaStore
	LegameStore
	VariazioneStore
	DocumentoStore
	AuditStore

	Commit() error
	Rollback() error
}

type ComuneStore interface {
	InsertComune(ctx context.Context, c *Comune) error
	GetComune(ctx context.Context, id int64) (*Comune, error)
	GetComuneByNome(ctx context.Context, nome string) (*Comune, error)
	ListComuni(ctx context.Context, filter string) ([]*Comune, error)
}

type PossessoreStore interface {
	InsertPossessore(ctx context.Context, p *Possessore) error
	GetPossessore(ctx context.Context, id int64) (*Possessore, error)
	// FindPossessore returns nil, nil when no possessore matches.
	FindPossessore(ctx context.Context, comuneID int64, nomeCompleto string) (*Possessore, error)
	UpdatePossessore(ctx context.Context, p *Possessore) error
	ListPossessori(ctx context.Context, comuneID int64, filter string) ([]*Possessore, error)
}

type LocalitaStore interface {
	InsertLocalita(ctx context.Context, l *Localita) error
	GetLocalita(ctx context.Context, id int64) (*Localita, error)
	// FindLocalita returns nil, nil when no localita matches.
	FindLocalita(ctx context.Context, comuneID int64, nome string, civico *int) (*Localita, error)
	ListLocalita(ctx context.Context, comuneID int64, filter string) ([]*Localita, error)
}

type ImmobileStore interface {
	InsertImmobile(ctx context.Context, im *Immobile) error
	GetImmobile(ctx context.Context, id int64) (*Immobile, error)
	ListImmobili(ctx context.Context, partitaID int64) ([]*Immobile, error)
	UpdateImmobilePartita(ctx context.Context, immobileID, partitaID int64) error
}

type PartitaFilter struct {
	ComuneID *int64
	Stato    *StatoPartita
	Numero   *int
}

type PartitaStore interface {
	InsertPartita(ctx context.Context, p *Partita) error
	GetPartita(ctx context.Context, id int64) (*Partita, error)
	// FindPartita returns nil, nil when the natural key is free.
	FindPartita(ctx context.Context, comuneID int64, numero int, suffisso *string) (*Partita, error)
	ListPartite(ctx context.Context, filter PartitaFilter) ([]*Partita, error)
	UpdatePartitaStato(ctx context.Context, id int64, stato StatoPartita, dataChiusura *time.Time) error
}

type LegameStore interface {
	InsertLegame(ctx context.Context, l *PartitaPossessore) error
	GetLegame(ctx context.Context, id int64) (*PartitaPossessore, error)
	UpdateLegame(ctx context.Context, l *PartitaPossessore) error
	DeleteLegame(ctx context.Context, id int64) error
	ListLegami(ctx context.Context, partitaID int64) ([]*PartitaPossessore, error)
}

type VariazioneFilter struct {
	OrigineID      *int64
	DestinazioneID *int64
}

type VariazioneStore interface {
	InsertVariazione(ctx context.Context, v *Variazione) error
	GetVariazione(ctx context.Context, id int64) (*Variazione, error)
	ListVariazioni(ctx context.Context, filter VariazioneFilter) ([]*Variazione, error)
	DeleteVariazione(ctx context.Context, id int64) error

	InsertContratto(ctx context.Context, c *Contratto) error
	GetContratto(ctx context.Context, variazioneID int64) (*Contratto, error)
	DeleteContratto(ctx context.Context, variazioneID int64) error
}

type DocumentoStore interface {
	UpsertDocumento(ctx context.Context, d *DocumentoPartita) error
	DeleteDocumento(ctx context.Context, documentoID, partitaID int64) error
	ListDocumenti(ctx context.Context, partitaID int64) ([]*DocumentoPartita, error)
}

// ClosureAudit pairs an inattiva partita with its number of closing
// variazioni (those naming a destination).
type ClosureAudit struct {
	Partita           *Partita
	ClosingVariazioni int
}

type ImmobileComuneMismatch struct {
	ImmobileID       int64
	PartitaID        int64
	LocalitaID       int64
	PartitaComuneID  int64
	LocalitaComuneID int64
}

// StaleDestination is a variazione whose destination is inattiva but was
// never itself the origin of a further variazione.
type StaleDestination struct {
	VariazioneID   int64
	DestinazioneID int64
}

type LocalitaDuplicate struct {
	ComuneID int64
	Nome     string
	Civico   *int
	IDs      []int64
}

// AuditStore holds the read-only queries behind the integrity check.
// A nil comuneID scans every comune.
type AuditStore interface {
	AuditInactivePartite(ctx context.Context, comuneID *int64) ([]ClosureAudit, error)
	AuditImmobiliComune(ctx context.Context, comuneID *int64) ([]ImmobileComuneMismatch, error)
	AuditStaleDestinations(ctx context.Context, comuneID *int64) ([]StaleDestination, error)
	AuditLegamiSenzaTitolo(ctx context.Context, comuneID *int64) ([]*PartitaPossessore, error)
	AuditPartiteSenzaPossessori(ctx context.Context, comuneID *int64) ([]*Partita, error)
	AuditQuote(ctx context.Context, comuneID *int64) ([]*PartitaPossessore, error)
	AuditLocalitaDuplicate(ctx context.Context, comuneID *int64) ([]LocalitaDuplicate, error)
}
