// Package catasto defines the land-registry ledger model: comuni, possessori,
// localita, partite, immobili and the variazioni that chain partite together.
package catasto

import (
	"time"
)

// TipoPartita distinguishes principal from secondary partite.
type TipoPartita string

const (
	TipoPrincipale TipoPartita = "principale"
	TipoSecondaria TipoPartita = "secondaria"
)

func (t TipoPartita) Valid() bool {
	return t == TipoPrincipale || t == TipoSecondaria
}

// StatoPartita is the lifecycle state of a partita.
type StatoPartita string

const (
	StatoAttiva   StatoPartita = "attiva"
	StatoInattiva StatoPartita = "inattiva"
)

func (s StatoPartita) Valid() bool {
	return s == StatoAttiva || s == StatoInattiva
}

// TipoLocalita classifies a named place within a comune.
type TipoLocalita string

const (
	LocalitaRegione TipoLocalita = "regione"
	LocalitaVia     TipoLocalita = "via"
	LocalitaBorgata TipoLocalita = "borgata"
	LocalitaAltro   TipoLocalita = "altro"
)

func (t TipoLocalita) Valid() bool {
	switch t {
	case LocalitaRegione, LocalitaVia, LocalitaBorgata, LocalitaAltro:
		return true
	}

	return false
}

// TipoVariazione is the kind of event recorded by a variazione.
type TipoVariazione string

const (
	VariazioneVendita       TipoVariazione = "Vendita"
	VariazioneSuccessione   TipoVariazione = "Successione"
	VariazioneDonazione     TipoVariazione = "Donazione"
	VariazioneFrazionamento TipoVariazione = "Frazionamento"
	VariazioneAltro         TipoVariazione = "Altro"
)

func (t TipoVariazione) Valid() bool {
	switch t {
	case VariazioneVendita, VariazioneSuccessione, VariazioneDonazione, VariazioneFrazionamento, VariazioneAltro:
		return true
	}

	return false
}

// Rilevanza grades how relevant an archival document is to a partita.
type Rilevanza string

const (
	RilevanzaPrimaria   Rilevanza = "primaria"
	RilevanzaSecondaria Rilevanza = "secondaria"
	RilevanzaCorrelata  Rilevanza = "correlata"
)

func (r Rilevanza) Valid() bool {
	switch r {
	case RilevanzaPrimaria, RilevanzaSecondaria, RilevanzaCorrelata:
		return true
	}

	return false
}

// Comune is an immutable administrative reference entity.
type Comune struct {
	ID        int64
	Nome      string
	Provincia string
	Regione   string
	CreatedAt time.Time
}

// Possessore is an owner scoped to a comune of reference.
type Possessore struct {
	ID           int64
	ComuneID     int64
	NomeCompleto string
	CognomeNome  *string
	Paternita    *string
	Attivo       bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// Localita is a named place used to locate immobili.
type Localita struct {
	ID       int64
	ComuneID int64
	Nome     string
	Tipo     TipoLocalita
	Civico   *int
}

// Partita is a land-registry title identified by comune, numero and suffisso.
type Partita struct {
	ID                int64
	ComuneID          int64
	Numero            int
	Suffisso          *string
	Tipo              TipoPartita
	Stato             StatoPartita
	DataImpianto      time.Time
	DataChiusura      *time.Time
	NumeroProvenienza *string
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

// Label renders the partita number with its suffix, e.g. "101/bis".
func (p *Partita) Label() string {
	return PartitaLabel(p.Numero, p.Suffisso)
}

// PartitaPossessore links a possessore to a partita with a title and share.
type PartitaPossessore struct {
	ID           int64
	PartitaID    int64
	PossessoreID int64
	TipoPartita  TipoPartita
	Titolo       string
	Quota        *string // nil means exclusive ownership
}

// Immobile is a physical unit belonging to exactly one partita at a time.
type Immobile struct {
	ID              int64
	PartitaID       int64
	LocalitaID      int64
	Natura          string
	Classificazione *string
	Consistenza     *string
	NumeroPiani     *int
	NumeroVani      *int
}

// Variazione records an event on a partita. A variazione with a destination
// is a transfer: it closed its origin.
type Variazione struct {
	ID                    int64
	PartitaOrigineID      int64
	PartitaDestinazioneID *int64
	Tipo                  TipoVariazione
	DataVariazione        time.Time
	NumeroRiferimento     *string
	NominativoRiferimento *string
}

// Contratto is the notarial act backing a variazione.
type Contratto struct {
	ID            int64
	VariazioneID  int64
	Tipo          string
	DataContratto time.Time
	Notaio        *string
	Repertorio    *string
	Note          *string
}

// DocumentoPartita links an external archival document to a partita.
type DocumentoPartita struct {
	DocumentoID int64
	PartitaID   int64
	Rilevanza   Rilevanza
	Note        *string
}
