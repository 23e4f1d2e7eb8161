// Package partita drives the lifecycle of partite: creation, closure,
// duplication and reopening, plus their archival document links.
//
// A partita moves from attiva to inattiva only through Close, which the
// variazione engine calls as part of a transfer. Reopen is the explicit
// administrative way back.
package partita

import (
	"context"
	"time"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	ComuneID          int64
	Numero            int
	Tipo              catasto.TipoPartita
	DataImpianto      time.Time
	Suffisso          *string
	NumeroProvenienza *string
}

type DuplicateParams struct {
	Numero              int
	Suffisso            *string
	MantenerePossessori bool
	CopiareImmobili     bool
}

func (s *Service) Create(ctx context.Context, params CreateParams) (int64, error) {
	switch {
	case params.Numero <= 0:
		return 0, catasto.DataError("numero_partita must be positive, got %d", params.Numero)
	case !params.Tipo.Valid():
		return 0, catasto.DataError("unknown partita tipo %q", params.Tipo)
	case params.DataImpianto.IsZero():
		return 0, catasto.DataError("data_impianto is required")
	}

	if _, err := s.repo.GetComune(ctx, params.ComuneID); err != nil {
		return 0, err
	}

	p := &catasto.Partita{
		ComuneID:          params.ComuneID,
		Numero:            params.Numero,
		Suffisso:          catasto.OptionalString(params.Suffisso),
		Tipo:              params.Tipo,
		Stato:             catasto.StatoAttiva,
		DataImpianto:      params.DataImpianto,
		NumeroProvenienza: catasto.OptionalString(params.NumeroProvenienza),
	}

	if err := s.repo.InsertPartita(ctx, p); err != nil {
		return 0, err
	}

	return p.ID, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*catasto.Partita, error) {
	return s.repo.GetPartita(ctx, id)
}

// Find returns the partita with the given natural key, or nil.
func (s *Service) Find(ctx context.Context, comuneID int64, numero int, suffisso *string) (*catasto.Partita, error) {
	return s.repo.FindPartita(ctx, comuneID, numero, catasto.OptionalString(suffisso))
}

func (s *Service) List(ctx context.Context, filter catasto.PartitaFilter) ([]*catasto.Partita, error) {
	if filter.Stato != nil && !filter.Stato.Valid() {
		return nil, catasto.DataError("unknown partita stato %q", *filter.Stato)
	}

	out, err := s.repo.ListPartite(ctx, filter)
	if err != nil {
		return nil, err
	}

	if out == nil {
		out = []*catasto.Partita{}
	}

	return out, nil
}

// Close marks an attiva partita inattiva as of dataChiusura.
func (s *Service) Close(ctx context.Context, id int64, dataChiusura time.Time) error {
	p, err := s.repo.GetPartita(ctx, id)
	if err != nil {
		return err
	}

	if p.Stato == catasto.StatoInattiva {
		return catasto.DataError("partita %s is already inattiva", p.Label())
	}

	if dataChiusura.IsZero() {
		return catasto.DataError("data_chiusura is required")
	}

	if dataChiusura.Before(p.DataImpianto) {
		return catasto.DataError("data_chiusura %s precedes data_impianto %s of partita %s",
			dataChiusura.Format(time.DateOnly), p.DataImpianto.Format(time.DateOnly), p.Label())
	}

	return s.repo.UpdatePartitaStato(ctx, id, catasto.StatoInattiva, &dataChiusura)
}

// Reopen returns an inattiva partita to attiva. It refuses while any
// variazione still names the partita as its origin.
func (s *Service) Reopen(ctx context.Context, id int64) error {
	p, err := s.repo.GetPartita(ctx, id)
	if err != nil {
		return err
	}

	if p.Stato == catasto.StatoAttiva {
		return catasto.DataError("partita %s is already attiva", p.Label())
	}

	outgoing, err := s.repo.ListVariazioni(ctx, catasto.VariazioneFilter{OrigineID: &id})
	if err != nil {
		return err
	}

	if len(outgoing) > 0 {
		return catasto.DataError("partita %s is the origin of %d variazioni", p.Label(), len(outgoing))
	}

	return s.repo.UpdatePartitaStato(ctx, id, catasto.StatoAttiva, nil)
}

// Duplicate opens a new attiva partita copying the header of id, and
// optionally its ownership links and immobili.
func (s *Service) Duplicate(ctx context.Context, id int64, params DuplicateParams) (int64, error) {
	src, err := s.repo.GetPartita(ctx, id)
	if err != nil {
		return 0, err
	}

	newID, err := s.Create(ctx, CreateParams{
		ComuneID:          src.ComuneID,
		Numero:            params.Numero,
		Tipo:              src.Tipo,
		DataImpianto:      src.DataImpianto,
		Suffisso:          params.Suffisso,
		NumeroProvenienza: src.NumeroProvenienza,
	})
	if err != nil {
		return 0, err
	}

	if params.MantenerePossessori {
		legami, err := s.repo.ListLegami(ctx, id)
		if err != nil {
			return 0, err
		}

		for _, l := range legami {
			cp := &catasto.PartitaPossessore{
				PartitaID:    newID,
				PossessoreID: l.PossessoreID,
				TipoPartita:  src.Tipo,
				Titolo:       l.Titolo,
				Quota:        l.Quota,
			}
			if err := s.repo.InsertLegame(ctx, cp); err != nil {
				return 0, err
			}
		}
	}

	if params.CopiareImmobili {
		immobili, err := s.repo.ListImmobili(ctx, id)
		if err != nil {
			return 0, err
		}

		for _, im := range immobili {
			cp := *im
			cp.ID = 0
			cp.PartitaID = newID

			if err := s.repo.InsertImmobile(ctx, &cp); err != nil {
				return 0, err
			}
		}
	}

	return newID, nil
}
