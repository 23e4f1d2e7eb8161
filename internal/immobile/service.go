// Package immobile registers localita and the immobili located in them.
package immobile

import (
	"context"
	"strings"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type LocalitaParams struct {
	ComuneID int64
	Nome     string
	Tipo     catasto.TipoLocalita
	Civico   *int
}

// CreateLocalita inserts a localita, or returns the id of the one already
// recorded under the same comune, nome and civico. Non-positive civici are
// stored as missing.
func (s *Service) CreateLocalita(ctx context.Context, params LocalitaParams) (int64, error) {
	nome := catasto.NormalizeName(params.Nome)
	if nome == "" {
		return 0, catasto.DataError("nome is required")
	}

	if params.Tipo == "" {
		return 0, catasto.DataError("tipo is required")
	}

	if !params.Tipo.Valid() {
		return 0, catasto.DataError("unknown localita tipo %q", params.Tipo)
	}

	civico := params.Civico
	if civico != nil && *civico <= 0 {
		civico = nil
	}

	existing, err := s.repo.FindLocalita(ctx, params.ComuneID, nome, civico)
	if err != nil {
		return 0, err
	}

	if existing != nil {
		return existing.ID, nil
	}

	l := &catasto.Localita{
		ComuneID: params.ComuneID,
		Nome:     nome,
		Tipo:     params.Tipo,
		Civico:   civico,
	}

	if err := s.repo.InsertLocalita(ctx, l); err != nil {
		return 0, err
	}

	return l.ID, nil
}

func (s *Service) GetLocalita(ctx context.Context, id int64) (*catasto.Localita, error) {
	return s.repo.GetLocalita(ctx, id)
}

// ListByComune returns the localita of a comune whose nome contains filter,
// ordered by tipo, nome and civico.
func (s *Service) ListByComune(ctx context.Context, comuneID int64, filter string) ([]*catasto.Localita, error) {
	out, err := s.repo.ListLocalita(ctx, comuneID, strings.TrimSpace(filter))
	if err != nil {
		return nil, err
	}

	if out == nil {
		out = []*catasto.Localita{}
	}

	return out, nil
}

func validateSpec(spec catasto.ImmobileSpec) error {
	switch {
	case strings.TrimSpace(spec.Natura) == "":
		return catasto.DataError("natura is required")
	case spec.LocalitaID == 0:
		return catasto.DataError("localita_id is required")
	case spec.NumeroPiani != nil && *spec.NumeroPiani < 0:
		return catasto.DataError("numero_piani cannot be negative")
	case spec.NumeroVani != nil && *spec.NumeroVani < 0:
		return catasto.DataError("numero_vani cannot be negative")
	}

	return nil
}

// CreateImmobile records a unit on an attiva partita. The localita must lie
// in the partita's comune.
func (s *Service) CreateImmobile(ctx context.Context, partitaID int64, spec catasto.ImmobileSpec) (int64, error) {
	if err := validateSpec(spec); err != nil {
		return 0, err
	}

	p, err := s.repo.GetPartita(ctx, partitaID)
	if err != nil {
		return 0, err
	}

	if p.Stato != catasto.StatoAttiva {
		return 0, catasto.DataError("partita %s is %s", p.Label(), p.Stato)
	}

	l, err := s.repo.GetLocalita(ctx, spec.LocalitaID)
	if err != nil {
		return 0, err
	}

	if l.ComuneID != p.ComuneID {
		return 0, catasto.DataError("localita %d belongs to comune %d, partita %s to comune %d",
			l.ID, l.ComuneID, p.Label(), p.ComuneID)
	}

	im := &catasto.Immobile{
		PartitaID:       partitaID,
		LocalitaID:      spec.LocalitaID,
		Natura:          strings.TrimSpace(spec.Natura),
		Classificazione: catasto.OptionalString(spec.Classificazione),
		Consistenza:     catasto.OptionalString(spec.Consistenza),
		NumeroPiani:     spec.NumeroPiani,
		NumeroVani:      spec.NumeroVani,
	}

	if err := s.repo.InsertImmobile(ctx, im); err != nil {
		return 0, err
	}

	return im.ID, nil
}

// MoveImmobile reassigns an immobile to another attiva partita of the same
// comune as its localita.
func (s *Service) MoveImmobile(ctx context.Context, immobileID, partitaID int64) error {
	im, err := s.repo.GetImmobile(ctx, immobileID)
	if err != nil {
		return err
	}

	target, err := s.repo.GetPartita(ctx, partitaID)
	if err != nil {
		return err
	}

	if target.Stato != catasto.StatoAttiva {
		return catasto.DataError("partita %s is %s", target.Label(), target.Stato)
	}

	l, err := s.repo.GetLocalita(ctx, im.LocalitaID)
	if err != nil {
		return err
	}

	if l.ComuneID != target.ComuneID {
		return catasto.DataError("immobile %d lies in comune %d, partita %s in comune %d",
			im.ID, l.ComuneID, target.Label(), target.ComuneID)
	}

	return s.repo.UpdateImmobilePartita(ctx, immobileID, partitaID)
}

func (s *Service) GetImmobile(ctx context.Context, id int64) (*catasto.Immobile, error) {
	return s.repo.GetImmobile(ctx, id)
}

func (s *Service) ListImmobili(ctx context.Context, partitaID int64) ([]*catasto.Immobile, error) {
	if _, err := s.repo.GetPartita(ctx, partitaID); err != nil {
		return nil, err
	}

	out, err := s.repo.ListImmobili(ctx, partitaID)
	if err != nil {
		return nil, err
	}

	if out == nil {
		out = []*catasto.Immobile{}
	}

	return out, nil
}
