// Package ownership links possessori to partite with a title and share.
package ownership

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

type LinkParams struct {
	PartitaID    int64
	PossessoreID int64
	TipoPartita  catasto.TipoPartita
	Titolo       string
	Quota        *string
}

// Link records that a possessore holds a partita. The same pair may be
// linked more than once, e.g. under different titles.
func (s *Service) Link(ctx context.Context, params LinkParams) (int64, error) {
	titolo := strings.TrimSpace(params.Titolo)
	if titolo == "" {
		return 0, catasto.DataError("titolo is required")
	}

	if !params.TipoPartita.Valid() {
		return 0, catasto.DataError("unknown tipo_partita %q", params.TipoPartita)
	}

	quota, err := normalizeQuota(params.Quota)
	if err != nil {
		return 0, err
	}

	if _, err := s.repo.GetPartita(ctx, params.PartitaID); err != nil {
		return 0, err
	}

	if _, err := s.repo.GetPossessore(ctx, params.PossessoreID); err != nil {
		return 0, err
	}

	l := &catasto.PartitaPossessore{
		PartitaID:    params.PartitaID,
		PossessoreID: params.PossessoreID,
		TipoPartita:  params.TipoPartita,
		Titolo:       titolo,
		Quota:        quota,
	}

	if err := s.repo.InsertLegame(ctx, l); err != nil {
		return 0, err
	}

	return l.ID, nil
}

func (s *Service) Update(ctx context.Context, id int64, titolo string, quota *string) (*catasto.PartitaPossessore, error) {
	titolo = strings.TrimSpace(titolo)
	if titolo == "" {
		return nil, catasto.DataError("titolo is required")
	}

	q, err := normalizeQuota(quota)
	if err != nil {
		return nil, err
	}

	l, err := s.repo.GetLegame(ctx, id)
	if err != nil {
		return nil, err
	}

	l.Titolo = titolo
	l.Quota = q

	if err := s.repo.UpdateLegame(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

// Unlink deletes the link row. Unlinking twice reports NotFound.
func (s *Service) Unlink(ctx context.Context, id int64) error {
	return s.repo.DeleteLegame(ctx, id)
}

func (s *Service) ListByPartita(ctx context.Context, partitaID int64) ([]*catasto.PartitaPossessore, error) {
	if _, err := s.repo.GetPartita(ctx, partitaID); err != nil {
		return nil, err
	}

	out, err := s.repo.ListLegami(ctx, partitaID)
	if err != nil {
		return nil, err
	}

	if out == nil {
		out = []*catasto.PartitaPossessore{}
	}

	return out, nil
}
