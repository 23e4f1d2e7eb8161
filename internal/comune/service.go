// Package comune manages the administrative comuni every other record is
// scoped to.
package comune

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

type CreateParams struct {
	Nome      string
	Provincia string
	Regione   string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (int64, error) {
	c := &catasto.Comune{
		Nome:      catasto.NormalizeName(params.Nome),
		Provincia: strings.TrimSpace(params.Provincia),
		Regione:   strings.TrimSpace(params.Regione),
	}

	switch {
	case c.Nome == "":
		return 0, catasto.DataError("nome is required")
	case c.Provincia == "":
		return 0, catasto.DataError("provincia is required")
	case c.Regione == "":
		return 0, catasto.DataError("regione is required")
	}

	if err := s.repo.InsertComune(ctx, c); err != nil {
		return 0, err
	}

	return c.ID, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*catasto.Comune, error) {
	return s.repo.GetComune(ctx, id)
}

func (s *Service) GetByNome(ctx context.Context, nome string) (*catasto.Comune, error) {
	nome = catasto.NormalizeName(nome)
	if nome == "" {
		return nil, catasto.DataError("nome is required")
	}

	return s.repo.GetComuneByNome(ctx, nome)
}

func (s *Service) List(ctx context.Context, filter string) ([]*catasto.Comune, error) {
	return s.repo.ListComuni(ctx, strings.TrimSpace(filter))
}
