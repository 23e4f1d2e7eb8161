// Package possessore resolves and maintains the owners recorded on partite.
package possessore

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
	ComuneID     int64
	NomeCompleto string
	CognomeNome  *string
	Paternita    *string
	// Attivo defaults to true.
	Attivo *bool
}

type UpdateParams struct {
	NomeCompleto *string
	CognomeNome  *string
	Paternita    *string
	Attivo       *bool
}

// FullName returns the normalised nome_completo, falling back to
// "{cognome_nome} {paternita}" when it is blank.
func FullName(nomeCompleto string, cognomeNome, paternita *string) string {
	if name := catasto.NormalizeName(nomeCompleto); name != "" {
		return name
	}

	var parts []string
	if cognomeNome != nil {
		parts = append(parts, *cognomeNome)
	}

	if paternita != nil {
		parts = append(parts, *paternita)
	}

	return catasto.NormalizeName(strings.Join(parts, " "))
}

// FindByNameAndComune looks a possessore up by normalised name, including
// deactivated ones. A miss is not an error.
func (s *Service) FindByNameAndComune(ctx context.Context, nomeCompleto string, comuneID int64) (int64, bool, error) {
	name := catasto.NormalizeName(nomeCompleto)
	if name == "" {
		return 0, false, catasto.DataError("nome_completo is required")
	}

	p, err := s.repo.FindPossessore(ctx, comuneID, name)
	if err != nil {
		return 0, false, err
	}

	if p == nil {
		return 0, false, nil
	}

	return p.ID, true, nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (int64, error) {
	name := FullName(params.NomeCompleto, params.CognomeNome, params.Paternita)
	if name == "" {
		return 0, catasto.DataError("nome_completo is required")
	}

	if _, err := s.repo.GetComune(ctx, params.ComuneID); err != nil {
		return 0, err
	}

	p := &catasto.Possessore{
		ComuneID:     params.ComuneID,
		NomeCompleto: name,
		CognomeNome:  catasto.OptionalString(params.CognomeNome),
		Paternita:    catasto.OptionalString(params.Paternita),
		Attivo:       params.Attivo == nil || *params.Attivo,
	}

	if err := s.repo.InsertPossessore(ctx, p); err != nil {
		return 0, err
	}

	return p.ID, nil
}

// Resolve finds the possessore named in spec within comuneID, creating it
// when absent. A spec carrying an explicit id is taken as is after checking
// the row exists.
func (s *Service) Resolve(ctx context.Context, comuneID int64, spec catasto.PossessoreSpec) (int64, error) {
	if spec.PossessoreID != nil {
		p, err := s.repo.GetPossessore(ctx, *spec.PossessoreID)
		if err != nil {
			return 0, err
		}

		return p.ID, nil
	}

	name := FullName(spec.NomeCompleto, spec.CognomeNome, spec.Paternita)

	id, found, err := s.FindByNameAndComune(ctx, name, comuneID)
	if err != nil {
		return 0, err
	}

	if found {
		return id, nil
	}

	return s.Create(ctx, CreateParams{
		ComuneID:     comuneID,
		NomeCompleto: name,
		CognomeNome:  spec.CognomeNome,
		Paternita:    spec.Paternita,
	})
}

func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (*catasto.Possessore, error) {
	p, err := s.repo.GetPossessore(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.NomeCompleto != nil {
		name := catasto.NormalizeName(*params.NomeCompleto)
		if name == "" {
			return nil, catasto.DataError("nome_completo cannot be blank")
		}

		p.NomeCompleto = name
	}

	if params.CognomeNome != nil {
		p.CognomeNome = catasto.OptionalString(params.CognomeNome)
	}

	if params.Paternita != nil {
		p.Paternita = catasto.OptionalString(params.Paternita)
	}

	if params.Attivo != nil {
		p.Attivo = *params.Attivo
	}

	if err := s.repo.UpdatePossessore(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Deactivate(ctx context.Context, id int64) error {
	_, err := s.Update(ctx, id, UpdateParams{Attivo: new(false)})
	return err
}

func (s *Service) Get(ctx context.Context, id int64) (*catasto.Possessore, error) {
	return s.repo.GetPossessore(ctx, id)
}

func (s *Service) ListByComune(ctx context.Context, comuneID int64, filter string) ([]*catasto.Possessore, error) {
	if _, err := s.repo.GetComune(ctx, comuneID); err != nil {
		return nil, err
	}

	return s.repo.ListPossessori(ctx, comuneID, strings.TrimSpace(filter))
}
