package partita

import (
	"context"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

type DocumentoParams struct {
	DocumentoID int64
	PartitaID   int64
	Rilevanza   catasto.Rilevanza
	Note        *string
}

// LinkDocumento attaches an archival document to a partita, replacing the
// rilevanza and note of an existing link.
func (s *Service) LinkDocumento(ctx context.Context, params DocumentoParams) error {
	if params.DocumentoID <= 0 {
		return catasto.DataError("documento_id must be positive")
	}

	if !params.Rilevanza.Valid() {
		return catasto.DataError("unknown rilevanza %q", params.Rilevanza)
	}

	if _, err := s.repo.GetPartita(ctx, params.PartitaID); err != nil {
		return err
	}

	return s.repo.UpsertDocumento(ctx, &catasto.DocumentoPartita{
		DocumentoID: params.DocumentoID,
		PartitaID:   params.PartitaID,
		Rilevanza:   params.Rilevanza,
		Note:        catasto.OptionalString(params.Note),
	})
}

func (s *Service) UnlinkDocumento(ctx context.Context, documentoID, partitaID int64) error {
	return s.repo.DeleteDocumento(ctx, documentoID, partitaID)
}

func (s *Service) ListDocumenti(ctx context.Context, partitaID int64) ([]*catasto.DocumentoPartita, error) {
	if _, err := s.repo.GetPartita(ctx, partitaID); err != nil {
		return nil, err
	}

	out, err := s.repo.ListDocumenti(ctx, partitaID)
	if err != nil {
		return nil, err
	}

	if out == nil {
		out = []*catasto.DocumentoPartita{}
	}

	return out, nil
}
