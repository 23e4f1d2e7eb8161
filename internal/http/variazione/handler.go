package variazione

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
	"github.com/MrJamesThe3rd/catasto/internal/http/render"
	"github.com/MrJamesThe3rd/catasto/internal/variazione"
)

type Handler struct {
	engine *variazione.Engine
}

func NewHandler(engine *variazione.Engine) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/transfer", h.transfer)
	r.Post("/new-property", h.newProperty)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
}

type possessoreSpec struct {
	PossessoreID *int64  `json:"possessore_id,omitempty"`
	NomeCompleto string  `json:"nome_completo"`
	CognomeNome  *string `json:"cognome_nome,omitempty"`
	Paternita    *string `json:"paternita,omitempty"`
	Titolo       string  `json:"titolo"`
	Quota        *string `json:"quota,omitempty"`
}

func toPossessoreSpecs(in []possessoreSpec) []catasto.PossessoreSpec {
	out := make([]catasto.PossessoreSpec, len(in))
	for i, s := range in {
		out[i] = catasto.PossessoreSpec{
			PossessoreID: s.PossessoreID,
			NomeCompleto: s.NomeCompleto,
			CognomeNome:  s.CognomeNome,
			Paternita:    s.Paternita,
			Titolo:       s.Titolo,
			Quota:        s.Quota,
		}
	}

	return out
}

type transferRequest struct {
	PartitaOrigineID      int64                  `json:"partita_origine_id"`
	ComuneDestinazioneID  int64                  `json:"comune_destinazione_id"`
	NumeroNuovaPartita    int                    `json:"numero_nuova_partita"`
	Suffisso              *string                `json:"suffisso,omitempty"`
	TipoVariazione        catasto.TipoVariazione `json:"tipo_variazione"`
	DataVariazione        render.Date            `json:"data_variazione"`
	TipoContratto         string                 `json:"tipo_contratto"`
	DataContratto         render.Date            `json:"data_contratto"`
	Notaio                *string                `json:"notaio,omitempty"`
	Repertorio            *string                `json:"repertorio,omitempty"`
	Note                  *string                `json:"note,omitempty"`
	NumeroRiferimento     *string                `json:"numero_riferimento,omitempty"`
	NominativoRiferimento *string                `json:"nominativo_riferimento,omitempty"`
	NuoviPossessori       []possessoreSpec       `json:"nuovi_possessori"`
	ImmobiliDaTrasferire  []int64                `json:"immobili_da_trasferire"`
}

type transferResponse struct {
	PartitaID    int64 `json:"partita_id"`
	VariazioneID int64 `json:"variazione_id"`
}

func (h *Handler) transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := render.Decode(r, &req); err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	res, err := h.engine.RegisterTransfer(r.Context(), variazione.TransferParams{
		PartitaOrigineID:      req.PartitaOrigineID,
		ComuneDestinazioneID:  req.ComuneDestinazioneID,
		NumeroNuovaPartita:    req.NumeroNuovaPartita,
		Suffisso:              req.Suffisso,
		TipoVariazione:        req.TipoVariazione,
		DataVariazione:        req.DataVariazione.Time,
		TipoContratto:         req.TipoContratto,
		DataContratto:         req.DataContratto.Time,
		Notaio:                req.Notaio,
		Repertorio:            req.Repertorio,
		Note:                  req.Note,
		NumeroRiferimento:     req.NumeroRiferimento,
		NominativoRiferimento: req.NominativoRiferimento,
		NuoviPossessori:       toPossessoreSpecs(req.NuoviPossessori),
		ImmobiliDaTrasferire:  req.ImmobiliDaTrasferire,
	})
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusCreated, transferResponse{
		PartitaID:    res.PartitaID,
		VariazioneID: res.VariazioneID,
	})
}

type immobileSpec struct {
	Natura          string  `json:"natura"`
	LocalitaID      int64   `json:"localita_id"`
	Classificazione *string `json:"classificazione,omitempty"`
	Consistenza     *string `json:"consistenza,omitempty"`
	NumeroPiani     *int    `json:"numero_piani,omitempty"`
	NumeroVani      *int    `json:"numero_vani,omitempty"`
}

type newPropertyRequest struct {
	ComuneID     int64                `json:"comune_id"`
	Numero       int                  `json:"numero_partita"`
	DataImpianto render.Date          `json:"data_impianto"`
	Tipo         *catasto.TipoPartita `json:"tipo,omitempty"`
	Suffisso     *string              `json:"suffisso,omitempty"`
	Possessori   []possessoreSpec     `json:"possessori"`
	Immobili     []immobileSpec       `json:"immobili"`
}

type newPropertyResponse struct {
	PartitaID int64 `json:"partita_id"`
}

func (h *Handler) newProperty(w http.ResponseWriter, r *http.Request) {
	var req newPropertyRequest
	if err := render.Decode(r, &req); err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	immobili := make([]catasto.ImmobileSpec, len(req.Immobili))
	for i, s := range req.Immobili {
		immobili[i] = catasto.ImmobileSpec{
			Natura:          s.Natura,
			LocalitaID:      s.LocalitaID,
			Classificazione: s.Classificazione,
			Consistenza:     s.Consistenza,
			NumeroPiani:     s.NumeroPiani,
			NumeroVani:      s.NumeroVani,
		}
	}

	id, err := h.engine.RegisterNewProperty(r.Context(), variazione.NewPropertyParams{
		ComuneID:     req.ComuneID,
		Numero:       req.Numero,
		DataImpianto: req.DataImpianto.Time,
		Tipo:         req.Tipo,
		Suffisso:     req.Suffisso,
		Possessori:   toPossessoreSpecs(req.Possessori),
		Immobili:     immobili,
	})
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusCreated, newPropertyResponse{PartitaID: id})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := render.PathID(r, "id")
	if err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	d, err := h.engine.Get(r.Context(), id)
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusOK, toDetailResponse(d))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := render.PathID(r, "id")
	if err != nil {
		render.BadRequest(w, "%v", err)
		return
	}

	restore := false
	if s := r.URL.Query().Get("restore_origin"); s != "" {
		restore, err = strconv.ParseBool(s)
		if err != nil {
			render.BadRequest(w, "invalid restore_origin %q", s)
			return
		}
	}

	if err := h.engine.DeleteVariazione(r.Context(), id, restore); err != nil {
		render.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
