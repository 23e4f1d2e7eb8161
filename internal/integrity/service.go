// Package integrity scans the ledger for records that break its invariants.
// Findings are advisory: nothing is repaired.
package integrity

import (
	"context"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
	"github.com/MrJamesThe3rd/catasto/internal/ownership"
)

type Kind string

const (
	PartitaSenzaVariazioneChiusura Kind = "partita_senza_variazione_chiusura"
	PartitaInattivaSenzaData       Kind = "partita_inattiva_senza_data"
	ImmobileComuneIncoerente       Kind = "immobile_comune_incoerente"
	VariazioneDestinazioneInattiva Kind = "variazione_destinazione_inattiva"
	LegameSenzaTitolo              Kind = "legame_senza_titolo"
	PartitaSenzaPossessori         Kind = "partita_senza_possessori"
	QuoteEccedenti                 Kind = "quote_eccedenti"
	LocalitaDuplicata              Kind = "localita_duplicata"
)

// Kinds lists every finding kind in report order.
var Kinds = []Kind{
	PartitaSenzaVariazioneChiusura,
	PartitaInattivaSenzaData,
	ImmobileComuneIncoerente,
	VariazioneDestinazioneInattiva,
	LegameSenzaTitolo,
	PartitaSenzaPossessori,
	QuoteEccedenti,
	LocalitaDuplicata,
}

type Finding struct {
	Kind     Kind   `json:"kind"`
	EntityID int64  `json:"entity_id"`
	Message  string `json:"message"`
}

type Report struct {
	ComuneID  *int64    `json:"comune_id,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
	Findings  []Finding `json:"findings"`
}

// Counts tallies findings by kind.
func (r *Report) Counts() map[Kind]int {
	out := make(map[Kind]int, len(Kinds))
	for _, f := range r.Findings {
		out[f.Kind]++
	}

	return out
}

func (r *Report) OK() bool {
	return len(r.Findings) == 0
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Check runs every audit query scoped to comuneID, or to the whole ledger
// when it is nil.
func (s *Service) Check(ctx context.Context, comuneID *int64) (*Report, error) {
	report := &Report{ComuneID: comuneID, Findings: []Finding{}}

	checks := []func(context.Context, *int64) ([]Finding, error){
		s.closures,
		s.immobili,
		s.staleDestinations,
		s.titoli,
		s.senzaPossessori,
		s.quote,
		s.localita,
	}

	for _, check := range checks {
		findings, err := check(ctx, comuneID)
		if err != nil {
			return nil, err
		}

		report.Findings = append(report.Findings, findings...)
	}

	return report, nil
}

func (s *Service) closures(ctx context.Context, comuneID *int64) ([]Finding, error) {
	audits, err := s.repo.AuditInactivePartite(ctx, comuneID)
	if err != nil {
		return nil, fmt.Errorf("auditing inactive partite: %w", err)
	}

	var out []Finding

	for _, a := range audits {
		if a.ClosingVariazioni != 1 {
			out = append(out, Finding{
				Kind:     PartitaSenzaVariazioneChiusura,
				EntityID: a.Partita.ID,
				Message: fmt.Sprintf("partita %s is inattiva with %d closing variazioni",
					a.Partita.Label(), a.ClosingVariazioni),
			})
		}

		if a.Partita.DataChiusura == nil {
			out = append(out, Finding{
				Kind:     PartitaInattivaSenzaData,
				EntityID: a.Partita.ID,
				Message:  fmt.Sprintf("partita %s is inattiva without data_chiusura", a.Partita.Label()),
			})
		}
	}

	return out, nil
}

func (s *Service) immobili(ctx context.Context, comuneID *int64) ([]Finding, error) {
	mismatches, err := s.repo.AuditImmobiliComune(ctx, comuneID)
	if err != nil {
		return nil, fmt.Errorf("auditing immobili: %w", err)
	}

	out := make([]Finding, 0, len(mismatches))
	for _, m := range mismatches {
		out = append(out, Finding{
			Kind:     ImmobileComuneIncoerente,
			EntityID: m.ImmobileID,
			Message: fmt.Sprintf("immobile %d on partita %d (comune %d) lies in localita %d of comune %d",
				m.ImmobileID, m.PartitaID, m.PartitaComuneID, m.LocalitaID, m.LocalitaComuneID),
		})
	}

	return out, nil
}

func (s *Service) staleDestinations(ctx context.Context, comuneID *int64) ([]Finding, error) {
	stale, err := s.repo.AuditStaleDestinations(ctx, comuneID)
	if err != nil {
		return nil, fmt.Errorf("auditing variazioni: %w", err)
	}

	out := make([]Finding, 0, len(stale))
	for _, v := range stale {
		out = append(out, Finding{
			Kind:     VariazioneDestinazioneInattiva,
			EntityID: v.VariazioneID,
			Message: fmt.Sprintf("variazione %d points at inattiva partita %d which was never transferred onward",
				v.VariazioneID, v.DestinazioneID),
		})
	}

	return out, nil
}

func (s *Service) titoli(ctx context.Context, comuneID *int64) ([]Finding, error) {
	legami, err := s.repo.AuditLegamiSenzaTitolo(ctx, comuneID)
	if err != nil {
		return nil, fmt.Errorf("auditing legami: %w", err)
	}

	out := make([]Finding, 0, len(legami))
	for _, l := range legami {
		out = append(out, Finding{
			Kind:     LegameSenzaTitolo,
			EntityID: l.ID,
			Message:  fmt.Sprintf("possessore %d on partita %d has no titolo", l.PossessoreID, l.PartitaID),
		})
	}

	return out, nil
}

func (s *Service) senzaPossessori(ctx context.Context, comuneID *int64) ([]Finding, error) {
	partite, err := s.repo.AuditPartiteSenzaPossessori(ctx, comuneID)
	if err != nil {
		return nil, fmt.Errorf("auditing ownerless partite: %w", err)
	}

	out := make([]Finding, 0, len(partite))
	for _, p := range partite {
		out = append(out, Finding{
			Kind:     PartitaSenzaPossessori,
			EntityID: p.ID,
			Message:  fmt.Sprintf("partita %s is attiva without possessori", p.Label()),
		})
	}

	return out, nil
}

// quote expects the rows ordered by partita.
func (s *Service) quote(ctx context.Context, comuneID *int64) ([]Finding, error) {
	legami, err := s.repo.AuditQuote(ctx, comuneID)
	if err != nil {
		return nil, fmt.Errorf("auditing quote: %w", err)
	}

	var out []Finding

	for start := 0; start < len(legami); {
		end := start
		for end < len(legami) && legami[end].PartitaID == legami[start].PartitaID {
			end++
		}

		group := legami[start:end]
		if total := ownership.SumQuote(group); ownership.ExceedsWhole(total) {
			out = append(out, Finding{
				Kind:     QuoteEccedenti,
				EntityID: group[0].PartitaID,
				Message:  fmt.Sprintf("quote on partita %d add up to %s", group[0].PartitaID, total.StringFixed(4)),
			})
		}

		start = end
	}

	return out, nil
}

func (s *Service) localita(ctx context.Context, comuneID *int64) ([]Finding, error) {
	dups, err := s.repo.AuditLocalitaDuplicate(ctx, comuneID)
	if err != nil {
		return nil, fmt.Errorf("auditing localita: %w", err)
	}

	out := make([]Finding, 0, len(dups))
	for _, d := range dups {
		civico := "s.n."
		if d.Civico != nil {
			civico = fmt.Sprint(*d.Civico)
		}

		out = append(out, Finding{
			Kind:     LocalitaDuplicata,
			EntityID: d.IDs[0],
			Message:  fmt.Sprintf("localita %q %s in comune %d is recorded %d times: %v", d.Nome, civico, d.ComuneID, len(d.IDs), d.IDs),
		})
	}

	return out, nil
}

// Verifier runs Check in a read-only transaction and publishes the counts.
type Verifier struct {
	runner  *catasto.Runner
	metrics FindingsRecorder
	now     func() time.Time
}

type FindingsRecorder interface {
	SetIntegrityFindings(kinds []string, counts map[string]int)
}

func NewVerifier(runner *catasto.Runner, recorder FindingsRecorder) *Verifier {
	return &Verifier{runner: runner, metrics: recorder, now: time.Now}
}

func (v *Verifier) RunCheck(ctx context.Context, comuneID *int64) (*Report, error) {
	var report *Report

	err := v.runner.Read(ctx, "integrity.run_check", func(ctx context.Context, tx catasto.Tx) error {
		var err error

		report, err = NewService(tx).Check(ctx, comuneID)

		return err
	})
	if err != nil {
		return nil, err
	}

	report.CheckedAt = v.now().UTC()

	if v.metrics != nil {
		kinds := make([]string, len(Kinds))
		counts := map[string]int{}

		for i, k := range Kinds {
			kinds[i] = string(k)
		}

		for k, n := range report.Counts() {
			counts[string(k)] = n
		}

		v.metrics.SetIntegrityFindings(kinds, counts)
	}

	return report, nil
}
