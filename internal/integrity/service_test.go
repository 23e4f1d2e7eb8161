package integrity_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
	"github.com/MrJamesThe3rd/catasto/internal/catasto/memstore"
	"github.com/MrJamesThe3rd/catasto/internal/integrity"
	"github.com/MrJamesThe3rd/catasto/internal/metrics"
	"github.com/MrJamesThe3rd/catasto/internal/testutil"
)

type ledger struct {
	clean int64
	dirty int64
}

func seedLedger(t *testing.T, store *memstore.Store) ledger {
	t.Helper()

	var l ledger

	closedOn := testutil.Date(1960, time.March, 1)

	testutil.Write(t, store, func(ctx context.Context, tx catasto.Tx) {
		clean := testutil.Comune(t, tx, "Carcare")
		dirty := testutil.Comune(t, tx, "Cairo Montenotte")
		l.clean, l.dirty = clean.ID, dirty.ID

		piazza := testutil.Localita(t, tx, clean.ID, "Piazza Caravadossi")
		ok := testutil.Partita(t, tx, clean.ID, 1)
		owner := testutil.Possessore(t, tx, clean.ID, "Mario Rossi")
		testutil.Legame(t, tx, ok.ID, owner.ID, "proprietà esclusiva", nil)
		testutil.Immobile(t, tx, ok.ID, piazza.ID, "Casa")

		testutil.Localita(t, tx, dirty.ID, "Via Roma")
		testutil.Localita(t, tx, dirty.ID, "via roma")

		testutil.Partita(t, tx, dirty.ID, 10, testutil.Closed(closedOn))

		shared := testutil.Partita(t, tx, dirty.ID, 11)
		a := testutil.Possessore(t, tx, dirty.ID, "Anna Verdi")
		b := testutil.Possessore(t, tx, dirty.ID, "Luigi Verdi")
		testutil.Legame(t, tx, shared.ID, a.ID, "  ", new("2/3"))
		testutil.Legame(t, tx, shared.ID, b.ID, "comproprietà", new("1/2"))
		testutil.Immobile(t, tx, shared.ID, piazza.ID, "Stalla")

		from := testutil.Partita(t, tx, dirty.ID, 12, testutil.Closed(closedOn))
		to := testutil.Partita(t, tx, dirty.ID, 13, testutil.Closed(closedOn))
		require.NoError(t, tx.InsertVariazione(ctx, &catasto.Variazione{
			PartitaOrigineID:      from.ID,
			PartitaDestinazioneID: &to.ID,
			Tipo:                  catasto.VariazioneSuccessione,
			DataVariazione:        closedOn,
		}))

		testutil.Partita(t, tx, dirty.ID, 14)
	})

	return l
}

func TestVerifier_RunCheck(t *testing.T) {
	store := memstore.New()
	l := seedLedger(t, store)

	dirtyCounts := map[integrity.Kind]int{
		integrity.PartitaSenzaVariazioneChiusura: 2,
		integrity.ImmobileComuneIncoerente:       1,
		integrity.VariazioneDestinazioneInattiva: 1,
		integrity.LegameSenzaTitolo:              1,
		integrity.PartitaSenzaPossessori:         1,
		integrity.QuoteEccedenti:                 1,
		integrity.LocalitaDuplicata:              1,
	}

	type testCase struct {
		name     string
		comuneID *int64
		want     map[integrity.Kind]int
	}

	tests := []testCase{
		{name: "WholeLedger", want: dirtyCounts},
		{name: "DirtyComune", comuneID: &l.dirty, want: dirtyCounts},
		{name: "CleanComune", comuneID: &l.clean, want: map[integrity.Kind]int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := catasto.NewRunner(store, catasto.WithLogger(slog.New(slog.DiscardHandler)))

			report, err := integrity.NewVerifier(runner, nil).RunCheck(context.Background(), tt.comuneID)
			require.NoError(t, err)

			assert.Equal(t, tt.want, report.Counts())
			assert.Equal(t, len(tt.want) == 0, report.OK())
			assert.NotNil(t, report.Findings)
			assert.False(t, report.CheckedAt.IsZero())
		})
	}
}

func TestVerifier_RunCheckIsReadOnly(t *testing.T) {
	store := memstore.New()
	seedLedger(t, store)

	var before, after []*catasto.Partita

	testutil.Read(t, store, func(ctx context.Context, tx catasto.Tx) {
		var err error
		before, err = tx.ListPartite(ctx, catasto.PartitaFilter{})
		require.NoError(t, err)
	})

	runner := catasto.NewRunner(store, catasto.WithLogger(slog.New(slog.DiscardHandler)))
	_, err := integrity.NewVerifier(runner, nil).RunCheck(context.Background(), nil)
	require.NoError(t, err)

	testutil.Read(t, store, func(ctx context.Context, tx catasto.Tx) {
		var err error
		after, err = tx.ListPartite(ctx, catasto.PartitaFilter{})
		require.NoError(t, err)
	})

	assert.Equal(t, before, after)
}

func TestVerifier_PublishesCounts(t *testing.T) {
	store := memstore.New()
	seedLedger(t, store)

	m := metrics.New(prometheus.NewRegistry())
	runner := catasto.NewRunner(store, catasto.WithLogger(slog.New(slog.DiscardHandler)))

	_, err := integrity.NewVerifier(runner, m).RunCheck(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 2.0, promtestutil.ToFloat64(m.IntegrityFindings.WithLabelValues(string(integrity.PartitaSenzaVariazioneChiusura))))
	assert.Equal(t, 0.0, promtestutil.ToFloat64(m.IntegrityFindings.WithLabelValues(string(integrity.PartitaInattivaSenzaData))))
}

func TestService_Check(t *testing.T) {
	type testCase struct {
		name      string
		setup     func(repo *integrity.MockRepository)
		wantKinds []integrity.Kind
		wantErr   bool
	}

	empty := func(repo *integrity.MockRepository) {
		repo.EXPECT().AuditImmobiliComune(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		repo.EXPECT().AuditStaleDestinations(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		repo.EXPECT().AuditLegamiSenzaTitolo(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		repo.EXPECT().AuditPartiteSenzaPossessori(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		repo.EXPECT().AuditLocalitaDuplicate(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	}

	tests := []testCase{
		{
			name: "InactiveWithoutDate",
			setup: func(repo *integrity.MockRepository) {
				repo.EXPECT().AuditInactivePartite(gomock.Any(), gomock.Nil()).Return([]catasto.ClosureAudit{
					{Partita: &catasto.Partita{ID: 7, Numero: 7, Stato: catasto.StatoInattiva}, ClosingVariazioni: 1},
				}, nil)
				repo.EXPECT().AuditQuote(gomock.Any(), gomock.Nil()).Return(nil, nil)
				empty(repo)
			},
			wantKinds: []integrity.Kind{integrity.PartitaInattivaSenzaData},
		},
		{
			name: "TwoClosingVariazioni",
			setup: func(repo *integrity.MockRepository) {
				closed := testutil.Date(1970, time.May, 5)
				repo.EXPECT().AuditInactivePartite(gomock.Any(), gomock.Nil()).Return([]catasto.ClosureAudit{
					{Partita: &catasto.Partita{ID: 8, Numero: 8, Stato: catasto.StatoInattiva, DataChiusura: &closed}, ClosingVariazioni: 2},
				}, nil)
				repo.EXPECT().AuditQuote(gomock.Any(), gomock.Nil()).Return(nil, nil)
				empty(repo)
			},
			wantKinds: []integrity.Kind{integrity.PartitaSenzaVariazioneChiusura},
		},
		{
			name: "QuoteGroupedByPartita",
			setup: func(repo *integrity.MockRepository) {
				repo.EXPECT().AuditInactivePartite(gomock.Any(), gomock.Nil()).Return(nil, nil)
				repo.EXPECT().AuditQuote(gomock.Any(), gomock.Nil()).Return([]*catasto.PartitaPossessore{
					{ID: 1, PartitaID: 1, Quota: new("1/2")},
					{ID: 2, PartitaID: 1, Quota: new("1/2")},
					{ID: 3, PartitaID: 2, Quota: new("1/3")},
					{ID: 4, PartitaID: 2, Quota: new("0,9")},
					{ID: 5, PartitaID: 3, Quota: new("metà")},
				}, nil)
				empty(repo)
			},
			wantKinds: []integrity.Kind{integrity.QuoteEccedenti},
		},
		{
			name: "StoreFailure",
			setup: func(repo *integrity.MockRepository) {
				repo.EXPECT().AuditInactivePartite(gomock.Any(), gomock.Nil()).Return(nil, errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := integrity.NewMockRepository(ctrl)
			tt.setup(repo)

			report, err := integrity.NewService(repo).Check(context.Background(), nil)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)

			var kinds []integrity.Kind
			for _, f := range report.Findings {
				kinds = append(kinds, f.Kind)
			}

			assert.Equal(t, tt.wantKinds, kinds)
		})
	}
}
