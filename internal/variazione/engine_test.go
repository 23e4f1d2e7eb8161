package variazione_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
	"github.com/MrJamesThe3rd/catasto/internal/catasto/memstore"
	"github.com/MrJamesThe3rd/catasto/internal/events"
	"github.com/MrJamesThe3rd/catasto/internal/metrics"
	"github.com/MrJamesThe3rd/catasto/internal/possessore"
	"github.com/MrJamesThe3rd/catasto/internal/testutil"
	"github.com/MrJamesThe3rd/catasto/internal/variazione"
)

type fakePublisher struct {
	mu     sync.Mutex
	events []events.TransferRegistered
	err    error
}

func (p *fakePublisher) PublishTransfer(_ context.Context, e events.TransferRegistered) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, e)

	return p.err
}

func newEngine(store catasto.Store, opts ...variazione.Option) *variazione.Engine {
	logger := slog.New(slog.DiscardHandler)
	runner := catasto.NewRunner(store, catasto.WithLogger(logger))

	return variazione.NewEngine(runner, append([]variazione.Option{variazione.WithLogger(logger)}, opts...)...)
}

type world struct {
	comune   *catasto.Comune
	origin   *catasto.Partita
	localita *catasto.Localita
	immobile *catasto.Immobile
}

// seed creates partita 100 in Comune A, opened 2024-01-01, with one immobile.
func seed(t *testing.T, store *memstore.Store) world {
	t.Helper()

	var w world

	testutil.Write(t, store, func(_ context.Context, tx catasto.Tx) {
		w.comune = testutil.Comune(t, tx, "Comune A")
		w.origin = testutil.Partita(t, tx, w.comune.ID, 100, testutil.WithImpianto(testutil.Date(2024, time.January, 1)))
		w.localita = testutil.Localita(t, tx, w.comune.ID, "Via Roma")
		w.immobile = testutil.Immobile(t, tx, w.origin.ID, w.localita.ID, "Casa")
	})

	return w
}

func transferParams(w world) variazione.TransferParams {
	return variazione.TransferParams{
		PartitaOrigineID:     w.origin.ID,
		ComuneDestinazioneID: w.comune.ID,
		NumeroNuovaPartita:   101,
		TipoVariazione:       catasto.VariazioneVendita,
		DataVariazione:       testutil.Date(2024, time.June, 1),
		TipoContratto:        "Atto di compravendita",
		DataContratto:        testutil.Date(2024, time.May, 28),
		Notaio:               new("Notaio Bianchi"),
		NuoviPossessori: []catasto.PossessoreSpec{
			{NomeCompleto: "Giuseppe Verdi", Quota: new("1/2")},
			{NomeCompleto: "Anna Verdi", Titolo: "comproprietà", Quota: new("1/2")},
		},
		ImmobiliDaTrasferire: []int64{w.immobile.ID},
	}
}

func TestEngine_RegisterNewProperty(t *testing.T) {
	store := memstore.New()
	engine := newEngine(store)

	var (
		comune   *catasto.Comune
		localita *catasto.Localita
	)

	testutil.Write(t, store, func(_ context.Context, tx catasto.Tx) {
		comune = testutil.Comune(t, tx, "Comune A")
		localita = testutil.Localita(t, tx, comune.ID, "Via Roma")
	})

	id, err := engine.RegisterNewProperty(context.Background(), variazione.NewPropertyParams{
		ComuneID:     comune.ID,
		Numero:       100,
		DataImpianto: testutil.Date(2024, time.January, 1),
		Possessori:   []catasto.PossessoreSpec{{NomeCompleto: "Mario Rossi", Titolo: "proprietà esclusiva"}},
		Immobili:     []catasto.ImmobileSpec{{Natura: "Casa", LocalitaID: localita.ID}},
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	testutil.Read(t, store, func(ctx context.Context, tx catasto.Tx) {
		p, err := tx.GetPartita(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, catasto.StatoAttiva, p.Stato)
		assert.Equal(t, catasto.TipoPrincipale, p.Tipo)

		possID, found, err := possessore.NewService(tx).FindByNameAndComune(ctx, "Mario Rossi", comune.ID)
		require.NoError(t, err)
		require.True(t, found)

		legami, err := tx.ListLegami(ctx, id)
		require.NoError(t, err)
		require.Len(t, legami, 1)
		assert.Equal(t, possID, legami[0].PossessoreID)
		assert.Equal(t, "proprietà esclusiva", legami[0].Titolo)
		assert.Nil(t, legami[0].Quota)

		immobili, err := tx.ListImmobili(ctx, id)
		require.NoError(t, err)
		require.Len(t, immobili, 1)
		assert.Equal(t, "Casa", immobili[0].Natura)

		vs, err := tx.ListVariazioni(ctx, catasto.VariazioneFilter{DestinazioneID: &id})
		require.NoError(t, err)
		assert.Empty(t, vs)
	})
}

func TestEngine_RegisterNewProperty_Validation(t *testing.T) {
	store := memstore.New()
	engine := newEngine(store)

	var (
		comune   *catasto.Comune
		localita *catasto.Localita
		other    *catasto.Localita
	)

	testutil.Write(t, store, func(_ context.Context, tx catasto.Tx) {
		comune = testutil.Comune(t, tx, "Comune A")
		localita = testutil.Localita(t, tx, comune.ID, "Via Roma")
		b := testutil.Comune(t, tx, "Comune B")
		other = testutil.Localita(t, tx, b.ID, "Via Milano")
	})

	owners := []catasto.PossessoreSpec{{NomeCompleto: "Mario Rossi"}}

	type testCase struct {
		name     string
		params   variazione.NewPropertyParams
		wantKind catasto.Kind
	}

	tests := []testCase{
		{
			name: "NoPossessori",
			params: variazione.NewPropertyParams{
				ComuneID: comune.ID, Numero: 1, DataImpianto: testutil.Date(2024, time.January, 1),
				Immobili: []catasto.ImmobileSpec{{Natura: "Casa", LocalitaID: localita.ID}},
			},
			wantKind: catasto.KindDataError,
		},
		{
			name: "NoImmobili",
			params: variazione.NewPropertyParams{
				ComuneID: comune.ID, Numero: 1, DataImpianto: testutil.Date(2024, time.January, 1),
				Possessori: owners,
			},
			wantKind: catasto.KindDataError,
		},
		{
			name: "LocalitaInAnotherComune",
			params: variazione.NewPropertyParams{
				ComuneID: comune.ID, Numero: 2, DataImpianto: testutil.Date(2024, time.January, 1),
				Possessori: owners,
				Immobili:   []catasto.ImmobileSpec{{Natura: "Casa", LocalitaID: other.ID}},
			},
			wantKind: catasto.KindDataError,
		},
		{
			name: "UnknownComune",
			params: variazione.NewPropertyParams{
				ComuneID: 999, Numero: 3, DataImpianto: testutil.Date(2024, time.January, 1),
				Possessori: owners,
				Immobili:   []catasto.ImmobileSpec{{Natura: "Casa", LocalitaID: localita.ID}},
			},
			wantKind: catasto.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.RegisterNewProperty(context.Background(), tt.params)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, catasto.KindOf(err))
		})
	}

	testutil.Read(t, store, func(ctx context.Context, tx catasto.Tx) {
		partite, err := tx.ListPartite(ctx, catasto.PartitaFilter{})
		require.NoError(t, err)
		assert.Empty(t, partite)

		p, err := tx.FindPossessore(ctx, comune.ID, "Mario Rossi")
		require.NoError(t, err)
		assert.Nil(t, p)
	})
}

func TestEngine_RegisterTransfer(t *testing.T) {
	store := memstore.New()
	w := seed(t, store)
	pub := &fakePublisher{}
	m := metrics.New(prometheus.NewRegistry())
	engine := newEngine(store, variazione.WithPublisher(pub), variazione.WithMetrics(m))

	res, err := engine.RegisterTransfer(context.Background(), transferParams(w))
	require.NoError(t, err)

	testutil.Read(t, store, func(ctx context.Context, tx catasto.Tx) {
		origin, err := tx.GetPartita(ctx, w.origin.ID)
		require.NoError(t, err)
		assert.Equal(t, catasto.StatoInattiva, origin.Stato)
		require.NotNil(t, origin.DataChiusura)
		assert.True(t, origin.DataChiusura.Equal(testutil.Date(2024, time.June, 1)))

		dest, err := tx.GetPartita(ctx, res.PartitaID)
		require.NoError(t, err)
		assert.Equal(t, 101, dest.Numero)
		assert.Equal(t, catasto.StatoAttiva, dest.Stato)
		assert.Equal(t, origin.Tipo, dest.Tipo)
		assert.True(t, dest.DataImpianto.Equal(testutil.Date(2024, time.June, 1)))
		require.NotNil(t, dest.NumeroProvenienza)
		assert.Equal(t, "100", *dest.NumeroProvenienza)

		im, err := tx.GetImmobile(ctx, w.immobile.ID)
		require.NoError(t, err)
		assert.Equal(t, res.PartitaID, im.PartitaID)

		v, err := tx.GetVariazione(ctx, res.VariazioneID)
		require.NoError(t, err)
		assert.Equal(t, w.origin.ID, v.PartitaOrigineID)
		require.NotNil(t, v.PartitaDestinazioneID)
		assert.Equal(t, res.PartitaID, *v.PartitaDestinazioneID)
		assert.Equal(t, catasto.VariazioneVendita, v.Tipo)

		c, err := tx.GetContratto(ctx, res.VariazioneID)
		require.NoError(t, err)
		assert.Equal(t, "Atto di compravendita", c.Tipo)
		require.NotNil(t, c.Notaio)
		assert.Equal(t, "Notaio Bianchi", *c.Notaio)

		legami, err := tx.ListLegami(ctx, res.PartitaID)
		require.NoError(t, err)
		require.Len(t, legami, 2)

		titoli := map[string]bool{}
		for _, l := range legami {
			titoli[l.Titolo] = true
			require.NotNil(t, l.Quota)
			assert.Equal(t, "1/2", *l.Quota)
		}
		assert.Equal(t, map[string]bool{"comproprietà": true}, titoli)
	})

	require.Len(t, pub.events, 1)
	assert.Equal(t, res.VariazioneID, pub.events[0].VariazioneID)
	assert.Equal(t, "100", pub.events[0].PartitaOrigine)
	assert.Equal(t, "101", pub.events[0].PartitaDestinazione)
	assert.Equal(t, "2024-06-01", pub.events[0].DataVariazione)
	assert.Equal(t, []int64{w.immobile.ID}, pub.events[0].ImmobiliTrasferiti)
	assert.False(t, pub.events[0].RegisteredAt.IsZero())

	assert.Equal(t, 1.0, promtestutil.ToFloat64(m.TransfersTotal.WithLabelValues("Vendita")))
}

func TestEngine_RegisterTransfer_ReusesExistingPossessore(t *testing.T) {
	store := memstore.New()
	w := seed(t, store)

	var existing *catasto.Possessore

	testutil.Write(t, store, func(_ context.Context, tx catasto.Tx) {
		existing = testutil.Possessore(t, tx, w.comune.ID, "Giuseppe Verdi")
	})

	params := transferParams(w)
	params.NuoviPossessori = []catasto.PossessoreSpec{{NomeCompleto: "Giuseppe  Verdi"}}
	params.ImmobiliDaTrasferire = nil

	res, err := newEngine(store).RegisterTransfer(context.Background(), params)
	require.NoError(t, err)

	testutil.Read(t, store, func(ctx context.Context, tx catasto.Tx) {
		legami, err := tx.ListLegami(ctx, res.PartitaID)
		require.NoError(t, err)
		require.Len(t, legami, 1)
		assert.Equal(t, existing.ID, legami[0].PossessoreID)
		assert.Equal(t, "proprietà esclusiva", legami[0].Titolo)

		im, err := tx.GetImmobile(ctx, w.immobile.ID)
		require.NoError(t, err)
		assert.Equal(t, w.origin.ID, im.PartitaID)
	})
}

func TestEngine_RegisterTransfer_Rejected(t *testing.T) {
	type testCase struct {
		name     string
		mutate   func(t *testing.T, store *memstore.Store, w world, p *variazione.TransferParams)
		wantKind catasto.Kind
	}

	tests := []testCase{
		{
			name: "MissingOrigin",
			mutate: func(_ *testing.T, _ *memstore.Store, _ world, p *variazione.TransferParams) {
				p.PartitaOrigineID = 999
			},
			wantKind: catasto.KindNotFound,
		},
		{
			name: "UnknownTipoVariazione",
			mutate: func(_ *testing.T, _ *memstore.Store, _ world, p *variazione.TransferParams) {
				p.TipoVariazione = "Permuta"
			},
			wantKind: catasto.KindDataError,
		},
		{
			name: "MissingTipoContratto",
			mutate: func(_ *testing.T, _ *memstore.Store, _ world, p *variazione.TransferParams) {
				p.TipoContratto = "  "
			},
			wantKind: catasto.KindDataError,
		},
		{
			name: "DateBeforeImpianto",
			mutate: func(_ *testing.T, _ *memstore.Store, _ world, p *variazione.TransferParams) {
				p.DataVariazione = testutil.Date(2023, time.June, 1)
			},
			wantKind: catasto.KindDataError,
		},
		{
			name: "DestinationKeyTaken",
			mutate: func(t *testing.T, store *memstore.Store, w world, _ *variazione.TransferParams) {
				testutil.Write(t, store, func(_ context.Context, tx catasto.Tx) {
					testutil.Partita(t, tx, w.comune.ID, 101)
				})
			},
			wantKind: catasto.KindUniqueConstraint,
		},
		{
			name: "ImmobileOfAnotherPartita",
			mutate: func(t *testing.T, store *memstore.Store, w world, p *variazione.TransferParams) {
				testutil.Write(t, store, func(_ context.Context, tx catasto.Tx) {
					other := testutil.Partita(t, tx, w.comune.ID, 200)
					im := testutil.Immobile(t, tx, other.ID, w.localita.ID, "Stalla")
					p.ImmobiliDaTrasferire = append(p.ImmobiliDaTrasferire, im.ID)
				})
			},
			wantKind: catasto.KindDataError,
		},
		{
			name: "CrossComuneImmobile",
			mutate: func(t *testing.T, store *memstore.Store, _ world, p *variazione.TransferParams) {
				testutil.Write(t, store, func(_ context.Context, tx catasto.Tx) {
					p.ComuneDestinazioneID = testutil.Comune(t, tx, "Comune B").ID
				})
			},
			wantKind: catasto.KindDataError,
		},
		{
			name: "InvalidQuota",
			mutate: func(_ *testing.T, _ *memstore.Store, _ world, p *variazione.TransferParams) {
				p.NuoviPossessori[1].Quota = new("3/2")
			},
			wantKind: catasto.KindDataError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memstore.New()
			w := seed(t, store)
			params := transferParams(w)
			tt.mutate(t, store, w, &params)

			pub := &fakePublisher{}

			_, err := newEngine(store, variazione.WithPublisher(pub)).RegisterTransfer(context.Background(), params)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, catasto.KindOf(err))
			assert.Empty(t, pub.events)

			assertUntouched(t, store, w)
		})
	}
}

// assertUntouched checks that a failed transfer left no trace.
func assertUntouched(t *testing.T, store *memstore.Store, w world) {
	t.Helper()

	testutil.Read(t, store, func(ctx context.Context, tx catasto.Tx) {
		origin, err := tx.GetPartita(ctx, w.origin.ID)
		require.NoError(t, err)
		assert.Equal(t, catasto.StatoAttiva, origin.Stato)
		assert.Nil(t, origin.DataChiusura)

		im, err := tx.GetImmobile(ctx, w.immobile.ID)
		require.NoError(t, err)
		assert.Equal(t, w.origin.ID, im.PartitaID)

		vs, err := tx.ListVariazioni(ctx, catasto.VariazioneFilter{OrigineID: &w.origin.ID})
		require.NoError(t, err)
		assert.Empty(t, vs)

		for _, nome := range []string{"Giuseppe Verdi", "Anna Verdi"} {
			p, err := tx.FindPossessore(ctx, w.comune.ID, nome)
			require.NoError(t, err)
			assert.Nil(t, p, nome)
		}

		partite, err := tx.ListPartite(ctx, catasto.PartitaFilter{})
		require.NoError(t, err)

		for _, p := range partite {
			legami, err := tx.ListLegami(ctx, p.ID)
			require.NoError(t, err)
			assert.Empty(t, legami, "partita %s", p.Label())
		}
	})
}

func TestEngine_RegisterTransfer_Atomicity(t *testing.T) {
	steps := []string{
		"InsertPartita",
		"InsertPossessore",
		"InsertLegame",
		"UpdateImmobilePartita",
		"UpdatePartitaStato",
		"InsertVariazione",
		"InsertContratto",
		"Commit",
	}

	for _, step := range steps {
		t.Run(step, func(t *testing.T) {
			store := memstore.New()
			w := seed(t, store)
			store.FailOn(step, errors.New("connection reset"))

			_, err := newEngine(store).RegisterTransfer(context.Background(), transferParams(w))
			require.Error(t, err)
			assert.ErrorIs(t, err, catasto.ErrStoreError)

			assertUntouched(t, store, w)

			testutil.Read(t, store, func(ctx context.Context, tx catasto.Tx) {
				dest, err := tx.FindPartita(ctx, w.comune.ID, 101, nil)
				require.NoError(t, err)
				assert.Nil(t, dest)
			})
		})
	}
}

func TestEngine_RegisterTransfer_ClosureInvariant(t *testing.T) {
	store := memstore.New()
	w := seed(t, store)
	engine := newEngine(store)

	first, err := engine.RegisterTransfer(context.Background(), transferParams(w))
	require.NoError(t, err)

	again := transferParams(w)
	again.NumeroNuovaPartita = 102
	again.ImmobiliDaTrasferire = nil

	_, err = engine.RegisterTransfer(context.Background(), again)
	require.Error(t, err)
	assert.Equal(t, catasto.KindDataError, catasto.KindOf(err))

	next := transferParams(w)
	next.PartitaOrigineID = first.PartitaID
	next.NumeroNuovaPartita = 102
	next.DataVariazione = testutil.Date(2025, time.March, 1)
	next.NuoviPossessori = nil

	_, err = engine.RegisterTransfer(context.Background(), next)
	require.NoError(t, err)

	testutil.Read(t, store, func(ctx context.Context, tx catasto.Tx) {
		inattive := catasto.StatoInattiva

		closed, err := tx.ListPartite(ctx, catasto.PartitaFilter{Stato: &inattive})
		require.NoError(t, err)
		require.Len(t, closed, 2)

		for _, p := range closed {
			assert.NotNil(t, p.DataChiusura)

			vs, err := tx.ListVariazioni(ctx, catasto.VariazioneFilter{OrigineID: &p.ID})
			require.NoError(t, err)
			assert.Len(t, vs, 1, "partita %s", p.Label())
		}
	})
}

func TestEngine_PublishFailureKeepsCommit(t *testing.T) {
	store := memstore.New()
	w := seed(t, store)
	pub := &fakePublisher{err: errors.New("broker unreachable")}

	res, err := newEngine(store, variazione.WithPublisher(pub)).RegisterTransfer(context.Background(), transferParams(w))
	require.NoError(t, err)
	require.Len(t, pub.events, 1)

	testutil.Read(t, store, func(ctx context.Context, tx catasto.Tx) {
		_, err := tx.GetVariazione(ctx, res.VariazioneID)
		assert.NoError(t, err)
	})
}

func TestEngine_DeleteVariazione(t *testing.T) {
	type testCase struct {
		name          string
		restoreOrigin bool
		wantStato     catasto.StatoPartita
	}

	tests := []testCase{
		{name: "KeepOriginClosed", wantStato: catasto.StatoInattiva},
		{name: "RestoreOrigin", restoreOrigin: true, wantStato: catasto.StatoAttiva},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memstore.New()
			w := seed(t, store)
			engine := newEngine(store)

			res, err := engine.RegisterTransfer(context.Background(), transferParams(w))
			require.NoError(t, err)

			require.NoError(t, engine.DeleteVariazione(context.Background(), res.VariazioneID, tt.restoreOrigin))

			testutil.Read(t, store, func(ctx context.Context, tx catasto.Tx) {
				_, err := tx.GetVariazione(ctx, res.VariazioneID)
				assert.ErrorIs(t, err, catasto.ErrNotFound)

				_, err = tx.GetContratto(ctx, res.VariazioneID)
				assert.ErrorIs(t, err, catasto.ErrNotFound)

				origin, err := tx.GetPartita(ctx, w.origin.ID)
				require.NoError(t, err)
				assert.Equal(t, tt.wantStato, origin.Stato)

				im, err := tx.GetImmobile(ctx, w.immobile.ID)
				require.NoError(t, err)
				assert.Equal(t, res.PartitaID, im.PartitaID)
			})
		})
	}
}

func TestEngine_DeleteVariazione_Missing(t *testing.T) {
	err := newEngine(memstore.New()).DeleteVariazione(context.Background(), 42, true)
	assert.ErrorIs(t, err, catasto.ErrNotFound)
}

func TestEngine_Get(t *testing.T) {
	store := memstore.New()
	w := seed(t, store)
	engine := newEngine(store)

	res, err := engine.RegisterTransfer(context.Background(), transferParams(w))
	require.NoError(t, err)

	d, err := engine.Get(context.Background(), res.VariazioneID)
	require.NoError(t, err)
	assert.Equal(t, res.VariazioneID, d.Variazione.ID)
	require.NotNil(t, d.Contratto)
	assert.Equal(t, res.VariazioneID, d.Contratto.VariazioneID)
}

func TestEngine_Genealogy(t *testing.T) {
	store := memstore.New()
	w := seed(t, store)
	engine := newEngine(store)

	first, err := engine.RegisterTransfer(context.Background(), transferParams(w))
	require.NoError(t, err)

	next := transferParams(w)
	next.PartitaOrigineID = first.PartitaID
	next.NumeroNuovaPartita = 102
	next.DataVariazione = testutil.Date(2025, time.March, 1)
	next.NuoviPossessori = nil
	next.ImmobiliDaTrasferire = nil

	second, err := engine.RegisterTransfer(context.Background(), next)
	require.NoError(t, err)

	type testCase struct {
		name     string
		root     int64
		maxDepth int
		want     map[int64]variazione.Direction
	}

	tests := []testCase{
		{
			name: "FromMiddle",
			root: first.PartitaID,
			want: map[int64]variazione.Direction{
				first.PartitaID:  variazione.DirectionRoot,
				w.origin.ID:      variazione.DirectionAncestor,
				second.PartitaID: variazione.DirectionDescendant,
			},
		},
		{
			name: "FromOriginDepthOne",
			root: w.origin.ID, maxDepth: 1,
			want: map[int64]variazione.Direction{
				w.origin.ID:     variazione.DirectionRoot,
				first.PartitaID: variazione.DirectionDescendant,
			},
		},
		{
			name: "FromLeaf",
			root: second.PartitaID,
			want: map[int64]variazione.Direction{
				second.PartitaID: variazione.DirectionRoot,
				first.PartitaID:  variazione.DirectionAncestor,
				w.origin.ID:      variazione.DirectionAncestor,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := engine.Genealogy(context.Background(), tt.root, tt.maxDepth)
			require.NoError(t, err)

			got := map[int64]variazione.Direction{}
			for _, e := range entries {
				got[e.Partita.ID] = e.Direction

				if e.Direction == variazione.DirectionRoot {
					assert.Zero(t, e.Depth)
					assert.Nil(t, e.Variazione)
				} else {
					assert.Positive(t, e.Depth)
					assert.NotNil(t, e.Variazione)
				}
			}

			assert.Equal(t, tt.want, got)
		})
	}

	_, err = engine.Genealogy(context.Background(), 999, 0)
	assert.ErrorIs(t, err, catasto.ErrNotFound)
}
