package partita_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
	"github.com/MrJamesThe3rd/catasto/internal/catasto/memstore"
	"github.com/MrJamesThe3rd/catasto/internal/partita"
	"github.com/MrJamesThe3rd/catasto/internal/testutil"
)

func TestService_Create(t *testing.T) {
	impianto := testutil.Date(1950, time.January, 1)

	type testCase struct {
		name     string
		params   func(comuneID int64) partita.CreateParams
		wantKind catasto.Kind
	}

	tests := []testCase{
		{
			name: "Success",
			params: func(c int64) partita.CreateParams {
				return partita.CreateParams{ComuneID: c, Numero: 101, Tipo: catasto.TipoPrincipale, DataImpianto: impianto, Suffisso: new("bis")}
			},
		},
		{
			name: "NonPositiveNumero",
			params: func(c int64) partita.CreateParams {
				return partita.CreateParams{ComuneID: c, Numero: 0, Tipo: catasto.TipoPrincipale, DataImpianto: impianto}
			},
			wantKind: catasto.KindDataError,
		},
		{
			name: "UnknownTipo",
			params: func(c int64) partita.CreateParams {
				return partita.CreateParams{ComuneID: c, Numero: 1, Tipo: "terziaria", DataImpianto: impianto}
			},
			wantKind: catasto.KindDataError,
		},
		{
			name: "MissingDate",
			params: func(c int64) partita.CreateParams {
				return partita.CreateParams{ComuneID: c, Numero: 1, Tipo: catasto.TipoPrincipale}
			},
			wantKind: catasto.KindDataError,
		},
		{
			name: "MissingComune",
			params: func(int64) partita.CreateParams {
				return partita.CreateParams{ComuneID: 999, Numero: 1, Tipo: catasto.TipoPrincipale, DataImpianto: impianto}
			},
			wantKind: catasto.KindNotFound,
		},
		{
			name: "DuplicateKey",
			params: func(c int64) partita.CreateParams {
				return partita.CreateParams{ComuneID: c, Numero: 100, Tipo: catasto.TipoSecondaria, DataImpianto: impianto, Suffisso: new("  ")}
			},
			wantKind: catasto.KindUniqueConstraint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memstore.New()

			testutil.Write(t, store, func(ctx context.Context, tx catasto.Tx) {
				c := testutil.Comune(t, tx, "Carcare")
				testutil.Partita(t, tx, c.ID, 100)

				id, err := partita.NewService(tx).Create(ctx, tt.params(c.ID))

				if tt.wantKind != catasto.KindUnknown {
					require.Error(t, err)
					assert.Equal(t, tt.wantKind, catasto.KindOf(err))

					return
				}

				require.NoError(t, err)

				p, err := tx.GetPartita(ctx, id)
				require.NoError(t, err)
				assert.Equal(t, catasto.StatoAttiva, p.Stato)
				assert.Nil(t, p.DataChiusura)
				assert.Equal(t, "101/bis", p.Label())
			})
		})
	}
}

func TestService_Close(t *testing.T) {
	impianto := testutil.Date(1950, time.January, 1)

	type testCase struct {
		name     string
		setup    func(t *testing.T, tx catasto.Tx, comuneID int64) int64
		date     time.Time
		wantKind catasto.Kind
	}

	attiva := func(t *testing.T, tx catasto.Tx, c int64) int64 {
		return testutil.Partita(t, tx, c, 1, testutil.WithImpianto(impianto)).ID
	}

	tests := []testCase{
		{name: "Success", setup: attiva, date: testutil.Date(1960, time.June, 1)},
		{name: "SameDayAsImpianto", setup: attiva, date: impianto},
		{
			name:     "MissingPartita",
			setup:    func(*testing.T, catasto.Tx, int64) int64 { return 999 },
			date:     testutil.Date(1960, time.June, 1),
			wantKind: catasto.KindNotFound,
		},
		{
			name:     "BeforeImpianto",
			setup:    attiva,
			date:     testutil.Date(1949, time.December, 31),
			wantKind: catasto.KindDataError,
		},
		{
			name: "AlreadyInattiva",
			setup: func(t *testing.T, tx catasto.Tx, c int64) int64 {
				return testutil.Partita(t, tx, c, 2, testutil.Closed(testutil.Date(1955, time.May, 1))).ID
			},
			date:     testutil.Date(1960, time.June, 1),
			wantKind: catasto.KindDataError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memstore.New()

			testutil.Write(t, store, func(ctx context.Context, tx catasto.Tx) {
				c := testutil.Comune(t, tx, "Carcare")
				id := tt.setup(t, tx, c.ID)

				err := partita.NewService(tx).Close(ctx, id, tt.date)

				if tt.wantKind != catasto.KindUnknown {
					require.Error(t, err)
					assert.Equal(t, tt.wantKind, catasto.KindOf(err))

					return
				}

				require.NoError(t, err)

				p, err := tx.GetPartita(ctx, id)
				require.NoError(t, err)
				assert.Equal(t, catasto.StatoInattiva, p.Stato)
				require.NotNil(t, p.DataChiusura)
				assert.True(t, tt.date.Equal(*p.DataChiusura))
			})
		})
	}
}

func TestService_Duplicate(t *testing.T) {
	type testCase struct {
		name         string
		params       partita.DuplicateParams
		wantLegami   int
		wantImmobili int
		wantKind     catasto.Kind
	}

	tests := []testCase{
		{
			name:         "CopyEverything",
			params:       partita.DuplicateParams{Numero: 200, MantenerePossessori: true, CopiareImmobili: true},
			wantLegami:   2,
			wantImmobili: 1,
		},
		{
			name:       "OnlyPossessori",
			params:     partita.DuplicateParams{Numero: 200, Suffisso: new("bis"), MantenerePossessori: true},
			wantLegami: 2,
		},
		{
			name:   "HeaderOnly",
			params: partita.DuplicateParams{Numero: 200},
		},
		{
			name:     "KeyTaken",
			params:   partita.DuplicateParams{Numero: 100, MantenerePossessori: true},
			wantKind: catasto.KindUniqueConstraint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memstore.New()

			testutil.Write(t, store, func(ctx context.Context, tx catasto.Tx) {
				c := testutil.Comune(t, tx, "Carcare")
				src := testutil.Partita(t, tx, c.ID, 100,
					testutil.WithTipo(catasto.TipoSecondaria),
					testutil.WithImpianto(testutil.Date(1932, time.April, 2)),
				)
				rossi := testutil.Possessore(t, tx, c.ID, "Rossi Mario")
				bianchi := testutil.Possessore(t, tx, c.ID, "Bianchi Anna")
				testutil.Legame(t, tx, src.ID, rossi.ID, "proprieta", new("1/2"))
				testutil.Legame(t, tx, src.ID, bianchi.ID, "proprieta", new("1/2"))
				l := testutil.Localita(t, tx, c.ID, "Via Roma")
				testutil.Immobile(t, tx, src.ID, l.ID, "Casa")

				newID, err := partita.NewService(tx).Duplicate(ctx, src.ID, tt.params)

				if tt.wantKind != catasto.KindUnknown {
					require.Error(t, err)
					assert.Equal(t, tt.wantKind, catasto.KindOf(err))

					return
				}

				require.NoError(t, err)

				dup, err := tx.GetPartita(ctx, newID)
				require.NoError(t, err)
				assert.Equal(t, src.ComuneID, dup.ComuneID)
				assert.Equal(t, src.Tipo, dup.Tipo)
				assert.True(t, src.DataImpianto.Equal(dup.DataImpianto))
				assert.Equal(t, catasto.StatoAttiva, dup.Stato)

				legami, err := tx.ListLegami(ctx, newID)
				require.NoError(t, err)
				assert.Len(t, legami, tt.wantLegami)

				for _, l := range legami {
					assert.Equal(t, "proprieta", l.Titolo)
					assert.Equal(t, "1/2", *l.Quota)
				}

				immobili, err := tx.ListImmobili(ctx, newID)
				require.NoError(t, err)
				assert.Len(t, immobili, tt.wantImmobili)

				original, err := tx.ListImmobili(ctx, src.ID)
				require.NoError(t, err)
				assert.Len(t, original, 1)
			})
		})
	}
}

func TestService_Reopen(t *testing.T) {
	store := memstore.New()

	testutil.Write(t, store, func(ctx context.Context, tx catasto.Tx) {
		c := testutil.Comune(t, tx, "Carcare")
		open := testutil.Partita(t, tx, c.ID, 1)
		closed := testutil.Partita(t, tx, c.ID, 2, testutil.Closed(testutil.Date(1960, time.January, 1)))
		transferred := testutil.Partita(t, tx, c.ID, 3, testutil.Closed(testutil.Date(1960, time.January, 1)))

		require.NoError(t, tx.InsertVariazione(ctx, &catasto.Variazione{
			PartitaOrigineID:      transferred.ID,
			PartitaDestinazioneID: &open.ID,
			Tipo:                  catasto.VariazioneVendita,
			DataVariazione:        testutil.Date(1960, time.January, 1),
		}))

		svc := partita.NewService(tx)

		assert.ErrorIs(t, svc.Reopen(ctx, 999), catasto.ErrNotFound)
		assert.ErrorIs(t, svc.Reopen(ctx, open.ID), catasto.ErrDataError)
		assert.ErrorIs(t, svc.Reopen(ctx, transferred.ID), catasto.ErrDataError)

		require.NoError(t, svc.Reopen(ctx, closed.ID))

		p, err := svc.Get(ctx, closed.ID)
		require.NoError(t, err)
		assert.Equal(t, catasto.StatoAttiva, p.Stato)
		assert.Nil(t, p.DataChiusura)
	})
}

func TestService_Documenti(t *testing.T) {
	store := memstore.New()

	testutil.Write(t, store, func(ctx context.Context, tx catasto.Tx) {
		c := testutil.Comune(t, tx, "Carcare")
		p := testutil.Partita(t, tx, c.ID, 1)
		svc := partita.NewService(tx)

		assert.ErrorIs(t, svc.LinkDocumento(ctx, partita.DocumentoParams{DocumentoID: 1, PartitaID: p.ID, Rilevanza: "assoluta"}), catasto.ErrDataError)
		assert.ErrorIs(t, svc.LinkDocumento(ctx, partita.DocumentoParams{DocumentoID: 1, PartitaID: 999, Rilevanza: catasto.RilevanzaPrimaria}), catasto.ErrNotFound)

		require.NoError(t, svc.LinkDocumento(ctx, partita.DocumentoParams{DocumentoID: 7, PartitaID: p.ID, Rilevanza: catasto.RilevanzaPrimaria}))
		require.NoError(t, svc.LinkDocumento(ctx, partita.DocumentoParams{DocumentoID: 7, PartitaID: p.ID, Rilevanza: catasto.RilevanzaCorrelata, Note: new("atto notarile")}))

		docs, err := svc.ListDocumenti(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, catasto.RilevanzaCorrelata, docs[0].Rilevanza)
		assert.Equal(t, "atto notarile", *docs[0].Note)

		require.NoError(t, svc.UnlinkDocumento(ctx, 7, p.ID))
		assert.ErrorIs(t, svc.UnlinkDocumento(ctx, 7, p.ID), catasto.ErrNotFound)
	})
}

func TestService_CloseDoesNotUpdateOnValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := partita.NewMockRepository(ctrl)
	repo.EXPECT().GetPartita(gomock.Any(), int64(1)).Return(&catasto.Partita{
		ID:           1,
		Numero:       5,
		Stato:        catasto.StatoAttiva,
		DataImpianto: testutil.Date(1950, time.January, 1),
	}, nil)

	err := partita.NewService(repo).Close(context.Background(), 1, time.Time{})
	assert.ErrorIs(t, err, catasto.ErrDataError)
}
