package importer_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
	"github.com/MrJamesThe3rd/catasto/internal/catasto/memstore"
	"github.com/MrJamesThe3rd/catasto/internal/importer"
	"github.com/MrJamesThe3rd/catasto/internal/metrics"
	"github.com/MrJamesThe3rd/catasto/internal/testutil"
)

func setup(t *testing.T) (*memstore.Store, int64, *importer.Importer, *metrics.Metrics) {
	t.Helper()

	store := memstore.New()

	var comuneID int64

	testutil.Write(t, store, func(_ context.Context, tx catasto.Tx) {
		comuneID = testutil.Comune(t, tx, "Dego").ID
	})

	m := metrics.New(prometheus.NewRegistry())
	runner := catasto.NewRunner(store, catasto.WithLogger(slog.New(slog.DiscardHandler)))

	return store, comuneID, importer.New(runner, m), m
}

func TestImporter_ImportPossessori(t *testing.T) {
	store, comuneID, imp, m := setup(t)

	csv := "cognome_nome;nome_completo;paternita\n" +
		"Rossi Mario;Rossi Mario fu Carlo;fu Carlo\n" +
		";;\n" +
		"Bianchi Anna;Bianchi Anna;\n"

	res, err := imp.ImportPossessori(context.Background(), comuneID, strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Rows)
	assert.Len(t, res.IDs, 2)
	assert.Equal(t, 2.0, promtestutil.ToFloat64(m.ImportRows.WithLabelValues("possessori")))

	testutil.Read(t, store, func(ctx context.Context, tx catasto.Tx) {
		p, err := tx.GetPossessore(ctx, res.IDs[0])
		require.NoError(t, err)
		assert.Equal(t, "Rossi Mario fu Carlo", p.NomeCompleto)
		require.NotNil(t, p.Paternita)
		assert.Equal(t, "fu Carlo", *p.Paternita)
		assert.True(t, p.Attivo)

		p, err = tx.GetPossessore(ctx, res.IDs[1])
		require.NoError(t, err)
		assert.Nil(t, p.Paternita)
	})
}

func TestImporter_ImportPossessori_AllOrNothing(t *testing.T) {
	type testCase struct {
		name     string
		csv      string
		wantKind catasto.Kind
		wantMsg  string
	}

	tests := []testCase{
		{
			name:     "MissingColumn",
			csv:      "nome_completo\nRossi Mario\n",
			wantKind: catasto.KindDataError,
			wantMsg:  "cognome_nome",
		},
		{
			name:     "MissingValue",
			csv:      "cognome_nome,nome_completo\nVerdi Piero,Verdi Piero\nRossi Mario,\n",
			wantKind: catasto.KindDataError,
			wantMsg:  "row 3",
		},
		{
			name:     "AlreadyRegistered",
			csv:      "cognome_nome,nome_completo\nVerdi Piero,Verdi Piero\nGallo Rina,Gallo Rina\n",
			wantKind: catasto.KindUniqueConstraint,
			wantMsg:  "row 3",
		},
		{
			name:     "DuplicateWithinFile",
			csv:      "cognome_nome,nome_completo\nVerdi Piero,Verdi Piero\nVerdi Piero,Verdi  Piero\n",
			wantKind: catasto.KindUniqueConstraint,
			wantMsg:  "row 3",
		},
		{
			name:     "Empty",
			csv:      "",
			wantKind: catasto.KindDataError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, comuneID, imp, m := setup(t)

			testutil.Write(t, store, func(_ context.Context, tx catasto.Tx) {
				testutil.Possessore(t, tx, comuneID, "Gallo Rina")
			})

			_, err := imp.ImportPossessori(context.Background(), comuneID, strings.NewReader(tt.csv))
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, catasto.KindOf(err))
			assert.Contains(t, err.Error(), tt.wantMsg)

			testutil.Read(t, store, func(ctx context.Context, tx catasto.Tx) {
				all, err := tx.ListPossessori(ctx, comuneID, "")
				require.NoError(t, err)
				assert.Len(t, all, 1)
			})

			assert.Equal(t, 0.0, promtestutil.ToFloat64(m.ImportRows.WithLabelValues("possessori")))
		})
	}
}

func TestImporter_ImportPossessori_HeaderOnly(t *testing.T) {
	_, comuneID, imp, _ := setup(t)

	res, err := imp.ImportPossessori(context.Background(), comuneID, strings.NewReader("cognome_nome;nome_completo\n"))
	require.NoError(t, err)
	assert.Zero(t, res.Rows)
	assert.Empty(t, res.IDs)
}

func TestImporter_ImportPartite(t *testing.T) {
	store, comuneID, imp, m := setup(t)

	csv := "Numero_Partita,Suffisso_Partita,Data_Impianto,Stato,Tipo,Numero_Provenienza\n" +
		"12,,1938-04-01,attiva,principale,\n" +
		"12,bis,01/05/1940,Attiva,secondaria,12\n"

	res, err := imp.ImportPartite(context.Background(), comuneID, strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Rows)
	assert.Equal(t, 2.0, promtestutil.ToFloat64(m.ImportRows.WithLabelValues("partite")))

	testutil.Read(t, store, func(ctx context.Context, tx catasto.Tx) {
		p, err := tx.GetPartita(ctx, res.IDs[1])
		require.NoError(t, err)
		assert.Equal(t, "12/bis", p.Label())
		assert.Equal(t, catasto.TipoSecondaria, p.Tipo)
		assert.Equal(t, catasto.StatoAttiva, p.Stato)
		assert.True(t, p.DataImpianto.Equal(testutil.Date(1940, time.May, 1)))
		require.NotNil(t, p.NumeroProvenienza)
		assert.Equal(t, "12", *p.NumeroProvenienza)
	})
}

func TestImporter_ImportPartite_Rejected(t *testing.T) {
	header := "numero_partita;data_impianto;stato;tipo\n"

	type testCase struct {
		name     string
		rows     string
		wantKind catasto.Kind
		wantMsg  string
	}

	tests := []testCase{
		{name: "Inattiva", rows: "1;1938-04-01;attiva;principale\n2;1938-04-01;inattiva;principale\n", wantKind: catasto.KindDataError, wantMsg: "row 3"},
		{name: "BadDate", rows: "1;aprile 1938;attiva;principale\n", wantKind: catasto.KindDataError, wantMsg: "data_impianto"},
		{name: "BadNumero", rows: "0;1938-04-01;attiva;principale\n", wantKind: catasto.KindDataError, wantMsg: "numero_partita"},
		{name: "BadTipo", rows: "1;1938-04-01;attiva;terziaria\n", wantKind: catasto.KindDataError, wantMsg: "tipo"},
		{name: "Existing", rows: "1;1938-04-01;attiva;principale\n5;1938-04-01;attiva;principale\n", wantKind: catasto.KindUniqueConstraint, wantMsg: "row 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, comuneID, imp, _ := setup(t)

			testutil.Write(t, store, func(_ context.Context, tx catasto.Tx) {
				testutil.Partita(t, tx, comuneID, 5)
			})

			_, err := imp.ImportPartite(context.Background(), comuneID, strings.NewReader(header+tt.rows))
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, catasto.KindOf(err))
			assert.Contains(t, err.Error(), tt.wantMsg)

			testutil.Read(t, store, func(ctx context.Context, tx catasto.Tx) {
				all, err := tx.ListPartite(ctx, catasto.PartitaFilter{ComuneID: &comuneID})
				require.NoError(t, err)
				assert.Len(t, all, 1)
			})
		})
	}
}

func TestImporter_StoreFailureRollsBack(t *testing.T) {
	store, comuneID, imp, _ := setup(t)
	store.FailOn("Commit", errors.New("connection reset"))

	_, err := imp.ImportPartite(context.Background(), comuneID,
		strings.NewReader("numero_partita,data_impianto,stato,tipo\n1,1938-04-01,attiva,principale\n"))
	assert.ErrorIs(t, err, catasto.ErrStoreError)

	testutil.Read(t, store, func(ctx context.Context, tx catasto.Tx) {
		all, err := tx.ListPartite(ctx, catasto.PartitaFilter{})
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestImporter_UnknownComune(t *testing.T) {
	_, _, imp, _ := setup(t)

	_, err := imp.ImportPartite(context.Background(), 404,
		strings.NewReader("numero_partita,data_impianto,stato,tipo\n1,1938-04-01,attiva,principale\n"))
	assert.ErrorIs(t, err, catasto.ErrNotFound)
}
