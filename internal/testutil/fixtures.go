// Package testutil seeds ledger fixtures for package tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

// Date returns midnight UTC of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Write runs fn in a committed write transaction on store.
func Write(t *testing.T, store catasto.Store, fn func(ctx context.Context, tx catasto.Tx)) {
	t.Helper()

	ctx := context.Background()

	tx, err := store.Begin(ctx, catasto.TxOptions{})
	require.NoError(t, err)

	defer tx.Rollback()

	fn(ctx, tx)

	require.NoError(t, tx.Commit())
}

// Read runs fn in a read-only transaction on store.
func Read(t *testing.T, store catasto.Store, fn func(ctx context.Context, tx catasto.Tx)) {
	t.Helper()

	ctx := context.Background()

	tx, err := store.Begin(ctx, catasto.TxOptions{ReadOnly: true})
	require.NoError(t, err)

	defer tx.Rollback()

	fn(ctx, tx)
}

func Comune(t *testing.T, tx catasto.Tx, nome string) *catasto.Comune {
	t.Helper()

	c := &catasto.Comune{Nome: nome, Provincia: "Savona", Regione: "Liguria"}
	require.NoError(t, tx.InsertComune(context.Background(), c))

	return c
}

type PartitaOption func(*catasto.Partita)

func WithSuffisso(s string) PartitaOption {
	return func(p *catasto.Partita) { p.Suffisso = &s }
}

func WithTipo(tipo catasto.TipoPartita) PartitaOption {
	return func(p *catasto.Partita) { p.Tipo = tipo }
}

func WithImpianto(d time.Time) PartitaOption {
	return func(p *catasto.Partita) { p.DataImpianto = d }
}

func Closed(d time.Time) PartitaOption {
	return func(p *catasto.Partita) {
		p.Stato = catasto.StatoInattiva
		p.DataChiusura = &d
	}
}

// Partita inserts an attiva principale partita opened on 1950-01-01.
func Partita(t *testing.T, tx catasto.Tx, comuneID int64, numero int, opts ...PartitaOption) *catasto.Partita {
	t.Helper()

	p := &catasto.Partita{
		ComuneID:     comuneID,
		Numero:       numero,
		Tipo:         catasto.TipoPrincipale,
		Stato:        catasto.StatoAttiva,
		DataImpianto: Date(1950, time.January, 1),
	}
	for _, opt := range opts {
		opt(p)
	}

	require.NoError(t, tx.InsertPartita(context.Background(), p))

	return p
}

func Possessore(t *testing.T, tx catasto.Tx, comuneID int64, nome string) *catasto.Possessore {
	t.Helper()

	p := &catasto.Possessore{ComuneID: comuneID, NomeCompleto: nome, Attivo: true}
	require.NoError(t, tx.InsertPossessore(context.Background(), p))

	return p
}

func Localita(t *testing.T, tx catasto.Tx, comuneID int64, nome string) *catasto.Localita {
	t.Helper()

	l := &catasto.Localita{ComuneID: comuneID, Nome: nome, Tipo: catasto.LocalitaVia}
	require.NoError(t, tx.InsertLocalita(context.Background(), l))

	return l
}

func Immobile(t *testing.T, tx catasto.Tx, partitaID, localitaID int64, natura string) *catasto.Immobile {
	t.Helper()

	im := &catasto.Immobile{PartitaID: partitaID, LocalitaID: localitaID, Natura: natura}
	require.NoError(t, tx.InsertImmobile(context.Background(), im))

	return im
}

// Legame links possessoreID to partitaID with the given title and quota.
func Legame(t *testing.T, tx catasto.Tx, partitaID, possessoreID int64, titolo string, quota *string) *catasto.PartitaPossessore {
	t.Helper()

	l := &catasto.PartitaPossessore{
		PartitaID:    partitaID,
		PossessoreID: possessoreID,
		TipoPartita:  catasto.TipoPrincipale,
		Titolo:       titolo,
		Quota:        quota,
	}
	require.NoError(t, tx.InsertLegame(context.Background(), l))

	return l
}
