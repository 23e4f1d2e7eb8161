// Package events announces committed ledger changes to other systems.
package events

import (
	"context"
	"time"
)

const TransferQueue = "catasto.variazione.registered"

// TransferRegistered is emitted once a transfer has committed.
type TransferRegistered struct {
	VariazioneID          int64     `json:"variazione_id"`
	Tipo                  string    `json:"tipo"`
	DataVariazione        string    `json:"data_variazione"`
	PartitaOrigineID      int64     `json:"partita_origine_id"`
	PartitaOrigine        string    `json:"partita_origine"`
	PartitaDestinazioneID int64     `json:"partita_destinazione_id"`
	PartitaDestinazione   string    `json:"partita_destinazione"`
	ComuneDestinazioneID  int64     `json:"comune_destinazione_id"`
	ImmobiliTrasferiti    []int64   `json:"immobili_trasferiti"`
	RegisteredAt          time.Time `json:"registered_at"`
}

type Publisher interface {
	PublishTransfer(ctx context.Context, event TransferRegistered) error
}
