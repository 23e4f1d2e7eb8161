package catasto

// PossessoreSpec describes an owner to attach to a partita during a
// registration or transfer. When PossessoreID is set the record is reused
// as is; otherwise it is resolved by name in the target comune and created
// when absent.
type PossessoreSpec struct {
	PossessoreID *int64
	NomeCompleto string
	CognomeNome  *string
	Paternita    *string
	Titolo       string
	Quota        *string
}

// ImmobileSpec describes a physical unit to create on a new partita.
type ImmobileSpec struct {
	Natura          string
	LocalitaID      int64
	Classificazione *string
	Consistenza     *string
	NumeroPiani     *int
	NumeroVani      *int
}
