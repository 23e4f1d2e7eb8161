package variazione

import (
	"context"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

const (
	defaultGenealogyDepth = 10
	maxGenealogyDepth     = 50
)

type Direction string

const (
	DirectionRoot       Direction = "root"
	DirectionAncestor   Direction = "ancestor"
	DirectionDescendant Direction = "descendant"
)

// GenealogyEntry is one partita reached from the root. Variazione is the
// edge it was reached through and is nil for the root.
type GenealogyEntry struct {
	Partita    *catasto.Partita
	Direction  Direction
	Depth      int
	Variazione *catasto.Variazione
}

type frontier struct {
	id    int64
	depth int
}

// genealogy runs a breadth-first walk in each direction. A partita is
// reported once per direction even when several chains lead to it.
func genealogy(ctx context.Context, tx catasto.Tx, partitaID int64, maxDepth int) ([]GenealogyEntry, error) {
	switch {
	case maxDepth <= 0:
		maxDepth = defaultGenealogyDepth
	case maxDepth > maxGenealogyDepth:
		maxDepth = maxGenealogyDepth
	}

	root, err := tx.GetPartita(ctx, partitaID)
	if err != nil {
		return nil, err
	}

	out := []GenealogyEntry{{Partita: root, Direction: DirectionRoot}}

	ancestors, err := walk(ctx, tx, partitaID, maxDepth, DirectionAncestor)
	if err != nil {
		return nil, err
	}

	descendants, err := walk(ctx, tx, partitaID, maxDepth, DirectionDescendant)
	if err != nil {
		return nil, err
	}

	out = append(out, ancestors...)
	out = append(out, descendants...)

	return out, nil
}

func walk(ctx context.Context, tx catasto.Tx, rootID int64, maxDepth int, dir Direction) ([]GenealogyEntry, error) {
	var out []GenealogyEntry

	seen := map[int64]bool{rootID: true}
	queue := []frontier{{id: rootID}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.depth >= maxDepth {
			continue
		}

		edges, err := tx.ListVariazioni(ctx, edgeFilter(cur.id, dir))
		if err != nil {
			return nil, err
		}

		for _, v := range edges {
			next, ok := neighbour(v, dir)
			if !ok || seen[next] {
				continue
			}

			seen[next] = true

			p, err := tx.GetPartita(ctx, next)
			if err != nil {
				return nil, err
			}

			out = append(out, GenealogyEntry{
				Partita:    p,
				Direction:  dir,
				Depth:      cur.depth + 1,
				Variazione: v,
			})
			queue = append(queue, frontier{id: next, depth: cur.depth + 1})
		}
	}

	return out, nil
}

func edgeFilter(id int64, dir Direction) catasto.VariazioneFilter {
	if dir == DirectionAncestor {
		return catasto.VariazioneFilter{DestinazioneID: &id}
	}

	return catasto.VariazioneFilter{OrigineID: &id}
}

func neighbour(v *catasto.Variazione, dir Direction) (int64, bool) {
	if dir == DirectionAncestor {
		return v.PartitaOrigineID, true
	}

	if v.PartitaDestinazioneID == nil {
		return 0, false
	}

	return *v.PartitaDestinazioneID, true
}
