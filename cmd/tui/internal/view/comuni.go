package view

import (
	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

// comuneCycle is the comune scope shared by the views. Index -1 means every
// comune when allowAll is set.
type comuneCycle struct {
	comuni   []*catasto.Comune
	idx      int
	allowAll bool
}

func newComuneCycle(comuni []*catasto.Comune, allowAll bool) comuneCycle {
	c := comuneCycle{comuni: comuni, allowAll: allowAll}
	if allowAll {
		c.idx = -1
	}

	return c
}

func (c *comuneCycle) next() {
	if len(c.comuni) == 0 {
		return
	}

	c.idx++
	if c.idx >= len(c.comuni) {
		c.idx = 0
		if c.allowAll {
			c.idx = -1
		}
	}
}

func (c comuneCycle) selected() *catasto.Comune {
	if c.idx < 0 || c.idx >= len(c.comuni) {
		return nil
	}

	return c.comuni[c.idx]
}

func (c comuneCycle) selectedID() *int64 {
	if sel := c.selected(); sel != nil {
		return &sel.ID
	}

	return nil
}

func (c comuneCycle) label() string {
	if sel := c.selected(); sel != nil {
		return sel.Nome
	}

	if c.allowAll {
		return "All"
	}

	return "no comune"
}
