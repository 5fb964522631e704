package bffvm

import (
	"fmt"
	"strings"
)

const tapeInitialSize = 64

// Tape is the single cell array shared by both heads. Cells are 8-bit and
// wrap on overflow. Logical cell indices range over all integers; Origin is
// the physical position of logical cell 0. A growable tape extends itself by
// doubling in whichever direction a write lands; a fixed tape rejects
// accesses outside its allocation.
type Tape struct {
	Cells  []byte
	Origin int
	Fixed  bool
}

// NewTape allocates a fixed-size tape. Logical cells [-origin, size-origin)
// are addressable, everything else is out of bounds.
func NewTape(size int, origin int) *Tape {
	return &Tape{
		Cells:  make([]byte, size),
		Origin: origin,
		Fixed:  true,
	}
}

// NewGrowableTape allocates a tape that grows on demand in both directions.
func NewGrowableTape() *Tape {
	return &Tape{
		Cells: make([]byte, tapeInitialSize),
	}
}

// At reads logical cell i. Cells never written read as zero; growable tapes
// do not grow on reads. Returns false only for fixed tapes accessed out of
// bounds.
func (t *Tape) At(i int) (byte, bool) {
	phys := t.Origin + i
	if phys < 0 || phys >= len(t.Cells) {
		if t.Fixed {
			return 0, false
		}
		return 0, true
	}
	return t.Cells[phys], true
}

// Set writes logical cell i, growing the tape if needed. Returns false only
// for fixed tapes accessed out of bounds.
func (t *Tape) Set(i int, v byte) bool {
	phys := t.Origin + i
	if phys < 0 || phys >= len(t.Cells) {
		if t.Fixed {
			return false
		}
		t.grow(phys)
		phys = t.Origin + i
	}
	t.Cells[phys] = v
	return true
}

func (t *Tape) grow(phys int) {
	if phys < 0 {
		ext := len(t.Cells)
		if ext == 0 {
			ext = tapeInitialSize
		}
		for ext < -phys {
			ext *= 2
		}
		cells := make([]byte, ext+len(t.Cells))
		copy(cells[ext:], t.Cells)
		t.Cells = cells
		t.Origin += ext
	} else {
		size := len(t.Cells) * 2
		if size == 0 {
			size = tapeInitialSize
		}
		for size <= phys {
			size *= 2
		}
		cells := make([]byte, size)
		copy(cells, t.Cells)
		t.Cells = cells
	}
}

// Extent returns the logical index range [lo, hi] covering all non-zero
// cells. ok is false when the whole tape is zero.
func (t *Tape) Extent() (lo int, hi int, ok bool) {
	for phys, v := range t.Cells {
		if v == 0 {
			continue
		}
		i := phys - t.Origin
		if !ok {
			lo, hi = i, i
			ok = true
			continue
		}
		if i < lo {
			lo = i
		}
		if i > hi {
			hi = i
		}
	}
	return
}

// Dump renders the non-zero extent of the tape for display.
func (t *Tape) Dump() string {
	lo, hi, ok := t.Extent()
	if !ok {
		return "tape: all cells zero"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "tape[%d..%d]:", lo, hi)
	for i := lo; i <= hi; i++ {
		v, _ := t.At(i)
		fmt.Fprintf(&sb, " %d", v)
	}
	return sb.String()
}
