package slider

// ClonesPerSide is the number of boundary slides copied onto each end of the
// track.
const ClonesPerSide = 2

// Entry describes one position of the display list.
type Entry struct {
	Display int // position in the cloned list
	Real    int // logical slide shown at this position
	Label   int // -2, -1 for leading clones, N, N+1 for trailing clones
	Clone   bool
}

// Table maps display indices to real slides and back. It is built once from
// the slide count and never changes.
type Table struct {
	n       int
	entries []Entry
}

// NewTable builds the display list for n real slides:
// [N-2, N-1, 0 .. N-1, 0, 1].
func NewTable(n int) (*Table, error) {
	if n < 2 {
		return nil, &InsufficientSlidesError{Count: n}
	}
	t := &Table{n: n, entries: make([]Entry, 0, n+2*ClonesPerSide)}
	for i := ClonesPerSide; i > 0; i-- {
		t.entries = append(t.entries, Entry{Real: n - i, Label: -i, Clone: true})
	}
	for r := 0; r < n; r++ {
		t.entries = append(t.entries, Entry{Real: r, Label: r})
	}
	for i := 0; i < ClonesPerSide; i++ {
		t.entries = append(t.entries, Entry{Real: i, Label: n + i, Clone: true})
	}
	for d := range t.entries {
		t.entries[d].Display = d
	}
	return t, nil
}

// Slides returns the number of real slides.
func (t *Table) Slides() int { return t.n }

// Len returns the number of display positions, clones included.
func (t *Table) Len() int { return len(t.entries) }

// Valid reports whether d is a display index.
func (t *Table) Valid(d int) bool { return d >= 0 && d < len(t.entries) }

// Entry returns the entry at display index d. d must be valid.
func (t *Table) Entry(d int) Entry { return t.entries[d] }

// Entries returns a copy of the display list.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// IsClone reports whether display index d holds a clone.
func (t *Table) IsClone(d int) bool { return t.Valid(d) && t.entries[d].Clone }

// Real returns the logical slide at display index d.
func (t *Table) Real(d int) int { return t.entries[d].Real }

// Display returns the display index of real slide r.
func (t *Table) Display(r int) int { return r + ClonesPerSide }

// Canonical returns the display index of the real slide shown at d, which
// is d itself unless d is a clone.
func (t *Table) Canonical(d int) int { return t.Display(t.entries[d].Real) }

// FirstRealDisplay is the display index of real slide 0.
func (t *Table) FirstRealDisplay() int { return ClonesPerSide }

// LastRealDisplay is the display index of real slide N-1.
func (t *Table) LastRealDisplay() int { return t.n + ClonesPerSide - 1 }

// Labels returns the smallest and largest sentinel labels, [-2, N+1].
func (t *Table) Labels() (lo, hi int) {
	return t.entries[0].Label, t.entries[len(t.entries)-1].Label
}
