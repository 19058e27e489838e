package slider

// Indicators tracks the dot buttons, one per real slide.
type Indicators struct {
	table  *Table
	active []bool
}

func newIndicators(t *Table) *Indicators {
	return &Indicators{table: t, active: make([]bool, t.Slides())}
}

// SetActive activates the dot of the slide shown at display index d and
// clears every other dot.
func (in *Indicators) SetActive(d int) {
	target := -1
	if in.table.Valid(d) {
		target = in.table.Real(d)
	}
	for i := range in.active {
		in.active[i] = i == target
	}
}

// Active returns the active dot, or -1.
func (in *Indicators) Active() int {
	for i, on := range in.active {
		if on {
			return i
		}
	}
	return -1
}

// States returns a copy of the dot states.
func (in *Indicators) States() []bool {
	out := make([]bool, len(in.active))
	copy(out, in.active)
	return out
}

// Target returns the display index a click on dot i navigates to.
func (in *Indicators) Target(i int) int {
	return in.table.Display(i)
}

func (in *Indicators) Len() int { return len(in.active) }
