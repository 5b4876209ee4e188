package diag

// Sink receives diagnostics once a render pass is finished.
type Sink interface {
	Diagnose(Diagnostic)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Diagnostic)

func (f SinkFunc) Diagnose(d Diagnostic) {
	if f != nil {
		f(d)
	}
}

// Bag collects diagnostics in arrival order. It is not safe for concurrent
// use; callers that fan out passes flush into a Bag from a single goroutine.
type Bag struct {
	items []Diagnostic
}

// NewBag returns an empty Bag.
func NewBag() *Bag {
	return &Bag{}
}

// Diagnose implements Sink.
func (b *Bag) Diagnose(d Diagnostic) {
	if b == nil {
		return
	}
	b.items = append(b.items, d)
}

// Len returns the number of collected diagnostics.
func (b *Bag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.items)
}

// Items returns a copy of the collected diagnostics.
func (b *Bag) Items() []Diagnostic {
	if b == nil || len(b.items) == 0 {
		return nil
	}
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)
	return out
}

// HasErrors reports whether at least one error diagnostic was collected.
func (b *Bag) HasErrors() bool {
	if b == nil {
		return false
	}
	for _, d := range b.items {
		if d.Severity >= SevError {
			return true
		}
	}
	return false
}

// Count returns how many diagnostics of kind were collected.
func (b *Bag) Count(kind Kind) int {
	if b == nil {
		return 0
	}
	n := 0
	for _, d := range b.items {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
