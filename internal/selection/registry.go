// Package selection implements the "currently selected" handles the
// external command layer uses to address a single consumer, laborer,
// farmer, or market without holding a raw reference into World-owned
// storage (spec.md §3, §9 design notes).
//
// A Ref is a weak (kind implied by field, id) pair rather than a pointer:
// it can be cleared, and it must be cleared by the owner before the
// referent is removed from its owning sequence, but it can never by
// itself dangle.
package selection

// Ref is an optional reference to an agent or market by stable ID.
type Ref struct {
	id  int64
	set bool
}

// Assign points the ref at id.
func (r *Ref) Assign(id int64) {
	r.id = id
	r.set = true
}

// Clear empties the ref.
func (r *Ref) Clear() {
	r.id = 0
	r.set = false
}

// Get returns the selected ID and whether one is set.
func (r Ref) Get() (int64, bool) {
	return r.id, r.set
}

// Is reports whether the ref currently points at id.
func (r Ref) Is(id int64) bool {
	return r.set && r.id == id
}

// Registry holds the four independent selection handles named in
// spec.md §3. The "selected firm" is deliberately absent here: it is
// derived on demand as the first firm owned by the selected consumer,
// not stored as its own handle.
type Registry struct {
	Consumer Ref
	Laborer  Ref
	Farmer   Ref
	Market   Ref
}

// ClearAll empties every handle, used during teardown of a killed agent
// that might be referenced by more than one handle kind (it never is in
// practice, but clearing all four is cheap and avoids relying on the
// caller to know which handle to clear).
func (r *Registry) ClearAll() {
	r.Consumer.Clear()
	r.Laborer.Clear()
	r.Farmer.Clear()
	r.Market.Clear()
}
