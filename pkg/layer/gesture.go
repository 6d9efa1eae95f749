package layer

// GestureState is the live state of one drag or pinch on a layer.
type GestureState struct {
	Origin      Point   // layer position at gesture start
	Translation Point   // clamped translation so far
	Scale       float64 // pinch factor relative to gesture start
	Guides      Guides  // last alignment pass
	Active      bool
}

// GestureStates holds per-layer gesture state keyed by layer id. Entries are
// created lazily, reset at gesture start and removed with their layer.
type GestureStates struct {
	states map[string]*GestureState
}

// NewGestureStates returns an empty set.
func NewGestureStates() *GestureStates {
	return &GestureStates{states: make(map[string]*GestureState)}
}

// Ensure returns the state for id, creating an idle one if needed.
func (g *GestureStates) Ensure(id string) *GestureState {
	if s, ok := g.states[id]; ok {
		return s
	}
	s := &GestureState{Scale: 1}
	g.states[id] = s
	return s
}

// Reset starts a new gesture for id at origin.
func (g *GestureStates) Reset(id string, origin Point) *GestureState {
	s := g.Ensure(id)
	*s = GestureState{Origin: origin, Scale: 1, Active: true}
	return s
}

// Get returns the state for id without creating it.
func (g *GestureStates) Get(id string) (*GestureState, bool) {
	s, ok := g.states[id]
	return s, ok
}

// Remove drops the state for id.
func (g *GestureStates) Remove(id string) {
	delete(g.states, id)
}

// Clear drops every state.
func (g *GestureStates) Clear() {
	clear(g.states)
}

// Len returns the number of tracked layers.
func (g *GestureStates) Len() int { return len(g.states) }
