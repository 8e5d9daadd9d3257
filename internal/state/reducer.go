package state

// StateReducer applies pure in-memory actions to DocumentState. Actions with
// side effects (zoom reloads, manual reloads, quit) are handled by the
// application layer before reaching the reducer.
type StateReducer struct{}

// NewStateReducer creates a new reducer
func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce applies action to st and reports whether the view changed.
func (r *StateReducer) Reduce(st *DocumentState, action Action) bool {
	switch action.(type) {
	case NextPageAction:
		return st.NextPage()
	case PrevPageAction:
		return st.PrevPage()
	case ResizeAction:
		// The renderer reads the screen size directly; a resize just needs
		// a redraw.
		return true
	}
	return false
}
