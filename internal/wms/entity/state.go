package entity

// Transitions maps a lifecycle state to the states it may move to.
// Terminal states map to an empty list.
type Transitions map[string][]string

// Known reports whether state belongs to the lifecycle.
func (t Transitions) Known(state string) bool {
	_, ok := t[state]
	return ok
}

// Allows reports whether from -> to is a legal transition.
func (t Transitions) Allows(from, to string) bool {
	for _, next := range t[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition leaves state.
func (t Transitions) Terminal(state string) bool {
	return t.Known(state) && len(t[state]) == 0
}
