package encoder

import "github.com/wayne1204/socv-final/circuit"

// AddBounded ensures the solver contains clauses encoding net id's value
// at depth, recursively materializing every net id depends on first.
// Already-encoded (id, depth) pairs are a no-op.
func (e *Encoder) AddBounded(id circuit.ID, depth int) {
	if e.Exists(id, depth) {
		return
	}
	e.addBoundedRecursive(id, depth)
}

func (e *Encoder) addBoundedRecursive(id circuit.ID, depth int) {
	if e.Exists(id, depth) {
		return
	}

	switch e.net.GateType(id) {
	case circuit.PI, circuit.PIO:
		e.addPI(id, depth)
	case circuit.FF:
		if depth > 0 {
			din := e.net.InputNetId(id, 0)
			e.addBoundedRecursive(din.ID, depth-1)
		}
		e.addFF(id, depth)
	case circuit.AigNode:
		a := e.net.InputNetId(id, 0)
		b := e.net.InputNetId(id, 1)
		e.addBoundedRecursive(a.ID, depth)
		e.addBoundedRecursive(b.ID, depth)
		e.addAnd(id, depth)
	case circuit.AigFalse:
		e.addFalse(id, depth)
	default:
		panic("encoder: unknown gate type")
	}
}
