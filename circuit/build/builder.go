package build

import "github.com/wayne1204/socv-final/circuit"

// node is the internal representation of one net. For an AigNode, fanin
// holds both operands; for an FF, fanin[0] holds the D-input and initOne
// holds the latch's initial value (true means the latch resets to 1,
// the non-standard case spec.md §4.3 calls out).
type node struct {
	typ     circuit.GateType
	width   int
	fanin   [2]circuit.NetId
	initOne bool
	dSet    bool // FF only: whether SetLatchInput has been called
}

// Builder accumulates nets for a Circuit under construction. The zero
// value is not usable; use NewBuilder.
type Builder struct {
	nets      []node
	latchIDs  []circuit.ID
	inputIDs  []circuit.ID
	outputs   []circuit.NetId
	falseID   circuit.ID
	haveFalse bool
}

// NewBuilder returns a Builder with its constant-false net already
// allocated at net id 0, matching the convention (spec.md §4.3) that the
// AIG constant node is always present.
func NewBuilder() *Builder {
	b := &Builder{}
	b.falseID = b.alloc(node{typ: circuit.AigFalse, width: 1})
	b.haveFalse = true

	return b
}

func (b *Builder) alloc(n node) circuit.ID {
	id := circuit.ID(len(b.nets))
	b.nets = append(b.nets, n)

	return id
}

// False returns the NetId of the constant-false net.
func (b *Builder) False() circuit.NetId {
	return circuit.NetId{ID: b.falseID, Inverted: false}
}

// True returns the NetId of the constant-true net (the inverted
// constant-false net — AIGs never allocate a separate constant-true node).
func (b *Builder) True() circuit.NetId {
	return circuit.NetId{ID: b.falseID, Inverted: true}
}

// AddInput allocates a fresh primary input net.
func (b *Builder) AddInput() circuit.NetId {
	id := b.alloc(node{typ: circuit.PI, width: 1})
	b.inputIDs = append(b.inputIDs, id)

	return circuit.NetId{ID: id}
}

// AddAnd allocates an AND gate computing a ∧ b (respecting each operand's
// inversion flag).
func (b *Builder) AddAnd(a, c circuit.NetId) circuit.NetId {
	id := b.alloc(node{typ: circuit.AigNode, width: 1, fanin: [2]circuit.NetId{a, c}})

	return circuit.NetId{ID: id}
}

// AddOr allocates g = a ∨ c via De Morgan: ¬(¬a ∧ ¬c).
func (b *Builder) AddOr(a, c circuit.NetId) circuit.NetId {
	and := b.AddAnd(invert(a), invert(c))

	return invert(and)
}

// AddLatch reserves a latch output net whose D-input must be supplied via
// SetLatchInput before Build. initOne selects the latch's initial value:
// false means the standard "resets to 0" case, true the non-standard
// "resets to 1" case.
func (b *Builder) AddLatch(initOne bool) circuit.ID {
	id := b.alloc(node{typ: circuit.FF, width: 1, initOne: initOne})
	b.latchIDs = append(b.latchIDs, id)

	return id
}

// SetLatchInput assigns the D-input of a previously reserved latch.
func (b *Builder) SetLatchInput(latch circuit.ID, d circuit.NetId) {
	b.nets[latch].fanin[0] = d
	b.nets[latch].dSet = true
}

// AddOutput declares n as a primary output.
func (b *Builder) AddOutput(n circuit.NetId) {
	b.outputs = append(b.outputs, n)
}

// Build validates and freezes the circuit under construction.
func (b *Builder) Build() (*Circuit, error) {
	for _, id := range b.latchIDs {
		if !b.nets[id].dSet {
			return nil, ErrLatchInputUnset
		}
	}
	if len(b.outputs) == 0 {
		return nil, ErrNoOutputs
	}

	nets := make([]node, len(b.nets))
	copy(nets, b.nets)
	latchIDs := make([]circuit.ID, len(b.latchIDs))
	copy(latchIDs, b.latchIDs)
	inputIDs := make([]circuit.ID, len(b.inputIDs))
	copy(inputIDs, b.inputIDs)
	outputs := make([]circuit.NetId, len(b.outputs))
	copy(outputs, b.outputs)

	return &Circuit{
		nets:     nets,
		latchIDs: latchIDs,
		inputIDs: inputIDs,
		outputs:  outputs,
	}, nil
}

func invert(n circuit.NetId) circuit.NetId {
	return circuit.NetId{ID: n.ID, Inverted: !n.Inverted}
}
