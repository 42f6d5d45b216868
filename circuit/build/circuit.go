package build

import "github.com/wayne1204/socv-final/circuit"

// Circuit is an immutable, in-memory circuit.Network built by Builder.
type Circuit struct {
	nets     []node
	latchIDs []circuit.ID
	inputIDs []circuit.ID
	outputs  []circuit.NetId
}

var _ circuit.Network = (*Circuit)(nil)

// LatchSize implements circuit.Network.
func (c *Circuit) LatchSize() int { return len(c.latchIDs) }

// InputSize implements circuit.Network.
func (c *Circuit) InputSize() int { return len(c.inputIDs) }

// NetSize implements circuit.Network.
func (c *Circuit) NetSize() int { return len(c.nets) }

// NetWidth implements circuit.Network.
func (c *Circuit) NetWidth(id circuit.ID) int { return c.nets[id].width }

// GetLatch implements circuit.Network.
func (c *Circuit) GetLatch(i int) circuit.NetId {
	return circuit.NetId{ID: c.latchIDs[i]}
}

// GetInput implements circuit.Network.
func (c *Circuit) GetInput(i int) circuit.NetId {
	return circuit.NetId{ID: c.inputIDs[i]}
}

// GetOutput implements circuit.Network.
func (c *Circuit) GetOutput(i int) circuit.NetId {
	return c.outputs[i]
}

// GateType implements circuit.Network.
func (c *Circuit) GateType(id circuit.ID) circuit.GateType {
	return c.nets[id].typ
}

// InputNetId implements circuit.Network.
func (c *Circuit) InputNetId(id circuit.ID, k int) circuit.NetId {
	n := c.nets[id]
	switch n.typ {
	case circuit.AigNode:
		return n.fanin[k]
	case circuit.FF:
		switch k {
		case 0:
			return n.fanin[0]
		case 1:
			// The init-value source net: inverted iff the latch resets
			// to 1 (see node.initOne and Builder.AddLatch).
			return circuit.NetId{ID: 0, Inverted: n.initOne}
		default:
			panic("circuit/build: FF has no fan-in index beyond 0 (D) and 1 (init)")
		}
	default:
		panic("circuit/build: InputNetId called on a gate with no fan-ins")
	}
}

// DFS implements circuit.Network. It descends AND-node operands and stops
// at latches (never following a latch's D-input), matching the traversal
// the ternary simulator needs: values flow combinationally within a time
// step, and a latch's output at that step is an input to the simulation,
// not something to recompute.
func (c *Circuit) DFS(start circuit.NetId, visited map[circuit.ID]bool, order []circuit.ID) []circuit.ID {
	if visited[start.ID] {
		return order
	}
	visited[start.ID] = true

	if c.nets[start.ID].typ == circuit.AigNode {
		order = c.DFS(c.nets[start.ID].fanin[0], visited, order)
		order = c.DFS(c.nets[start.ID].fanin[1], visited, order)
	}

	return append(order, start.ID)
}
