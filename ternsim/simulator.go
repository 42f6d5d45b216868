package ternsim

import (
	"github.com/wayne1204/socv-final/circuit"
	"github.com/wayne1204/socv-final/cube"
	"github.com/wayne1204/socv-final/ternary"
)

// Simulator runs three-valued forward simulation over a fixed,
// precomputed DFS order (spec.md §4.6). It is allocation-free past
// construction: Run only overwrites its internal value slice.
type Simulator struct {
	net     circuit.Network
	monitor circuit.NetId
	dInputs []circuit.NetId // dInputs[i] = latch i's D-input net
	order   []circuit.ID
	values  []ternary.Value
}

// New builds the simulation order for net, seeded from monitor (the bad
// output under test) and every latch's D-input, sharing one visited set
// so each net appears exactly once, in dependency order.
func New(net circuit.Network, monitor circuit.NetId) *Simulator {
	dInputs := make([]circuit.NetId, net.LatchSize())
	for i := range dInputs {
		dInputs[i] = net.InputNetId(net.GetLatch(i).ID, 0)
	}

	visited := make(map[circuit.ID]bool, net.NetSize())
	var order []circuit.ID
	order = net.DFS(monitor, visited, order)
	for _, d := range dInputs {
		order = net.DFS(d, visited, order)
	}

	return &Simulator{
		net:     net,
		monitor: monitor,
		dInputs: dInputs,
		order:   order,
		values:  make([]ternary.Value, net.NetSize()),
	}
}

// Run simulates one time step: latches take latchValues, primary inputs
// take inputValues (indexed by input index), and every combinational net
// in the precomputed order is recomputed from its fan-ins.
func (s *Simulator) Run(latchValues *cube.Cube, inputValues []ternary.Value) {
	for i := 0; i < s.net.LatchSize(); i++ {
		s.values[s.net.GetLatch(i).ID] = latchValues.Get(i)
	}
	for i := 0; i < s.net.InputSize(); i++ {
		s.values[s.net.GetInput(i).ID] = inputValues[i]
	}

	for _, id := range s.order {
		switch s.net.GateType(id) {
		case circuit.AigFalse:
			s.values[id] = ternary.Zero
		case circuit.AigNode:
			a := s.net.InputNetId(id, 0)
			b := s.net.InputNetId(id, 1)
			s.values[id] = ternary.And(s.lit(a), s.lit(b))
		default:
			// PI, PIO, FF: leaves whose value was supplied above.
		}
	}
}

// Lit returns the simulated value of net n, applying its inversion flag.
func (s *Simulator) Lit(n circuit.NetId) ternary.Value {
	return s.lit(n)
}

func (s *Simulator) lit(n circuit.NetId) ternary.Value {
	v := s.values[n.ID]
	if n.Inverted {
		return ternary.Not(v)
	}

	return v
}

// MonitorValue returns the simulated value of the monitor net.
func (s *Simulator) MonitorValue() ternary.Value {
	return s.lit(s.monitor)
}

// DNonX reports whether every latch's D-input simulated to a non-X
// value — the Mode B target invariant.
func (s *Simulator) DNonX() bool {
	for _, d := range s.dInputs {
		if ternary.IsX(s.lit(d)) {
			return false
		}
	}

	return true
}
