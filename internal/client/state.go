package client

import "fmt"

type State int

const (
	StatePending State = iota
	StateConnected
	StateDisconnected
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateConnected:
		return "connected"
	case StateDisconnected:
		return "disconnected"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type machine struct {
	kind  string
	state State
}

func (m *machine) State() State { return m.state }

// expect panics unless the client is in want. Misuse is never turned into I/O.
func (m *machine) expect(op string, want State) {
	if m.state != want {
		panic(fmt.Sprintf("client: %s.%s called while %s (requires %s)", m.kind, op, m.state, want))
	}
}
