package lock

// State is the session gate's position. Every session starts in StateLoading
// and settles into exactly one of the other states once resolved.
type State int

const (
	StateLoading State = iota
	StateUnauthenticated
	StateLocked
	StateUnlocked
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateLocked:
		return "locked"
	case StateUnlocked:
		return "unlocked"
	}
	return "unknown"
}

// Gate models the screen gate: loading -> {unauthenticated, locked, unlocked},
// and locked -> unlocked on a successful passcode or biometric verification.
// There is no transition back to locked; lock state is evaluated once.
type Gate struct {
	state State
}

func NewGate() *Gate {
	return &Gate{state: StateLoading}
}

func (g *Gate) State() State { return g.state }

// ResolveSession moves the gate out of loading based on whether a user is
// authenticated and whether app lock is enabled. It is a no-op after the
// first resolution.
func (g *Gate) ResolveSession(authenticated, lockEnabled bool) State {
	if g.state != StateLoading {
		return g.state
	}
	switch {
	case !authenticated:
		g.state = StateUnauthenticated
	case lockEnabled:
		g.state = StateLocked
	default:
		g.state = StateUnlocked
	}
	return g.state
}

// Unlock transitions locked -> unlocked when verification succeeded. A failed
// attempt leaves the gate locked.
func (g *Gate) Unlock(verified bool) State {
	if g.state == StateLocked && verified {
		g.state = StateUnlocked
	}
	return g.state
}
