package bootstrap

// State is a step of the startup sequence.
type State int

const (
	StateUninitialized State = iota
	StateConfiguring
	StateAuthenticating
	StateMounted
	StateStoreInitializing
	StateReady
	StateFailed
)

var stateNames = map[State]string{
	StateUninitialized:     "uninitialized",
	StateConfiguring:       "configuring",
	StateAuthenticating:    "authenticating",
	StateMounted:           "mounted",
	StateStoreInitializing: "store-initializing",
	StateReady:             "ready",
	StateFailed:            "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether no further transition can happen from s.
func (s State) Terminal() bool {
	return s == StateReady || s == StateFailed
}
