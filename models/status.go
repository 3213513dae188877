package models

// PingStatus is the GET /api/ping answer: one flag per backend dependency.
type PingStatus map[string]bool

// Healthy reports whether every dependency answered.
func (p PingStatus) Healthy() bool {
	for _, ok := range p {
		if !ok {
			return false
		}
	}
	return len(p) > 0
}

// ServerVersion is the GET /api/version answer.
type ServerVersion struct {
	Version string `json:"version"`
	Build   any    `json:"build,omitempty"`
}
