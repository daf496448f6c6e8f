package modes

type Mode uint8

const (
	ModeProduction Mode = iota
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}

// Checked reports whether pipeline invariants are verified on every run.
func (m Mode) Checked() bool {
	return m == ModeDevelopment
}
