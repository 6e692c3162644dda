package diag

// Severity defines the importance of a diagnostic. Conversion diagnostics
// are warnings; only lexical and syntax failures reach SevError.
type Severity uint8

const (
	// SevInfo is for informational diagnostics (notes attached to a primary).
	SevInfo Severity = iota
	// SevWarning is for warning diagnostics.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
