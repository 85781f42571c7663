package model

// Verbosity is the ordinal 0-3 explanation level controlling how much
// auxiliary context the assembled package carries.
type Verbosity int

const (
	VerbosityMinimal Verbosity = iota
	VerbosityLow
	VerbosityMedium
	VerbosityHigh
)

// Valid reports whether v is within the supported 0-3 range.
func (v Verbosity) Valid() bool {
	return v >= VerbosityMinimal && v <= VerbosityHigh
}

// Name returns the display name used in package headers.
func (v Verbosity) Name() string {
	switch v {
	case VerbosityMinimal:
		return "Minimal"
	case VerbosityLow:
		return "Low"
	case VerbosityMedium:
		return "Medium"
	case VerbosityHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// Directive returns the drafting instruction attached to this level.
func (v Verbosity) Directive() string {
	switch v {
	case VerbosityMinimal:
		return "Use approved templates only. No case-specific reasoning."
	case VerbosityLow:
		return "Add brief reasoning from cell notes only (1 sentence max)."
	case VerbosityMedium:
		return "Add reasoning from cell notes and Notes/comments column (1-2 sentences)."
	case VerbosityHigh:
		return "Full reasoning from case summary, notes, and comments (2-3 sentences)."
	default:
		return ""
	}
}
