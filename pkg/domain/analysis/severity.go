package analysis

// Severity is the ordinal risk band of a verdict, low < medium < high < critical.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Canonical score bands. The model's self-reported severity is advisory only;
// stored severity is always derived from the score through these bands.
const (
	mediumBandStart   = 30
	highBandStart     = 50
	criticalBandStart = 75
)

// SeverityForScore maps a 0-100 toxicity score onto its severity band. Scores
// outside the range are treated as clamped.
func SeverityForScore(score int) Severity {
	switch {
	case score >= criticalBandStart:
		return SeverityCritical
	case score >= highBandStart:
		return SeverityHigh
	case score >= mediumBandStart:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

func (s Severity) AtLeast(other Severity) bool {
	return s.rank() >= other.rank()
}

func (s Severity) rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 1
	default:
		return 0
	}
}
