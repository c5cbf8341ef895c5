package execq

// Priority determines the order in which queued actions execute.
// Higher values execute first. Any integer is a legal priority; the named
// tiers below are a convention, not a constraint.
type Priority int

const (
	// PriorityHigh is the conventional high tier. ExecuteHighest and
	// ExecuteHigh treat actions at or above this value as a group that
	// must drain together (unless the queue was built with WithHighTier).
	PriorityHigh Priority = 100

	// PriorityMedium is the conventional default tier.
	PriorityMedium Priority = 50

	// PriorityLow is the conventional background tier.
	PriorityLow Priority = 10
)

// String returns a human-readable tier name for the conventional scheme.
func (p Priority) String() string {
	switch {
	case p >= PriorityHigh:
		return "high"
	case p >= PriorityMedium:
		return "medium"
	default:
		return "low"
	}
}
