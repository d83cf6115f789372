package utils

const (
	// Split policies
	SplitPolicyEqual    = "equal"
	SplitPolicyItemized = "itemized"

	// Precision for monetary calculations
	MoneyPrecision = 100.0
)
