package vehicle

// FillPolicy decides whether a tank accepts fill requests at all
type FillPolicy int

const (
	FillPolicyStandard FillPolicy = iota
	FillPolicyUnavailable
)

const dieselUnavailableMessage = "diesel fuel not available due to environmental reasons"

var fillPolicyNames = map[FillPolicy]string{
	FillPolicyStandard:    "STANDARD",
	FillPolicyUnavailable: "UNAVAILABLE",
}

// Name returns the policy name
func (p FillPolicy) Name() string {
	if name, ok := fillPolicyNames[p]; ok {
		return name
	}
	return "UNKNOWN"
}

// AcceptsFuel reports whether fills go through validation at all
func (p FillPolicy) AcceptsFuel() bool {
	return p == FillPolicyStandard
}
