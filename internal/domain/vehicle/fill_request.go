package vehicle

// FillMode identifies how a fill request is interpreted
type FillMode int

const (
	FillModeFull FillMode = iota
	FillModePercentage
	FillModeLitres
	FillModeInvalid
)

var fillModeNames = map[FillMode]string{
	FillModeFull:       "full",
	FillModePercentage: "percentage",
	FillModeLitres:     "litres",
	FillModeInvalid:    "invalid",
}

// Name returns the mode name
func (m FillMode) Name() string {
	if name, ok := fillModeNames[m]; ok {
		return name
	}
	return "unknown"
}

func (m FillMode) String() string {
	return m.Name()
}

// FillRequest describes a single fill of a tank.
//
// At most one of TargetFraction and Litres may be set. A request with neither
// fills the tank to capacity.
type FillRequest struct {
	TargetFraction *float64 // nil = not a percentage fill
	Litres         *float64 // nil = not a litres fill
}

// ToFraction fills the tank until fuel reaches fraction*capacity
func ToFraction(fraction float64) FillRequest {
	return FillRequest{TargetFraction: &fraction}
}

// ByLitres adds an absolute volume of fuel
func ByLitres(litres float64) FillRequest {
	return FillRequest{Litres: &litres}
}

// ToFull fills the tank to capacity
func ToFull() FillRequest {
	return FillRequest{}
}

// Mode reports which fill mode the request selects
func (r FillRequest) Mode() FillMode {
	switch {
	case r.TargetFraction != nil && r.Litres != nil:
		return FillModeInvalid
	case r.TargetFraction != nil:
		return FillModePercentage
	case r.Litres != nil:
		return FillModeLitres
	default:
		return FillModeFull
	}
}
