package occupancy

import "fmt"

// Occupancy thresholds in percent, evaluated from the highest down.
// CriticalThreshold is also what makes an entry count as critical in Aggregate.
const (
	CriticalThreshold = 90
	HighThreshold     = 70
	MediumThreshold   = 50
)

type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
	TierCritical
)

// Tiers lists every tier from lowest to highest.
var Tiers = []Tier{TierLow, TierMedium, TierHigh, TierCritical}

var tierNames = [...]string{
	TierLow:      "low",
	TierMedium:   "medium",
	TierHigh:     "high",
	TierCritical: "critical",
}

var tierColors = [...]string{
	TierLow:      "bg-green-500",
	TierMedium:   "bg-yellow-500",
	TierHigh:     "bg-orange-500",
	TierCritical: "bg-red-500",
}

var tierStyles = [...]string{
	TierLow:      "bg-green-50 border-green-200",
	TierMedium:   "bg-yellow-50 border-yellow-200",
	TierHigh:     "bg-orange-50 border-orange-200",
	TierCritical: "bg-red-50 border-red-200",
}

var tierLabels = [...]string{
	TierLow:      "Baixa (<50%)",
	TierMedium:   "Média (50-69%)",
	TierHigh:     "Alta (70-89%)",
	TierCritical: "Crítica (≥90%)",
}

// Classify maps an occupancy percentage onto a tier. It accepts any int,
// including negative or above 100 values from malformed data.
func Classify(occupancy int) Tier {
	switch {
	case occupancy >= CriticalThreshold:
		return TierCritical
	case occupancy >= HighThreshold:
		return TierHigh
	case occupancy >= MediumThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

func IsCritical(occupancy int) bool {
	return Classify(occupancy) == TierCritical
}

func (t Tier) valid() bool {
	return t >= TierLow && t <= TierCritical
}

func (t Tier) String() string {
	if !t.valid() {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return tierNames[t]
}

// Color is the dot/progress bar token for the tier.
func (t Tier) Color() string {
	if !t.valid() {
		return tierColors[TierLow]
	}
	return tierColors[t]
}

// Style is the background and border token for a schedule cell.
func (t Tier) Style() string {
	if !t.valid() {
		return tierStyles[TierLow]
	}
	return tierStyles[t]
}

func (t Tier) Label() string {
	if !t.valid() {
		return tierLabels[TierLow]
	}
	return tierLabels[t]
}

func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(text []byte) error {
	for tier, name := range tierNames {
		if name == string(text) {
			*t = Tier(tier)
			return nil
		}
	}

	return fmt.Errorf("unknown occupancy tier %q", text)
}
