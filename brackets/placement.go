package brackets

type Format string

const (
	FormatPrestasi Format = "prestasi"
	FormatPemula   Format = "pemula"
)

func FormatFor(isPemula bool) Format {
	if isPemula {
		return FormatPemula
	}
	return FormatPrestasi
}

type Placement string

const (
	PlacementGold        Placement = "GOLD"
	PlacementSilver      Placement = "SILVER"
	PlacementBronze      Placement = "BRONZE"
	PlacementParticipant Placement = "PARTICIPANT"
)

var placementText = map[Placement]string{
	PlacementGold:        "First Winner",
	PlacementSilver:      "Second Winner",
	PlacementBronze:      "Third Winner",
	PlacementParticipant: "Participant",
}

// DisplayText is the wording printed on certificates and reports.
func (p Placement) DisplayText() string {
	if text, ok := placementText[p]; ok {
		return text
	}
	return placementText[PlacementParticipant]
}

func (p Placement) IsMedal() bool {
	return p == PlacementGold || p == PlacementSilver || p == PlacementBronze
}

// Order sorts medals before non-medals: GOLD 1, SILVER 2, BRONZE 3, anything else 4.
func (p Placement) Order() int {
	switch p {
	case PlacementGold:
		return 1
	case PlacementSilver:
		return 2
	case PlacementBronze:
		return 3
	}
	return 4
}
