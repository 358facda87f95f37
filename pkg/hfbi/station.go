package hfbi

import "github.com/gnames/gnfish/pkg/location"

// LagoonType is the typology of a lagoon.
type LagoonType int

const (
	MAT1 LagoonType = iota
	MAT2
	MAT3
)

var lagoonLabels = []string{"M-AT-1", "M-AT-2", "M-AT-3"}

func (l LagoonType) String() string {
	if l < 0 || int(l) >= len(lagoonLabels) {
		return "unknown"
	}
	return lagoonLabels[l]
}

// NewLagoonType converts the code used in station files (1 to 3) to a
// LagoonType.
func NewLagoonType(i int) (LagoonType, bool) {
	if i < 1 || i > len(lagoonLabels) {
		return 0, false
	}
	return LagoonType(i - 1), true
}

// Season of the survey.
type Season int

const (
	Spring Season = iota
	Autumn
)

func (s Season) String() string {
	if s == Spring {
		return "Primavera"
	}
	return "Autunno"
}

// NewSeason converts 0 to Spring and 1 to Autumn.
func NewSeason(i int) (Season, bool) {
	switch i {
	case 0:
		return Spring, true
	case 1:
		return Autumn, true
	}
	return 0, false
}

// Habitat tells if the sampled bottom is covered by vegetation.
type Habitat int

const (
	Vegetated Habitat = iota
	NonVegetated
)

func (h Habitat) String() string {
	if h == Vegetated {
		return "Vegetato"
	}
	return "Non Vegetato"
}

// NewHabitat converts 0 to Vegetated and 1 to NonVegetated.
func NewHabitat(i int) (Habitat, bool) {
	switch i {
	case 0:
		return Vegetated, true
	case 1:
		return NonVegetated, true
	}
	return 0, false
}

// Station is the registry record of a lagoon sampling station.
type Station struct {
	Code      string            `json:"code"`
	WaterBody string            `json:"waterBody"`
	Location  location.Location `json:"location"`

	// Date of the survey in dd/mm/yyyy format.
	Date string `json:"date"`

	// Length of the transect in meters.
	Length float32 `json:"length"`
	// Width of the transect in meters.
	Width float32 `json:"width"`

	Season     Season     `json:"season"`
	Habitat    Habitat    `json:"habitat"`
	LagoonType LagoonType `json:"lagoonType"`
}

// Area of the transect in square meters.
func (s Station) Area() float32 {
	return s.Length * s.Width
}

func (l LagoonType) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (s Season) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (h Habitat) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}
