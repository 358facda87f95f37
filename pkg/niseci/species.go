package niseci

// NativeType tells the ecological importance of a native species.
type NativeType uint8

const (
	// NotNative species are alien to the area.
	NotNative NativeType = iota
	// NativePrimary species have a major ecological-functional role.
	NativePrimary
	// NativeSecondary are all other native species.
	NativeSecondary
)

// IsNative is true for both types of native species.
func (n NativeType) IsNative() bool {
	return n == NativePrimary || n == NativeSecondary
}

// Species is an entry of the reference species list of a station.
type Species struct {
	// ID is the species code used in sample files.
	ID string `json:"id"`

	// Name is the common name of the species.
	Name string `json:"name"`

	// LatinName is the canonical form of the scientific name.
	LatinName string `json:"latinName,omitempty"`

	Native NativeType `json:"native"`

	// Alien is the impact class (1 to 3) of an alien species, zero for
	// native species.
	Alien uint8 `json:"alien"`

	// Expected is true if the species belongs to the expected community
	// of the station.
	Expected bool `json:"expected"`

	// LengthThresholds separate the five length classes, in mm.
	LengthThresholds [4]uint32 `json:"lengthThresholds"`

	// AdultJuvenileThresholds are compared with the adult/juvenile ratio.
	AdultJuvenileThresholds [4]float32 `json:"adultJuvenileThresholds"`

	// DensityThresholds are compared with the estimated density.
	DensityThresholds [2]float32 `json:"densityThresholds"`
}

// IsAlien is true for alien species of impact class 1 to 3.
func (s *Species) IsAlien() bool {
	return s.Alien > 0 && s.Alien <= 3
}

// LengthClass returns the length class (0 to 4) of an individual.
func (s *Species) LengthClass(length uint32) int {
	for i, v := range s.LengthThresholds {
		if length < v {
			return i
		}
	}
	return len(s.LengthThresholds)
}

// Reference is the list of species of a station.
type Reference []Species

// Find returns the first species with the given code.
func (r Reference) Find(id string) (*Species, bool) {
	for i := range r {
		if r[i].ID == id {
			return &r[i], true
		}
	}
	return nil, false
}
