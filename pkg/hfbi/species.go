package hfbi

// EcoGroup is the ecological group of a lagoon species.
type EcoGroup int

const (
	MarineMigrant EcoGroup = iota
	Diadromous
	EstuarineResident
	MarineOccasional
	FreshwaterOccasional
)

var ecoGroupLabels = []string{
	"Migratori marini",
	"Diadromi",
	"Residenti di estuario",
	"Occasionali marini",
	"Occasionali di acque dolci",
}

func (g EcoGroup) String() string {
	if g < 0 || int(g) >= len(ecoGroupLabels) {
		return "unknown"
	}
	return ecoGroupLabels[g]
}

func (g EcoGroup) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// lagoonal groups take part in benthic and hyperbenthic metrics.
func (g EcoGroup) lagoonal() bool {
	return g == MarineMigrant || g == Diadromous || g == EstuarineResident
}

// migratory groups take part in the migratory metric.
func (g EcoGroup) migratory() bool {
	return g == MarineMigrant || g == Diadromous
}

// Trophic is the share of the diet of a species in each trophic group.
type Trophic struct {
	Microbenthivore float32 `json:"microbenthivore"`
	Macrobenthivore float32 `json:"macrobenthivore"`
	Hyperbenthivore float32 `json:"hyperbenthivore"`
	Herbivore       float32 `json:"herbivore"`
	Detritivore     float32 `json:"detritivore"`
	Planktivore     float32 `json:"planktivore"`
	Omnivore        float32 `json:"omnivore"`
}

// Species of the lagoon reference list.
type Species struct {
	Name    string   `json:"name"`
	Code    string   `json:"code"`
	Native  bool     `json:"native"`
	Group   EcoGroup `json:"group"`
	Trophic Trophic  `json:"trophic"`
}

const (
	third     = float32(1.0 / 3.0)
	twoThirds = float32(2.0 / 3.0)
)

var speciesList = []Species{
	{"Cheppia", "CH", true, Diadromous, Trophic{Hyperbenthivore: 1}},
	{"Anguilla", "AN", true, Diadromous,
		Trophic{Microbenthivore: 0.2, Macrobenthivore: 0.4, Hyperbenthivore: 0.4}},
	{"Nono", "NO", true, EstuarineResident,
		Trophic{Microbenthivore: 0.5, Omnivore: 0.5}},
	{"Latterino di lago", "LAT", true, EstuarineResident, Trophic{Hyperbenthivore: 1}},
	{"Aguglia", "BBE", true, MarineMigrant, Trophic{Hyperbenthivore: 1}},
	{"Gallinella", "CLU", true, MarineMigrant,
		Trophic{Microbenthivore: 0.4, Macrobenthivore: 0.4, Hyperbenthivore: 0.2}},
	{"Muggine labbrone", "CEL", true, MarineMigrant,
		Trophic{Hyperbenthivore: 0.5, Detritivore: 0.5}},
	{"Spigola branzino", "DIC", true, MarineMigrant, Trophic{Hyperbenthivore: 1}},
	// Shares the code of the previous species, lookups by code never
	// return it.
	{"Alice (Acciuga Europea)", "DIC", true, MarineMigrant, Trophic{Planktivore: 1}},
	{"Ghiozzo nero", "GHN", true, EstuarineResident,
		Trophic{Microbenthivore: 0.4, Macrobenthivore: 0.4, Hyperbenthivore: 0.2}},
	{"Cavalluccio marino", "HGU", true, EstuarineResident,
		Trophic{Microbenthivore: 0.5, Hyperbenthivore: 0.5}},
	{"Cavalluccio camuso", "HHI", true, EstuarineResident,
		Trophic{Microbenthivore: 0.5, Hyperbenthivore: 0.5}},
	{"Ghiozzetto di laguna", "GHL", true, EstuarineResident,
		Trophic{Microbenthivore: twoThirds, Hyperbenthivore: third}},
	{"Muggine dorato", "CED", true, MarineMigrant,
		Trophic{Hyperbenthivore: 0.5, Detritivore: 0.5}},
	{"Muggine calamita", "CEC", true, Diadromous,
		Trophic{Hyperbenthivore: 0.5, Detritivore: 0.5}},
	{"Muggine musino", "MUS", true, MarineMigrant,
		Trophic{Hyperbenthivore: 0.5, Detritivore: 0.5}},
	{"Cefalo", "MUG", true, Diadromous,
		Trophic{Hyperbenthivore: 0.5, Detritivore: 0.5}},
	{"Triglia di scoglio", "MSU", true, MarineMigrant,
		Trophic{Microbenthivore: twoThirds, Macrobenthivore: third}},
	{"Pesce ago sottile", "NOP", true, EstuarineResident, Trophic{Microbenthivore: 1}},
	{"Passera pianuzza", "PFL", true, MarineMigrant,
		Trophic{Microbenthivore: 0.4, Macrobenthivore: 0.4, Hyperbenthivore: 0.2}},
	{"Ghiozzetto cenerino", "GHC", true, EstuarineResident,
		Trophic{Microbenthivore: twoThirds, Hyperbenthivore: third}},
	{"Ghiozzetto marmorizzato", "GHM", true, EstuarineResident,
		Trophic{Microbenthivore: twoThirds, Hyperbenthivore: third}},
	{"Ghiozzetto minuto", "GHE", true, MarineMigrant,
		Trophic{Microbenthivore: twoThirds, Hyperbenthivore: third}},
	{"Bavosa pavone", "BAP", true, EstuarineResident,
		Trophic{Microbenthivore: 0.5, Omnivore: 0.5}},
	{"Sardina", "SPI", true, MarineMigrant, Trophic{Planktivore: 1}},
	{"Sogliola comune", "SSO", true, MarineMigrant,
		Trophic{Microbenthivore: twoThirds, Macrobenthivore: third}},
	{"Orata", "SAU", true, MarineMigrant,
		Trophic{Microbenthivore: 0.4, Macrobenthivore: 0.2, Hyperbenthivore: 0.4}},
	{"Pesce ago di rio", "PAR", true, EstuarineResident,
		Trophic{Microbenthivore: twoThirds, Hyperbenthivore: third}},
	{"Pesce ago adriatico", "STA", true, EstuarineResident, Trophic{Hyperbenthivore: 1}},
	{"Pesce ago cavallino", "STY", true, EstuarineResident,
		Trophic{Microbenthivore: 0.2, Hyperbenthivore: 0.8}},
	{"Ghiozzo gò", "GHG", true, EstuarineResident,
		Trophic{Microbenthivore: third, Macrobenthivore: third, Hyperbenthivore: third}},
}

// SpeciesList returns a copy of the 31 lagoon species.
func SpeciesList() []Species {
	res := make([]Species, len(speciesList))
	copy(res, speciesList)
	return res
}

// FindSpecies returns the first species of the list with the given
// code.
func FindSpecies(code string) (*Species, bool) {
	for i := range speciesList {
		if speciesList[i].Code == code {
			return &speciesList[i], true
		}
	}
	return nil, false
}
