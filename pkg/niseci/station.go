package niseci

import "github.com/gnames/gnfish/pkg/location"

// CommunityType tells how the expected community of a station was
// obtained.
type CommunityType int

const (
	// Drafted by the operator.
	Drafted CommunityType = iota
	// Retrieved from bibliographic sources.
	Retrieved
	// DM2602010 is the community from the ministerial decree 260/2010.
	DM2602010
	// RefinedByMinistry is the community refined by the ministry of
	// environment.
	RefinedByMinistry
)

var communityLabels = []string{
	"Redatta dall'operatore",
	"Recuperata da fonti bibliografiche",
	"DM 260/2010",
	"Affinata dal Mase",
}

func (c CommunityType) String() string {
	if c < 0 || int(c) >= len(communityLabels) {
		return "unknown"
	}
	return communityLabels[c]
}

// NewCommunityType converts an integer code to a CommunityType.
func NewCommunityType(i int) (CommunityType, bool) {
	if i < 0 || i >= len(communityLabels) {
		return 0, false
	}
	return CommunityType(i), true
}

// Community is the reference community of a station.
type Community struct {
	Type CommunityType `json:"type"`
	// Source is the bibliography of a Retrieved community.
	Source string `json:"source,omitempty"`
	// Protocol is the protocol number of a RefinedByMinistry community.
	Protocol string `json:"protocol,omitempty"`
}

// Area is the biogeographic area of a station.
type Area int

const (
	Alpine Area = iota
	Mediterranean
)

func (a Area) String() string {
	if a == Alpine {
		return "Alpina"
	}
	return "Mediterranea"
}

// HydroEcoRegion is one of 21 Italian hydro-ecoregions.
type HydroEcoRegion int

var hydroEcoRegions = []string{
	"Alpi Occidentali",
	"Prealpi Dolomiti",
	"Alpi Centro-orientali",
	"Alpi Meridionali",
	"Monferrato",
	"Pianura Padana",
	"Carso",
	"Appennino Piemontese",
	"Alpi Mediterranee",
	"Appennino Settentrionale",
	"Toscana",
	"Costa Adriatica",
	"Appennino Centrale",
	"Roma-Viterbese",
	"Basso Lazio",
	"Vesuvio",
	"Basilicata Tavoliere",
	"Puglia Carsica",
	"Appennino Meridionale",
	"Sicilia",
	"Sardegna",
}

func (h HydroEcoRegion) String() string {
	if h < 0 || int(h) >= len(hydroEcoRegions) {
		return "unknown"
	}
	return hydroEcoRegions[h]
}

// NewHydroEcoRegion converts an integer code (0 to 20) to a
// HydroEcoRegion.
func NewHydroEcoRegion(i int) (HydroEcoRegion, bool) {
	if i < 0 || i >= len(hydroEcoRegions) {
		return 0, false
	}
	return HydroEcoRegion(i), true
}

// Station is the registry record of a river sampling station.
type Station struct {
	Code      string            `json:"code"`
	WaterBody string            `json:"waterBody"`
	Basin     string            `json:"basin"`
	Location  location.Location `json:"location"`

	// Date of the survey in dd/mm/yyyy format.
	Date string `json:"date"`

	// Length is the mean length of the station in meters.
	Length float32 `json:"length"`
	// Width is the mean width of the station in meters.
	Width float32 `json:"width"`

	Community      Community      `json:"community"`
	HydroEcoRegion HydroEcoRegion `json:"hydroEcoRegion"`
	Area           Area           `json:"area"`
}

// Surface of the station in square meters. A zero surface is allowed,
// densities become infinite or NaN.
func (s Station) Surface() float32 {
	return s.Width * s.Length
}

func (c CommunityType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (a Area) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (h HydroEcoRegion) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}
