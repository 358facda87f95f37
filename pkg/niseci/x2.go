package niseci

import (
	"github.com/gnames/gnfish/pkg/regression"
)

// Selection chooses which species take part in an x2 computation.
type Selection int

const (
	// Expected native species. Only this selection affects the index.
	Expected Selection = iota
	// Unexpected native species.
	Unexpected
	// Alien species of any impact class.
	Alien
)

func (s Selection) String() string {
	switch s {
	case Expected:
		return "expected"
	case Unexpected:
		return "unexpected"
	default:
		return "alien"
	}
}

func (s Selection) match(sp *Species) bool {
	switch s {
	case Expected:
		return sp.Expected && sp.Native.IsNative()
	case Unexpected:
		return !sp.Expected && sp.Native.IsNative()
	default:
		return sp.Alien > 0
	}
}

// X2Metrics are the intermediate values of an x2 computation.
type X2Metrics struct {
	// A is the sum of population structure scores.
	A float32
	// B is the sum of density scores.
	B float32
	// Species keeps values of every selected species.
	Species map[string]SpeciesX2
}

// SpeciesX2 are the x2 values of one species.
type SpeciesX2 struct {
	Classes   AgeClasses
	Structure Structure
	// Density is nil until a density is estimated for the species.
	Density  *float32
	Quantity uint32
	ScoreB   float32
}

func (s SpeciesX2) values() SpeciesValues {
	return SpeciesValues{
		Species:    s.Classes.Species,
		Classes:    s.Classes.Counts,
		Density:    s.Density,
		Quantity:   s.Quantity,
		ScoreB:     s.ScoreB,
		Ratio:      s.Structure.Ratio,
		CriterionA: s.Structure.CriterionA,
		CriterionB: s.Structure.CriterionB,
	}
}

type density struct {
	id       string
	density  float32
	quantity uint32
	score    float32
}

// X2 evaluates population structure and density of the selected
// species:
//
//	x2 = (0.6*sum(structure) + 0.4*sum(density)) / species
//
// The value is nil when no selected species was sampled.
func X2(sample Sample, st Station, sel Selection) (*float32, X2Metrics, error) {
	var res X2Metrics

	a, classes, err := sumStructure(sample, sel)
	if err != nil {
		return nil, res, err
	}

	b, densities, err := sumDensity(sample, st.Surface(), sel)
	if err != nil {
		return nil, res, err
	}

	res = X2Metrics{A: a, B: b, Species: classes}

	var errs Errors
	for _, d := range densities {
		v, ok := res.Species[d.id]
		if !ok {
			errs = append(errs,
				"species "+d.id+" has an estimated density but misses other intermediate values")
			continue
		}
		dens := d.density
		v.Density = &dens
		v.Quantity = d.quantity
		v.ScoreB = d.score
		res.Species[d.id] = v
	}
	if len(errs) > 0 {
		return nil, X2Metrics{}, errs
	}

	sampled := make(map[string]struct{})
	for _, r := range sample {
		if sel.match(r.Species) {
			sampled[r.Species.ID] = struct{}{}
		}
	}
	if len(sampled) == 0 {
		return nil, res, nil
	}

	x2 := (float32(0.6*a) + float32(0.4*b)) / float32(len(sampled))
	x2 = round3(x2)
	return &x2, res, nil
}

func sumStructure(sample Sample, sel Selection) (float32, map[string]SpeciesX2, error) {
	classes := make(map[string]*AgeClasses)
	var order []string
	for _, r := range sample {
		if !sel.match(r.Species) {
			continue
		}
		ac, ok := classes[r.Species.ID]
		if !ok {
			ac = &AgeClasses{Species: r.Species}
			classes[r.Species.ID] = ac
			order = append(order, r.Species.ID)
		}
		ac.Add(r)
	}

	var sum float32
	var errs Errors
	res := make(map[string]SpeciesX2, len(classes))
	for _, id := range order {
		ac := classes[id]
		str, err := ac.Structure()
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		sum += str.Score
		res[id] = SpeciesX2{Classes: *ac, Structure: str}
	}
	if len(errs) > 0 {
		return 0, nil, errs
	}
	return sum, res, nil
}

func sumDensity(sample Sample, surface float32, sel Selection) (float32, []density, error) {
	passes := make(map[string]map[uint8]uint32)
	species := make(map[string]*Species)
	var order []string
	for _, r := range sample {
		if !sel.match(r.Species) {
			continue
		}
		p, ok := passes[r.Species.ID]
		if !ok {
			p = make(map[uint8]uint32)
			passes[r.Species.ID] = p
			species[r.Species.ID] = r.Species
			order = append(order, r.Species.ID)
		}
		p[r.Pass]++
	}

	var sum float32
	var errs Errors
	res := make([]density, 0, len(order))
	for _, id := range order {
		d, err := estimateDensity(species[id], passes[id], surface)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		sum += d.score
		res = append(res, d)
	}
	if len(errs) > 0 {
		return 0, nil, errs
	}
	return sum, res, nil
}

func estimateDensity(sp *Species, passes map[uint8]uint32, surface float32) (density, error) {
	q, err := regression.QuantityByPass(passes)
	if err != nil {
		return density{}, err
	}
	res := density{
		id:       sp.ID,
		quantity: q,
		density:  float32(q) / surface,
	}
	switch {
	case res.density > sp.DensityThresholds[1]:
		res.score = 1
	case res.density > sp.DensityThresholds[0]:
		res.score = 0.5
	}
	return res, nil
}
