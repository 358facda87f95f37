package niseci

import "math"

const epsilon = float32(1e-6)

// X3Metrics are the intermediate values of an x3 computation.
type X3Metrics struct {
	// A depends on the presence of alien species of each impact class.
	A float32
	// B depends on the population structure of alien species.
	B float32
	// Species keeps values of every alien species.
	Species map[string]SpeciesX3
}

// SpeciesX3 are the x3 values of one alien species.
type SpeciesX3 struct {
	Classes   AgeClasses
	Structure Structure
}

func (s SpeciesX3) values() SpeciesValues {
	return SpeciesValues{
		Species:    s.Classes.Species,
		Classes:    s.Classes.Counts,
		Ratio:      s.Structure.Ratio,
		CriterionA: s.Structure.CriterionA,
		CriterionB: s.Structure.CriterionB,
	}
}

// aliens summarizes the alien species of one impact class.
type aliens struct {
	best         float32
	structured   int
	medium       int
	destructured int
	total        int
}

// X3 evaluates the impact of alien species. The metrics are nil when
// the value is decided without looking at alien populations.
func X3(sample Sample) (float32, *X3Metrics, error) {
	alien, native := sample.AlienNative()
	if alien == 0 {
		return 1, nil, nil
	}
	if alien >= native {
		return 0, nil, nil
	}

	var byClass [3]map[string]*AgeClasses
	var order [3][]string
	for i := range byClass {
		byClass[i] = make(map[string]*AgeClasses)
	}
	for _, r := range sample {
		if !r.Species.IsAlien() {
			continue
		}
		i := r.Species.Alien - 1
		ac, ok := byClass[i][r.Species.ID]
		if !ok {
			ac = &AgeClasses{Species: r.Species}
			byClass[i][r.Species.ID] = ac
			order[i] = append(order[i], r.Species.ID)
		}
		ac.Add(r)
	}

	var info [3]aliens
	var errs Errors
	metrics := X3Metrics{Species: make(map[string]SpeciesX3)}
	for i := range byClass {
		info[i].total = len(byClass[i])
		for _, id := range order[i] {
			ac := byClass[i][id]
			str, err := ac.Structure()
			if err != nil {
				errs = append(errs, err.Error())
				continue
			}
			info[i].add(str.Score)
			metrics.Species[id] = SpeciesX3{Classes: *ac, Structure: str}
		}
	}
	if len(errs) > 0 {
		return 0, nil, errs
	}

	if abs32(info[0].best-1) < epsilon {
		return 0, nil, nil
	}

	nativeSpecies := sample.ExpectedNativeSpecies()
	metrics.A = x3A(info, nativeSpecies)
	metrics.B = x3B(info)

	x3 := round3(float32(0.5 * (metrics.A + metrics.B)))
	return x3, &metrics, nil
}

func (a *aliens) add(score float32) {
	a.best = max(a.best, score)
	switch {
	case abs32(score-1) < epsilon:
		a.structured++
	case abs32(score-0.5) < epsilon:
		a.medium++
	case abs32(score) < epsilon:
		a.destructured++
	}
}

// x3A checks impact classes in order of severity.
func x3A(info [3]aliens, nativeSpecies int) float32 {
	t1, t2, t3 := info[0], info[1], info[2]
	switch {
	case t1.total > 0 && t1.best < 1:
		return 0.5
	case t2.total != 0 && t2.total >= nativeSpecies:
		return 0.5
	case t2.total != 0 && t2.total < nativeSpecies:
		return 0.75
	case t3.total >= nativeSpecies:
		return 0.75
	case t3.total != 0 && t3.total < nativeSpecies:
		return 0.85
	default:
		return 1
	}
}

func x3B(info [3]aliens) float32 {
	var medium, destructured, total int
	for _, v := range info {
		medium += v.medium
		destructured += v.destructured
		total += v.total
	}
	half := float32(0.5 * (float32(medium) / float32(total)))
	return half + float32(destructured)/float32(total)
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
