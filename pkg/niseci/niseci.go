// Package niseci computes the NISECI index (Nuovo Indice dello Stato
// Ecologico delle Comunita Ittiche) of a river station.
//
// The index combines three sub-metrics:
//
//   - x1, the share of expected native species found in the sample;
//   - x2, the population structure and density of expected native
//     species;
//   - x3, the impact of alien species.
//
// All computations are pure and use single precision floating point
// numbers. An undefined index (no expected native species were sampled)
// is a valid outcome and is represented by a nil value.
package niseci

import (
	"fmt"
	"math"
)

const (
	// rqeAddend is 2/sqrt(pi).
	rqeAddend   = float32(1.1283791670955126)
	rqeQuotient = float32(1.0603)
)

// Result is the outcome of a NISECI computation.
type Result struct {
	// Value of the index, nil if it cannot be computed.
	Value *float32 `json:"value"`

	// RQE is the ecological quality ratio derived from Value.
	RQE *float32 `json:"rqe"`

	// Status is the ecological status derived from RQE.
	Status Status `json:"status"`

	// Intermediates keeps all values used to obtain the index.
	Intermediates Intermediates `json:"intermediates"`
}

// Intermediates are the sub-metrics of a NISECI computation.
type Intermediates struct {
	X1 float32  `json:"x1"`
	X2 *float32 `json:"x2"`
	X3 float32  `json:"x3"`

	// X2A is the sum of population structure scores.
	X2A float32 `json:"x2a"`
	// X2B is the sum of density scores.
	X2B float32 `json:"x2b"`

	X3A *float32 `json:"x3a"`
	X3B *float32 `json:"x3b"`

	// Species are per-species intermediate values keyed by species id.
	Species map[string]SpeciesValues `json:"species"`
}

// SpeciesValues are intermediate values of one sampled species.
type SpeciesValues struct {
	Species *Species `json:"species"`

	// Classes are the counts of individuals per length class.
	Classes [5]uint32 `json:"classes"`

	// Density is the estimated density per square meter, nil when it was
	// not estimated for the species.
	Density *float32 `json:"density"`

	// Quantity is the estimated number of individuals.
	Quantity uint32 `json:"quantity"`

	// ScoreB is the density score of the species.
	ScoreB float32 `json:"scoreB"`

	// Ratio is the adult/juvenile ratio.
	Ratio *float32 `json:"ratio"`

	CriterionA uint8 `json:"criterionA"`
	CriterionB uint8 `json:"criterionB"`
}

// Calculate computes the NISECI index of a station.
// Sub-metric failures stop the computation. The returned error is then
// an Errors value listing every problem found by the failing sub-metric.
func Calculate(sample Sample, ref Reference, st Station) (*Result, error) {
	x1 := X1(sample, ref)

	x2, mx2, err := X2(sample, st, Expected)
	if err != nil {
		return nil, prefixErrors("x2", err)
	}

	_, mx2Unexpected, err := X2(sample, st, Unexpected)
	if err != nil {
		return nil, prefixErrors("x2 of unexpected species", err)
	}

	_, mx2Alien, err := X2(sample, st, Alien)
	if err != nil {
		return nil, prefixErrors("x2 of alien species", err)
	}

	species := make(map[string]SpeciesValues)
	for _, m := range []X2Metrics{mx2, mx2Unexpected, mx2Alien} {
		for id, v := range m.Species {
			species[id] = v.values()
		}
	}

	x3, mx3, err := X3(sample)
	if err != nil {
		return nil, prefixErrors("x3", err)
	}

	res := Result{
		Intermediates: Intermediates{
			X1:      x1,
			X2:      x2,
			X3:      x3,
			X2A:     mx2.A,
			X2B:     mx2.B,
			Species: species,
		},
	}

	if mx3 != nil {
		res.Intermediates.X3A = &mx3.A
		res.Intermediates.X3B = &mx3.B
		for id, v := range mx3.Species {
			if _, ok := species[id]; ok {
				continue
			}
			species[id] = v.values()
		}
	}

	var errs Errors
	if x1 < 0 {
		errs = append(errs, fmt.Sprintf("x1 result: negative value: %v", x1))
	}
	if x2 != nil && *x2 < 0 {
		errs = append(errs, fmt.Sprintf("x2 result: negative value: %v", *x2))
	}
	if len(errs) > 0 {
		return nil, errs
	}

	if x2 == nil {
		return &res, nil
	}

	v := index(x1, *x2, x3)
	res.Value = &v
	res.RQE = RQE(res.Value)
	res.Status = StatusOf(res.RQE, st.Area)
	return &res, nil
}

func index(x1, x2, x3 float32) float32 {
	base := float32(0.1*sqrt32(x1)) +
		float32(0.1*sqrt32(x2)) +
		float32(0.8*float32(x1*x2))
	v := base - float32(float32(0.1*(1-x3))*base)
	return round3(v)
}

// RQE converts a NISECI value into the ecological quality ratio,
// rounded to two decimals. A nil value gives a nil ratio.
func RQE(niseci *float32) *float32 {
	if niseci == nil {
		return nil
	}
	log10 := ln32(*niseci) / ln32(10)
	res := (log10 + rqeAddend) / rqeQuotient
	res = round2(res)
	return &res
}

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

func ln32(v float32) float32 {
	return float32(math.Log(float64(v)))
}

func round2(v float32) float32 {
	return float32(math.Round(float64(float32(100*v)))) / 100
}

func round3(v float32) float32 {
	return float32(math.Round(float64(float32(1000*v)))) / 1000
}
