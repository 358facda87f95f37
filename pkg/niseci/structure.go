package niseci

import "fmt"

// AgeClasses counts individuals of a species per length class.
type AgeClasses struct {
	Species *Species
	Counts  [5]uint32
}

// Add puts an individual to its length class.
func (a *AgeClasses) Add(r Record) {
	a.Counts[a.Species.LengthClass(r.Length)]++
}

// Structure classifies the population structure of the species.
func (a *AgeClasses) Structure() (Structure, error) {
	return ClassifyStructure(a.Counts, a.Species.AdultJuvenileThresholds)
}

// Structure is the classification of the age structure of a population.
type Structure struct {
	// Score is 1 for a well structured population, 0.5 for a mediumly
	// structured one and 0 for a destructured one.
	Score float32

	// CriterionA from 1 (best) to 3 depends on the number of populated
	// length classes.
	CriterionA uint8

	// CriterionB from 1 (best) to 3 depends on the adult/juvenile ratio.
	CriterionB uint8

	// Ratio between adults (classes 4, 5) and juveniles (classes 2, 3),
	// nil if there are no juveniles.
	Ratio *float32
}

// ClassifyStructure derives both criteria and the structure score from
// the counts of length classes.
func ClassifyStructure(
	counts [5]uint32,
	adultJuvenile [4]float32,
) (Structure, error) {
	a := CriterionA(counts)
	b, ratio := CriterionB(counts, adultJuvenile)
	score, err := StructureScore(a, b)
	if err != nil {
		return Structure{}, err
	}
	res := Structure{
		Score:      score,
		CriterionA: a,
		CriterionB: b,
		Ratio:      ratio,
	}
	return res, nil
}

// CriterionA is 1 when at least four length classes are populated, 2
// for three classes and 3 otherwise.
func CriterionA(counts [5]uint32) uint8 {
	var populated int
	for _, v := range counts {
		if v > 0 {
			populated++
		}
	}
	switch {
	case populated >= 4:
		return 1
	case populated == 3:
		return 2
	default:
		return 3
	}
}

// CriterionB compares the adult/juvenile ratio with the thresholds of
// the species. Both too few and too many adults are penalized.
func CriterionB(counts [5]uint32, thr [4]float32) (uint8, *float32) {
	juv := counts[1] + counts[2]
	if juv == 0 {
		return 3, nil
	}
	ratio := float32(counts[3]+counts[4]) / float32(juv)
	switch {
	case ratio < thr[0]:
		return 3, &ratio
	case ratio <= thr[1]:
		return 2, &ratio
	case ratio <= thr[2]:
		return 1, &ratio
	case ratio <= thr[3]:
		return 2, &ratio
	default:
		return 3, &ratio
	}
}

// StructureScore converts a pair of criteria into a score.
func StructureScore(a, b uint8) (float32, error) {
	if a < 1 || a > 3 || b < 1 || b > 3 {
		return 0, fmt.Errorf(
			"criterion A or B of population structure is not 1, 2 or 3: "+
				"criterion A = %d, criterion B = %d", a, b,
		)
	}
	switch {
	case a == 1 && b == 3:
		return 0.5, nil
	case a == 1:
		return 1, nil
	case a == 2 && b == 3:
		return 0, nil
	case a == 2:
		return 0.5, nil
	default:
		return 0, nil
	}
}
