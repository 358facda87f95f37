package niseci

// Record is one captured individual.
type Record struct {
	Species *Species

	// Pass is the capture pass number, starting from 1.
	Pass uint8

	// Length in mm.
	Length uint32

	// Weight in grams.
	Weight float32
}

// Sample is all individuals captured at a station during one survey.
// The order of records is not significant.
type Sample []Record

// AlienNative counts alien and native individuals of the sample.
func (s Sample) AlienNative() (alien, native int) {
	for _, r := range s {
		switch {
		case r.Species.IsAlien():
			alien++
		case r.Species.Native.IsNative():
			native++
		}
	}
	return alien, native
}

// ExpectedNativeSpecies is the number of distinct expected native
// species found in the sample.
func (s Sample) ExpectedNativeSpecies() int {
	set := make(map[string]struct{})
	for _, r := range s {
		if r.Species.Expected && r.Species.Native.IsNative() {
			set[r.Species.ID] = struct{}{}
		}
	}
	return len(set)
}
