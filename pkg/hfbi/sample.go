package hfbi

// Record is the catch of one species.
type Record struct {
	Species *Species

	// Count of individuals.
	Count uint32

	// Weight of all individuals in grams.
	Weight float32
}

// Sample is the catch of a transect. The order of records is
// significant for DDom.
type Sample []Record
