package hfbi

import "errors"

// ErrNoReference is returned when a station has no reference
// conditions.
var ErrNoReference = errors.New("reference conditions not found")

// Reference holds the values of the metrics in reference conditions.
type Reference struct {
	BN    float32 `json:"bn"`
	DDom  float32 `json:"ddom"`
	DMig  float32 `json:"dmig"`
	BBent float32 `json:"bbent"`
	DBent float32 `json:"dbent"`
	DHzp  float32 `json:"dhzp"`
}

type refKey struct {
	lagoon  LagoonType
	season  Season
	habitat Habitat
}

var references = map[refKey]Reference{
	{MAT1, Spring, NonVegetated}: {2.232, 2.052, 3.212, 6.537, 3.768, 2.856},
	{MAT1, Autumn, NonVegetated}: {1.932, 2.268, 2.014, 6.867, 2.944, 2.570},
	{MAT1, Spring, Vegetated}:    {2.232, 1.784, 3.212, 7.242, 3.153, 2.369},
	{MAT1, Autumn, Vegetated}:    {1.932, 2.001, 2.014, 7.572, 2.329, 2.083},
	{MAT2, Spring, NonVegetated}: {2.539, 2.052, 3.212, 5.221, 3.768, 2.856},
	{MAT2, Autumn, NonVegetated}: {2.238, 2.268, 2.014, 5.551, 2.944, 2.570},
	{MAT2, Spring, Vegetated}:    {2.539, 1.784, 3.212, 5.925, 3.153, 2.369},
	{MAT2, Autumn, Vegetated}:    {2.238, 2.001, 2.014, 6.255, 2.329, 2.083},
	{MAT3, Spring, NonVegetated}: {2.217, 2.052, 3.212, 4.561, 3.768, 2.856},
	{MAT3, Autumn, NonVegetated}: {1.917, 2.268, 2.014, 4.891, 2.944, 2.570},
	{MAT3, Spring, Vegetated}:    {2.217, 1.784, 3.212, 5.265, 3.153, 2.369},
	{MAT3, Autumn, Vegetated}:    {1.917, 2.001, 2.014, 5.595, 2.329, 2.083},
}

// ReferenceFor returns the reference conditions of a lagoon type in a
// season and habitat.
func ReferenceFor(lt LagoonType, s Season, h Habitat) (Reference, error) {
	res, ok := references[refKey{lagoon: lt, season: s, habitat: h}]
	if !ok {
		return Reference{}, ErrNoReference
	}
	return res, nil
}
