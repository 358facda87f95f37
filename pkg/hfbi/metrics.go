package hfbi

import "math"

const epsilon = float32(1e-6)

// singular is the diversity sum for which the logarithm of the
// denominator of DBent and DHzp vanishes.
const singular = float32(0.2)

// BN is the log transformed mean weight of individuals. An empty sample
// gives NaN.
func BN(s Sample) float32 {
	var b, n float32
	for _, r := range s {
		b += r.Weight
		n += float32(r.Count)
	}
	return round3(ln32(b/n + 1))
}

// BBent is the log transformed density of benthivore biomass of
// lagoonal species.
func BBent(s Sample, area float32) float32 {
	var bio float32
	for _, r := range s {
		if !r.Species.Group.lagoonal() {
			continue
		}
		t := r.Species.Trophic
		bio += float32(r.Weight*t.Microbenthivore) +
			float32(r.Weight*t.Macrobenthivore)
	}
	if abs32(bio) < epsilon {
		return 0
	}
	return round3(ln32(float32(bio/area*100) + 1))
}

// DBent is the diversity of benthivore lagoonal species weighted by
// their biomass density.
func DBent(s Sample, area float32) float32 {
	var sbent, bb float32
	for _, r := range s {
		if !r.Species.Group.lagoonal() {
			continue
		}
		t := r.Species.Trophic
		sb := t.Microbenthivore + t.Macrobenthivore
		dens := float32(r.Weight / area * 100)
		bb += float32(dens * sb)
		sbent += sb
	}
	switch {
	case abs32(sbent) < epsilon:
		return 0
	case abs32(sbent-singular) < epsilon:
		return 0.01
	}
	return round3(ln32((sbent-1)/ln32(bb) + 1))
}

// DDom is the dominance metric. Records are consumed in sample order
// until their weight exceeds 90% of the total weight.
func DDom(s Sample, area float32) float32 {
	var tot float32
	for _, r := range s {
		tot += r.Weight
	}
	b90 := float32(tot * 0.9)

	var n int
	var tmp float32
	for _, r := range s {
		tmp += r.Weight
		n++
		if tmp > b90 {
			break
		}
	}

	bigB90 := ln32(float32(b90/area*100) + 1)
	return round3(ln32((float32(n)-1)/bigB90 + 1))
}

// DHzp is the diversity of hyperbenthivore and zooplanktivore lagoonal
// species weighted by their biomass density.
func DHzp(s Sample, area float32) float32 {
	var shzp, bhzp float32
	for _, r := range s {
		if !r.Species.Group.lagoonal() {
			continue
		}
		h := r.Species.Trophic.Hyperbenthivore
		shzp += h
		bhzp += float32(r.Weight * h)
	}
	bhzp = float32(bhzp / area * 100)
	switch {
	case abs32(shzp) < epsilon:
		return 0
	case abs32(shzp-singular) < epsilon:
		return 0.01
	}
	return round3(ln32((shzp-singular)/ln32(bhzp) + 1))
}

// DMig is the diversity of migratory species weighted by their biomass
// density.
func DMig(s Sample, area float32) float32 {
	codes := make(map[string]struct{})
	var bmig float32
	for _, r := range s {
		if !r.Species.Group.migratory() {
			continue
		}
		codes[r.Species.Code] = struct{}{}
		bmig += r.Weight
	}
	bmig = float32(bmig / area * 100)
	switch len(codes) {
	case 0:
		return 0
	case 1:
		return 0.01
	}
	return round3(ln32(float32(len(codes)-1)/ln32(bmig) + 1))
}

func ln32(v float32) float32 {
	return float32(math.Log(float64(v)))
}

func round3(v float32) float32 {
	return float32(math.Round(float64(float32(1000*v)))) / 1000
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
