package niseci

// X1 measures how complete the expected native community is:
//
//	x1 = (1.2*ni + 0.8*na) / (1.2*mi + 0.8*ma)
//
// where ni and na are the numbers of sampled expected species of primary
// and secondary importance, mi and ma the same numbers in the reference.
// A reference without expected native species gives NaN or +Inf.
func X1(sample Sample, ref Reference) float32 {
	var ni, na, mi, ma float32

	sampled := make(map[string]struct{})
	for _, r := range sample {
		if !r.Species.Expected {
			continue
		}
		if _, ok := sampled[r.Species.ID]; ok {
			continue
		}
		sampled[r.Species.ID] = struct{}{}
		switch r.Species.Native {
		case NativePrimary:
			ni++
		case NativeSecondary:
			na++
		}
	}

	expected := make(map[string]struct{})
	for i := range ref {
		sp := &ref[i]
		if !sp.Expected {
			continue
		}
		if _, ok := expected[sp.ID]; ok {
			continue
		}
		expected[sp.ID] = struct{}{}
		switch sp.Native {
		case NativePrimary:
			mi++
		case NativeSecondary:
			ma++
		}
	}

	num := float32(1.2*ni) + float32(0.8*na)
	den := float32(1.2*mi) + float32(0.8*ma)
	return round3(num / den)
}
