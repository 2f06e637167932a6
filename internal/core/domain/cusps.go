package domain

// ComputeCusps builds the twelve house cusps for a house system from the
// Ascendant and Midheaven longitudes. Whole Sign and Equal only need the
// Ascendant; Porphyry trisects the quadrants between the angles.
func ComputeCusps(system HouseSystem, ascendant, midheaven float64) (Houses, error) {
	asc := NormalizeDegrees(ascendant)
	mc := NormalizeDegrees(midheaven)

	h := Houses{Ascendant: asc}
	switch system {
	case WholeSign:
		// Cusp 1 sits at the start of the Ascendant's sign.
		first := 30 * float64(int(asc/30))
		for i := 0; i < 12; i++ {
			h.Cusps[i] = NormalizeDegrees(first + 30*float64(i))
		}

	case EqualHouse:
		for i := 0; i < 12; i++ {
			h.Cusps[i] = NormalizeDegrees(asc + 30*float64(i))
		}

	case Porphyry:
		ic := NormalizeDegrees(mc + 180)
		desc := NormalizeDegrees(asc + 180)

		// Trisect Asc->IC for houses 1..3 and IC->Desc for 4..6;
		// 7..12 sit opposite.
		arc1 := NormalizeDegrees(ic - asc)
		arc2 := NormalizeDegrees(desc - ic)
		h.Cusps[0] = asc
		h.Cusps[1] = NormalizeDegrees(asc + arc1/3)
		h.Cusps[2] = NormalizeDegrees(asc + 2*arc1/3)
		h.Cusps[3] = ic
		h.Cusps[4] = NormalizeDegrees(ic + arc2/3)
		h.Cusps[5] = NormalizeDegrees(ic + 2*arc2/3)
		for i := 6; i < 12; i++ {
			h.Cusps[i] = NormalizeDegrees(h.Cusps[i-6] + 180)
		}

	default:
		return Houses{}, ErrUnsupportedHouseSystem
	}
	return h, nil
}
