package domain

// PriceBin is a half-open price interval [Low, High) with the traded volume
// attributed to it. The last bin of a profile is closed on both sides.
type PriceBin struct {
	Low    float64
	High   float64
	Volume float64
}

// Mid returns the bin's representative price.
func (b PriceBin) Mid() float64 {
	return (b.Low + b.High) / 2
}

// VolumeProfile is the raw volume-by-price histogram for a candle window:
// equal-width bins ordered by price ascending, spanning the window's
// [min(low), max(high)] range.
type VolumeProfile struct {
	Bins        []PriceBin
	BinWidth    float64
	TotalVolume float64
}

// KeyLevels are the structural price levels derived from a profile.
// Invariant: VAL <= POC <= VAH.
type KeyLevels struct {
	// POC is the point of control, the center of the maximum-volume bin.
	POC float64
	// VAH is the value area high, the upper edge of the value area.
	VAH float64
	// VAL is the value area low, the lower edge of the value area.
	VAL float64
	// ValueAreaVolume is the volume accumulated inside [VAL, VAH].
	ValueAreaVolume float64
}

// NodeList holds detected volume nodes as representative prices.
type NodeList struct {
	// HVN are high volume nodes, ordered by descending volume.
	HVN []float64
	// LVN are low volume nodes, ordered by ascending volume.
	LVN []float64
}
