package profile

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/quantfold/optzone/internal/domain"
)

// ExtractLevels locates the point of control and expands the value area
// around it until it covers cfg.ValueAreaFraction of total volume.
func (a *Analyzer) ExtractLevels(p *domain.VolumeProfile) (domain.KeyLevels, error) {
	if p.TotalVolume == 0 {
		return domain.KeyLevels{}, domain.ErrEmptyVolume
	}

	poc := a.pocIndex(p)
	lo, hi, vaVolume := a.expandValueArea(p, poc)

	levels := domain.KeyLevels{
		POC:             p.Bins[poc].Mid(),
		VAH:             p.Bins[hi].High,
		VAL:             p.Bins[lo].Low,
		ValueAreaVolume: vaVolume,
	}

	a.logger.Debug("levels extracted",
		zap.Float64("poc", levels.POC),
		zap.Float64("vah", levels.VAH),
		zap.Float64("val", levels.VAL),
		zap.Float64("value_area_volume", vaVolume))

	return levels, nil
}

// pocIndex returns the maximum-volume bin. Ties are broken by picking the
// bin closest to the volume-weighted mean price of the window, which keeps
// the choice independent of bin ordering.
func (a *Analyzer) pocIndex(p *domain.VolumeProfile) int {
	maxVol := p.Bins[0].Volume
	for _, b := range p.Bins[1:] {
		if b.Volume > maxVol {
			maxVol = b.Volume
		}
	}

	weighted := 0.0
	for _, b := range p.Bins {
		weighted += b.Mid() * b.Volume
	}
	meanPrice := weighted / p.TotalVolume

	best := -1
	bestDist := math.Inf(1)
	for i, b := range p.Bins {
		if b.Volume != maxVol {
			continue
		}
		if d := math.Abs(b.Mid() - meanPrice); d < bestDist {
			best = i
			bestDist = d
		}
	}

	return best
}

// expandValueArea grows the [lo, hi] bin range outward from the POC, adding
// at each step whichever unvisited neighbor carries more volume. An exact tie
// adds both neighbors in the same step. Expansion stops once the accumulated
// volume reaches the target fraction or both edges of the profile.
func (a *Analyzer) expandValueArea(p *domain.VolumeProfile, poc int) (lo, hi int, acc float64) {
	target := p.TotalVolume * a.cfg.ValueAreaFraction
	lo, hi = poc, poc
	acc = p.Bins[poc].Volume

	for acc < target && (lo > 0 || hi < len(p.Bins)-1) {
		switch {
		case lo == 0:
			hi++
			acc += p.Bins[hi].Volume
		case hi == len(p.Bins)-1:
			lo--
			acc += p.Bins[lo].Volume
		case p.Bins[hi+1].Volume > p.Bins[lo-1].Volume:
			hi++
			acc += p.Bins[hi].Volume
		case p.Bins[hi+1].Volume < p.Bins[lo-1].Volume:
			lo--
			acc += p.Bins[lo].Volume
		default:
			hi++
			lo--
			acc += p.Bins[hi].Volume + p.Bins[lo].Volume
		}
	}

	return lo, hi, acc
}

// FindNodes detects high and low volume nodes: strict local extrema of the
// histogram that clear the configured multiples of mean bin volume. Profile
// edges are never nodes since they have a single neighbor.
func (a *Analyzer) FindNodes(p *domain.VolumeProfile) (domain.NodeList, error) {
	if p.TotalVolume == 0 {
		return domain.NodeList{}, domain.ErrEmptyVolume
	}

	meanVol := p.TotalVolume / float64(len(p.Bins))
	hvnFloor := meanVol * a.cfg.HVNMultiplier
	lvnCeil := meanVol * a.cfg.LVNMultiplier

	type node struct {
		price  float64
		volume float64
	}
	var peaks, troughs []node

	for i := 1; i < len(p.Bins)-1; i++ {
		v := p.Bins[i].Volume
		prev, next := p.Bins[i-1].Volume, p.Bins[i+1].Volume

		if v > prev && v > next && v >= hvnFloor {
			peaks = append(peaks, node{price: p.Bins[i].Mid(), volume: v})
		}
		if v < prev && v < next && v <= lvnCeil {
			troughs = append(troughs, node{price: p.Bins[i].Mid(), volume: v})
		}
	}

	sort.Slice(peaks, func(i, j int) bool { return peaks[i].volume > peaks[j].volume })
	sort.Slice(troughs, func(i, j int) bool { return troughs[i].volume < troughs[j].volume })

	if len(peaks) > a.cfg.HVNTopK {
		peaks = peaks[:a.cfg.HVNTopK]
	}
	if len(troughs) > a.cfg.LVNTopK {
		troughs = troughs[:a.cfg.LVNTopK]
	}

	nodes := domain.NodeList{}
	for _, n := range peaks {
		nodes.HVN = append(nodes.HVN, n.price)
	}
	for _, n := range troughs {
		nodes.LVN = append(nodes.LVN, n.price)
	}

	return nodes, nil
}
