package analysis

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/quantfold/optzone/internal/domain"
)

const (
	// touchTolerance is the relative band around a level counted as a test.
	touchTolerance = 0.002
	// touchWeight is the strength gain per candle low testing the level.
	touchWeight = 0.1
	// distanceDecay is the exponent factor penalizing levels far from spot.
	distanceDecay = 5.0
	// strengthQuantile keeps only the strongest share of scored levels.
	strengthQuantile = 0.70
)

// StrengthAnalyzer ranks profile bins by support/resistance quality.
type StrengthAnalyzer struct {
	logger *zap.Logger
}

// NewStrengthAnalyzer creates a StrengthAnalyzer.
func NewStrengthAnalyzer(logger *zap.Logger) *StrengthAnalyzer {
	return &StrengthAnalyzer{logger: logger}
}

// Rank scores every bin of the profile. The base score is the bin's volume,
// boosted by the number of candle lows that tested the level (within a
// ±0.2% band) and decayed exponentially with distance from the spot price.
// Scores are min-max normalized to 0-100, the weakest 70% quantile is
// dropped, and the survivors are ranked strongest first.
func (s *StrengthAnalyzer) Rank(candles []domain.Candle, p *domain.VolumeProfile, spot float64) []domain.LevelStrength {
	if len(p.Bins) == 0 || spot <= 0 {
		return nil
	}

	scored := make([]domain.LevelStrength, 0, len(p.Bins))
	for _, b := range p.Bins {
		price := b.Mid()

		touches := 0
		tol := price * touchTolerance
		for _, c := range candles {
			low := c.Low.InexactFloat64()
			if low >= price-tol && low <= price+tol {
				touches++
			}
		}

		score := b.Volume * (1 + touchWeight*float64(touches))
		score *= math.Exp(-distanceDecay * math.Abs(price-spot) / spot)

		scored = append(scored, domain.LevelStrength{
			Price:   price,
			Score:   score,
			Touches: touches,
		})
	}

	minScore, maxScore := scored[0].Score, scored[0].Score
	for _, l := range scored[1:] {
		minScore = math.Min(minScore, l.Score)
		maxScore = math.Max(maxScore, l.Score)
	}
	if maxScore == minScore {
		return nil
	}
	for i := range scored {
		scored[i].Normalized = (scored[i].Score - minScore) / (maxScore - minScore) * 100
	}

	cutoff := quantile(scored, strengthQuantile)
	strong := scored[:0]
	for _, l := range scored {
		if l.Normalized >= cutoff {
			strong = append(strong, l)
		}
	}

	sort.Slice(strong, func(i, j int) bool { return strong[i].Normalized > strong[j].Normalized })
	for i := range strong {
		strong[i].Rank = i + 1
	}

	s.logger.Debug("strength levels ranked",
		zap.Int("scored", len(p.Bins)),
		zap.Int("kept", len(strong)))

	return strong
}

// TopBelow returns at most n ranked levels strictly below the given price,
// strongest first. Useful for listing candidate supports under spot.
func TopBelow(levels []domain.LevelStrength, price float64, n int) []domain.LevelStrength {
	out := make([]domain.LevelStrength, 0, n)
	for _, l := range levels {
		if l.Price >= price {
			continue
		}
		out = append(out, l)
		if len(out) == n {
			break
		}
	}

	return out
}

func quantile(levels []domain.LevelStrength, q float64) float64 {
	vals := make([]float64, len(levels))
	for i, l := range levels {
		vals[i] = l.Normalized
	}
	sort.Float64s(vals)

	pos := q * float64(len(vals)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return vals[lo]
	}

	frac := pos - float64(lo)
	return vals[lo]*(1-frac) + vals[hi]*frac
}
