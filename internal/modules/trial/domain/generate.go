package domain

// NormalSampler draws one sample from a normal distribution. Implementations
// own their random state and must be used from a single goroutine.
type NormalSampler interface {
	Normal(mean, spread float64) float64
}

type Result struct {
	Trials []Trial
	// NegativeDraws counts raw flow-rate samples that fell below zero.
	NegativeDraws int
}

// Generate produces the ordered trial set for cfg. In generated mode the
// sampler is consulted exactly TotalTrials times, Low first, then Medium,
// then High; in literal mode it is not consulted and may be nil.
func Generate(cfg Config, sampler NormalSampler) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	trials := make([]Trial, 0, cfg.TotalTrials())
	negative := 0
	for ci, category := range Categories {
		dist := cfg.Distribution(category)
		for k := 0; k < cfg.TrialsPerCategory; k++ {
			id := len(trials) + 1
			if cfg.Mode == ModeLiteral {
				trials = append(trials, LiteralTrial(id, category, cfg.LiteralCollected[ci*cfg.TrialsPerCategory+k], cfg.ContainerCapacity))
				continue
			}
			raw := sampler.Normal(dist.Mean, dist.Spread)
			if raw < 0 {
				negative++
			}
			trials = append(trials, DeriveTrial(id, category, raw, cfg))
		}
	}
	return Result{Trials: trials, NegativeDraws: negative}, nil
}

// DeriveTrial applies the rounding and clamping policy to one raw flow-rate
// sample. A negative rounded rate is floored at zero.
func DeriveTrial(id int, category Category, raw float64, cfg Config) Trial {
	rate := RoundToNearest10(raw)
	if rate <= 0 {
		rate = 0
	}
	basis := rate
	if cfg.VolumeBasis == VolumeBasisRaw {
		basis = raw
	}
	collected := ClampVolume(RoundToNearest10(basis*cfg.CollectionTime), cfg.ContainerCapacity)
	return Trial{ID: id, Category: category, FlowRate: rate, Collected: collected}
}

// LiteralTrial records a supplied volume under the same rounding and
// clamping policy. Literal trials carry no flow rate.
func LiteralTrial(id int, category Category, collected, capacity float64) Trial {
	return Trial{ID: id, Category: category, Collected: ClampVolume(RoundToNearest10(collected), capacity)}
}
