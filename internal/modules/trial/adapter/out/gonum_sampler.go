package out

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"watersim/internal/modules/trial/domain"
	trialout "watersim/internal/modules/trial/port/out"
)

// pcgStream is the fixed PCG increment; the seed alone selects the sequence.
const pcgStream = 0x9e3779b97f4a7c15

type GonumSamplerFactory struct{}

func NewGonumSamplerFactory() trialout.SamplerFactory {
	return GonumSamplerFactory{}
}

func (GonumSamplerFactory) New(seed uint64) domain.NormalSampler {
	return &gonumSampler{src: rand.NewPCG(seed, pcgStream)}
}

type gonumSampler struct {
	src rand.Source
}

func (s *gonumSampler) Normal(mean, spread float64) float64 {
	return distuv.Normal{Mu: mean, Sigma: spread, Src: s.src}.Rand()
}
