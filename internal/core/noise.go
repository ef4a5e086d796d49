package core

import "github.com/aquilax/go-perlin"

const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
	noiseScale   = 0.1
)

// NoiseMask samples 2D perlin noise across a size.W x size.H grid and
// thresholds it into a boolean mask in row-major order. Cells whose noise
// value exceeds threshold (in [-1, 1]) are marked true, which produces
// clustered blobs instead of the uniform speckle a plain RNG fill gives.
func NoiseMask(size Size, seed int64, threshold float64) []bool {
	mask := make([]bool, size.Area())
	if len(mask) == 0 {
		return mask
	}
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			v := p.Noise2D(float64(col)*noiseScale, float64(row)*noiseScale)
			mask[row*size.W+col] = v > threshold
		}
	}
	return mask
}
