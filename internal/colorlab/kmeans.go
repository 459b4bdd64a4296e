package colorlab

import (
	"math"
	"math/rand"

	"material-color-service/internal/model"
)

// convergenceThreshold is the per-channel centroid movement below which an
// iteration counts as converged.
const convergenceThreshold = 1.0

type clusterResult struct {
	centroid model.RGB
	count    int
}

// runKMeans clusters samples into at most k groups in RGB space. Initial
// centroids are k uniform random picks from the sample set via rng, so a
// fixed-seed source makes the whole run reproducible. Clusters that end empty
// after convergence are dropped. Returns the surviving clusters and the number
// of iterations executed.
func runKMeans(samples []model.RGB, k, maxIterations int, rng *rand.Rand) ([]clusterResult, int) {
	if len(samples) == 0 || k <= 0 {
		return nil, 0
	}

	centroids := make([][3]float64, k)
	for i := range centroids {
		s := samples[rng.Intn(len(samples))]
		centroids[i] = [3]float64{float64(s.R), float64(s.G), float64(s.B)}
	}
	return runKMeansFrom(samples, centroids, maxIterations)
}

// runKMeansFrom is the iteration loop with the initial centroids already
// chosen, which lets tests pin a deterministic start.
func runKMeansFrom(samples []model.RGB, centroids [][3]float64, maxIterations int) ([]clusterResult, int) {
	k := len(centroids)
	assignments := make([]int, len(samples))
	counts := make([]int, k)
	iterations := 0

	for iter := 0; iter < maxIterations; iter++ {
		iterations = iter + 1

		for i := range counts {
			counts[i] = 0
		}
		for si, s := range samples {
			best := 0
			bestDist := math.MaxFloat64
			for ci, c := range centroids {
				d := sqDist(s, c)
				if d < bestDist {
					bestDist = d
					best = ci
				}
			}
			assignments[si] = best
			counts[best]++
		}

		moved := false
		for ci := range centroids {
			if counts[ci] == 0 {
				// Empty this iteration: leave the centroid where it is.
				continue
			}
			var sum [3]float64
			for si, s := range samples {
				if assignments[si] != ci {
					continue
				}
				sum[0] += float64(s.R)
				sum[1] += float64(s.G)
				sum[2] += float64(s.B)
			}
			n := float64(counts[ci])
			next := [3]float64{sum[0] / n, sum[1] / n, sum[2] / n}
			if math.Abs(next[0]-centroids[ci][0]) > convergenceThreshold ||
				math.Abs(next[1]-centroids[ci][1]) > convergenceThreshold ||
				math.Abs(next[2]-centroids[ci][2]) > convergenceThreshold {
				moved = true
			}
			centroids[ci] = next
		}
		if !moved {
			break
		}
	}

	out := make([]clusterResult, 0, k)
	for ci, c := range centroids {
		if counts[ci] == 0 {
			continue
		}
		out = append(out, clusterResult{
			centroid: model.RGB{
				R: uint8(clampInt(int(math.Round(c[0])), 0, 255)),
				G: uint8(clampInt(int(math.Round(c[1])), 0, 255)),
				B: uint8(clampInt(int(math.Round(c[2])), 0, 255)),
			},
			count: counts[ci],
		})
	}
	return out, iterations
}

func sqDist(s model.RGB, c [3]float64) float64 {
	dr := float64(s.R) - c[0]
	dg := float64(s.G) - c[1]
	db := float64(s.B) - c[2]
	return dr*dr + dg*dg + db*db
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
