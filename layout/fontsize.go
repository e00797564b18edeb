package layout

import (
	"math"
	"sort"
)

// FontSizeCluster is a document-wide bucket of similar font sizes.
type FontSizeCluster struct {
	// Centroid is the average font size of the cluster's members
	Centroid float64

	// Members is the number of characters assigned to the cluster
	Members int
}

// ClusterFontSizes buckets font sizes into at most k clusters using
// one-dimensional k-means.
//
// Initial centroids are placed at evenly spaced quantiles of the sorted
// sizes, which makes the result deterministic for identical input. Clusters
// that end up empty are dropped, so fewer than k clusters may be returned.
// Empty input returns nil; k below 1 is treated as 1.
func ClusterFontSizes(sizes []float64, k int) []FontSizeCluster {
	if len(sizes) == 0 {
		return nil
	}
	if k < 1 {
		k = 1
	}

	sorted := make([]float64, len(sizes))
	copy(sorted, sizes)
	sort.Float64s(sorted)

	distinct := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1] {
			distinct++
		}
	}
	if k > distinct {
		k = distinct
	}

	// Seed centroids at evenly spaced quantiles.
	centroids := make([]float64, k)
	for i := 0; i < k; i++ {
		idx := i * (len(sorted) - 1) / maxInt(k-1, 1)
		centroids[i] = sorted[idx]
	}

	assignment := make([]int, len(sorted))
	const maxIterations = 50

	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for i, s := range sorted {
			best := 0
			bestDist := math.Abs(s - centroids[0])
			for c := 1; c < k; c++ {
				if d := math.Abs(s - centroids[c]); d < bestDist {
					bestDist = d
					best = c
				}
			}
			if assignment[i] != best {
				assignment[i] = best
				changed = true
			}
		}

		sums := make([]float64, k)
		counts := make([]int, k)
		for i, s := range sorted {
			sums[assignment[i]] += s
			counts[assignment[i]]++
		}
		for c := 0; c < k; c++ {
			if counts[c] > 0 {
				centroids[c] = sums[c] / float64(counts[c])
			}
		}

		if !changed && iter > 0 {
			break
		}
	}

	counts := make([]int, k)
	sums := make([]float64, k)
	for i, s := range sorted {
		counts[assignment[i]]++
		sums[assignment[i]] += s
	}

	var clusters []FontSizeCluster
	for c := 0; c < k; c++ {
		if counts[c] == 0 {
			continue
		}
		clusters = append(clusters, FontSizeCluster{
			Centroid: sums[c] / float64(counts[c]),
			Members:  counts[c],
		})
	}

	sort.Slice(clusters, func(i, j int) bool {
		return clusters[i].Centroid > clusters[j].Centroid
	})

	return clusters
}

// HeadingEntry maps a cluster centroid to a heading level. Level 0 means the
// centroid belongs to body text.
type HeadingEntry struct {
	Centroid float64
	Level    int
}

// HeadingMap is the finalized, read-only centroid-to-heading-level mapping,
// computed once per document and shared by every page. The zero value is a
// valid empty map that classifies everything as body.
type HeadingMap struct {
	// Entries are ordered by descending centroid
	Entries []HeadingEntry

	// maxDistance is the outlier rejection radius for lookups
	maxDistance float64
}

// HeadingConfig holds configuration for heading-level assignment
type HeadingConfig struct {
	// MinRatio is the minimum centroid-to-body font size ratio for a cluster
	// to qualify as a heading (default: 1.15)
	MinRatio float64

	// MinGap is the minimum centroid-to-body point gap that alternatively
	// qualifies a cluster as a heading (default: 2.0)
	MinGap float64

	// MaxDistanceMultiplier scales the average inter-centroid gap into the
	// outlier rejection radius: a size farther than this from every centroid
	// is classified as body (default: 2.0)
	MaxDistanceMultiplier float64

	// MaxLevel caps assigned heading levels (default: 6)
	MaxLevel int
}

// DefaultHeadingConfig returns sensible default configuration
func DefaultHeadingConfig() HeadingConfig {
	return HeadingConfig{
		MinRatio:              1.15,
		MinGap:                2.0,
		MaxDistanceMultiplier: 2.0,
		MaxLevel:              6,
	}
}

// AssignHeadingLevels builds a HeadingMap from font-size clusters.
//
// The cluster with the most members becomes the body (level 0) regardless of
// its size rank. Every remaining cluster qualifies as a heading only when its
// centroid exceeds the body centroid by the configured ratio or point gap;
// qualifiers rank by descending centroid into levels 1, 2, and so on. A
// single cluster yields no headings.
func AssignHeadingLevels(clusters []FontSizeCluster, config HeadingConfig) HeadingMap {
	if len(clusters) == 0 {
		return HeadingMap{}
	}

	body := clusters[0]
	for _, c := range clusters[1:] {
		if c.Members > body.Members {
			body = c
		}
	}

	var qualifiers []FontSizeCluster
	for _, c := range clusters {
		if c.Centroid <= body.Centroid {
			continue
		}
		ratioOK := c.Centroid >= body.Centroid*config.MinRatio
		gapOK := c.Centroid-body.Centroid >= config.MinGap
		if ratioOK || gapOK {
			qualifiers = append(qualifiers, c)
		}
	}

	sort.Slice(qualifiers, func(i, j int) bool {
		return qualifiers[i].Centroid > qualifiers[j].Centroid
	})

	levels := make(map[float64]int, len(qualifiers))
	for i, q := range qualifiers {
		level := i + 1
		if config.MaxLevel > 0 && level > config.MaxLevel {
			level = config.MaxLevel
		}
		levels[q.Centroid] = level
	}

	entries := make([]HeadingEntry, 0, len(clusters))
	for _, c := range clusters {
		entries = append(entries, HeadingEntry{
			Centroid: c.Centroid,
			Level:    levels[c.Centroid],
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Centroid > entries[j].Centroid
	})

	return HeadingMap{
		Entries:     entries,
		maxDistance: config.MaxDistanceMultiplier * averageCentroidGap(entries),
	}
}

// averageCentroidGap returns the mean gap between adjacent centroids, or
// +Inf when there are fewer than two entries (nothing can be an outlier).
func averageCentroidGap(entries []HeadingEntry) float64 {
	if len(entries) < 2 {
		return math.Inf(1)
	}
	total := 0.0
	for i := 1; i < len(entries); i++ {
		total += math.Abs(entries[i-1].Centroid - entries[i].Centroid)
	}
	return total / float64(len(entries)-1)
}

// IsEmpty returns true when the map holds no clusters.
func (m HeadingMap) IsEmpty() bool {
	return len(m.Entries) == 0
}

// LevelFor returns the heading level for a font size, or 0 for body text.
//
// The size is matched to the nearest centroid. A size whose distance to every
// centroid exceeds the outlier rejection radius is treated as body regardless
// of its magnitude.
func (m HeadingMap) LevelFor(fontSize float64) int {
	if len(m.Entries) == 0 {
		return 0
	}
	if len(m.Entries) == 1 {
		return m.Entries[0].Level
	}

	best := m.Entries[0]
	bestDist := math.Abs(fontSize - best.Centroid)
	for _, e := range m.Entries[1:] {
		if d := math.Abs(fontSize - e.Centroid); d < bestDist {
			bestDist = d
			best = e
		}
	}

	if bestDist > m.maxDistance {
		return 0
	}
	return best.Level
}

// maxInt returns the larger of two ints
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
