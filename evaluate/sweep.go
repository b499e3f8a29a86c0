package evaluate

import (
	"errors"
	"fmt"

	"github.com/hupe1980/clustergo"
)

// Record is one point of a K-sweep: the cluster count and the quality
// metrics of an independent run at that count.
type Record struct {
	K    int
	WCSS float64

	// Silhouette is only meaningful when SilhouetteOK is true; it is false
	// for the degenerate cluster counts (K=1, K=n) where the score is
	// undefined.
	Silhouette   float64
	SilhouetteOK bool
}

// Sweep runs an independent initialization + K-Means run + metric computation
// for every k in [kMin, kMax] and returns the records ordered by k. The same
// seed is reapplied for each k, so a sweep is fully reproducible.
//
// Options are forwarded to the engine of every run.
func Sweep(data [][]float64, kMin, kMax int, seed int64, opts ...clustergo.Option) ([]Record, error) {
	if kMin < 1 || kMax < kMin {
		return nil, fmt.Errorf("%w: invalid k range [%d, %d]", clustergo.ErrInvalidParameter, kMin, kMax)
	}
	if kMax > len(data) {
		return nil, fmt.Errorf("%w: kMax=%d exceeds dataset size %d", clustergo.ErrInvalidParameter, kMax, len(data))
	}

	km := clustergo.New(opts...)

	records := make([]Record, 0, kMax-kMin+1)
	for k := kMin; k <= kMax; k++ {
		result, err := km.RunSeeded(data, k, seed)
		if err != nil {
			return nil, fmt.Errorf("k=%d: %w", k, err)
		}

		wcss, err := WCSS(data, result.Clusters, result.Centroids)
		if err != nil {
			return nil, fmt.Errorf("k=%d: %w", k, err)
		}

		rec := Record{K: k, WCSS: wcss}

		sil, err := Silhouette(data, result.Labels)
		switch {
		case err == nil:
			rec.Silhouette = sil
			rec.SilhouetteOK = true
		case errors.Is(err, clustergo.ErrDegenerateInput):
			// Skip the metric point, keep the record.
		default:
			return nil, fmt.Errorf("k=%d: %w", k, err)
		}

		records = append(records, rec)
	}

	return records, nil
}

// Elbow picks the elbow of a WCSS curve: the k whose marginal improvement
// drops off the most, i.e. the interior record with the largest second
// difference of WCSS. Records must be ordered by ascending k, as returned by
// Sweep.
//
// At least 3 records are required.
func Elbow(records []Record) (int, error) {
	if len(records) < 3 {
		return 0, fmt.Errorf("%w: elbow detection needs at least 3 records, got %d",
			clustergo.ErrInvalidParameter, len(records))
	}

	bestK := records[1].K
	bestCurve := 0.0
	for i := 1; i < len(records)-1; i++ {
		curve := (records[i-1].WCSS - records[i].WCSS) - (records[i].WCSS - records[i+1].WCSS)
		if curve > bestCurve {
			bestCurve = curve
			bestK = records[i].K
		}
	}

	return bestK, nil
}
