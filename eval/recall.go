package eval

import "fmt"

// RecallAtK computes Recall@K for one query: the fraction of relevant
// URLs found in the top k predictions. Returns 0 when there are no
// relevant URLs.
func RecallAtK(predicted, relevant []string, k int) float64 {
	if len(relevant) == 0 || k <= 0 {
		return 0.0
	}

	if k > len(predicted) {
		k = len(predicted)
	}
	topK := make(map[string]bool, k)
	for _, url := range predicted[:k] {
		topK[url] = true
	}

	found := 0
	for _, url := range relevant {
		if topK[url] {
			found++
		}
	}
	return float64(found) / float64(len(relevant))
}

// MeanRecallAtK averages Recall@K over a set of queries. Predictions
// and ground truths must align one to one.
func MeanRecallAtK(predictions, groundTruths [][]string, k int) (float64, error) {
	if len(predictions) != len(groundTruths) {
		return 0, fmt.Errorf("%w: %d predictions, %d ground truths",
			ErrDatasetMismatch, len(predictions), len(groundTruths))
	}
	if len(predictions) == 0 {
		return 0.0, nil
	}

	var sum float64
	for i := range predictions {
		sum += RecallAtK(predictions[i], groundTruths[i], k)
	}
	return sum / float64(len(predictions)), nil
}
