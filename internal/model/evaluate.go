package model

import "sort"

// ConfusionMatrix counts threshold-0.5 classification outcomes.
type ConfusionMatrix struct {
	TruePositives  int `json:"true_positives"`
	FalsePositives int `json:"false_positives"`
	TrueNegatives  int `json:"true_negatives"`
	FalseNegatives int `json:"false_negatives"`
}

// Evaluation holds classification quality metrics over a labeled set.
type Evaluation struct {
	Confusion ConfusionMatrix `json:"confusion"`
	Accuracy  float64         `json:"accuracy"`
	Precision float64         `json:"precision"`
	Recall    float64         `json:"recall"`
	F1        float64         `json:"f1"`
	AUC       float64         `json:"auc"`
	Samples   int             `json:"samples"`
}

// Evaluate scores the trained model over raw (unnormalized) feature vectors.
// It fails with ModelNotLoadedError when no trained model is available.
func (m *Model) Evaluate(vectors [][]float64, labels []int) (*Evaluation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.net == nil || m.stats == nil {
		return nil, &ModelNotLoadedError{}
	}

	normalized := make([][]float64, len(vectors))
	for i, v := range vectors {
		normalized[i] = normalizeVector(v, m.stats)
	}
	return evaluateNetwork(m.net, normalized, labels), nil
}

// evaluateNetwork scores a network over already-normalized samples.
func evaluateNetwork(net *network, samples [][]float64, labels []int) *Evaluation {
	scores := make([]float64, len(samples))
	for i, s := range samples {
		scores[i] = net.predictOne(s)
	}
	return ScoreEvaluation(scores, labels)
}

// ScoreEvaluation computes the full metric set from probabilities and labels.
func ScoreEvaluation(scores []float64, labels []int) *Evaluation {
	eval := &Evaluation{Samples: len(scores)}

	for i, p := range scores {
		predicted := p >= 0.5
		actual := labels[i] == 1
		switch {
		case predicted && actual:
			eval.Confusion.TruePositives++
		case predicted && !actual:
			eval.Confusion.FalsePositives++
		case !predicted && !actual:
			eval.Confusion.TrueNegatives++
		default:
			eval.Confusion.FalseNegatives++
		}
	}

	c := eval.Confusion
	if total := len(scores); total > 0 {
		eval.Accuracy = float64(c.TruePositives+c.TrueNegatives) / float64(total)
	}
	if c.TruePositives+c.FalsePositives > 0 {
		eval.Precision = float64(c.TruePositives) / float64(c.TruePositives+c.FalsePositives)
	}
	if c.TruePositives+c.FalseNegatives > 0 {
		eval.Recall = float64(c.TruePositives) / float64(c.TruePositives+c.FalseNegatives)
	}
	if eval.Precision+eval.Recall > 0 {
		eval.F1 = 2 * eval.Precision * eval.Recall / (eval.Precision + eval.Recall)
	}
	eval.AUC = RankAUC(scores, labels)
	return eval
}

// RankAUC computes the rank-based AUC: the count of (positive, negative)
// pairs where the positive is ranked above the negative, over all such
// pairs. Ties break by stable sort order. Returns 0.5 when either class is
// absent.
func RankAUC(scores []float64, labels []int) float64 {
	type item struct {
		score float64
		label int
	}
	items := make([]item, len(scores))
	positives, negatives := 0, 0
	for i, s := range scores {
		items[i] = item{score: s, label: labels[i]}
		if labels[i] == 1 {
			positives++
		} else {
			negatives++
		}
	}
	if positives == 0 || negatives == 0 {
		return 0.5
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].score < items[j].score })

	// Walking in ascending score order, each positive accrues the count of
	// negatives ranked strictly below it.
	pairs := 0
	negativesSeen := 0
	for _, it := range items {
		if it.label == 1 {
			pairs += negativesSeen
		} else {
			negativesSeen++
		}
	}
	return float64(pairs) / float64(positives*negatives)
}
