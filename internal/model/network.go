package model

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Adam hyperparameters.
const (
	adamBeta1   = 0.9
	adamBeta2   = 0.999
	adamEpsilon = 1e-8
)

// probEpsilon clips predicted probabilities away from 0 and 1 before the
// log-loss.
const probEpsilon = 1e-7

// layerConfig describes one dense layer.
type layerConfig struct {
	In, Out int
	Sigmoid bool    // output layer activation; ReLU otherwise
	Dropout float64 // applied to this layer's output during training
}

// architecture is the fixed network shape:
// input -> 64 ReLU (dropout .3) -> 32 ReLU (dropout .2) -> 16 ReLU -> 1 sigmoid.
func architecture(inputSize int) []layerConfig {
	return []layerConfig{
		{In: inputSize, Out: 64, Dropout: 0.3},
		{In: 64, Out: 32, Dropout: 0.2},
		{In: 32, Out: 16},
		{In: 16, Out: 1, Sigmoid: true},
	}
}

// denseLayer holds one layer's weights, biases and Adam moments.
type denseLayer struct {
	cfg layerConfig

	w *mat.Dense // Out x In
	b []float64

	mw, vw *mat.Dense
	mb, vb []float64
}

func newDenseLayer(cfg layerConfig, rng *rand.Rand) *denseLayer {
	// He initialization suits the ReLU layers; the sigmoid output layer is
	// small enough that it is harmless there too.
	scale := math.Sqrt(2.0 / float64(cfg.In))
	data := make([]float64, cfg.In*cfg.Out)
	for i := range data {
		data[i] = rng.NormFloat64() * scale
	}
	return &denseLayer{
		cfg: cfg,
		w:   mat.NewDense(cfg.Out, cfg.In, data),
		b:   make([]float64, cfg.Out),
		mw:  mat.NewDense(cfg.Out, cfg.In, nil),
		vw:  mat.NewDense(cfg.Out, cfg.In, nil),
		mb:  make([]float64, cfg.Out),
		vb:  make([]float64, cfg.Out),
	}
}

func (l *denseLayer) clone() *denseLayer {
	c := &denseLayer{
		cfg: l.cfg,
		w:   mat.DenseCopyOf(l.w),
		b:   append([]float64(nil), l.b...),
		mw:  mat.DenseCopyOf(l.mw),
		vw:  mat.DenseCopyOf(l.vw),
		mb:  append([]float64(nil), l.mb...),
		vb:  append([]float64(nil), l.vb...),
	}
	return c
}

// layerCache stores per-sample forward state needed for backprop.
type layerCache struct {
	input []float64
	z     []float64
	mask  []float64 // inverted-dropout scale per unit, nil in eval mode
}

// forward runs one sample through the layer. In train mode dropout masks are
// sampled and applied with inverted scaling.
func (l *denseLayer) forward(input []float64, train bool, rng *rand.Rand) ([]float64, layerCache) {
	z := make([]float64, l.cfg.Out)
	for i := 0; i < l.cfg.Out; i++ {
		sum := l.b[i]
		row := l.w.RawRowView(i)
		for j, x := range input {
			sum += row[j] * x
		}
		z[i] = sum
	}

	out := make([]float64, l.cfg.Out)
	if l.cfg.Sigmoid {
		for i, v := range z {
			out[i] = sigmoid(v)
		}
	} else {
		for i, v := range z {
			if v > 0 {
				out[i] = v
			}
		}
	}

	cache := layerCache{input: input, z: z}
	if train && l.cfg.Dropout > 0 {
		keep := 1.0 - l.cfg.Dropout
		mask := make([]float64, l.cfg.Out)
		for i := range mask {
			if rng.Float64() < keep {
				mask[i] = 1.0 / keep
			}
		}
		for i := range out {
			out[i] *= mask[i]
		}
		cache.mask = mask
	}
	return out, cache
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// network is the full dense stack.
type network struct {
	layers []*denseLayer
	step   int // Adam timestep
}

func newNetwork(inputSize int, rng *rand.Rand) *network {
	cfgs := architecture(inputSize)
	layers := make([]*denseLayer, len(cfgs))
	for i, cfg := range cfgs {
		layers[i] = newDenseLayer(cfg, rng)
	}
	return &network{layers: layers}
}

func (n *network) clone() *network {
	layers := make([]*denseLayer, len(n.layers))
	for i, l := range n.layers {
		layers[i] = l.clone()
	}
	return &network{layers: layers, step: n.step}
}

// predictOne runs a normalized sample through the network in eval mode and
// returns the success probability.
func (n *network) predictOne(input []float64) float64 {
	out := input
	for _, l := range n.layers {
		out, _ = l.forward(out, false, nil)
	}
	return out[0]
}

// gradients accumulates one minibatch worth of parameter gradients.
type gradients struct {
	dw []*mat.Dense
	db [][]float64
}

func newGradients(n *network) *gradients {
	g := &gradients{
		dw: make([]*mat.Dense, len(n.layers)),
		db: make([][]float64, len(n.layers)),
	}
	for i, l := range n.layers {
		g.dw[i] = mat.NewDense(l.cfg.Out, l.cfg.In, nil)
		g.db[i] = make([]float64, l.cfg.Out)
	}
	return g
}

// trainBatch runs forward/backward over one minibatch and applies a single
// Adam update. Returns the mean weighted loss over the batch.
func (n *network) trainBatch(batch [][]float64, labels []float64, sampleWeights []float64, lr float64, rng *rand.Rand) float64 {
	grads := newGradients(n)
	totalLoss := 0.0

	for s, input := range batch {
		caches := make([]layerCache, len(n.layers))
		out := input
		for li, l := range n.layers {
			out, caches[li] = l.forward(out, true, rng)
		}

		p := clampProb(out[0])
		y := labels[s]
		w := sampleWeights[s]
		totalLoss += -w * (y*math.Log(p) + (1-y)*math.Log(1-p))

		// Sigmoid + cross-entropy collapses to a linear output delta; the
		// class weight scales the whole gradient.
		delta := []float64{(p - y) * w}

		for li := len(n.layers) - 1; li >= 0; li-- {
			l := n.layers[li]
			cache := caches[li]

			for i, d := range delta {
				grads.db[li][i] += d
				row := grads.dw[li].RawRowView(i)
				for j, x := range cache.input {
					row[j] += d * x
				}
			}

			if li == 0 {
				break
			}

			prev := n.layers[li-1]
			prevCache := caches[li-1]
			next := make([]float64, l.cfg.In)
			for j := 0; j < l.cfg.In; j++ {
				sum := 0.0
				for i, d := range delta {
					sum += l.w.At(i, j) * d
				}
				if prevCache.mask != nil {
					sum *= prevCache.mask[j]
				}
				if prevCache.z[j] <= 0 && !prev.cfg.Sigmoid {
					sum = 0
				}
				next[j] = sum
			}
			delta = next
		}
	}

	n.applyAdam(grads, len(batch), lr)
	return totalLoss / float64(len(batch))
}

// applyAdam performs one Adam step with batch-averaged gradients.
func (n *network) applyAdam(grads *gradients, batchSize int, lr float64) {
	n.step++
	t := float64(n.step)
	invBatch := 1.0 / float64(batchSize)
	bc1 := 1.0 - math.Pow(adamBeta1, t)
	bc2 := 1.0 - math.Pow(adamBeta2, t)

	for li, l := range n.layers {
		for i := 0; i < l.cfg.Out; i++ {
			wRow := l.w.RawRowView(i)
			gRow := grads.dw[li].RawRowView(i)
			mRow := l.mw.RawRowView(i)
			vRow := l.vw.RawRowView(i)
			for j := range wRow {
				g := gRow[j] * invBatch
				mRow[j] = adamBeta1*mRow[j] + (1-adamBeta1)*g
				vRow[j] = adamBeta2*vRow[j] + (1-adamBeta2)*g*g
				wRow[j] -= lr * (mRow[j] / bc1) / (math.Sqrt(vRow[j]/bc2) + adamEpsilon)
			}

			g := grads.db[li][i] * invBatch
			l.mb[i] = adamBeta1*l.mb[i] + (1-adamBeta1)*g
			l.vb[i] = adamBeta2*l.vb[i] + (1-adamBeta2)*g*g
			l.b[i] -= lr * (l.mb[i] / bc1) / (math.Sqrt(l.vb[i]/bc2) + adamEpsilon)
		}
	}
}

// meanLoss computes unweighted cross-entropy in eval mode.
func (n *network) meanLoss(samples [][]float64, labels []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	total := 0.0
	for i, s := range samples {
		p := clampProb(n.predictOne(s))
		y := labels[i]
		total += -(y*math.Log(p) + (1-y)*math.Log(1-p))
	}
	return total / float64(len(samples))
}

func clampProb(p float64) float64 {
	if p < probEpsilon {
		return probEpsilon
	}
	if p > 1-probEpsilon {
		return 1 - probEpsilon
	}
	return p
}
