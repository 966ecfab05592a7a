package ai

import (
	"chat-engine/errors"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
)

// NetworkOptions drives a training run of the intent network.
type NetworkOptions struct {
	HiddenLayers   []int
	Iterations     int
	ErrorThreshold float64
	LearningRate   float64
	Momentum       float64
	LogPeriod      int
}

func DefaultNetworkOptions() NetworkOptions {
	return NetworkOptions{
		HiddenLayers:   []int{10, 8, 6},
		Iterations:     2000,
		ErrorThreshold: 0.005,
		LearningRate:   0.3,
		Momentum:       0.1,
		LogPeriod:      100,
	}
}

// Sample is one supervised example: an encoded pattern and its intent tag.
type Sample struct {
	Input []float64
	Tag   string
}

// TrainingStats reports how a training run ended.
type TrainingStats struct {
	Iterations int
	Error      float64
}

// Network is a fully connected sigmoid network whose output nodes are intent tags.
// A trained Network is never mutated, so Run is safe for concurrent use.
type Network struct {
	sizes []int
	// weights[l][node][k] connects node k of layer l to node of layer l+1.
	weights [][][]float64
	biases  [][]float64
	tags    []string
}

// TrainNetwork builds a network sized from the samples and trains it with
// per-sample backpropagation until the mean squared error drops below the
// threshold or the iteration budget is spent.
// Without samples it returns an empty network that never scores any tag.
func TrainNetwork(log *slog.Logger, samples []Sample, opts NetworkOptions, rng *rand.Rand) (*Network, TrainingStats, error) {
	if len(samples) == 0 {
		return &Network{}, TrainingStats{}, fmt.Errorf("%w: network has no samples", errors.ErrTraining)
	}

	var tags []string
	tagIndex := make(map[string]int)
	for _, s := range samples {
		if _, ok := tagIndex[s.Tag]; !ok {
			tagIndex[s.Tag] = len(tags)
			tags = append(tags, s.Tag)
		}
	}

	sizes := append([]int{len(samples[0].Input)}, opts.HiddenLayers...)
	sizes = append(sizes, len(tags))
	n := newNetwork(sizes, tags, rng)
	t := newTrainer(n, opts)

	targets := make([][]float64, len(samples))
	for i, s := range samples {
		target := make([]float64, len(tags))
		target[tagIndex[s.Tag]] = 1
		targets[i] = target
	}

	stats := TrainingStats{Error: 1}
	for stats.Iterations < opts.Iterations && stats.Error > opts.ErrorThreshold {
		stats.Iterations++
		sum := 0.0
		for i, s := range samples {
			sum += t.trainPattern(s.Input, targets[i])
		}
		stats.Error = sum / float64(len(samples))

		if opts.LogPeriod > 0 && stats.Iterations%opts.LogPeriod == 0 {
			log.Debug("Training network", "iteration", stats.Iterations, "error", stats.Error)
		}
	}
	return n, stats, nil
}

func newNetwork(sizes []int, tags []string, rng *rand.Rand) *Network {
	n := &Network{sizes: sizes, tags: tags}
	for l := 1; l < len(sizes); l++ {
		layer := make([][]float64, sizes[l])
		bias := make([]float64, sizes[l])
		for node := range layer {
			layer[node] = make([]float64, sizes[l-1])
			for k := range layer[node] {
				layer[node][k] = randomWeight(rng)
			}
			bias[node] = randomWeight(rng)
		}
		n.weights = append(n.weights, layer)
		n.biases = append(n.biases, bias)
	}
	return n
}

func randomWeight(rng *rand.Rand) float64 {
	return rng.Float64()*0.4 - 0.2
}

// Tags lists the output tags in output node order.
func (n *Network) Tags() []string {
	return append([]string(nil), n.tags...)
}

// Run feeds the vector forward and returns the activation of every tag.
// The vector is truncated or zero padded to the input width.
func (n *Network) Run(input []float64) map[string]float64 {
	result := make(map[string]float64, len(n.tags))
	if len(n.tags) == 0 {
		return result
	}
	outputs := n.forward(fitInput(input, n.sizes[0]))
	last := outputs[len(outputs)-1]
	for i, tag := range n.tags {
		result[tag] = last[i]
	}
	return result
}

// Name implements Strategy.
func (n *Network) Name() string {
	return "network"
}

// Classify implements Strategy: the tag with the strictly highest activation wins.
func (n *Network) Classify(_ string, vector []float64) Prediction {
	best := Prediction{Source: n.Name()}
	if len(n.tags) == 0 {
		return best
	}
	outputs := n.forward(fitInput(vector, n.sizes[0]))
	last := outputs[len(outputs)-1]
	for i, tag := range n.tags {
		if last[i] > best.Score {
			best.Tag, best.Score = tag, last[i]
		}
	}
	return best
}

// forward returns the activations of every layer, input included.
func (n *Network) forward(input []float64) [][]float64 {
	outputs := make([][]float64, 0, len(n.sizes))
	outputs = append(outputs, input)
	current := input
	for l, layer := range n.weights {
		next := make([]float64, len(layer))
		for node, weights := range layer {
			sum := n.biases[l][node]
			for k, w := range weights {
				sum += w * current[k]
			}
			next[node] = sigmoid(sum)
		}
		outputs = append(outputs, next)
		current = next
	}
	return outputs
}

func fitInput(input []float64, size int) []float64 {
	if len(input) == size {
		return input
	}
	fitted := make([]float64, size)
	copy(fitted, input)
	return fitted
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// trainer holds the mutable state of a single training run.
type trainer struct {
	net     *Network
	opts    NetworkOptions
	changes [][][]float64
	deltas  [][]float64
	errs    [][]float64
}

func newTrainer(n *Network, opts NetworkOptions) *trainer {
	t := &trainer{net: n, opts: opts}
	for _, layer := range n.weights {
		change := make([][]float64, len(layer))
		for node := range layer {
			change[node] = make([]float64, len(layer[node]))
		}
		t.changes = append(t.changes, change)
		t.deltas = append(t.deltas, make([]float64, len(layer)))
		t.errs = append(t.errs, make([]float64, len(layer)))
	}
	return t
}

// trainPattern runs one forward and backward pass and returns the output MSE.
func (t *trainer) trainPattern(input, target []float64) float64 {
	outputs := t.net.forward(fitInput(input, t.net.sizes[0]))
	t.calculateDeltas(outputs, target)
	t.adjustWeights(outputs)
	return meanSquaredError(t.errs[len(t.errs)-1])
}

func (t *trainer) calculateDeltas(outputs [][]float64, target []float64) {
	last := len(t.net.weights) - 1
	for l := last; l >= 0; l-- {
		activations := outputs[l+1]
		for node, out := range activations {
			var e float64
			if l == last {
				e = target[node] - out
			} else {
				for k, d := range t.deltas[l+1] {
					e += d * t.net.weights[l+1][k][node]
				}
			}
			t.errs[l][node] = e
			t.deltas[l][node] = e * out * (1 - out)
		}
	}
}

func (t *trainer) adjustWeights(outputs [][]float64) {
	for l, layer := range t.net.weights {
		incoming := outputs[l]
		for node, weights := range layer {
			delta := t.deltas[l][node]
			for k := range weights {
				change := t.opts.LearningRate*delta*incoming[k] + t.opts.Momentum*t.changes[l][node][k]
				t.changes[l][node][k] = change
				weights[k] += change
			}
			t.net.biases[l][node] += t.opts.LearningRate * delta
		}
	}
}

func meanSquaredError(errs []float64) float64 {
	if len(errs) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range errs {
		sum += e * e
	}
	return sum / float64(len(errs))
}

type networkJSON struct {
	Sizes        []int         `json:"sizes"`
	Weights      [][][]float64 `json:"weights"`
	Biases       [][]float64   `json:"biases"`
	OutputLookup []string      `json:"outputLookup"`
}

func (n *Network) MarshalJSON() ([]byte, error) {
	return json.Marshal(networkJSON{
		Sizes:        n.sizes,
		Weights:      n.weights,
		Biases:       n.biases,
		OutputLookup: n.tags,
	})
}

// UnmarshalJSON restores a network and rejects any topology whose weights do
// not match its declared sizes.
func (n *Network) UnmarshalJSON(data []byte) error {
	var raw networkJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Sizes) == 0 && len(raw.OutputLookup) == 0 {
		*n = Network{}
		return nil
	}
	if len(raw.Sizes) < 2 || len(raw.Weights) != len(raw.Sizes)-1 || len(raw.Biases) != len(raw.Sizes)-1 {
		return fmt.Errorf("network topology has %d sizes for %d layers", len(raw.Sizes), len(raw.Weights))
	}
	if raw.Sizes[len(raw.Sizes)-1] != len(raw.OutputLookup) {
		return fmt.Errorf("network has %d outputs for %d tags", raw.Sizes[len(raw.Sizes)-1], len(raw.OutputLookup))
	}
	for l := range raw.Weights {
		if len(raw.Weights[l]) != raw.Sizes[l+1] || len(raw.Biases[l]) != raw.Sizes[l+1] {
			return fmt.Errorf("layer %d does not have %d nodes", l+1, raw.Sizes[l+1])
		}
		for node := range raw.Weights[l] {
			if len(raw.Weights[l][node]) != raw.Sizes[l] {
				return fmt.Errorf("node %d of layer %d does not have %d weights", node, l+1, raw.Sizes[l])
			}
		}
	}
	*n = Network{
		sizes:   raw.Sizes,
		weights: raw.Weights,
		biases:  raw.Biases,
		tags:    raw.OutputLookup,
	}
	return nil
}
