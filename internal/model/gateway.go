package model

import (
	"sync"

	"github.com/rs/zerolog"
)

// Metadata is a read-only snapshot of the loaded artifact's self-description.
type Metadata struct {
	ModelType string
	Accuracy  float64
	Features  []string
	Loaded    bool
	LoadError string
}

// Gateway owns the loaded classifier for the process. The artifact is
// published once by Load before request handling begins and never mutated
// afterward; readers observe either no artifact or a fully loaded one.
type Gateway struct {
	mu      sync.RWMutex
	path    string
	art     *Artifact
	loadErr string
	log     zerolog.Logger
}

// NewGateway creates a gateway for the artifact at path. Call Load before
// serving traffic.
func NewGateway(path string, log zerolog.Logger) *Gateway {
	return &Gateway{path: path, log: log}
}

// Load attempts to read the configured artifact. On failure it records the
// reason and returns the error; the gateway stays usable in a degraded state
// so health and model-info keep answering.
func (g *Gateway) Load() error {
	art, err := LoadArtifact(g.path)
	g.mu.Lock()
	defer g.mu.Unlock()
	if err != nil {
		g.art = nil
		g.loadErr = err.Error()
		g.log.Warn().Str("path", g.path).Err(err).Msg("model load failed, serving degraded")
		return err
	}
	g.art = art
	g.loadErr = ""
	g.log.Info().Str("path", g.path).Str("model_type", art.ModelType).Float64("accuracy", art.Accuracy).Int("features", len(art.Features)).Msg("model loaded")
	return nil
}

// Ready reports whether an artifact is loaded.
func (g *Gateway) Ready() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.art != nil
}

// Score runs one feature vector through the loaded model and returns the
// class decision and positive-class probability. Returns an Unavailable error
// when no artifact is loaded and an Inference error when the model rejects
// the vector.
func (g *Gateway) Score(vector []float64) (int, float64, error) {
	g.mu.RLock()
	art := g.art
	g.mu.RUnlock()
	if art == nil {
		return 0, 0, ErrUnavailable("model not loaded")
	}
	label, p, err := art.Predict(vector)
	if err != nil {
		return 0, 0, ErrInference(err.Error())
	}
	return label, p, nil
}

// Info returns the metadata captured at load time. Safe to call when not
// ready; metadata is zero-valued then and LoadError carries the reason.
func (g *Gateway) Info() Metadata {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.art == nil {
		return Metadata{LoadError: g.loadErr}
	}
	return Metadata{
		ModelType: g.art.ModelType,
		Accuracy:  g.art.Accuracy,
		Features:  append([]string(nil), g.art.Features...),
		Loaded:    true,
	}
}
