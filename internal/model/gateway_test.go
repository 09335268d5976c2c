package model

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestGatewayLifecycle(t *testing.T) {
	p := writeArtifact(t, validArtifact())
	g := NewGateway(p, zerolog.Nop())
	if g.Ready() {
		t.Fatalf("ready before load")
	}
	if _, _, err := g.Score(make([]float64, 13)); !IsUnavailable(err) {
		t.Fatalf("expected Unavailable before load, got %v", err)
	}
	if err := g.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if !g.Ready() {
		t.Fatalf("not ready after load")
	}
	label, prob, err := g.Score(make([]float64, 13))
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if label != 0 && label != 1 {
		t.Fatalf("label=%d", label)
	}
	if prob < 0 || prob > 1 {
		t.Fatalf("probability=%v out of [0,1]", prob)
	}
}

func TestGatewayLoadFailureIsDegraded(t *testing.T) {
	g := NewGateway(filepath.Join(t.TempDir(), "missing.json"), zerolog.Nop())
	if err := g.Load(); err == nil {
		t.Fatalf("expected load error")
	}
	if g.Ready() {
		t.Fatalf("ready after failed load")
	}
	info := g.Info()
	if info.Loaded || info.ModelType != "" || info.Features != nil {
		t.Fatalf("expected empty metadata, got %+v", info)
	}
	if info.LoadError == "" {
		t.Fatalf("expected load error reason recorded")
	}
	if _, _, err := g.Score(make([]float64, 13)); !IsUnavailable(err) {
		t.Fatalf("expected Unavailable, got %v", err)
	}
}

func TestGatewayScoreInferenceError(t *testing.T) {
	g := NewGateway(writeArtifact(t, validArtifact()), zerolog.Nop())
	if err := g.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	_, _, err := g.Score(make([]float64, 4))
	if !IsInference(err) {
		t.Fatalf("expected Inference error, got %v", err)
	}
	if IsUnavailable(err) {
		t.Fatalf("error classes overlap")
	}
}

func TestGatewayInfo(t *testing.T) {
	g := NewGateway(writeArtifact(t, validArtifact()), zerolog.Nop())
	if err := g.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	info := g.Info()
	if !info.Loaded || info.ModelType != "Logistic Regression" || info.Accuracy != 0.8852 {
		t.Fatalf("unexpected metadata: %+v", info)
	}
	if len(info.Features) != 13 || info.Features[0] != "age" || info.Features[12] != "thal" {
		t.Fatalf("unexpected features: %v", info.Features)
	}
	// returned slice is a copy
	info.Features[0] = "mutated"
	if g.Info().Features[0] != "age" {
		t.Fatalf("Info leaked internal slice")
	}
}
