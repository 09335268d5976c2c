package predict

import (
	"fmt"
	"time"

	"heartd/internal/model"
	"heartd/pkg/types"
)

// Gateway is the scoring dependency of the request handler.
type Gateway interface {
	Ready() bool
	Score(vector []float64) (label int, probability float64, err error)
	Info() model.Metadata
}

// Service turns validated patient records into predictions. Stateless apart
// from the injected gateway; safe for concurrent use.
type Service struct {
	gw     Gateway
	strict bool
}

// New builds a Service around gw. strict enables range validation on top of
// the always-on presence and type checks.
func New(gw Gateway, strict bool) *Service {
	return &Service{gw: gw, strict: strict}
}

// Ready reports whether the gateway can score.
func (s *Service) Ready() bool { return s.gw.Ready() }

// Health reports readiness for the health endpoint.
func (s *Service) Health() types.HealthResponse {
	resp := types.HealthResponse{
		Status:      "unhealthy",
		ModelLoaded: s.gw.Ready(),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	if resp.ModelLoaded {
		resp.Status = "healthy"
	}
	return resp
}

// ModelInfo returns the metadata captured at load time. When the model is not
// loaded the metadata fields are null rather than an error.
func (s *Service) ModelInfo() types.ModelInfoResponse {
	info := s.gw.Info()
	if !info.Loaded {
		return types.ModelInfoResponse{ModelLoaded: false}
	}
	return types.ModelInfoResponse{
		ModelType:    &info.ModelType,
		Accuracy:     &info.Accuracy,
		Features:     info.Features,
		FeatureCount: len(info.Features),
		ModelLoaded:  true,
	}
}

// Predict scores one patient record.
func (s *Service) Predict(rec types.PatientRecord) (types.PredictionResponse, error) {
	if !s.gw.Ready() {
		return types.PredictionResponse{}, model.ErrUnavailable("model not loaded")
	}
	vec, err := AssembleVector(rec, s.strict)
	if err != nil {
		validationFailuresTotal.WithLabelValues(ValidationField(err)).Inc()
		return types.PredictionResponse{}, err
	}
	label, p, err := s.gw.Score(vec)
	if err != nil {
		return types.PredictionResponse{}, err
	}
	predictionsTotal.WithLabelValues(labelValue(label)).Inc()
	return types.PredictionResponse{
		Prediction:  label,
		Probability: p,
		Confidence:  Confidence(p),
	}, nil
}

// PredictBatch scores an ordered list of records. Fail-fast: the first
// invalid record fails the whole batch and the error names its 1-based
// position, so no partial result is ever returned.
func (s *Service) PredictBatch(recs []types.PatientRecord) (types.BatchPredictionResponse, error) {
	if !s.gw.Ready() {
		return types.BatchPredictionResponse{}, model.ErrUnavailable("model not loaded")
	}
	out := types.BatchPredictionResponse{
		Predictions: make([]types.BatchPrediction, 0, len(recs)),
	}
	for i, rec := range recs {
		vec, err := AssembleVector(rec, s.strict)
		if err != nil {
			ve := err.(validationError)
			validationFailuresTotal.WithLabelValues(ve.field).Inc()
			return types.BatchPredictionResponse{}, ErrValidation(ve.field, fmt.Sprintf("patient %d: %s", i+1, ve.reason))
		}
		label, p, err := s.gw.Score(vec)
		if err != nil {
			return types.BatchPredictionResponse{}, err
		}
		predictionsTotal.WithLabelValues(labelValue(label)).Inc()
		out.Predictions = append(out.Predictions, types.BatchPrediction{
			PatientID:   i + 1,
			Prediction:  label,
			Probability: p,
			Confidence:  Confidence(p),
		})
	}
	out.TotalPatients = len(out.Predictions)
	return out, nil
}
