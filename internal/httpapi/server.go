package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"heartd/internal/model"
	"heartd/internal/predict"
	"heartd/pkg/types"
)

// Version reported by GET /.
const Version = "1.0.0"

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Health() types.HealthResponse
	ModelInfo() types.ModelInfoResponse
	Predict(rec types.PatientRecord) (types.PredictionResponse, error)
	PredictBatch(recs []types.PatientRecord) (types.BatchPredictionResponse, error)
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	r.Use(MetricsMiddleware)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}

	// root godoc
	// @Summary     API description
	// @Produce     json
	// @Success     200 {object} types.RootResponse
	// @Router      / [get]
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, types.RootResponse{
			Message: "Heart Disease Prediction API",
			Version: Version,
			Endpoints: map[string]string{
				"/predict":       "POST - Make heart disease prediction",
				"/predict-batch": "POST - Make predictions for multiple patients",
				"/model-info":    "GET - Get model information",
				"/health":        "GET - Health check",
			},
		})
	})

	// health godoc
	// @Summary     Health check
	// @Produce     json
	// @Success     200 {object} types.HealthResponse
	// @Router      /health [get]
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.Health())
	})

	// model-info godoc
	// @Summary     Static model metadata captured at load time
	// @Produce     json
	// @Success     200 {object} types.ModelInfoResponse
	// @Router      /model-info [get]
	r.Get("/model-info", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.ModelInfo())
	})

	// predict godoc
	// @Summary     Score one patient record
	// @Accept      json
	// @Produce     json
	// @Param       record body types.PatientRecord true "patient features"
	// @Success     200 {object} types.PredictionResponse
	// @Failure     400 {object} types.ErrorResponse
	// @Failure     503 {object} types.ErrorResponse
	// @Router      /predict [post]
	r.Post("/predict", func(w http.ResponseWriter, r *http.Request) {
		var rec types.PatientRecord
		if !decodeJSON(w, r, &rec) {
			return
		}
		start := time.Now()
		resp, err := svc.Predict(rec)
		if err != nil {
			status := writeServiceError(w, r, err)
			logRequestEnd(r, "predict", status, start, err)
			return
		}
		writeJSON(w, resp)
		logRequestEnd(r, "predict", http.StatusOK, start, nil)
	})

	// predict-batch godoc
	// @Summary     Score an ordered list of patient records
	// @Accept      json
	// @Produce     json
	// @Param       records body []types.PatientRecord true "patient features, one per patient"
	// @Success     200 {object} types.BatchPredictionResponse
	// @Failure     400 {object} types.ErrorResponse
	// @Failure     503 {object} types.ErrorResponse
	// @Router      /predict-batch [post]
	r.Post("/predict-batch", func(w http.ResponseWriter, r *http.Request) {
		var recs []types.PatientRecord
		if !decodeJSON(w, r, &recs) {
			return
		}
		start := time.Now()
		resp, err := svc.PredictBatch(recs)
		if err != nil {
			status := writeServiceError(w, r, err)
			logRequestEnd(r, "predict-batch", status, start, err)
			return
		}
		writeJSON(w, resp)
		logRequestEnd(r, "predict-batch", http.StatusOK, start, nil)
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// decodeJSON enforces the JSON content type and body size limit, then decodes
// into dst. On failure it writes the error response and returns false. A
// wrong-typed field is caller-attributable input and keeps its field name;
// everything else stays generic.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			// all record fields are numeric
			writeJSONError(w, http.StatusBadRequest, predict.ErrValidation(typeErr.Field, "must be a number").Error())
			return false
		}
		// MaxBytesReader failures land here too; keep the message generic
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// writeServiceError maps service error classes to status codes. Validation is
// caller-attributable and returned verbatim; Unavailable and Inference are
// operator-attributable and kept generic.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) int {
	switch {
	case predict.IsValidation(err):
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return http.StatusBadRequest
	case model.IsUnavailable(err):
		incrementUnavailable(routePatternOrPath(r))
		writeJSONError(w, http.StatusServiceUnavailable, "model not loaded")
		return http.StatusServiceUnavailable
	case model.IsInference(err):
		writeJSONError(w, http.StatusInternalServerError, "prediction failed")
		return http.StatusInternalServerError
	}
	if he, ok := err.(HTTPError); ok {
		writeJSONError(w, he.StatusCode(), he.Error())
		return he.StatusCode()
	}
	writeJSONError(w, http.StatusInternalServerError, "internal error")
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}

func logRequestEnd(r *http.Request, op string, status int, start time.Time, err error) {
	if zlog == nil || requestLogLevel(r) < LevelInfo {
		return
	}
	z := zlog.Info().Str("op", op).Int("status", status).Dur("dur", time.Since(start))
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		z = z.Str("request_id", rid)
	}
	if err != nil {
		z = z.Err(err)
	}
	z.Msg("request end")
}
