// Package handlers exposes the prediction pipeline over HTTP.
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Gokulakrishnxn/Stellest-AI/internal/predictor"
	"github.com/Gokulakrishnxn/Stellest-AI/models"
)

// Version is the reported service version.
const Version = "2.0.0"

// Handler wires the predictor and optional store into gin routes.
type Handler struct {
	predictor *predictor.Predictor
	store     models.PredictionStore
}

// New creates a Handler. store may be nil; the history endpoint is only
// registered when it is present.
func New(p *predictor.Predictor, store models.PredictionStore) *Handler {
	return &Handler{predictor: p, store: store}
}

// Register attaches all routes to the router.
func (h *Handler) Register(r *gin.Engine) {
	r.POST("/predict", h.Predict)
	r.GET("/health", h.Health)
	r.GET("/model_info", h.ModelInfo)
	if h.store != nil {
		r.GET("/predictions/recent", h.RecentPredictions)
	}
}

// Predict validates the patient payload and serves the full prediction.
func (h *Handler) Predict(c *gin.Context) {
	var rec models.PatientRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request",
			"details": err.Error(),
		})
		return
	}

	result, err := h.predictor.Predict(c.Request.Context(), rec)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "invalid patient data",
				"details": verr.Error(),
			})
			return
		}
		log.Error().Err(err).Msg("prediction failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "prediction failed",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Health reports service liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "healthy",
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"model_loaded": h.predictor.LinearModelLoaded(),
		"version":      Version,
	})
}

// ModelInfo describes the scoring setup and, when loaded, the linear model.
func (h *Handler) ModelInfo(c *gin.Context) {
	info := gin.H{
		"model_type":          "Rule-based ensemble",
		"models":              []string{"random_forest", "gradient_boosting", "logistic_regression", "svm"},
		"linear_model_loaded": h.predictor.LinearModelLoaded(),
		"version":             Version,
	}
	if m := h.predictor.LinearModel(); m != nil {
		info["linear_model"] = gin.H{
			"version":  m.Version,
			"features": len(m.FeatureOrder),
			"metrics":  m.Metrics,
		}
	}
	c.JSON(http.StatusOK, info)
}

// RecentPredictions returns the newest audit rows.
func (h *Handler) RecentPredictions(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid request",
				"details": "limit must be an integer between 1 and 100",
			})
			return
		}
		limit = n
	}

	results, err := h.store.RecentResults(c.Request.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to load recent predictions")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to load predictions",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":       len(results),
		"predictions": results,
	})
}
