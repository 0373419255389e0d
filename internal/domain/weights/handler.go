package weights

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"farm-records/internal/domain/animals"
	"farm-records/internal/middleware"
	"farm-records/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, animalsSvc *animals.Service, log logger.Logger) {
	r.Route("/weights", func(wr chi.Router) {
		wr.Post("/", recordWeightHandler(svc, animalsSvc, log))
		wr.Get("/", listWeightsHandler(svc, log))
	})
}

// recordWeightRequest es el cuerpo para registrar un peso.
type recordWeightRequest struct {
	TagNumber string     `json:"tagNumber"`
	Weight    jsonNumber `json:"weight"`
	Notes     string     `json:"notes"`
}

type animalRefResponse struct {
	TagNumber string `json:"tagNumber"`
	Type      string `json:"type"`
}

type weightRecordResponse struct {
	ID         int64             `json:"id"`
	AnimalID   int64             `json:"animalId"`
	Weight     float64           `json:"weight"`
	RecordedAt time.Time         `json:"recordedAt"`
	Notes      string            `json:"notes,omitempty"`
	Animal     animalRefResponse `json:"animal"`
}

type recordWeightResponse struct {
	Message      string               `json:"message"`
	WeightRecord weightRecordResponse `json:"weightRecord"`
}

type listWeightsResponse struct {
	Weights []weightRecordResponse `json:"weights"`
}

// recordWeightHandler godoc
// @Summary Registrar peso
// @Description Agrega una observación de peso al animal identificado por tagNumber. recordedAt lo asigna el sistema al insertar.
// @Tags weights
// @Accept json
// @Produce json
// @Param payload body recordWeightRequest true "Datos del registro de peso"
// @Success 201 {object} recordWeightResponse
// @Failure 400 {object} errorResponse "campos faltantes / peso inválido"
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse "animal no encontrado"
// @Router /weights [post]
func recordWeightHandler(svc *Service, animalsSvc *animals.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req recordWeightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if strings.TrimSpace(req.TagNumber) == "" || req.Weight.Empty() {
			writeError(w, http.StatusBadRequest, "Missing required fields: tagNumber, weight")
			return
		}

		weight, err := req.Weight.Positive()
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid weight value")
			return
		}

		a, err := animalsSvc.GetByTag(r.Context(), req.TagNumber)
		if err != nil {
			if errors.Is(err, animals.ErrNotFound) || errors.Is(err, animals.ErrInvalidInput) {
				writeError(w, http.StatusNotFound, "Animal not found with this tag number")
				return
			}
			log.Error("lookup animal by tag failed", map[string]any{"error": err.Error()})
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		rec, err := svc.Record(r.Context(), a.ID, weight, req.Notes)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, "Invalid weight value")
				return
			}
			log.Error("record weight failed", map[string]any{"error": err.Error()})
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, recordWeightResponse{
			Message: "Weight recorded successfully",
			WeightRecord: toWeightResponse(WeightWithAnimal{
				WeightRecord: rec,
				TagNumber:    a.TagNumber,
				AnimalType:   string(a.Type),
			}),
		})
	}
}

// listWeightsHandler godoc
// @Summary Listar pesos
// @Description Lista registros de peso: por tagNumber (exacto), por animalId, o los últimos 50 sin filtro. Siempre ordenados por recordedAt desc.
// @Tags weights
// @Produce json
// @Param tagNumber query string false "Tag exacto del animal"
// @Param animalId query integer false "Id numérico del animal"
// @Success 200 {object} listWeightsResponse
// @Failure 400 {object} errorResponse "animalId no numérico"
// @Failure 401 {object} errorResponse
// @Router /weights [get]
func listWeightsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		// tagNumber gana sobre animalId, en ese orden.
		filter := ListFilter{TagNumber: r.URL.Query().Get("tagNumber")}
		if strings.TrimSpace(filter.TagNumber) == "" {
			if raw := strings.TrimSpace(r.URL.Query().Get("animalId")); raw != "" {
				id, err := strconv.ParseInt(raw, 10, 64)
				if err != nil || id <= 0 {
					writeError(w, http.StatusBadRequest, "Invalid animalId")
					return
				}
				filter.AnimalID = &id
			}
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			log.Error("list weights failed", map[string]any{"error": err.Error()})
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		out := make([]weightRecordResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toWeightResponse(it))
		}

		writeJSON(w, http.StatusOK, listWeightsResponse{Weights: out})
	}
}

func toWeightResponse(rec WeightWithAnimal) weightRecordResponse {
	return weightRecordResponse{
		ID:         rec.ID,
		AnimalID:   rec.AnimalID,
		Weight:     rec.Weight,
		RecordedAt: rec.RecordedAt,
		Notes:      rec.Notes,
		Animal: animalRefResponse{
			TagNumber: rec.TagNumber,
			Type:      rec.AnimalType,
		},
	}
}

// jsonNumber duplicado a propósito (ver animals/handler.go).
type jsonNumber string

func (n *jsonNumber) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = jsonNumber(s)
		return nil
	}
	*n = jsonNumber(b)
	return nil
}

func (n jsonNumber) Empty() bool {
	return strings.TrimSpace(string(n)) == ""
}

func (n jsonNumber) Positive() (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(n)), 64)
	if err != nil {
		return 0, err
	}
	if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, errors.New("must be a finite value greater than zero")
	}
	return v, nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
