package feeds

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
	r.Route("/feeds", func(fr chi.Router) {
		fr.Post("/", recordFeedHandler(svc, animalsSvc, log))
		fr.Get("/", listFeedsHandler(svc, log))
	})
}

type recordFeedRequest struct {
	TagNumber string     `json:"tagNumber"`
	FeedType  string     `json:"feedType"`
	Amount    jsonNumber `json:"amount"`
	FeedDate  string     `json:"feedDate"` // YYYY-MM-DD opcional
}

type animalRefResponse struct {
	TagNumber string `json:"tagNumber"`
	Type      string `json:"type"`
}

type feedRecordResponse struct {
	ID       int64             `json:"id"`
	AnimalID int64             `json:"animalId"`
	FeedType string            `json:"feedType"`
	Amount   float64           `json:"amount"`
	FeedDate time.Time         `json:"feedDate"`
	Animal   animalRefResponse `json:"animal"`
}

type recordFeedResponse struct {
	Message    string             `json:"message"`
	FeedRecord feedRecordResponse `json:"feedRecord"`
}

type listFeedsResponse struct {
	Feeds []feedRecordResponse `json:"feeds"`
}

// recordFeedHandler godoc
// @Summary Registrar ración
// @Description Registra una ración de alimento para el animal identificado por tagNumber. feedDate opcional (default: hoy).
// @Tags feeds
// @Accept json
// @Produce json
// @Param payload body recordFeedRequest true "Datos de la ración; feedDate en formato YYYY-MM-DD"
// @Success 201 {object} recordFeedResponse
// @Failure 400 {object} errorResponse "campos faltantes / cantidad inválida"
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse "animal no encontrado"
// @Router /feeds [post]
func recordFeedHandler(svc *Service, animalsSvc *animals.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req recordFeedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if strings.TrimSpace(req.TagNumber) == "" || strings.TrimSpace(req.FeedType) == "" || req.Amount.Empty() {
			writeError(w, http.StatusBadRequest, "Missing required fields: tagNumber, feedType, amount")
			return
		}

		amount, err := req.Amount.Positive()
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid feed amount")
			return
		}

		var fd *time.Time
		if strings.TrimSpace(req.FeedDate) != "" {
			t, err := time.Parse("2006-01-02", strings.TrimSpace(req.FeedDate))
			if err != nil {
				writeError(w, http.StatusBadRequest, "feedDate must be YYYY-MM-DD")
				return
			}
			fd = &t
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

		rec, err := svc.Record(r.Context(), a.ID, req.FeedType, amount, fd)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, "Invalid feed amount")
				return
			}
			log.Error("record feed failed", map[string]any{"error": err.Error()})
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, recordFeedResponse{
			Message: "Feed recorded successfully",
			FeedRecord: toFeedResponse(FeedWithAnimal{
				FeedRecord: rec,
				TagNumber:  a.TagNumber,
				AnimalType: string(a.Type),
			}),
		})
	}
}

// listFeedsHandler godoc
// @Summary Listar raciones
// @Description Lista raciones: por tagNumber (exacto), por animalId, o las últimas 50 sin filtro.
// @Tags feeds
// @Produce json
// @Param tagNumber query string false "Tag exacto del animal"
// @Param animalId query integer false "Id numérico del animal"
// @Success 200 {object} listFeedsResponse
// @Failure 400 {object} errorResponse "animalId no numérico"
// @Failure 401 {object} errorResponse
// @Router /feeds [get]
func listFeedsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

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
			log.Error("list feeds failed", map[string]any{"error": err.Error()})
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		out := make([]feedRecordResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toFeedResponse(it))
		}

		writeJSON(w, http.StatusOK, listFeedsResponse{Feeds: out})
	}
}

func toFeedResponse(rec FeedWithAnimal) feedRecordResponse {
	return feedRecordResponse{
		ID:       rec.ID,
		AnimalID: rec.AnimalID,
		FeedType: rec.FeedType,
		Amount:   rec.Amount,
		FeedDate: rec.FeedDate,
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
