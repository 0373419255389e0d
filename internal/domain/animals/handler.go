package animals

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"farm-records/internal/middleware"
	"farm-records/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", registerAnimalHandler(svc, log))
		ar.Get("/", listAnimalsHandler(svc, log))
	})
}

// registerAnimalRequest es el cuerpo para registrar un animal.
// Los campos numéricos aceptan número o string (los formularios mandan strings).
type registerAnimalRequest struct {
	TagNumber     string     `json:"tagNumber"`
	Type          string     `json:"type" enums:"SHEEP,LAMB,GOAT,CATTLE,PIG"`
	InitialWeight jsonNumber `json:"initialWeight"`
	BirthDate     string     `json:"birthDate"` // YYYY-MM-DD opcional
	Notes         string     `json:"notes"`
}

type weightEntryResponse struct {
	ID         int64     `json:"id"`
	AnimalID   int64     `json:"animalId"`
	Weight     float64   `json:"weight"`
	RecordedAt time.Time `json:"recordedAt"`
	Notes      string    `json:"notes,omitempty"`
}

type animalResponse struct {
	ID        int64                 `json:"id"`
	TagNumber string                `json:"tagNumber"`
	Type      AnimalType            `json:"type"`
	MotherID  *int64                `json:"motherId,omitempty"`
	BirthDate *time.Time            `json:"birthDate,omitempty"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
	Weights   []weightEntryResponse `json:"weights"`
}

type registerAnimalResponse struct {
	Message string         `json:"message"`
	Animal  animalResponse `json:"animal"`
}

type listAnimalsResponse struct {
	Animals []animalResponse `json:"animals"`
}

// registerAnimalHandler godoc
// @Summary Registrar animal
// @Description Registra un animal nuevo (tag único) junto con su peso inicial. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body registerAnimalRequest true "Datos del animal; birthDate en formato YYYY-MM-DD"
// @Success 201 {object} registerAnimalResponse
// @Failure 400 {object} errorResponse "campos faltantes / tipo o peso inválido"
// @Failure 401 {object} errorResponse
// @Failure 409 {object} errorResponse "tag duplicado"
// @Router /animals [post]
func registerAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req registerAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if strings.TrimSpace(req.TagNumber) == "" || strings.TrimSpace(req.Type) == "" || req.InitialWeight.Empty() {
			writeError(w, http.StatusBadRequest, "Missing required fields: tagNumber, type, initialWeight")
			return
		}

		weight, err := req.InitialWeight.Positive()
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid weight value")
			return
		}

		var bd *time.Time
		if strings.TrimSpace(req.BirthDate) != "" {
			t, err := time.Parse("2006-01-02", strings.TrimSpace(req.BirthDate))
			if err != nil {
				writeError(w, http.StatusBadRequest, "birthDate must be YYYY-MM-DD")
				return
			}
			bd = &t
		}

		created, err := svc.Register(r.Context(), RegisterInput{
			TagNumber:     req.TagNumber,
			Type:          req.Type,
			InitialWeight: weight,
			BirthDate:     bd,
			Notes:         req.Notes,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidType):
				writeError(w, http.StatusBadRequest, "Invalid animal type")
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "Missing required fields: tagNumber, type, initialWeight")
			case errors.Is(err, ErrDuplicateTag):
				writeError(w, http.StatusConflict, "Animal with this tag number already exists")
			default:
				log.Error("register animal failed", map[string]any{"error": err.Error()})
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, registerAnimalResponse{
			Message: "Animal registered successfully",
			Animal:  toAnimalResponse(created),
		})
	}
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Description Lista animales con su último peso. `tagNumber` filtra por substring del tag.
// @Tags animals
// @Produce json
// @Param tagNumber query string false "Substring del tag a buscar"
// @Success 200 {object} listAnimalsResponse
// @Failure 401 {object} errorResponse
// @Router /animals [get]
func listAnimalsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		items, err := svc.List(r.Context(), r.URL.Query().Get("tagNumber"))
		if err != nil {
			log.Error("list animals failed", map[string]any{"error": err.Error()})
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toAnimalResponse(it))
		}

		writeJSON(w, http.StatusOK, listAnimalsResponse{Animals: out})
	}
}

func toAnimalResponse(a AnimalWithWeights) animalResponse {
	weights := make([]weightEntryResponse, 0, len(a.Weights))
	for _, wr := range a.Weights {
		weights = append(weights, weightEntryResponse{
			ID:         wr.ID,
			AnimalID:   wr.AnimalID,
			Weight:     wr.Weight,
			RecordedAt: wr.RecordedAt,
			Notes:      wr.Notes,
		})
	}

	return animalResponse{
		ID:        a.ID,
		TagNumber: a.TagNumber,
		Type:      a.Type,
		MotherID:  a.MotherID,
		BirthDate: a.BirthDate,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		Weights:   weights,
	}
}

// jsonNumber acepta un valor numérico que puede venir como número o como
// string JSON. Duplicado a propósito en weights/feeds, igual que writeJSON:
// todavía no amerita un paquete compartido.
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

// Positive parsea el valor y exige un decimal finito mayor que cero.
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
