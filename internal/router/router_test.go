package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"farm-records/internal/platform/logger"
	"farm-records/internal/router"
)

type animalPayload struct {
	ID        int64  `json:"id"`
	TagNumber string `json:"tagNumber"`
	Type      string `json:"type"`
	Weights   []struct {
		ID         int64   `json:"id"`
		AnimalID   int64   `json:"animalId"`
		Weight     float64 `json:"weight"`
		RecordedAt string  `json:"recordedAt"`
		Notes      string  `json:"notes"`
	} `json:"weights"`
}

type weightPayload struct {
	ID       int64   `json:"id"`
	AnimalID int64   `json:"animalId"`
	Weight   float64 `json:"weight"`
	Notes    string  `json:"notes"`
	Animal   struct {
		TagNumber string `json:"tagNumber"`
		Type      string `json:"type"`
	} `json:"animal"`
}

func TestHTTP_RegisterAndListAnimals(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Log: logger.Nop()}))
	defer ts.Close()

	userID := "farmer-1"

	// Registro válido: 201 con el peso inicial incluido
	created := registerAnimal(t, ts.URL, userID, map[string]any{
		"tagNumber":     "S-001",
		"type":          "SHEEP",
		"initialWeight": "42.5",
		"birthDate":     "2025-01-10",
	})
	if created.TagNumber != "S-001" || created.Type != "SHEEP" {
		t.Fatalf("unexpected animal: %+v", created)
	}
	if len(created.Weights) != 1 || created.Weights[0].Weight != 42.5 {
		t.Fatalf("expected exactly one initial weight 42.5, got %+v", created.Weights)
	}
	if created.Weights[0].Notes != "Initial weight for S-001" {
		t.Fatalf("expected default notes, got %q", created.Weights[0].Notes)
	}

	// El listado lo incluye con exactamente un registro de peso
	{
		st, body := doReq(t, ts.URL, "GET", "/animals", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list animals, got %d body=%s", st, string(body))
		}
		var resp struct {
			Animals []animalPayload `json:"animals"`
		}
		mustUnmarshal(t, body, &resp)
		if len(resp.Animals) != 1 {
			t.Fatalf("expected 1 animal, got %d", len(resp.Animals))
		}
		if len(resp.Animals[0].Weights) != 1 || resp.Animals[0].Weights[0].Weight != 42.5 {
			t.Fatalf("expected single weight 42.5, got %+v", resp.Animals[0].Weights)
		}
	}

	// Tag duplicado => 409
	{
		st, body := doReq(t, ts.URL, "POST", "/animals", userID, map[string]any{
			"tagNumber":     "S-001",
			"type":          "GOAT",
			"initialWeight": "30",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 duplicate tag, got %d body=%s", st, string(body))
		}
		assertError(t, body, "Animal with this tag number already exists")
	}

	// Tipo fuera del enum => 400 y no crea filas
	{
		st, _ := doReq(t, ts.URL, "POST", "/animals", userID, map[string]any{
			"tagNumber":     "S-002",
			"type":          "HORSE",
			"initialWeight": "300",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 invalid type, got %d", st)
		}
		assertAnimalCount(t, ts.URL, userID, 1)
	}

	// Campos faltantes => 400 y no crea filas
	for _, payload := range []map[string]any{
		{"type": "SHEEP", "initialWeight": "10"},
		{"tagNumber": "S-003", "initialWeight": "10"},
		{"tagNumber": "S-003", "type": "SHEEP"},
	} {
		st, body := doReq(t, ts.URL, "POST", "/animals", userID, payload)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 missing fields for %v, got %d body=%s", payload, st, string(body))
		}
		assertError(t, body, "Missing required fields: tagNumber, type, initialWeight")
	}
	assertAnimalCount(t, ts.URL, userID, 1)

	// Peso inicial no numérico => 400 (decisión: rechazar antes del store)
	{
		st, body := doReq(t, ts.URL, "POST", "/animals", userID, map[string]any{
			"tagNumber":     "S-004",
			"type":          "SHEEP",
			"initialWeight": "abc",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 invalid weight, got %d body=%s", st, string(body))
		}
		assertError(t, body, "Invalid weight value")
	}
}

func TestHTTP_ListAnimals_SubstringFilter(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Log: logger.Nop()}))
	defer ts.Close()

	userID := "farmer-1"

	registerAnimal(t, ts.URL, userID, map[string]any{"tagNumber": "S-101", "type": "SHEEP", "initialWeight": "40"})
	registerAnimal(t, ts.URL, userID, map[string]any{"tagNumber": "S-102", "type": "LAMB", "initialWeight": "12"})
	registerAnimal(t, ts.URL, userID, map[string]any{"tagNumber": "G-201", "type": "GOAT", "initialWeight": "35"})

	// Un peso extra para S-101: el listado debe mostrar solo el más reciente
	recordWeight(t, ts.URL, userID, "S-101", "44.8", "")

	st, body := doReq(t, ts.URL, "GET", "/animals?tagNumber=S-1", userID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}

	var resp struct {
		Animals []animalPayload `json:"animals"`
	}
	mustUnmarshal(t, body, &resp)

	if len(resp.Animals) != 2 {
		t.Fatalf("expected 2 matches for S-1, got %d", len(resp.Animals))
	}
	for _, a := range resp.Animals {
		if len(a.Weights) != 1 {
			t.Fatalf("expected exactly one (latest) weight for %s, got %d", a.TagNumber, len(a.Weights))
		}
		if a.TagNumber == "S-101" && a.Weights[0].Weight != 44.8 {
			t.Fatalf("expected latest weight 44.8 for S-101, got %v", a.Weights[0].Weight)
		}
	}
}

func TestHTTP_RecordAndListWeights(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Log: logger.Nop()}))
	defer ts.Close()

	userID := "farmer-1"

	created := registerAnimal(t, ts.URL, userID, map[string]any{
		"tagNumber":     "C-001",
		"type":          "CATTLE",
		"initialWeight": "250",
	})

	// Tag inexistente => 404 y no crea filas
	{
		st, body := doReq(t, ts.URL, "POST", "/weights", userID, map[string]any{
			"tagNumber": "NOPE",
			"weight":    "52.3",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404, got %d body=%s", st, string(body))
		}
		assertError(t, body, "Animal not found with this tag number")
	}

	// Campos faltantes => 400
	{
		st, body := doReq(t, ts.URL, "POST", "/weights", userID, map[string]any{"tagNumber": "C-001"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", st, string(body))
		}
		assertError(t, body, "Missing required fields: tagNumber, weight")
	}

	// Registro válido: 201 con proyección del animal
	rec := recordWeight(t, ts.URL, userID, "C-001", "252.4", "post-feeding")
	if rec.AnimalID != created.ID || rec.Animal.TagNumber != "C-001" || rec.Animal.Type != "CATTLE" {
		t.Fatalf("unexpected weight record: %+v", rec)
	}

	// Filtrado por tag: el más reciente primero
	{
		st, body := doReq(t, ts.URL, "GET", "/weights?tagNumber=C-001", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", st, string(body))
		}
		var resp struct {
			Weights []weightPayload `json:"weights"`
		}
		mustUnmarshal(t, body, &resp)
		if len(resp.Weights) != 2 {
			t.Fatalf("expected 2 records, got %d", len(resp.Weights))
		}
		if resp.Weights[0].Weight != 252.4 {
			t.Fatalf("expected most recent weight first, got %v", resp.Weights[0].Weight)
		}
	}

	// Filtrado por animalId equivale al filtrado por tag
	{
		st, body := doReq(t, ts.URL, "GET", fmt.Sprintf("/weights?animalId=%d", created.ID), userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", st, string(body))
		}
		var resp struct {
			Weights []weightPayload `json:"weights"`
		}
		mustUnmarshal(t, body, &resp)
		if len(resp.Weights) != 2 {
			t.Fatalf("expected 2 records by animalId, got %d", len(resp.Weights))
		}
	}

	// animalId no numérico => 400
	{
		st, _ := doReq(t, ts.URL, "GET", "/weights?animalId=abc", userID, nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for bad animalId, got %d", st)
		}
	}
}

func TestHTTP_ListWeights_CapsAtFifty(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Log: logger.Nop()}))
	defer ts.Close()

	userID := "farmer-1"

	registerAnimal(t, ts.URL, userID, map[string]any{
		"tagNumber":     "P-001",
		"type":          "PIG",
		"initialWeight": "80",
	})

	for i := 0; i < 54; i++ {
		recordWeight(t, ts.URL, userID, "P-001", fmt.Sprintf("%d", 81+i), "")
	}

	// Sin filtro: exactamente 50, ordenados desc
	st, body := doReq(t, ts.URL, "GET", "/weights", userID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}

	var resp struct {
		Weights []weightPayload `json:"weights"`
	}
	mustUnmarshal(t, body, &resp)

	if len(resp.Weights) != 50 {
		t.Fatalf("expected exactly 50 records, got %d", len(resp.Weights))
	}
	for i := 1; i < len(resp.Weights); i++ {
		if resp.Weights[i].ID > resp.Weights[i-1].ID {
			t.Fatalf("records not in descending insertion order at %d", i)
		}
	}
	if resp.Weights[0].Weight != 134 {
		t.Fatalf("expected last recorded weight first, got %v", resp.Weights[0].Weight)
	}

	// Con filtro por tag no aplica el tope
	st, body = doReq(t, ts.URL, "GET", "/weights?tagNumber=P-001", userID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	mustUnmarshal(t, body, &resp)
	if len(resp.Weights) != 55 {
		t.Fatalf("expected 55 records for the tag, got %d", len(resp.Weights))
	}
}

func TestHTTP_RecordAndListFeeds(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Log: logger.Nop()}))
	defer ts.Close()

	userID := "farmer-1"

	registerAnimal(t, ts.URL, userID, map[string]any{
		"tagNumber":     "G-001",
		"type":          "GOAT",
		"initialWeight": "35",
	})

	// Tag inexistente => 404
	{
		st, _ := doReq(t, ts.URL, "POST", "/feeds", userID, map[string]any{
			"tagNumber": "NOPE",
			"feedType":  "hay",
			"amount":    "2.5",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", st)
		}
	}

	// Campos faltantes => 400
	{
		st, body := doReq(t, ts.URL, "POST", "/feeds", userID, map[string]any{"tagNumber": "G-001"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", st)
		}
		assertError(t, body, "Missing required fields: tagNumber, feedType, amount")
	}

	// Registro válido con fecha explícita
	{
		st, body := doReq(t, ts.URL, "POST", "/feeds", userID, map[string]any{
			"tagNumber": "G-001",
			"feedType":  "hay",
			"amount":    "2.5",
			"feedDate":  "2025-06-01",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", st, string(body))
		}
	}

	// Listado por tag
	{
		st, body := doReq(t, ts.URL, "GET", "/feeds?tagNumber=G-001", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", st, string(body))
		}
		var resp struct {
			Feeds []struct {
				FeedType string  `json:"feedType"`
				Amount   float64 `json:"amount"`
				Animal   struct {
					TagNumber string `json:"tagNumber"`
				} `json:"animal"`
			} `json:"feeds"`
		}
		mustUnmarshal(t, body, &resp)
		if len(resp.Feeds) != 1 || resp.Feeds[0].FeedType != "hay" || resp.Feeds[0].Amount != 2.5 {
			t.Fatalf("unexpected feeds: %+v", resp.Feeds)
		}
	}
}

func TestHTTP_AllEndpointsRequireSession(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Log: logger.Nop()}))
	defer ts.Close()

	endpoints := []struct {
		method string
		path   string
		body   map[string]any
	}{
		{"POST", "/animals", map[string]any{"tagNumber": "X-1", "type": "SHEEP", "initialWeight": "10"}},
		{"GET", "/animals", nil},
		{"POST", "/weights", map[string]any{"tagNumber": "X-1", "weight": "10"}},
		{"GET", "/weights", nil},
		{"POST", "/feeds", map[string]any{"tagNumber": "X-1", "feedType": "hay", "amount": "1"}},
		{"GET", "/feeds", nil},
	}

	for _, ep := range endpoints {
		st, body := doReq(t, ts.URL, ep.method, ep.path, "", ep.body)
		if st != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401 without session, got %d", ep.method, ep.path, st)
		}
		assertError(t, body, "Unauthorized")
	}

	// Cero mutaciones: el listado autenticado sigue vacío
	assertAnimalCount(t, ts.URL, "farmer-1", 0)
}

func registerAnimal(t *testing.T, baseURL, userID string, payload map[string]any) animalPayload {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/animals", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 register animal, got %d body=%s", st, string(body))
	}

	var resp struct {
		Message string        `json:"message"`
		Animal  animalPayload `json:"animal"`
	}
	mustUnmarshal(t, body, &resp)
	if resp.Animal.ID == 0 {
		t.Fatalf("register animal: missing id body=%s", string(body))
	}
	return resp.Animal
}

func recordWeight(t *testing.T, baseURL, userID, tagNumber, weight, notes string) weightPayload {
	t.Helper()

	payload := map[string]any{"tagNumber": tagNumber, "weight": weight}
	if notes != "" {
		payload["notes"] = notes
	}

	st, body := doReq(t, baseURL, "POST", "/weights", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 record weight, got %d body=%s", st, string(body))
	}

	var resp struct {
		Message      string        `json:"message"`
		WeightRecord weightPayload `json:"weightRecord"`
	}
	mustUnmarshal(t, body, &resp)
	if resp.WeightRecord.ID == 0 {
		t.Fatalf("record weight: missing id body=%s", string(body))
	}
	return resp.WeightRecord
}

func assertAnimalCount(t *testing.T, baseURL, userID string, want int) {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/animals", userID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list animals, got %d body=%s", st, string(body))
	}

	var resp struct {
		Animals []animalPayload `json:"animals"`
	}
	mustUnmarshal(t, body, &resp)
	if len(resp.Animals) != want {
		t.Fatalf("expected %d animals, got %d", want, len(resp.Animals))
	}
}

func assertError(t *testing.T, body []byte, want string) {
	t.Helper()

	var resp struct {
		Error string `json:"error"`
	}
	mustUnmarshal(t, body, &resp)
	if resp.Error != want {
		t.Fatalf("expected error %q, got %q", want, resp.Error)
	}
}

func mustUnmarshal(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("unmarshal %q: %v", string(body), err)
	}
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
