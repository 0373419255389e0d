package animals

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byTag map[string]Animal

	seq       int64
	weightSeq int64
	now       time.Time

	// para forzar la carrera: GetByTag dice "no existe" pero Register choca
	registerErr error
}

func newTestRepo() *testRepo {
	return &testRepo{
		byTag: map[string]Animal{},
		now:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (r *testRepo) Register(ctx context.Context, a Animal, initial WeightEntry) (AnimalWithWeights, error) {
	if r.registerErr != nil {
		return AnimalWithWeights{}, r.registerErr
	}
	if _, exists := r.byTag[a.TagNumber]; exists {
		return AnimalWithWeights{}, ErrDuplicateTag
	}

	r.seq++
	a.ID = r.seq
	r.byTag[a.TagNumber] = a

	r.weightSeq++
	initial.ID = r.weightSeq
	initial.AnimalID = a.ID
	initial.RecordedAt = r.now

	return AnimalWithWeights{Animal: a, Weights: []WeightEntry{initial}}, nil
}

func (r *testRepo) GetByTag(ctx context.Context, tagNumber string) (Animal, error) {
	a, ok := r.byTag[tagNumber]
	if !ok {
		return Animal{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) List(ctx context.Context, tagFilter string) ([]AnimalWithWeights, error) {
	out := make([]AnimalWithWeights, 0)
	for _, a := range r.byTag {
		out = append(out, AnimalWithWeights{Animal: a})
	}
	return out, nil
}

func newTestService(repo *testRepo) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestRegister_CreatesAnimalWithInitialWeight(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	got, err := svc.Register(context.Background(), RegisterInput{
		TagNumber:     "  S-001 ",
		Type:          "SHEEP",
		InitialWeight: 42.5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.TagNumber != "S-001" {
		t.Fatalf("expected trimmed tag, got %q", got.TagNumber)
	}
	if got.Type != TypeSheep {
		t.Fatalf("expected SHEEP, got %q", got.Type)
	}
	if len(got.Weights) != 1 || got.Weights[0].Weight != 42.5 {
		t.Fatalf("expected one initial weight 42.5, got %+v", got.Weights)
	}
	if got.Weights[0].Notes != "Initial weight for S-001" {
		t.Fatalf("expected default notes, got %q", got.Weights[0].Notes)
	}
	if got.CreatedAt.IsZero() || !got.CreatedAt.Equal(got.UpdatedAt) {
		t.Fatalf("expected created_at == updated_at, got %v / %v", got.CreatedAt, got.UpdatedAt)
	}
}

func TestRegister_KeepsExplicitNotes(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	got, err := svc.Register(context.Background(), RegisterInput{
		TagNumber:     "S-002",
		Type:          "LAMB",
		InitialWeight: 11.2,
		Notes:         "born underweight",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Weights[0].Notes != "born underweight" {
		t.Fatalf("expected explicit notes, got %q", got.Weights[0].Notes)
	}
}

func TestRegister_RejectsMissingFields(t *testing.T) {
	svc := newTestService(newTestRepo())

	cases := []RegisterInput{
		{Type: "SHEEP", InitialWeight: 10},
		{TagNumber: "S-001", InitialWeight: 10},
		{TagNumber: "S-001", Type: "SHEEP"},
		{TagNumber: "   ", Type: "SHEEP", InitialWeight: 10},
	}

	for _, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}
}

func TestRegister_RejectsUnknownType(t *testing.T) {
	svc := newTestService(newTestRepo())

	_, err := svc.Register(context.Background(), RegisterInput{
		TagNumber:     "H-001",
		Type:          "HORSE",
		InitialWeight: 300,
	})
	if !errors.Is(err, ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", err)
	}
}

func TestRegister_DuplicateTagPrecheck(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{
		TagNumber: "S-001", Type: "SHEEP", InitialWeight: 40,
	}); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(context.Background(), RegisterInput{
		TagNumber: "S-001", Type: "GOAT", InitialWeight: 30,
	})
	if !errors.Is(err, ErrDuplicateTag) {
		t.Fatalf("expected ErrDuplicateTag, got %v", err)
	}
}

// El pre-chequeo puede perder la carrera: el conflicto del store
// tiene que salir como ErrDuplicateTag, no como error genérico.
func TestRegister_DuplicateTagStoreRace(t *testing.T) {
	repo := newTestRepo()
	repo.registerErr = ErrDuplicateTag
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{
		TagNumber: "S-001", Type: "SHEEP", InitialWeight: 40,
	})
	if !errors.Is(err, ErrDuplicateTag) {
		t.Fatalf("expected ErrDuplicateTag from store, got %v", err)
	}
}

func TestGetByTag_EmptyTag(t *testing.T) {
	svc := newTestService(newTestRepo())

	if _, err := svc.GetByTag(context.Background(), "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
