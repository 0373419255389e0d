package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"farm-records/internal/domain/animals"
	"farm-records/internal/domain/weights"
)

func fixedClock() func() time.Time {
	t := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func mustRegister(t *testing.T, repo animals.Repository, tag string, weight float64) animals.AnimalWithWeights {
	t.Helper()

	created, err := repo.Register(context.Background(), animals.Animal{
		TagNumber: tag,
		Type:      animals.TypeSheep,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, animals.WeightEntry{Weight: weight})
	if err != nil {
		t.Fatalf("register %s: %v", tag, err)
	}
	return created
}

func TestRegister_DuplicateTagUnderConcurrency(t *testing.T) {
	store := NewStore()
	repo := NewAnimalsRepo(store)

	const workers = 8

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Register(context.Background(), animals.Animal{
				TagNumber: "S-001",
				Type:      animals.TypeSheep,
			}, animals.WeightEntry{Weight: 40})
		}(i)
	}
	wg.Wait()

	okCount := 0
	for _, err := range errs {
		if err == nil {
			okCount++
			continue
		}
		if !errors.Is(err, animals.ErrDuplicateTag) {
			t.Fatalf("expected ErrDuplicateTag, got %v", err)
		}
	}
	if okCount != 1 {
		t.Fatalf("expected exactly one winner, got %d", okCount)
	}
}

// Con timestamps idénticos el orden lo decide el id (secuencia de inserción).
func TestListWeights_TieBreakByInsertionOrder(t *testing.T) {
	store := NewStore().WithClock(fixedClock())
	animalsRepo := NewAnimalsRepo(store)
	weightsRepo := NewWeightsRepo(store)

	created := mustRegister(t, animalsRepo, "S-001", 40)

	for i := 0; i < 3; i++ {
		if _, err := weightsRepo.Create(context.Background(), weights.WeightRecord{
			AnimalID: created.ID,
			Weight:   float64(41 + i),
		}); err != nil {
			t.Fatalf("create weight: %v", err)
		}
	}

	out, err := weightsRepo.List(context.Background(), weights.ListFilter{TagNumber: "S-001"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(out) != 4 {
		t.Fatalf("expected 4 records, got %d", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i].ID > out[i-1].ID {
			t.Fatalf("expected id-descending order on equal timestamps at %d", i)
		}
	}
	if out[0].Weight != 43 {
		t.Fatalf("expected last inserted first, got %v", out[0].Weight)
	}
}

func TestListWeights_AppliesLimit(t *testing.T) {
	store := NewStore()
	animalsRepo := NewAnimalsRepo(store)
	weightsRepo := NewWeightsRepo(store)

	created := mustRegister(t, animalsRepo, "S-001", 40)

	for i := 0; i < 10; i++ {
		if _, err := weightsRepo.Create(context.Background(), weights.WeightRecord{
			AnimalID: created.ID,
			Weight:   float64(41 + i),
		}); err != nil {
			t.Fatalf("create weight: %v", err)
		}
	}

	out, err := weightsRepo.List(context.Background(), weights.ListFilter{Limit: 5})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 5 {
		t.Fatalf("expected 5 records, got %d", len(out))
	}
}

func TestListWeights_UnknownTagReturnsEmpty(t *testing.T) {
	store := NewStore()
	weightsRepo := NewWeightsRepo(store)

	out, err := weightsRepo.List(context.Background(), weights.ListFilter{TagNumber: "NOPE"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty result, got %d", len(out))
	}
}

func TestCreateWeight_RequiresExistingAnimal(t *testing.T) {
	store := NewStore()
	weightsRepo := NewWeightsRepo(store)

	if _, err := weightsRepo.Create(context.Background(), weights.WeightRecord{
		AnimalID: 99,
		Weight:   40,
	}); err == nil {
		t.Fatal("expected error for missing animal")
	}
}

func TestListAnimals_LatestWeightOnly(t *testing.T) {
	store := NewStore()
	animalsRepo := NewAnimalsRepo(store)
	weightsRepo := NewWeightsRepo(store)

	for i := 1; i <= 3; i++ {
		created := mustRegister(t, animalsRepo, fmt.Sprintf("S-%03d", i), 40)
		if _, err := weightsRepo.Create(context.Background(), weights.WeightRecord{
			AnimalID: created.ID,
			Weight:   50,
		}); err != nil {
			t.Fatalf("create weight: %v", err)
		}
	}

	out, err := animalsRepo.List(context.Background(), "S-")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(out) != 3 {
		t.Fatalf("expected 3 animals, got %d", len(out))
	}
	for _, a := range out {
		if len(a.Weights) != 1 || a.Weights[0].Weight != 50 {
			t.Fatalf("expected single latest weight 50 for %s, got %+v", a.TagNumber, a.Weights)
		}
	}
}
