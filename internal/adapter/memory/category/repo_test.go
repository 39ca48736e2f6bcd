package category

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/haqqvault/backend/internal/adapter/memory/seed"
	"github.com/haqqvault/backend/internal/domain"
)

func newSeededRepo() *Repo {
	return NewRepo(seed.Categories(), 0)
}

func TestGetActiveSortsByOrder(t *testing.T) {
	repo := newSeededRepo()

	got, err := repo.GetActive(context.Background())
	if err != nil {
		t.Fatalf("GetActive: %v", err)
	}
	for _, c := range got {
		if !c.IsActive {
			t.Errorf("category %q is inactive", c.Slug)
		}
		if c.ID == seed.CategoryHistoryID {
			t.Error("inactive history category leaked into active list")
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].Order < got[i-1].Order {
			t.Errorf("not sorted by order: %d before %d", got[i-1].Order, got[i].Order)
		}
	}
}

func TestCreateAppendsToDisplayOrder(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	maxOrder := 0
	for _, c := range seed.Categories() {
		if c.Order > maxOrder {
			maxOrder = c.Order
		}
	}

	created, err := repo.Create(ctx, &domain.Category{
		Name:        "หมวดใหม่ Extra",
		Description: "หมวดทดสอบ",
		Icon:        "🧪",
		Color:       "#334155",
		// the store must ignore these
		Order:      1,
		IsActive:   false,
		TopicCount: 42,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if created.Order != maxOrder+1 {
		t.Errorf("Order = %d, want %d", created.Order, maxOrder+1)
	}
	if !created.IsActive {
		t.Error("IsActive = false, want true")
	}
	if created.TopicCount != 0 {
		t.Errorf("TopicCount = %d, want 0", created.TopicCount)
	}
	if created.Slug != domain.Slugify("หมวดใหม่ Extra") {
		t.Errorf("Slug = %q, want slug derived from name", created.Slug)
	}
}

func TestUpdateMergesFields(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	active := true
	name := "ประวัติศาสตร์อิสลาม"
	updated, err := repo.Update(ctx, seed.CategoryHistoryID, domain.CategoryUpdateParams{
		Name:     &name,
		IsActive: &active,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != name || !updated.IsActive {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.Icon == "" {
		t.Error("untouched field cleared by partial update")
	}
}

func TestDeleteUnknown(t *testing.T) {
	repo := newSeededRepo()

	if err := repo.Delete(context.Background(), uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSetTopicCountsResetsAbsent(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	err := repo.SetTopicCounts(ctx, map[uuid.UUID]int{
		seed.CategoryQuranID: 7,
	})
	if err != nil {
		t.Fatalf("SetTopicCounts: %v", err)
	}

	quran, _ := repo.GetByID(ctx, seed.CategoryQuranID)
	if quran.TopicCount != 7 {
		t.Errorf("quran count = %d, want 7", quran.TopicCount)
	}
	women, _ := repo.GetByID(ctx, seed.CategoryWomenID)
	if women.TopicCount != 0 {
		t.Errorf("women count = %d, want 0 (absent from recount)", women.TopicCount)
	}
}

func TestStats(t *testing.T) {
	repo := newSeededRepo()

	stats, err := repo.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalCategories != len(seed.Categories()) {
		t.Errorf("TotalCategories = %d, want %d", stats.TotalCategories, len(seed.Categories()))
	}
	if stats.ActiveCategories != 5 {
		t.Errorf("ActiveCategories = %d, want 5", stats.ActiveCategories)
	}
	if stats.TotalTopicsInCategories != 8 {
		t.Errorf("TotalTopicsInCategories = %d, want 8", stats.TotalTopicsInCategories)
	}
}
