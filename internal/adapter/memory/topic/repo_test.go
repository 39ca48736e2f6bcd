package topic

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/haqqvault/backend/internal/adapter/memory/seed"
	"github.com/haqqvault/backend/internal/domain"
)

func newSeededRepo() *Repo {
	return NewRepo(seed.Topics(), 0)
}

func ptr[T any](v T) *T { return &v }

func TestGetPaginated(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	total := len(seed.Topics())

	tests := []struct {
		name    string
		page    int
		perPage int
		wantLen int
	}{
		{name: "first page", page: 1, perPage: 3, wantLen: 3},
		{name: "last partial page", page: 3, perPage: 3, wantLen: total - 6},
		{name: "past the end", page: 4, perPage: 3, wantLen: 0},
		{name: "zero page", page: 0, perPage: 3, wantLen: 0},
		{name: "zero per page", page: 1, perPage: 0, wantLen: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetPaginated(ctx, tt.page, tt.perPage)
			if err != nil {
				t.Fatalf("GetPaginated: %v", err)
			}
			if len(got.Data) != tt.wantLen {
				t.Errorf("len(Data) = %d, want %d", len(got.Data), tt.wantLen)
			}
			if got.Total != total {
				t.Errorf("Total = %d, want %d", got.Total, total)
			}
		})
	}
}

func TestSearchIsConjunctive(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	published := domain.TopicStatusPublished

	got, err := repo.Search(ctx, domain.TopicFilter{
		Query:      ptr("อายะฮ์"),
		CategoryID: ptr(seed.CategoryViolenceID),
		Status:     &published,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].ID != seed.TopicSwordVerseID {
		t.Fatalf("got %d topics, want exactly the sword-verse topic", len(got))
	}
}

func TestSearchExplanationOptIn(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	// ฮุดัยบียะฮ์ appears only in the detailed explanation of the
	// sword-verse topic.
	q := "ฮุดัยบียะฮ์"

	got, err := repo.Search(ctx, domain.TopicFilter{Query: &q})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("without MatchExplanation: got %d topics, want 0", len(got))
	}

	got, err = repo.Search(ctx, domain.TopicFilter{Query: &q, MatchExplanation: true})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].ID != seed.TopicSwordVerseID {
		t.Errorf("with MatchExplanation: got %d topics, want 1", len(got))
	}
}

func TestSearchMatchesTags(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	got, err := repo.Search(ctx, domain.TopicFilter{Query: ptr("มรดก")})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].ID != seed.TopicWomenRightsID {
		t.Fatalf("got %d topics, want the inheritance topic via its tag", len(got))
	}
}

func TestCreateAppliesDraftDefaults(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	authorID := uuid.New()
	created, err := repo.Create(ctx, &domain.Topic{
		Title:         "หัวข้อใหม่ Test Topic",
		Claim:         "ข้อกล่าวหาตัวอย่าง",
		ShortAnswer:   "คำตอบย่อ",
		CategoryID:    seed.CategoryQuranID,
		SeverityLevel: domain.SeverityBasic,
		Tags:          []string{"ตัวอย่าง"},
		// the store must ignore these
		Status:     domain.TopicStatusPublished,
		IsVerified: true,
		ViewCount:  99,
		AuthorID:   &authorID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if created.Status != domain.TopicStatusDraft {
		t.Errorf("Status = %q, want draft", created.Status)
	}
	if created.IsVerified {
		t.Error("IsVerified = true, want false")
	}
	if created.ViewCount != 0 {
		t.Errorf("ViewCount = %d, want 0", created.ViewCount)
	}
	if created.Slug == "" || created.Slug != domain.Slugify("หัวข้อใหม่ Test Topic") {
		t.Errorf("Slug = %q, want slug derived from title", created.Slug)
	}
	if created.AuthorID == nil || *created.AuthorID != authorID {
		t.Error("AuthorID not preserved")
	}
	if created.ReviewerID != nil || created.PublishedAt != nil {
		t.Error("ReviewerID/PublishedAt should start nil")
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if all[0].ID != created.ID {
		t.Error("new topic should be first in the list")
	}
}

func TestUpdateMergesFields(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	before, err := repo.GetByID(ctx, seed.TopicMoonSplitID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	pending := domain.TopicStatusPending
	updated, err := repo.Update(ctx, seed.TopicMoonSplitID, domain.TopicUpdateParams{
		Status: &pending,
		Tags:   []string{"ปรับปรุงแล้ว"},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Status != domain.TopicStatusPending {
		t.Errorf("Status = %q, want pending", updated.Status)
	}
	if len(updated.Tags) != 1 || updated.Tags[0] != "ปรับปรุงแล้ว" {
		t.Errorf("Tags = %v, want replaced", updated.Tags)
	}
	if updated.Title != before.Title {
		t.Error("Title changed on a partial update")
	}
	if !updated.UpdatedAt.After(before.UpdatedAt) {
		t.Error("UpdatedAt not refreshed")
	}
}

func TestUpdateUnknownTopic(t *testing.T) {
	repo := newSeededRepo()

	_, err := repo.Update(context.Background(), uuid.New(), domain.TopicUpdateParams{})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	if err := repo.Delete(ctx, seed.TopicMoonSplitID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, seed.TopicMoonSplitID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID after delete: err = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, seed.TopicMoonSplitID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second Delete: err = %v, want ErrNotFound", err)
	}
}

func TestIncrementViewCount(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	before, _ := repo.GetByID(ctx, seed.TopicPreservationID)
	for range 3 {
		if err := repo.IncrementViewCount(ctx, seed.TopicPreservationID); err != nil {
			t.Fatalf("IncrementViewCount: %v", err)
		}
	}
	after, _ := repo.GetByID(ctx, seed.TopicPreservationID)
	if after.ViewCount != before.ViewCount+3 {
		t.Errorf("ViewCount = %d, want %d", after.ViewCount, before.ViewCount+3)
	}

	// unknown IDs are a silent no-op
	if err := repo.IncrementViewCount(ctx, uuid.New()); err != nil {
		t.Errorf("IncrementViewCount(unknown) = %v, want nil", err)
	}
}

func TestGetFeatured(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	got, err := repo.GetFeatured(ctx, 2)
	if err != nil {
		t.Fatalf("GetFeatured: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, topic := range got {
		if !topic.IsVerified || topic.Status != domain.TopicStatusPublished {
			t.Errorf("topic %q is not verified+published", topic.Slug)
		}
	}
}

func TestGetPopularOrdersByViews(t *testing.T) {
	repo := newSeededRepo()

	got, err := repo.GetPopular(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetPopular: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].ViewCount > got[i-1].ViewCount {
			t.Errorf("popular list not sorted: %d before %d", got[i-1].ViewCount, got[i].ViewCount)
		}
	}
	for _, topic := range got {
		if topic.Status != domain.TopicStatusPublished {
			t.Errorf("topic %q is not published", topic.Slug)
		}
	}
}

func TestStats(t *testing.T) {
	repo := newSeededRepo()

	stats, err := repo.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalTopics != len(seed.Topics()) {
		t.Errorf("TotalTopics = %d, want %d", stats.TotalTopics, len(seed.Topics()))
	}
	if stats.PublishedTopics != 5 {
		t.Errorf("PublishedTopics = %d, want 5", stats.PublishedTopics)
	}
	if stats.PendingTopics != 1 {
		t.Errorf("PendingTopics = %d, want 1", stats.PendingTopics)
	}
	if stats.VerifiedTopics != 5 {
		t.Errorf("VerifiedTopics = %d, want 5", stats.VerifiedTopics)
	}
}

func TestCountByCategory(t *testing.T) {
	repo := newSeededRepo()

	counts, err := repo.CountByCategory(context.Background())
	if err != nil {
		t.Fatalf("CountByCategory: %v", err)
	}
	if counts[seed.CategoryViolenceID] != 2 {
		t.Errorf("violence count = %d, want 2", counts[seed.CategoryViolenceID])
	}
	if counts[seed.CategoryScienceID] != 2 {
		t.Errorf("science count = %d, want 2", counts[seed.CategoryScienceID])
	}
}
