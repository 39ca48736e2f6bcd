package category

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	categorymem "github.com/haqqvault/backend/internal/adapter/memory/category"
	"github.com/haqqvault/backend/internal/adapter/memory/seed"
	topicmem "github.com/haqqvault/backend/internal/adapter/memory/topic"
	"github.com/haqqvault/backend/internal/domain"
	"github.com/haqqvault/backend/pkg/ctxutil"
)

func newTestService() *Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(
		log,
		categorymem.NewRepo(seed.Categories(), 0),
		topicmem.NewRepo(seed.Topics(), 0),
	)
}

func adminCtx() context.Context {
	ctx := ctxutil.WithUserID(context.Background(), seed.UserAdminID)
	return ctxutil.WithRole(ctx, "admin")
}

func TestListActiveExcludesInactive(t *testing.T) {
	s := newTestService()

	active, err := s.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 5)
	for _, c := range active {
		require.True(t, c.IsActive)
	}

	all, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 6)
}

func TestCreateIsAdminOnly(t *testing.T) {
	s := newTestService()

	_, err := s.Create(context.Background(), CreateCategoryInput{Name: "ใหม่", Description: "คำอธิบาย"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	created, err := s.Create(adminCtx(), CreateCategoryInput{
		Name:        "เปรียบเทียบศาสนา",
		Description: "ประเด็นเปรียบเทียบกับศาสนาอื่น",
		Icon:        "🕊️",
		Color:       "#0f766e",
	})
	require.NoError(t, err)
	require.Equal(t, 7, created.Order)
	require.True(t, created.IsActive)
}

func TestRecalculateTopicCounts(t *testing.T) {
	s := newTestService()
	ctx := adminCtx()

	require.NoError(t, s.RecalculateTopicCounts(ctx))

	violence, err := s.GetBySlug(ctx, "violence")
	require.NoError(t, err)
	require.Equal(t, 2, violence.TopicCount)

	// history holds one approved topic; the recount includes all statuses
	history, err := s.categories.GetByID(ctx, seed.CategoryHistoryID)
	require.NoError(t, err)
	require.Equal(t, 1, history.TopicCount)
}
