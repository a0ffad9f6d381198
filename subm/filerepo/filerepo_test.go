package filerepo_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digiserv/backend/subm"
	"github.com/digiserv/backend/subm/filerepo"
)

func newTestRepo(t *testing.T) (*filerepo.FileRepo, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "submissions.json")
	repo, err := filerepo.New(path)
	require.NoError(t, err)
	return repo, path
}

func newSubmission(id, name string) *subm.Submission {
	return &subm.Submission{
		ID:        id,
		Name:      name,
		Email:     name + "@test.com",
		Message:   "help",
		Status:    subm.StatusPending,
		CreatedAt: "2025-01-01T00:00:00Z",
	}
}

func TestNewCreatesFileWithEmptyArray(t *testing.T) {
	_, path := newTestRepo(t)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestStoreAndListNewestFirst(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, newSubmission("a", "first")))
	require.NoError(t, repo.Store(ctx, newSubmission("b", "second")))
	require.NoError(t, repo.Store(ctx, newSubmission("c", "third")))

	subms, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, subms, 3)
	assert.Equal(t, "c", subms[0].ID)
	assert.Equal(t, "b", subms[1].ID)
	assert.Equal(t, "a", subms[2].ID)
}

func TestFileLayoutIsSingleJsonArray(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, newSubmission("a", "first")))
	require.NoError(t, repo.Store(ctx, newSubmission("b", "second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 2)
	assert.Equal(t, "a", raw[0]["id"])
	assert.Contains(t, raw[0], "emailSent")
	assert.Contains(t, raw[0], "timestamp")
}

func TestMarkEmailSent(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, newSubmission("a", "first")))
	require.NoError(t, repo.MarkEmailSent(ctx, "a"))

	subms, err := repo.List(ctx)
	require.NoError(t, err)
	assert.True(t, subms[0].EmailSent)
}

func TestMarkEmailSentUnknownID(t *testing.T) {
	repo, _ := newTestRepo(t)
	err := repo.MarkEmailSent(context.Background(), "nope")
	assert.ErrorIs(t, err, subm.ErrNotFound)
}

func TestCount(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, repo.Store(ctx, newSubmission("a", "first")))
	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestConcurrentStoresLoseNoWrites(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			s := newSubmission(string(rune('a'+i)), "writer")
			assert.NoError(t, repo.Store(ctx, s))
		}(i)
	}
	wg.Wait()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, writers, n)
}
