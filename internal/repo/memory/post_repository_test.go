package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"fitfeed/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPost(t *testing.T, repo *PostRepository, id string) {
	t.Helper()
	err := repo.Insert(context.Background(), &entity.Post{
		ID:       id,
		Text:     "hello",
		Email:    "a@x.com",
		Likes:    []string{},
		Comments: []entity.Comment{},
	})
	require.NoError(t, err)
}

func TestInsert_Conflict(t *testing.T) {
	repo := NewPostRepository()
	seedPost(t, repo, "p1")

	err := repo.Insert(context.Background(), &entity.Post{ID: "p1"})
	assert.ErrorIs(t, err, entity.ErrConflict)
}

func TestFindByID_ReturnsCopy(t *testing.T) {
	repo := NewPostRepository()
	seedPost(t, repo, "p1")
	ctx := context.Background()

	post, err := repo.FindByID(ctx, "p1")
	require.NoError(t, err)

	// Mutating the returned post must not leak into the store.
	post.Likes = append(post.Likes, "intruder@x.com")

	again, err := repo.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, again.Likes)
}

func TestAddLike_SetSemantics(t *testing.T) {
	repo := NewPostRepository()
	seedPost(t, repo, "p1")
	ctx := context.Background()

	post, err := repo.AddLike(ctx, "p1", "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"b@x.com"}, post.Likes)

	post, err = repo.AddLike(ctx, "p1", "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"b@x.com"}, post.Likes)
}

func TestAddLike_ConcurrentDistinctPosts(t *testing.T) {
	repo := NewPostRepository()
	seedPost(t, repo, "p1")
	seedPost(t, repo, "p2")
	ctx := context.Background()

	const k = 50
	var wg sync.WaitGroup
	for i := 0; i < k; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := "p1"
			if i%2 == 0 {
				id = "p2"
			}
			_, err := repo.AddLike(ctx, id, fmt.Sprintf("user%d@x.com", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	p1, err := repo.FindByID(ctx, "p1")
	require.NoError(t, err)
	p2, err := repo.FindByID(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, k, len(p1.Likes)+len(p2.Likes))
}

func TestAppendComment_ConcurrentNoLoss(t *testing.T) {
	repo := NewPostRepository()
	seedPost(t, repo, "p1")
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			comment := entity.Comment{
				ID:   fmt.Sprintf("c%d", i),
				Text: fmt.Sprintf("comment %d", i),
			}
			_, err := repo.AppendComment(ctx, "p1", comment)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	post, err := repo.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, post.Comments, n)
}

func TestMutations_UnknownPost(t *testing.T) {
	repo := NewPostRepository()
	ctx := context.Background()

	_, err := repo.AddLike(ctx, "missing", "b@x.com")
	assert.ErrorIs(t, err, entity.ErrNotFound)

	_, err = repo.AppendComment(ctx, "missing", entity.Comment{ID: "c1"})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
