// Package memory holds an in-process post repository with the same contract
// as the Mongo-backed one. Read-modify-write mutations serialize on a mutex
// scoped to a single post id, so distinct posts never contend.
package memory

import (
	"context"
	"fmt"
	"sync"

	"fitfeed/internal/entity"
	"fitfeed/internal/repo/persistent"
)

// PostRepository stores posts as immutable snapshots: a mutation copies the
// current snapshot, applies the change and swaps the pointer. The table
// mutex guards only map access; the per-post mutex is the critical section
// that orders mutations against each other.
type PostRepository struct {
	mu    sync.RWMutex
	posts map[string]*entity.Post
	locks map[string]*sync.Mutex
}

var _ persistent.PostRepository = (*PostRepository)(nil)

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts: make(map[string]*entity.Post),
		locks: make(map[string]*sync.Mutex),
	}
}

func (r *PostRepository) postLock(id string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[id] = lock
	}
	return lock
}

func (r *PostRepository) get(id string) (*entity.Post, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	post, ok := r.posts[id]
	return post, ok
}

func (r *PostRepository) put(id string, post *entity.Post) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts[id] = post
}

func (r *PostRepository) Insert(_ context.Context, post *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.posts[post.ID]; exists {
		return fmt.Errorf("%w: post %q", entity.ErrConflict, post.ID)
	}
	r.posts[post.ID] = clone(post)
	return nil
}

func (r *PostRepository) FindByID(_ context.Context, id string) (*entity.Post, error) {
	post, ok := r.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: post %q", entity.ErrNotFound, id)
	}
	return clone(post), nil
}

func (r *PostRepository) FindAll(_ context.Context) ([]*entity.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	posts := make([]*entity.Post, 0, len(r.posts))
	for _, post := range r.posts {
		posts = append(posts, clone(post))
	}
	return posts, nil
}

func (r *PostRepository) AddLike(_ context.Context, id, email string) (*entity.Post, error) {
	lock := r.postLock(id)
	lock.Lock()
	defer lock.Unlock()

	post, ok := r.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: post %q", entity.ErrNotFound, id)
	}
	for _, existing := range post.Likes {
		if existing == email {
			return clone(post), nil
		}
	}
	updated := clone(post)
	updated.Likes = append(updated.Likes, email)
	r.put(id, updated)
	return clone(updated), nil
}

func (r *PostRepository) AppendComment(_ context.Context, id string, comment entity.Comment) (*entity.Post, error) {
	lock := r.postLock(id)
	lock.Lock()
	defer lock.Unlock()

	post, ok := r.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: post %q", entity.ErrNotFound, id)
	}
	updated := clone(post)
	updated.Comments = append(updated.Comments, comment)
	r.put(id, updated)
	return clone(updated), nil
}

// clone copies the post with fresh likes and comments slices; snapshots in
// the map are never mutated after publication.
func clone(post *entity.Post) *entity.Post {
	copied := *post
	copied.Likes = append([]string{}, post.Likes...)
	copied.Comments = append([]entity.Comment{}, post.Comments...)
	return &copied
}
