package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fitfeed/internal/entity"
	"fitfeed/internal/repo/persistent"
	"fitfeed/pkg/logger"
	"fitfeed/pkg/queue"

	"github.com/google/uuid"
)

// PostUseCase is the post aggregate store. All like/comment mutations go
// through it; the final aggregate state is always equivalent to some
// sequential application of the completed calls, because every mutation is
// a single atomic repository operation.
type PostUseCase interface {
	CreatePost(ctx context.Context, id, text, mediaURL, email string) (*entity.Post, error)
	LikePost(ctx context.Context, postID, email string) (*entity.Post, error)
	CommentPost(ctx context.Context, postID, text, email string) (*entity.Post, error)
	GetPost(ctx context.Context, postID string) (*entity.Post, error)
	ListPosts(ctx context.Context) ([]*entity.Post, error)
}

type postUseCase struct {
	postRepo    persistent.PostRepository
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewPostUseCase(postRepo persistent.PostRepository, queueClient *queue.Client, logger *logger.Logger) PostUseCase {
	return &postUseCase{
		postRepo:    postRepo,
		queueClient: queueClient,
		logger:      logger,
	}
}

func (uc *postUseCase) CreatePost(ctx context.Context, id, text, mediaURL, email string) (*entity.Post, error) {
	if isBlank(id) || isBlank(text) || isBlank(email) {
		return nil, fmt.Errorf("%w: id, text, and email are required for creating a post", entity.ErrValidation)
	}

	post := &entity.Post{
		ID:       id,
		Text:     text,
		MediaURL: mediaURL,
		Email:    email,
		Likes:    []string{},
		Comments: []entity.Comment{},
	}

	if err := uc.postRepo.Insert(ctx, post); err != nil {
		return nil, err
	}

	if uc.queueClient != nil {
		go uc.publishActivity("new_post", post.ID, email)
	}

	return post, nil
}

// LikePost adds email to the post's likes set. The repository guarantees
// set semantics, so liking twice leaves exactly one membership and
// concurrent likes with distinct emails all land.
func (uc *postUseCase) LikePost(ctx context.Context, postID, email string) (*entity.Post, error) {
	if isBlank(email) {
		return nil, fmt.Errorf("%w: email is required for liking a post", entity.ErrValidation)
	}

	return uc.postRepo.AddLike(ctx, postID, email)
}

// CommentPost appends a comment with a fresh id and a server-assigned
// timestamp. N concurrent calls yield exactly N comments.
func (uc *postUseCase) CommentPost(ctx context.Context, postID, text, email string) (*entity.Post, error) {
	if isBlank(text) || isBlank(email) {
		return nil, fmt.Errorf("%w: comment text and email are required", entity.ErrValidation)
	}

	comment := entity.Comment{
		ID:        uuid.New().String(),
		Text:      text,
		Email:     email,
		Timestamp: time.Now().UnixMilli(),
	}

	post, err := uc.postRepo.AppendComment(ctx, postID, comment)
	if err != nil {
		return nil, err
	}

	if uc.queueClient != nil {
		go uc.publishActivity("new_comment", post.ID, email)
	}

	return post, nil
}

func (uc *postUseCase) GetPost(ctx context.Context, postID string) (*entity.Post, error) {
	return uc.postRepo.FindByID(ctx, postID)
}

func (uc *postUseCase) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	return uc.postRepo.FindAll(ctx)
}

// publishActivity is best effort: a broken broker never fails the mutation
// the caller already saw commit.
func (uc *postUseCase) publishActivity(eventType, postID, email string) {
	event := map[string]interface{}{
		"type":    eventType,
		"post_id": postID,
		"email":   email,
	}
	if err := uc.queueClient.PublishActivity(event); err != nil {
		uc.logger.Error("Failed to publish %s event for post %s: %v", eventType, postID, err)
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
