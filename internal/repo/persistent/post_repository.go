package persistent

import (
	"context"
	"errors"
	"fmt"

	"fitfeed/internal/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostRepository persists post aggregates. AddLike and AppendComment are
// atomic from the caller's perspective: concurrent calls never lose or
// duplicate an update, and both return the post as it stood immediately
// after the write.
type PostRepository interface {
	Insert(ctx context.Context, post *entity.Post) error
	FindByID(ctx context.Context, id string) (*entity.Post, error)
	FindAll(ctx context.Context) ([]*entity.Post, error)
	AddLike(ctx context.Context, id, email string) (*entity.Post, error)
	AppendComment(ctx context.Context, id string, comment entity.Comment) (*entity.Post, error)
}

type postRepository struct {
	collection *mongo.Collection
}

// NewPostRepository builds the Mongo-backed repository and ensures the
// unique index on the post id, which is what turns a duplicate create into
// a conflict instead of a second document.
func NewPostRepository(ctx context.Context, db *mongo.Database) (PostRepository, error) {
	collection := db.Collection("posts")

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: creating post id index: %v", entity.ErrStorage, err)
	}

	return &postRepository{collection: collection}, nil
}

func (r *postRepository) Insert(ctx context.Context, post *entity.Post) error {
	if _, err := r.collection.InsertOne(ctx, post); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: post %q", entity.ErrConflict, post.ID)
		}
		return fmt.Errorf("%w: inserting post: %v", entity.ErrStorage, err)
	}
	return nil
}

func (r *postRepository) FindByID(ctx context.Context, id string) (*entity.Post, error) {
	var post entity.Post
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: post %q", entity.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: finding post: %v", entity.ErrStorage, err)
	}
	normalize(&post)
	return &post, nil
}

func (r *postRepository) FindAll(ctx context.Context) ([]*entity.Post, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: listing posts: %v", entity.ErrStorage, err)
	}
	defer cursor.Close(ctx)

	posts := []*entity.Post{}
	for cursor.Next(ctx) {
		var post entity.Post
		if err := cursor.Decode(&post); err != nil {
			return nil, fmt.Errorf("%w: decoding post: %v", entity.ErrStorage, err)
		}
		normalize(&post)
		posts = append(posts, &post)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: listing posts: %v", entity.ErrStorage, err)
	}
	return posts, nil
}

// AddLike relies on $addToSet, so liking twice with the same email is a
// server-side no-op and two concurrent likes with different emails both
// land. There is no read-modify-write window to race on.
func (r *postRepository) AddLike(ctx context.Context, id, email string) (*entity.Post, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{"$addToSet": bson.M{"likes": email}})
}

// AppendComment uses $push: every completed call contributes exactly one
// comment, ordered by the moment the server applied it.
func (r *postRepository) AppendComment(ctx context.Context, id string, comment entity.Comment) (*entity.Post, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{"$push": bson.M{"comments": comment}})
}

func (r *postRepository) findOneAndUpdate(ctx context.Context, id string, update bson.M) (*entity.Post, error) {
	var post entity.Post
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: post %q", entity.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: updating post: %v", entity.ErrStorage, err)
	}
	normalize(&post)
	return &post, nil
}

// normalize keeps the aggregate well-defined: likes and comments are always
// present, never null, even for documents written by older clients.
func normalize(post *entity.Post) {
	if post.Likes == nil {
		post.Likes = []string{}
	}
	if post.Comments == nil {
		post.Comments = []entity.Comment{}
	}
}
