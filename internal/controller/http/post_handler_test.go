package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitfeed/internal/entity"
	"fitfeed/internal/usecase"
	"fitfeed/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostUseCase is a mock implementation of PostUseCase
type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) CreatePost(ctx context.Context, id, text, mediaURL, email string) (*entity.Post, error) {
	args := m.Called(ctx, id, text, mediaURL, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) LikePost(ctx context.Context, postID, email string) (*entity.Post, error) {
	args := m.Called(ctx, postID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) CommentPost(ctx context.Context, postID, text, email string) (*entity.Post, error) {
	args := m.Called(ctx, postID, text, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GetPost(ctx context.Context, postID string) (*entity.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func newHandler(mockUseCase *MockPostUseCase) *PostHandler {
	return NewPostHandler(mockUseCase, logger.New())
}

func TestCreatePost_Created(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := newHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/posts", handler.CreatePost)

	post := &entity.Post{
		ID:       "p1",
		Text:     "hello",
		Email:    "a@x.com",
		Likes:    []string{},
		Comments: []entity.Comment{},
	}
	mockUseCase.On("CreatePost", mock.Anything, "p1", "hello", "", "a@x.com").Return(post, nil)

	body, _ := json.Marshal(map[string]string{"id": "p1", "text": "hello", "email": "a@x.com"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	// The wire contract: field names verbatim, likes and comments present.
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "p1", response["id"])
	assert.Equal(t, "hello", response["text"])
	assert.Equal(t, "a@x.com", response["email"])
	assert.Contains(t, response, "mediaUrl")
	assert.NotNil(t, response["likes"])
	assert.NotNil(t, response["comments"])

	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_ValidationError(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := newHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/posts", handler.CreatePost)

	mockUseCase.On("CreatePost", mock.Anything, "", "hello", "", "a@x.com").
		Return(nil, fmt.Errorf("%w: id, text, and email are required for creating a post", entity.ErrValidation))

	body, _ := json.Marshal(map[string]string{"text": "hello", "email": "a@x.com"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePost_Conflict(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := newHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/posts", handler.CreatePost)

	mockUseCase.On("CreatePost", mock.Anything, "p1", "hello", "", "a@x.com").
		Return(nil, fmt.Errorf("%w: post %q", entity.ErrConflict, "p1"))

	body, _ := json.Marshal(map[string]string{"id": "p1", "text": "hello", "email": "a@x.com"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLikePost_OK(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := newHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/posts/:id/like", handler.LikePost)

	post := &entity.Post{ID: "p1", Text: "hello", Email: "a@x.com", Likes: []string{"b@x.com"}, Comments: []entity.Comment{}}
	mockUseCase.On("LikePost", mock.Anything, "p1", "b@x.com").Return(post, nil)

	body, _ := json.Marshal(map[string]string{"email": "b@x.com"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/p1/like", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "b@x.com")
	mockUseCase.AssertExpectations(t)
}

func TestLikePost_NotFound(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := newHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/posts/:id/like", handler.LikePost)

	mockUseCase.On("LikePost", mock.Anything, "missing", "b@x.com").
		Return(nil, fmt.Errorf("%w: post %q", entity.ErrNotFound, "missing"))

	body, _ := json.Marshal(map[string]string{"email": "b@x.com"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/missing/like", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommentPost_OK(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := newHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/posts/:id/comment", handler.CommentPost)

	post := &entity.Post{
		ID:    "p1",
		Text:  "hello",
		Email: "a@x.com",
		Likes: []string{},
		Comments: []entity.Comment{
			{ID: "c1", Text: "nice", Email: "c@x.com", Timestamp: 1700000000000},
		},
	}
	mockUseCase.On("CommentPost", mock.Anything, "p1", "nice", "c@x.com").Return(post, nil)

	body, _ := json.Marshal(map[string]string{"text": "nice", "email": "c@x.com"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/p1/comment", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"timestamp"`)
	mockUseCase.AssertExpectations(t)
}

func TestCommentPost_ValidationError(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := newHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/posts/:id/comment", handler.CommentPost)

	mockUseCase.On("CommentPost", mock.Anything, "p1", "", "c@x.com").
		Return(nil, fmt.Errorf("%w: comment text and email are required", entity.ErrValidation))

	body, _ := json.Marshal(map[string]string{"email": "c@x.com"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/p1/comment", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPosts_OK(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := newHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/posts", handler.ListPosts)

	posts := []*entity.Post{
		{ID: "p1", Text: "one", Email: "a@x.com", Likes: []string{}, Comments: []entity.Comment{}},
		{ID: "p2", Text: "two", Email: "b@x.com", Likes: []string{}, Comments: []entity.Comment{}},
	}
	mockUseCase.On("ListPosts", mock.Anything).Return(posts, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 2)
}

func TestListPosts_StorageError(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := newHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/posts", handler.ListPosts)

	mockUseCase.On("ListPosts", mock.Anything).
		Return(nil, fmt.Errorf("%w: listing posts: connection reset", entity.ErrStorage))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
