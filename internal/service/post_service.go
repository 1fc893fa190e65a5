package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/d60-Lab/postboard/internal/idgen"
	"github.com/d60-Lab/postboard/internal/model"
	"github.com/d60-Lab/postboard/internal/repository"
	"github.com/d60-Lab/postboard/pkg/logger"
)

var (
	// ErrPostNotFound is returned by GetPost and UpdatePost for an unknown id.
	ErrPostNotFound = repository.ErrPostNotFound
	ErrIDExhausted  = errors.New("could not generate an unused post id")
)

// maxIDAttempts bounds retries when the generator hands out an id already in use.
const maxIDAttempts = 3

// PostService 帖子目录服务，是帖子集合的唯一入口
type PostService interface {
	ListPosts(ctx context.Context) ([]*model.Post, error)
	CreatePost(ctx context.Context, username, content string) (*model.Post, error)
	GetPost(ctx context.Context, id string) (*model.Post, error)
	UpdatePost(ctx context.Context, id, content string) (*model.Post, error)
	DeletePost(ctx context.Context, id string) error
	Seed(ctx context.Context, seeds []SeedPost) error
	Count(ctx context.Context) (int64, error)
}

// SeedPost 启动时预置的帖子（ID 运行时生成）
type SeedPost struct {
	Username string
	Content  string
}

// DefaultSeeds 进程启动时写入的四条示例帖子
var DefaultSeeds = []SeedPost{
	{Username: "Abhimanyu", Content: "I love coding"},
	{Username: "Anish", Content: "coding"},
	{Username: "Aryan", Content: "Flutter"},
	{Username: "Adish", Content: "I love DSA"},
}

type postService struct {
	postRepo repository.PostRepository
	newID    idgen.Generator
}

func NewPostService(postRepo repository.PostRepository, newID idgen.Generator) PostService {
	if newID == nil {
		newID = idgen.NewUUID
	}
	return &postService{postRepo: postRepo, newID: newID}
}

func (s *postService) ListPosts(ctx context.Context) ([]*model.Post, error) {
	return s.postRepo.List(ctx)
}

// CreatePost 不做任何校验，空字符串也照常保存
func (s *postService) CreatePost(ctx context.Context, username, content string) (*model.Post, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		post := &model.Post{ID: s.newID(), Username: username, Content: content}
		err := s.postRepo.Create(ctx, post)
		if err == nil {
			logger.Debug("post created", zap.String("id", post.ID), zap.String("username", username))
			return post, nil
		}
		if !errors.Is(err, repository.ErrDuplicateID) {
			return nil, fmt.Errorf("create post: %w", err)
		}
		logger.Warn("generated post id already in use, retrying", zap.String("id", post.ID))
	}
	return nil, ErrIDExhausted
}

func (s *postService) GetPost(ctx context.Context, id string) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post %q: %w", id, err)
	}
	return post, nil
}

// UpdatePost 只改 content；id 不存在时返回 ErrPostNotFound，集合不变
func (s *postService) UpdatePost(ctx context.Context, id, content string) (*model.Post, error) {
	post, err := s.postRepo.UpdateContent(ctx, id, content)
	if err != nil {
		return nil, fmt.Errorf("update post %q: %w", id, err)
	}
	logger.Debug("post updated", zap.String("id", id))
	return post, nil
}

// DeletePost 幂等：id 不存在时什么也不做
func (s *postService) DeletePost(ctx context.Context, id string) error {
	removed, err := s.postRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete post %q: %w", id, err)
	}
	logger.Debug("post deleted", zap.String("id", id), zap.Bool("removed", removed))
	return nil
}

func (s *postService) Seed(ctx context.Context, seeds []SeedPost) error {
	for _, sp := range seeds {
		if _, err := s.CreatePost(ctx, sp.Username, sp.Content); err != nil {
			return fmt.Errorf("seed posts: %w", err)
		}
	}
	return nil
}

func (s *postService) Count(ctx context.Context) (int64, error) {
	return s.postRepo.Count(ctx)
}
