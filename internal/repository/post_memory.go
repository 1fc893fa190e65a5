package repository

import (
	"context"
	"sync"

	"github.com/d60-Lab/postboard/internal/model"
)

// memoryPostRepository keeps posts in an ordered slice guarded by a single mutex.
// Callers only ever see copies.
type memoryPostRepository struct {
	mu    sync.RWMutex
	posts []*model.Post
}

func NewMemoryPostRepository() PostRepository {
	return &memoryPostRepository{}
}

func (r *memoryPostRepository) List(ctx context.Context) ([]*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]*model.Post, len(r.posts))
	for i, p := range r.posts {
		cp := *p
		res[i] = &cp
	}
	return res, nil
}

func (r *memoryPostRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p := r.find(id)
	if p == nil {
		return nil, ErrPostNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memoryPostRepository) Create(ctx context.Context, post *model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.find(post.ID) != nil {
		return ErrDuplicateID
	}
	cp := *post
	r.posts = append(r.posts, &cp)
	return nil
}

func (r *memoryPostRepository) UpdateContent(ctx context.Context, id, content string) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.find(id)
	if p == nil {
		return nil, ErrPostNotFound
	}
	p.Content = content
	cp := *p
	return &cp, nil
}

func (r *memoryPostRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// 重建集合，排除目标帖子
	kept := make([]*model.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	removed := len(kept) != len(r.posts)
	r.posts = kept
	return removed, nil
}

func (r *memoryPostRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.posts)), nil
}

// find must be called with mu held.
func (r *memoryPostRepository) find(id string) *model.Post {
	for _, p := range r.posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}
