package repository

import (
	"context"
	"errors"

	"github.com/d60-Lab/postboard/internal/model"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrDuplicateID  = errors.New("duplicate post id")
)

// PostRepository 帖子仓储接口，按插入顺序（最早在前）保存帖子
type PostRepository interface {
	// List 返回全部帖子，按插入顺序
	List(ctx context.Context) ([]*model.Post, error)

	// GetByID 按 ID 查询，不存在时返回 ErrPostNotFound
	GetByID(ctx context.Context, id string) (*model.Post, error)

	// Create 追加到集合末尾
	Create(ctx context.Context, post *model.Post) error

	// UpdateContent 只覆盖 content，返回更新后的帖子；不存在时返回 ErrPostNotFound 且不做修改
	UpdateContent(ctx context.Context, id, content string) (*model.Post, error)

	// Delete 删除帖子，返回是否真的删除了记录；ID 不存在不是错误
	Delete(ctx context.Context, id string) (bool, error)

	// Count 统计帖子数量
	Count(ctx context.Context) (int64, error)
}
