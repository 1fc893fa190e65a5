package repository

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/d60-Lab/postboard/internal/model"
)

func benchRepositories(b *testing.B) map[string]PostRepository {
	return map[string]PostRepository{
		"memory": NewMemoryPostRepository(),
		"gorm":   NewGormPostRepository(openTestDB(b)),
	}
}

func BenchmarkCreatePost(b *testing.B) {
	ctx := context.Background()
	for name, repo := range benchRepositories(b) {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = repo.Create(ctx, &model.Post{ID: uuid.NewString(), Username: "bench", Content: "payload"})
			}
		})
	}
}

func BenchmarkGetAndList(b *testing.B) {
	ctx := context.Background()
	// 预置 N 条帖子，GetByID 是线性查找
	const N = 1000
	for name, repo := range benchRepositories(b) {
		posts := make([]string, N)
		for i := 0; i < N; i++ {
			posts[i] = fmt.Sprintf("p%04d", i)
			_ = repo.Create(ctx, &model.Post{ID: posts[i], Username: posts[i], Content: "c"})
		}

		b.Run(name+"/GetByID", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = repo.GetByID(ctx, posts[rand.Intn(N)])
			}
		})

		b.Run(name+"/List", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = repo.List(ctx)
			}
		})
	}
}
