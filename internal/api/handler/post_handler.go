package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/postboard/internal/service"
	"github.com/d60-Lab/postboard/internal/view"
	"github.com/d60-Lab/postboard/pkg/response"
)

const postsPath = "/posts"

func postPath(id string) string {
	return postsPath + "/" + url.PathEscape(id)
}

// ListPosts 帖子列表
// GET /posts
func (h *Handler) ListPosts(c *gin.Context) {
	posts, err := h.postService.ListPosts(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}
	h.render(c, http.StatusOK, view.PageIndex, gin.H{"posts": posts})
}

// NewPostForm 新建表单
// GET /posts/new
func (h *Handler) NewPostForm(c *gin.Context) {
	h.render(c, http.StatusOK, view.PageNew, nil)
}

// CreatePost 表单字段 username、content，不做校验；缺失字段按空串保存
// POST /posts
func (h *Handler) CreatePost(c *gin.Context) {
	username := c.PostForm("username")
	content := c.PostForm("content")
	if _, err := h.postService.CreatePost(c.Request.Context(), username, content); err != nil {
		h.internalError(c, err)
		return
	}
	response.Redirect(c, postsPath)
}

// ShowPost 帖子详情；不存在时 404
// GET /posts/:id
func (h *Handler) ShowPost(c *gin.Context) {
	h.showPostPage(c, view.PageShow)
}

// EditPostForm 编辑表单；不存在时 404
// GET /posts/:id/edit
func (h *Handler) EditPostForm(c *gin.Context) {
	h.showPostPage(c, view.PageEdit)
}

func (h *Handler) showPostPage(c *gin.Context, page string) {
	post, err := h.postService.GetPost(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrPostNotFound) {
		h.renderError(c, http.StatusNotFound, "Post not found.")
		return
	}
	if err != nil {
		h.internalError(c, err)
		return
	}
	h.render(c, http.StatusOK, page, gin.H{"post": post})
}

// UpdatePost 只更新 content，成功后跳转详情页
// POST /posts/:id/edit
func (h *Handler) UpdatePost(c *gin.Context) {
	id := c.Param("id")
	_, err := h.postService.UpdatePost(c.Request.Context(), id, c.PostForm("content"))
	if errors.Is(err, service.ErrPostNotFound) {
		h.renderError(c, http.StatusNotFound, "Post not found.")
		return
	}
	if err != nil {
		h.internalError(c, err)
		return
	}
	response.Redirect(c, postPath(id))
}

// DeletePost 无论帖子是否存在都跳转列表页
// POST /posts/:id/delete
func (h *Handler) DeletePost(c *gin.Context) {
	if err := h.postService.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		h.internalError(c, err)
		return
	}
	response.Redirect(c, postsPath)
}
