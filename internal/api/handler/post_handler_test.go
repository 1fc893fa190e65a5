package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/postboard/internal/model"
	"github.com/d60-Lab/postboard/internal/service"
	"github.com/d60-Lab/postboard/internal/view"
)

var errStore = errors.New("store unavailable")

// brokenService fails every call with errStore.
type brokenService struct{}

func (brokenService) ListPosts(context.Context) ([]*model.Post, error) { return nil, errStore }
func (brokenService) CreatePost(context.Context, string, string) (*model.Post, error) {
	return nil, errStore
}
func (brokenService) GetPost(context.Context, string) (*model.Post, error) { return nil, errStore }
func (brokenService) UpdatePost(context.Context, string, string) (*model.Post, error) {
	return nil, errStore
}
func (brokenService) DeletePost(context.Context, string) error      { return errStore }
func (brokenService) Seed(context.Context, []service.SeedPost) error { return errStore }
func (brokenService) Count(context.Context) (int64, error)           { return 0, errStore }

func newEngine(t *testing.T, svc service.PostService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	renderer, err := view.NewTemplateRenderer()
	require.NoError(t, err)
	public := fstest.MapFS{"app.js": {Data: []byte("console.log(1)")}}
	h := NewHandler(svc, renderer, public, 30)

	r := gin.New()
	r.GET("/healthz", h.Health)
	r.GET("/posts", h.ListPosts)
	r.GET("/posts/new", h.NewPostForm)
	r.POST("/posts", h.CreatePost)
	r.GET("/posts/:id", h.ShowPost)
	r.GET("/posts/:id/edit", h.EditPostForm)
	r.POST("/posts/:id/edit", h.UpdatePost)
	r.POST("/posts/:id/delete", h.DeletePost)
	r.NoRoute(h.Static())
	return r
}

func doForm(r *gin.Engine, method, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStoreFailuresRenderErrorPage(t *testing.T) {
	r := newEngine(t, brokenService{})

	cases := []struct {
		method, target string
	}{
		{http.MethodGet, "/posts"},
		{http.MethodPost, "/posts"},
		{http.MethodGet, "/posts/a"},
		{http.MethodGet, "/posts/a/edit"},
		{http.MethodPost, "/posts/a/edit"},
		{http.MethodPost, "/posts/a/delete"},
	}
	for _, tc := range cases {
		w := doForm(r, tc.method, tc.target, url.Values{"content": {"x"}})
		assert.Equal(t, http.StatusInternalServerError, w.Code, tc.target)
		assert.Contains(t, w.Body.String(), "Something went wrong.", tc.target)
		assert.NotContains(t, w.Body.String(), errStore.Error(), tc.target)
	}

	w := doForm(r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestNewPostFormNeedsNoStore(t *testing.T) {
	r := newEngine(t, brokenService{})

	w := doForm(r, http.MethodGet, "/posts/new", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

type stubService struct {
	brokenService
	updatedID, updatedContent string
}

func (s *stubService) UpdatePost(_ context.Context, id, content string) (*model.Post, error) {
	s.updatedID, s.updatedContent = id, content
	return &model.Post{ID: id, Content: content}, nil
}

func TestUpdatePostEscapesRedirect(t *testing.T) {
	svc := &stubService{}
	r := newEngine(t, svc)

	w := doForm(r, http.MethodPost, "/posts/a%20b/edit", url.Values{"content": {"hi"}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/posts/a%20b", w.Header().Get("Location"))
	assert.Equal(t, "a b", svc.updatedID)
	assert.Equal(t, "hi", svc.updatedContent)
}

func TestStatic(t *testing.T) {
	r := newEngine(t, brokenService{})

	w := doForm(r, http.MethodGet, "/app.js", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log(1)", w.Body.String())
	assert.Equal(t, "public, max-age=30", w.Header().Get("Cache-Control"))

	w = doForm(r, http.MethodPost, "/app.js", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doForm(r, http.MethodGet, "/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found.")
}
