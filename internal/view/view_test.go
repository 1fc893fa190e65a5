package view

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/postboard/internal/model"
)

func newRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	r, err := NewTemplateRenderer()
	require.NoError(t, err)
	return r
}

func TestRender_Index(t *testing.T) {
	r := newRenderer(t)
	posts := []*model.Post{
		{ID: "a1", Username: "Anish", Content: "coding"},
		{ID: "b2", Username: "Aryan", Content: "Flutter"},
	}

	html, err := r.Render(PageIndex, map[string]any{"posts": posts})
	require.NoError(t, err)
	out := string(html)
	assert.Contains(t, out, "@Anish")
	assert.Contains(t, out, `href="/posts/b2"`)
	assert.NotContains(t, out, "No posts yet.")
}

func TestRender_IndexEmpty(t *testing.T) {
	r := newRenderer(t)

	html, err := r.Render(PageIndex, map[string]any{"posts": []*model.Post{}})
	require.NoError(t, err)
	assert.Contains(t, string(html), "No posts yet.")
}

func TestRender_EscapesUserText(t *testing.T) {
	r := newRenderer(t)
	post := &model.Post{ID: "x", Username: "<b>mallory</b>", Content: `<script>alert("hi")</script>`}

	html, err := r.Render(PageShow, map[string]any{"post": post})
	require.NoError(t, err)
	out := string(html)
	assert.NotContains(t, out, "<script>alert")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "&lt;b&gt;mallory&lt;/b&gt;")
}

func TestRender_ShowAndEditTolerateAbsentPost(t *testing.T) {
	r := newRenderer(t)

	for _, page := range []string{PageShow, PageEdit} {
		html, err := r.Render(page, map[string]any{"post": (*model.Post)(nil)})
		require.NoError(t, err, page)
		assert.Contains(t, string(html), "Post not found.", page)
	}
}

func TestRender_EditPrefillsContent(t *testing.T) {
	r := newRenderer(t)
	post := &model.Post{ID: "e1", Username: "Adish", Content: "I love DSA"}

	html, err := r.Render(PageEdit, map[string]any{"post": post})
	require.NoError(t, err)
	out := string(html)
	assert.Contains(t, out, `action="/posts/e1/edit"`)
	assert.Contains(t, out, "I love DSA</textarea>")
}

func TestRender_NewAndError(t *testing.T) {
	r := newRenderer(t)

	html, err := r.Render(PageNew, nil)
	require.NoError(t, err)
	assert.Contains(t, string(html), `name="username"`)

	html, err = r.Render(PageError, map[string]any{"status": 404, "message": "post not found"})
	require.NoError(t, err)
	assert.Contains(t, string(html), "post not found")
}

func TestRender_UnknownPage(t *testing.T) {
	r := newRenderer(t)
	_, err := r.Render("missing", nil)
	assert.Error(t, err)
}

func TestPublic(t *testing.T) {
	css, err := fs.ReadFile(Public(), "style.css")
	require.NoError(t, err)
	assert.NotEmpty(t, css)
}
