package posts_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/courtside/internal/posts"
)

type memRepo struct {
	rows   map[int64]*posts.Post
	nextID int64
}

func newMemRepo() *memRepo {
	return &memRepo{rows: make(map[int64]*posts.Post), nextID: 1}
}

func (m *memRepo) ListAll(ctx context.Context) ([]posts.Post, error) {
	all := make([]posts.Post, 0, len(m.rows))
	for id := int64(1); id < m.nextID; id++ {
		if post, ok := m.rows[id]; ok {
			all = append(all, *post)
		}
	}
	return all, nil
}

func (m *memRepo) ListByUser(ctx context.Context, userID int64) ([]posts.Post, error) {
	var all []posts.Post
	for id := int64(1); id < m.nextID; id++ {
		if post, ok := m.rows[id]; ok && post.UserID != nil && *post.UserID == userID {
			all = append(all, *post)
		}
	}
	return all, nil
}

func (m *memRepo) FindByID(ctx context.Context, id int64) (*posts.Post, error) {
	post, ok := m.rows[id]
	if !ok {
		return nil, posts.ErrNotFound
	}
	copied := *post
	return &copied, nil
}

func (m *memRepo) Insert(ctx context.Context, post posts.Post) (*posts.Post, error) {
	post.ID = m.nextID
	post.DatePublished = time.Now().UTC()
	m.nextID++
	m.rows[post.ID] = &post
	return &post, nil
}

func (m *memRepo) Update(ctx context.Context, id int64, req posts.UpdatePostRequest) error {
	post, ok := m.rows[id]
	if !ok {
		return posts.ErrNotFound
	}
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	return nil
}

func (m *memRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return posts.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

var _ posts.Repository = (*memRepo)(nil)

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func passAuth(next http.Handler) http.Handler { return next }

func newRouter(repo posts.Repository) (http.Handler, *posts.Handler) {
	logger := slog.New(slog.NewTextHandler(nopWriter{}, nil))
	handler := posts.NewHandler(logger, posts.NewService(repo), passAuth, false)

	r := chi.NewRouter()
	r.Route("/api/posts", handler.MountRoutes)
	r.Get("/api/users/{user_id}/posts", handler.ListByUser)
	return r, handler
}

func doJSON(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func TestListPostsEmpty(t *testing.T) {
	router, _ := newRouter(newMemRepo())

	res := doJSON(router, http.MethodGet, "/api/posts", "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `[]`, res.Body.String())
}

func TestCreatePost(t *testing.T) {
	router, _ := newRouter(newMemRepo())

	res := doJSON(router, http.MethodPost, "/api/posts",
		`{"title":"Test New Post","content":"Test new post content","user_id":1}`)
	require.Equal(t, http.StatusCreated, res.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "Test New Post", body["title"])
	assert.EqualValues(t, 1, body["id"])
	assert.Equal(t, "/api/posts/1", res.Header().Get("Location"))
}

func TestCreatePostMissingFields(t *testing.T) {
	for _, tt := range []struct {
		field string
		body  string
	}{
		{"title", `{"content":"some content"}`},
		{"content", `{"title":"some title"}`},
	} {
		t.Run(tt.field, func(t *testing.T) {
			router, _ := newRouter(newMemRepo())

			res := doJSON(router, http.MethodPost, "/api/posts", tt.body)
			require.Equal(t, http.StatusBadRequest, res.Code)
			assert.JSONEq(t,
				`{"error":{"message":"Missing '`+tt.field+`' in request body"}}`,
				res.Body.String())
		})
	}
}

func TestGetPostStripsScriptContent(t *testing.T) {
	repo := newMemRepo()
	_, err := repo.Insert(context.Background(), posts.Post{
		Title:   `Beware this malicious thing <script>alert("xss");</script>`,
		Content: `Pure evil vile image <img src="https://url.to.file.which/does-not.exist">. But not <strong>all</strong> bad.`,
	})
	require.NoError(t, err)
	router, _ := newRouter(repo)

	res := doJSON(router, http.MethodGet, "/api/posts/1", "")
	require.Equal(t, http.StatusOK, res.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	title, _ := body["title"].(string)
	content, _ := body["content"].(string)
	assert.NotContains(t, title, "<script>")
	assert.Contains(t, title, "Beware this malicious thing")
	assert.Contains(t, content, "<strong>all</strong>")
	assert.NotContains(t, content, "<script>")
}

func TestListPostsSanitizesUniformly(t *testing.T) {
	repo := newMemRepo()
	_, err := repo.Insert(context.Background(), posts.Post{
		Title:   `<script>alert(1)</script>clean`,
		Content: "fine",
	})
	require.NoError(t, err)
	router, _ := newRouter(repo)

	res := doJSON(router, http.MethodGet, "/api/posts", "")
	require.Equal(t, http.StatusOK, res.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &list))
	require.Len(t, list, 1)
	title, _ := list[0]["title"].(string)
	assert.NotContains(t, title, "<script>")
	assert.Contains(t, title, "clean")
}

func TestGetPostNotFound(t *testing.T) {
	router, _ := newRouter(newMemRepo())

	res := doJSON(router, http.MethodGet, "/api/posts/42", "")
	require.Equal(t, http.StatusNotFound, res.Code)
	assert.JSONEq(t, `{"error":{"message":"Post doesn't exist"}}`, res.Body.String())
}

func TestUpdatePost(t *testing.T) {
	repo := newMemRepo()
	_, err := repo.Insert(context.Background(), posts.Post{Title: "old", Content: "old content"})
	require.NoError(t, err)
	router, _ := newRouter(repo)

	res := doJSON(router, http.MethodPatch, "/api/posts/1", `{"title":"new"}`)
	require.Equal(t, http.StatusNoContent, res.Code)
	assert.Equal(t, "new", repo.rows[1].Title)
	assert.Equal(t, "old content", repo.rows[1].Content)
}

func TestUpdatePostRequiresAField(t *testing.T) {
	repo := newMemRepo()
	_, err := repo.Insert(context.Background(), posts.Post{Title: "old", Content: "old content"})
	require.NoError(t, err)
	router, _ := newRouter(repo)

	res := doJSON(router, http.MethodPatch, "/api/posts/1", `{}`)
	require.Equal(t, http.StatusBadRequest, res.Code)
	assert.JSONEq(t,
		`{"error":{"message":"Request body must contain either 'title' or 'content'"}}`,
		res.Body.String())
}

func TestDeletePost(t *testing.T) {
	repo := newMemRepo()
	_, err := repo.Insert(context.Background(), posts.Post{Title: "t", Content: "c"})
	require.NoError(t, err)
	router, _ := newRouter(repo)

	res := doJSON(router, http.MethodDelete, "/api/posts/1", "")
	require.Equal(t, http.StatusNoContent, res.Code)

	res = doJSON(router, http.MethodDelete, "/api/posts/1", "")
	require.Equal(t, http.StatusNotFound, res.Code)
}

func TestListPostsByUser(t *testing.T) {
	repo := newMemRepo()
	owner := int64(1)
	other := int64(2)
	_, _ = repo.Insert(context.Background(), posts.Post{Title: "mine", Content: "c", UserID: &owner})
	_, _ = repo.Insert(context.Background(), posts.Post{Title: "theirs", Content: "c", UserID: &other})
	router, _ := newRouter(repo)

	res := doJSON(router, http.MethodGet, "/api/users/1/posts", "")
	require.Equal(t, http.StatusOK, res.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "mine", list[0]["title"])
}
