package router_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"go-charity-backend/internal/domain"
)

func newsBody(title string) gin.H {
	return gin.H{
		"title":    title,
		"excerpt":  "short summary",
		"content":  "full article body",
		"image":    "https://img.example.com/n.jpg",
		"category": "Community",
	}
}

func TestNewsCreateDateDefaultsToNow(t *testing.T) {
	e := newEnv(t)
	before := time.Now()
	w := e.do(t, http.MethodPost, "/admin/news", newsBody("Opening Day"), "")
	require.Equal(t, http.StatusCreated, w.Code)
	n := decode[domain.NewsArticle](t, w)
	require.NotEmpty(t, n.ID)
	require.False(t, n.Date.Before(before.Add(-time.Second)))
}

func TestNewsCreateValidation(t *testing.T) {
	e := newEnv(t)
	base := newsBody("X")
	for _, field := range []string{"title", "excerpt", "content", "image", "category"} {
		body := gin.H{}
		for k, v := range base {
			if k != field {
				body[k] = v
			}
		}
		w := e.do(t, http.MethodPost, "/admin/news", body, "")
		require.Equalf(t, http.StatusBadRequest, w.Code, "expected 400 without %s", field)
	}
	list := decode[[]domain.NewsArticle](t, e.do(t, http.MethodGet, "/admin/news", nil, ""))
	require.Empty(t, list)
}

func TestNewsListDateDescending(t *testing.T) {
	e := newEnv(t)
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, d := range []int{0, 20, 10} {
		body := newsBody("n")
		body["date"] = base.AddDate(0, 0, d).Format(time.RFC3339)
		w := e.do(t, http.MethodPost, "/admin/news", body, "")
		require.Equal(t, http.StatusCreated, w.Code)
	}
	list := decode[[]domain.NewsArticle](t, e.do(t, http.MethodGet, "/admin/news", nil, ""))
	require.Len(t, list, 3)
	require.True(t, list[0].Date.After(list[1].Date))
	require.True(t, list[1].Date.After(list[2].Date))
}

func TestNewsPatchAndDelete(t *testing.T) {
	e := newEnv(t)
	w := e.do(t, http.MethodPost, "/admin/news", newsBody("Original"), "")
	id := decode[domain.NewsArticle](t, w).ID

	w = e.do(t, http.MethodPatch, "/admin/news/"+id, gin.H{"title": "Updated"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	patched := decode[domain.NewsArticle](t, w)
	require.Equal(t, "Updated", patched.Title)
	require.Equal(t, "short summary", patched.Excerpt)

	w = e.do(t, http.MethodPatch, "/admin/news/"+id, gin.H{"category": ""}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = e.do(t, http.MethodDelete, "/admin/news/"+id, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Article deleted successfully", decode[map[string]string](t, w)["message"])

	w = e.do(t, http.MethodDelete, "/admin/news/"+id, nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
