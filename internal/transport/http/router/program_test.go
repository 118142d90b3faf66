package router_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"go-charity-backend/internal/domain"
)

func programBody(title string, date time.Time) gin.H {
	return gin.H{
		"title":       title,
		"description": "a program",
		"image":       "https://img.example.com/p.jpg",
		"date":        date.Format(time.RFC3339),
		"content":     "long form body",
	}
}

func TestProgramCreateDefaultsActive(t *testing.T) {
	e := newEnv(t)
	w := e.do(t, http.MethodPost, "/admin/programs", programBody("Food Drive", time.Now()), "")
	require.Equal(t, http.StatusCreated, w.Code)
	p := decode[domain.Program](t, w)
	require.Equal(t, domain.ProgramActive, p.Status)
	require.NotEmpty(t, p.ID)
}

func TestProgramCreateValidation(t *testing.T) {
	e := newEnv(t)

	base := programBody("X", time.Now())
	for _, field := range []string{"title", "description", "image", "date", "content"} {
		body := gin.H{}
		for k, v := range base {
			if k != field {
				body[k] = v
			}
		}
		w := e.do(t, http.MethodPost, "/admin/programs", body, "")
		require.Equalf(t, http.StatusBadRequest, w.Code, "expected 400 without %s", field)
	}

	bad := programBody("X", time.Now())
	bad["status"] = "Paused"
	w := e.do(t, http.MethodPost, "/admin/programs", bad, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	list := decode[[]domain.Program](t, e.do(t, http.MethodGet, "/admin/programs", nil, ""))
	require.Empty(t, list)
}

func TestProgramListDateAscending(t *testing.T) {
	e := newEnv(t)
	base := time.Date(2031, 5, 1, 0, 0, 0, 0, time.UTC)
	for _, d := range []int{30, 0, 10} {
		w := e.do(t, http.MethodPost, "/admin/programs", programBody("p", base.AddDate(0, 0, d)), "")
		require.Equal(t, http.StatusCreated, w.Code)
	}
	list := decode[[]domain.Program](t, e.do(t, http.MethodGet, "/admin/programs", nil, ""))
	require.Len(t, list, 3)
	require.True(t, list[0].Date.Before(list[1].Date))
	require.True(t, list[1].Date.Before(list[2].Date))
}

func TestProgramPatchRevalidates(t *testing.T) {
	e := newEnv(t)
	w := e.do(t, http.MethodPost, "/admin/programs", programBody("Tutoring", time.Now()), "")
	id := decode[domain.Program](t, w).ID

	w = e.do(t, http.MethodPatch, "/admin/programs/"+id, gin.H{"status": "Inactive"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, domain.ProgramInactive, decode[domain.Program](t, w).Status)

	// Schema constraints re-run on update.
	w = e.do(t, http.MethodPatch, "/admin/programs/"+id, gin.H{"title": ""}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	w = e.do(t, http.MethodPatch, "/admin/programs/"+id, gin.H{"status": "Archived"}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProgramDelete(t *testing.T) {
	e := newEnv(t)
	w := e.do(t, http.MethodPost, "/admin/programs", programBody("Cleanup", time.Now()), "")
	id := decode[domain.Program](t, w).ID

	w = e.do(t, http.MethodDelete, "/admin/programs/"+id, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Program deleted successfully", decode[map[string]string](t, w)["message"])

	w = e.do(t, http.MethodGet, "/admin/programs/"+id, nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
