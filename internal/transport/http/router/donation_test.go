package router_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"go-charity-backend/internal/domain"
	"go-charity-backend/pkg/utils"
)

func TestDonationCreateAndList(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/donations", gin.H{
		"type":    "cash",
		"name":    "Alice",
		"email":   "alice@example.com",
		"amount":  50.0,
		"details": "123 Main St",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[struct {
		Message  string          `json:"message"`
		Donation domain.Donation `json:"donation"`
	}](t, w)
	require.Equal(t, "Donation saved successfully", created.Message)
	require.NotEmpty(t, created.Donation.ID)
	require.Equal(t, "cash", created.Donation.Type)
	require.Equal(t, 50.0, created.Donation.Amount)

	w = e.do(t, http.MethodGet, "/donations", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]domain.Donation](t, w)
	require.Len(t, list, 1)
	require.Equal(t, created.Donation.ID, list[0].ID)
	require.Equal(t, "Alice", list[0].Name)
}

func TestDonationListNewestFirst(t *testing.T) {
	e := newEnv(t)
	for _, name := range []string{"first", "second", "third"} {
		w := e.do(t, http.MethodPost, "/donations", gin.H{
			"type": "items", "name": name, "email": name + "@example.com", "items": "clothes",
		}, "")
		require.Equal(t, http.StatusCreated, w.Code)
	}
	list := decode[[]domain.Donation](t, e.do(t, http.MethodGet, "/donations", nil, ""))
	require.Len(t, list, 3)
	require.Equal(t, "third", list[0].Name)
	require.Equal(t, "first", list[2].Name)
}

func TestDonationCreateValidation(t *testing.T) {
	e := newEnv(t)

	cases := []gin.H{
		{"name": "Bob", "email": "bob@example.com"},                   // no type
		{"type": "cash", "email": "bob@example.com"},                  // no name
		{"type": "cash", "name": "Bob"},                               // no email
		{"type": "stocks", "name": "Bob", "email": "bob@example.com"}, // bad enum
	}
	for _, body := range cases {
		w := e.do(t, http.MethodPost, "/donations", body, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	}

	// Nothing was persisted.
	list := decode[[]domain.Donation](t, e.do(t, http.MethodGet, "/donations", nil, ""))
	require.Empty(t, list)
}

func TestDonationAmountAndItemsBothAllowed(t *testing.T) {
	e := newEnv(t)
	// The schema never enforced exclusivity between amount and items.
	w := e.do(t, http.MethodPost, "/donations", gin.H{
		"type": "cash", "name": "Cara", "email": "cara@example.com",
		"amount": 25.0, "items": "books",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	out := decode[struct {
		Donation domain.Donation `json:"donation"`
	}](t, w)
	require.Equal(t, 25.0, out.Donation.Amount)
	require.Equal(t, "books", out.Donation.Items)
}

func TestDonationByID(t *testing.T) {
	e := newEnv(t)
	w := e.do(t, http.MethodPost, "/donations", gin.H{
		"type": "cash", "name": "Dan", "email": "dan@example.com", "amount": 10.0,
	}, "")
	id := decode[struct {
		Donation domain.Donation `json:"donation"`
	}](t, w).Donation.ID

	w = e.do(t, http.MethodGet, "/donations/"+id, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Dan", decode[domain.Donation](t, w).Name)

	// Malformed id is rejected before any lookup.
	w = e.do(t, http.MethodGet, "/donations/not-a-uuid", nil, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Invalid ID", decode[map[string]string](t, w)["error"])

	// Well-formed but unknown id.
	w = e.do(t, http.MethodGet, "/donations/"+utils.NewID(), nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDonationPatchMerges(t *testing.T) {
	e := newEnv(t)
	w := e.do(t, http.MethodPost, "/donations", gin.H{
		"type": "cash", "name": "Eve", "email": "eve@example.com", "amount": 5.0,
	}, "")
	id := decode[struct {
		Donation domain.Donation `json:"donation"`
	}](t, w).Donation.ID

	w = e.do(t, http.MethodPatch, "/donations/"+id, gin.H{"amount": 99.0}, "")
	require.Equal(t, http.StatusOK, w.Code)
	patched := decode[domain.Donation](t, w)
	require.Equal(t, 99.0, patched.Amount)
	require.Equal(t, "Eve", patched.Name) // untouched fields survive

	// A patch may not break an invariant.
	w = e.do(t, http.MethodPatch, "/donations/"+id, gin.H{"type": "gold"}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = e.do(t, http.MethodPatch, "/donations/"+utils.NewID(), gin.H{"amount": 1.0}, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDonationDelete(t *testing.T) {
	e := newEnv(t)
	w := e.do(t, http.MethodPost, "/donations", gin.H{
		"type": "items", "name": "Fred", "email": "fred@example.com", "items": "toys",
	}, "")
	id := decode[struct {
		Donation domain.Donation `json:"donation"`
	}](t, w).Donation.ID

	w = e.do(t, http.MethodDelete, "/donations/"+id, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Donation deleted successfully", decode[map[string]string](t, w)["message"])

	w = e.do(t, http.MethodGet, "/donations/"+id, nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = e.do(t, http.MethodDelete, "/donations/"+id, nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
