package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/pandda/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteJSON(rec, http.StatusCreated, map[string]string{"label": "Vencidos > 30 dias & notificados"})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"label":"Vencidos > 30 dias & notificados"}`, rec.Body.String())
	require.NotContains(t, rec.Body.String(), `\u003e`)
}

func TestDecodeJSON(t *testing.T) {
	type plan struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	decode := func(body string) (plan, error) {
		var p plan
		err := httpx.DecodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)), &p)
		return p, err
	}

	t.Run("valid", func(t *testing.T) {
		p, err := decode(`{"name":"Básico","price":29.9}` + "\n")
		require.NoError(t, err)
		require.Equal(t, "Básico", p.Name)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := decode("")
		require.ErrorIs(t, err, httpx.ErrEmptyBody)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := decode(`{"name":"` + strings.Repeat("a", httpx.MaxBodyBytes) + `"}`)
		require.ErrorIs(t, err, httpx.ErrBodyTooLarge)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := decode(`{"nome":"Básico"}`)
		require.Error(t, err)
		require.NotErrorIs(t, err, httpx.ErrEmptyBody)
	})

	t.Run("trailing data", func(t *testing.T) {
		_, err := decode(`{"name":"a"}{"name":"b"}`)
		require.Error(t, err)
	})
}
