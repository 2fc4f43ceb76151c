package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appConfig "github.com/pokewiki/pokewiki/internal/config"
)

const pokemonPayload = `{
	"id": 25,
	"name": "pikachu",
	"sprites": {"other": {"official-artwork": {"front_default": "https://img.example/25.png"}}},
	"types": [{"type": {"name": "electric"}}],
	"abilities": [{"ability": {"name": "static"}}, {"ability": {"name": "lightning-rod"}}]
}`

const speciesPayload = `{
	"flavor_text_entries": [
		{"flavor_text": "Texte en français.", "language": {"name": "fr"}},
		{"flavor_text": "When several of\nthese POKMON\fgather...", "language": {"name": "en"}}
	]
}`

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(appConfig.CatalogConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}), srv
}

func TestClient_Pokemon(t *testing.T) {
	t.Run("parses the consumed subset", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/pokemon/25", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(pokemonPayload))
		})
		mux.HandleFunc("/pokemon-species/25", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(speciesPayload))
		})
		client, srv := newTestClient(mux)
		defer srv.Close()

		p, err := client.Pokemon(context.Background(), 25)

		require.NoError(t, err)
		assert.Equal(t, 25, p.ID)
		assert.Equal(t, "pikachu", p.Name)
		assert.Equal(t, "https://img.example/25.png", p.Image)
		assert.Equal(t, []string{"electric"}, p.Types)
		assert.Equal(t, []string{"static", "lightning-rod"}, p.Abilities)
		assert.Equal(t, "When several of these POKMON gather...", p.FlavorText)
	})

	t.Run("missing species still yields the snapshot fields", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/pokemon/25", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(pokemonPayload))
		})
		mux.HandleFunc("/pokemon-species/25", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		client, srv := newTestClient(mux)
		defer srv.Close()

		p, err := client.Pokemon(context.Background(), 25)

		require.NoError(t, err)
		assert.Equal(t, "pikachu", p.Name)
		assert.Empty(t, p.FlavorText)
	})

	t.Run("unknown id", func(t *testing.T) {
		client, srv := newTestClient(http.NotFoundHandler())
		defer srv.Close()

		p, err := client.Pokemon(context.Background(), 99999)

		assert.Nil(t, p)
		assert.Error(t, err)
	})

	t.Run("context cancellation", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/pokemon/25", func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(pokemonPayload))
		})
		client, srv := newTestClient(mux)
		defer srv.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := client.Pokemon(ctx, 25)

		assert.Error(t, err)
	})
}
