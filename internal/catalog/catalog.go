// Package catalog provides a read-only client for the external Pokémon
// catalog. The backend consumes it only to populate member snapshots at
// add-time; snapshots are never re-synced afterward.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	appConfig "github.com/pokewiki/pokewiki/internal/config"
)

// Pokemon is the subset of catalog data this backend consumes.
type Pokemon struct {
	ID         int
	Name       string
	Image      string
	Types      []string
	Abilities  []string
	FlavorText string
}

// Client talks to the catalog API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a catalog client from configuration.
func New(cfg appConfig.CatalogConfig) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// pokemonResponse mirrors the catalog's /pokemon/{id} payload.
type pokemonResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Sprites struct {
		Other struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
	Types []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Abilities []struct {
		Ability struct {
			Name string `json:"name"`
		} `json:"ability"`
	} `json:"abilities"`
}

// speciesResponse mirrors the catalog's /pokemon-species/{id} payload.
type speciesResponse struct {
	FlavorTextEntries []struct {
		FlavorText string `json:"flavor_text"`
		Language   struct {
			Name string `json:"name"`
		} `json:"language"`
	} `json:"flavor_text_entries"`
}

// Pokemon looks up one catalog entry by id.
func (c *Client) Pokemon(ctx context.Context, id int) (*Pokemon, error) {
	var raw pokemonResponse
	if err := c.get(ctx, fmt.Sprintf("/pokemon/%d", id), &raw); err != nil {
		return nil, err
	}

	p := &Pokemon{
		ID:    raw.ID,
		Name:  raw.Name,
		Image: raw.Sprites.Other.OfficialArtwork.FrontDefault,
	}
	for _, t := range raw.Types {
		p.Types = append(p.Types, t.Type.Name)
	}
	for _, a := range raw.Abilities {
		p.Abilities = append(p.Abilities, a.Ability.Name)
	}

	// Flavor text lives on the species resource. Missing flavor text is
	// not an error; the snapshot fields above are what matters.
	var species speciesResponse
	if err := c.get(ctx, fmt.Sprintf("/pokemon-species/%d", id), &species); err == nil {
		p.FlavorText = englishFlavorText(species)
	}

	return p, nil
}

func englishFlavorText(species speciesResponse) string {
	for _, entry := range species.FlavorTextEntries {
		if entry.Language.Name == "en" {
			return strings.Join(strings.Fields(entry.FlavorText), " ")
		}
	}
	return ""
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog returned status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode catalog response: %w", err)
	}
	return nil
}
