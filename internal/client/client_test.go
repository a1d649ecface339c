package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dom/hxh-catalog/internal/client"
	"github.com/dom/hxh-catalog/internal/domain"
	"github.com/dom/hxh-catalog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubServer(t *testing.T, status int, body string) *client.Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return client.New(srv.URL)
}

func TestClient_APIError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "server error string",
			status:      http.StatusBadRequest,
			body:        `{"error":"Name and image_url required"}`,
			wantMessage: "Name and image_url required",
		},
		{
			name:        "not found",
			status:      http.StatusNotFound,
			body:        `{"error":"Character not found"}`,
			wantMessage: "Character not found",
		},
		{
			name:        "no json body",
			status:      http.StatusBadGateway,
			body:        `<html>bad gateway</html>`,
			wantMessage: "request failed with status 502",
		},
		{
			name:        "json without error",
			status:      http.StatusInternalServerError,
			body:        `{}`,
			wantMessage: "request failed with status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := stubServer(t, tt.status, tt.body)

			_, err := c.Get(context.Background(), "1")
			require.Error(t, err)

			var apiErr *client.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Error())
			assert.Equal(t, tt.status == http.StatusNotFound, client.IsNotFound(err))
		})
	}
}

func TestClient_Search(t *testing.T) {
	list, err := json.Marshal([]domain.Character{
		{ID: "1", Name: "Gon Freecss"},
		{ID: "2", Name: "Killua Zoldyck"},
		{ID: "3", Name: "Illumi Zoldyck"},
	})
	require.NoError(t, err)

	c := stubServer(t, http.StatusOK, string(list))

	tests := []struct {
		query   string
		wantIDs []string
	}{
		{query: "", wantIDs: []string{"1", "2", "3"}},
		{query: "zoldyck", wantIDs: []string{"2", "3"}},
		{query: "KILL", wantIDs: []string{"2"}},
		{query: "  gon ", wantIDs: []string{"1"}},
		{query: "Kurapika", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			matches, err := c.Search(context.Background(), tt.query)
			require.NoError(t, err)

			ids := make([]string, 0, len(matches))
			for _, m := range matches {
				ids = append(ids, m.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestClient_WriteOmitsServerFields(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"9","name":"Gon","image_url":"u"}`))
	}))
	t.Cleanup(srv.Close)

	c := client.New(srv.URL + "/")
	created, err := c.Create(context.Background(), &domain.Character{ID: "stale", Name: "Gon", ImageURL: "u"})
	require.NoError(t, err)

	assert.Equal(t, "9", created.ID)
	assert.Equal(t, "", received["id"])
	assert.NotContains(t, received, "created_at")
	assert.Equal(t, "Gon", received["name"])
}

func TestClient_AgainstBothBackends(t *testing.T) {
	for _, backend := range testutil.Backends {
		t.Run(string(backend), func(t *testing.T) {
			ts := testutil.NewTestServer(t, backend)
			c := client.New(ts.BaseURL())
			ctx := context.Background()

			info, err := c.Info(ctx)
			require.NoError(t, err)
			assert.Equal(t, string(backend), info.Backend)

			seeded, err := c.Seed(ctx, false)
			require.NoError(t, err)
			require.Len(t, seeded, len(client.SeedCharacters))

			// Seeding again without reset duplicates the dataset.
			_, err = c.Seed(ctx, false)
			require.NoError(t, err)
			all, err := c.List(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 2*len(client.SeedCharacters))

			seeded, err = c.Seed(ctx, true)
			require.NoError(t, err)
			all, err = c.List(ctx)
			require.NoError(t, err)
			require.Len(t, all, len(client.SeedCharacters))
			for i, character := range all {
				assert.Equal(t, seeded[i].ID, character.ID)
				testutil.AssertSameFields(t, &client.SeedCharacters[i], character)
			}

			troupe, err := c.Search(ctx, "meteor")
			require.NoError(t, err)
			assert.Empty(t, troupe, "search matches names only")

			chrollo, err := c.Search(ctx, "chrollo")
			require.NoError(t, err)
			require.Len(t, chrollo, 1)

			updated := *chrollo[0]
			updated.Notes = nil
			updated.Age = nil
			got, err := c.Update(ctx, chrollo[0].ID, &updated)
			require.NoError(t, err)
			assert.Nil(t, got.Notes)
			assert.Nil(t, got.Age)
			assert.Equal(t, chrollo[0].ID, got.ID)

			result, err := c.Delete(ctx, got.ID)
			require.NoError(t, err)
			assert.Equal(t, "Character deleted", result.Message)
			assert.Equal(t, "Chrollo Lucilfer", result.Deleted.Name)

			_, err = c.Get(ctx, got.ID)
			assert.True(t, client.IsNotFound(err))
		})
	}
}
