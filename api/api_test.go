package api_test

import (
	"net/http"
	"testing"

	"grameego/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("should parse and validate the embedded contract", func(t *testing.T) {
		doc, err := api.Load()
		require.NoError(t, err)
		assert.Equal(t, "GrameeGo Delivery API", doc.Info.Title)
	})

	t.Run("should document every route the server registers", func(t *testing.T) {
		doc, err := api.Load()
		require.NoError(t, err)

		expected := map[string][]string{
			"/auth/signup":                  {http.MethodPost},
			"/auth/login":                   {http.MethodPost},
			"/auth/me":                      {http.MethodGet},
			"/shops":                        {http.MethodGet},
			"/shops/{id}":                   {http.MethodGet},
			"/deliveries":                   {http.MethodPost},
			"/deliveries/mine":              {http.MethodGet},
			"/deliveries/available":         {http.MethodGet},
			"/deliveries/assigned-to-me":    {http.MethodGet},
			"/deliveries/{id}":              {http.MethodGet, http.MethodDelete},
			"/deliveries/{id}/accept":       {http.MethodPost},
			"/deliveries/{id}/unassign":     {http.MethodPost},
			"/deliveries/{id}/status":       {http.MethodPatch},
			"/shops/my/orders":              {http.MethodGet},
			"/shops/my/orders/{id}/confirm": {http.MethodPatch},
		}

		paths := doc.Paths.Map()
		require.Len(t, paths, len(expected))

		for path, methods := range expected {
			item := doc.Paths.Find(path)
			require.NotNil(t, item, "path %s is missing from the contract", path)
			for _, method := range methods {
				assert.NotNil(t, item.GetOperation(method),
					"%s %s is missing from the contract", method, path)
			}
		}
	})
}
