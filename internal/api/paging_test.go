package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conectavoz/conectavoz/internal/models"
)

func TestPage_UnmarshalJSON(t *testing.T) {
	t.Run("decodes paginated envelope", func(t *testing.T) {
		data := []byte(`{"count":12,"next":"http://x/api/v1/mural/posts/?page=2","previous":"","results":[{"id":1},{"id":2}]}`)

		var page Page[models.MuralPost]
		require.NoError(t, json.Unmarshal(data, &page))
		assert.Len(t, page.Results, 2)
		assert.Equal(t, 12, page.Count)
		assert.True(t, page.HasNext())
	})

	t.Run("decodes bare array", func(t *testing.T) {
		data := []byte(`[{"id":1},{"id":2},{"id":3}]`)

		var page Page[models.MuralPost]
		require.NoError(t, json.Unmarshal(data, &page))
		assert.Len(t, page.Results, 3)
		assert.Equal(t, 3, page.Count)
		assert.False(t, page.HasNext())
	})

	t.Run("empty array yields empty page", func(t *testing.T) {
		var page Page[models.User]
		require.NoError(t, json.Unmarshal([]byte(`[]`), &page))
		assert.Empty(t, page.Results)
		assert.Zero(t, page.Count)
	})
}
