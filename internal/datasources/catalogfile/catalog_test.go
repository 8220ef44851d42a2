package catalogfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipes.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"id": "r2", "ingredients": ["beef"], "category": "stew", "cook_time_minutes": 90},
		{"id": "r1", "ingredients": ["leek", "potato"], "category": "soup", "tags": ["vegetarian"], "difficulty": "easy"}
	]`)

	catalog, err := Load(path)
	require.NoError(t, err)

	ids, err := catalog.ListRecipeIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r2"}, ids)

	recipes, err := catalog.FetchRecipesByID(context.Background(), []string{"r1", "missing", "r2"})
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "r1", recipes[0].ID)
	assert.Equal(t, []string{"vegetarian"}, recipes[0].Tags)
	assert.Equal(t, "r2", recipes[1].ID)
	require.NotNil(t, recipes[1].CookTimeMinutes)
	assert.Equal(t, 90, *recipes[1].CookTimeMinutes)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name     string
		contents string
	}{
		{name: "malformed_json", contents: `{"not": "an array"`},
		{name: "missing_id", contents: `[{"category": "soup"}]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeCatalogFile(t, tc.contents))
			assert.Error(t, err)
		})
	}

	t.Run("missing_file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
}
