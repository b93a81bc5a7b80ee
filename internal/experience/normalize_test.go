package experience

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-coach/internal/types"
)

func TestNormalizeBullets(t *testing.T) {
	got := NormalizeBullets([]string{
		"  Led the migration to Kubernetes ",
		"",
		"   ",
		"led the migration to kubernetes",
		"Reduced p99 latency by 40%",
	})

	assert.Equal(t, []string{"Led the migration to Kubernetes", "Reduced p99 latency by 40%"}, got)
	assert.Empty(t, NormalizeBullets(nil))
	assert.NotNil(t, NormalizeBullets(nil))
}

func TestNormalizeEntries(t *testing.T) {
	entries := []types.Experience{
		{ID: " e1 ", Company: "Acme", BulletPoints: []string{"Built it", "built it "}},
		{ID: "e2", Company: "Globex"},
	}

	require.NoError(t, NormalizeEntries(entries))
	assert.Equal(t, "e1", entries[0].ID)
	assert.Equal(t, []string{"Built it"}, entries[0].BulletPoints)
	assert.Equal(t, []string{}, entries[1].BulletPoints)
}

func TestNormalizeEntries_MissingID(t *testing.T) {
	err := NormalizeEntries([]types.Experience{{ID: "e1"}, {ID: "  ", Company: "Globex"}})

	var normErr *NormalizationError
	require.ErrorAs(t, err, &normErr)
	assert.Contains(t, err.Error(), "experience entry 1 (Globex) has no id")
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "experience.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadEntries_Array(t *testing.T) {
	path := writeFile(t, `[
		{"id": "e1", "company": "Acme", "position": "Engineer", "bullet_points": ["Shipped checkout", " "]}
	]`)

	entries, err := LoadEntries(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Acme", entries[0].Company)
	assert.Equal(t, []string{"Shipped checkout"}, entries[0].BulletPoints)
}

func TestLoadEntries_Resume(t *testing.T) {
	path := writeFile(t, `{
		"personal_info": {"full_name": "Alex Morgan"},
		"experience": [
			{"id": "e1", "company": "Acme", "bullet_points": ["Increased revenue by 20%"]},
			{"id": "e2", "company": "Globex", "bullet_points": []}
		]
	}`)

	entries, err := LoadEntries(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "e2", entries[1].ID)
}

func TestLoadEntries_Errors(t *testing.T) {
	_, err := LoadEntries(filepath.Join(t.TempDir(), "missing.json"))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "failed to read file")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadEntries(writeFile(t, `{ not json`))
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "failed to unmarshal JSON")

	_, err = LoadEntries(writeFile(t, `[{"company": "Acme"}]`))
	var normErr *NormalizationError
	require.ErrorAs(t, err, &normErr)
}
