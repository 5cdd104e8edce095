package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	keyFile := filepath.Join(dir, "key")
	require.NoError(t, os.WriteFile(keyFile, []byte(" from-file \n"), 0o600))
	t.Setenv("CV_SCORER_TEST_KEY", "from-env")

	tests := []struct {
		name string
		src  Source
		want string
	}{
		{"file wins", Source{File: keyFile, Value: "inline", Env: "CV_SCORER_TEST_KEY"}, "from-file"},
		{"inline over env", Source{Value: " inline ", Env: "CV_SCORER_TEST_KEY"}, "inline"},
		{"env fallback", Source{Env: "CV_SCORER_TEST_KEY"}, "from-env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(empty, []byte("\n"), 0o600))
	t.Setenv("CV_SCORER_TEST_EMPTY", "")

	_, err := Load(Source{Name: "gemini api key", File: empty})
	assert.ErrorContains(t, err, `gemini api key file "`+empty+`" is empty`)

	_, err = Load(Source{Name: "openai api key", File: filepath.Join(dir, "missing")})
	assert.ErrorContains(t, err, "reading openai api key from file")

	_, err = Load(Source{Env: "CV_SCORER_TEST_EMPTY"})
	assert.ErrorContains(t, err, "secret is not configured (CV_SCORER_TEST_EMPTY is empty)")

	_, err = Load(Source{})
	assert.EqualError(t, err, "secret is not configured")
}
