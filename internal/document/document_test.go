package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		data    string
		want    Format
		wantErr bool
	}{
		{"pdf extension", "cv.PDF", "", FormatPDF, false},
		{"html extension", "job.htm", "", FormatHTML, false},
		{"text extension", "cv.txt", "", FormatText, false},
		{"docx rejected", "cv.docx", "", "", true},
		{"sniff pdf", "upload", "%PDF-1.4\n", FormatPDF, false},
		{"sniff html", "upload", "<html><body>x</body></html>", FormatHTML, false},
		{"sniff text", "upload", "plain words", FormatText, false},
		{"sniff binary", "upload", "\x00\x01\x02\x03", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.file, []byte(tt.data))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupported)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractHTML(t *testing.T) {
	t.Parallel()

	page := `<html><head><style>p{}</style></head><body>
<nav>Home | Jobs</nav>
<h1>Data Analyst</h1>
<p>We need   SQL experience.</p>
<ul><li>Python</li><li>Excel</li></ul>
<script>var x = 1;</script>
</body></html>`

	got, err := Extract("job.html", []byte(page))
	require.NoError(t, err)
	assert.Equal(t, "Data Analyst\nWe need SQL experience.\n- Python\n- Excel", got)
}

func TestExtractText(t *testing.T) {
	t.Parallel()

	got, err := Extract("cv.txt", []byte("  Jane Doe \r\n\r\nSkills:  SQL\n"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSkills: SQL", got)
}

func TestExtractEmpty(t *testing.T) {
	t.Parallel()

	_, err := Extract("cv.txt", []byte(" \n\t\n"))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestExtractInvalidPDF(t *testing.T) {
	t.Parallel()

	_, err := Extract("cv.pdf", []byte("%PDF-1.4 not really a pdf"))
	assert.Error(t, err)
}

func TestExtractFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte("Fire Safety Officer"), 0o600))

	got, err := ExtractFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Fire Safety Officer", got)

	_, err = ExtractFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
