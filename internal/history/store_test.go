package history

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/cv-scorer/internal/analyzer"
	"github.com/spigell/cv-scorer/internal/cache"
)

func openMemory(t *testing.T) *Store {
	t.Helper()

	s, err := Open(DriverSQLite, "file:"+t.Name()+"?mode=memory&cache=shared", false, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordStoresReport(t *testing.T) {
	s := openMemory(t)
	fixed := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	id := uuid.NewString()
	req := analyzer.Request{CVText: "cv", Industry: "technology", Role: "data analyst"}
	report := &analyzer.Report{
		Score:       72,
		JobFitScore: 80,
		Strengths:   []string{"SQL"},
		Metadata: analyzer.Metadata{
			AnalysisID: id,
			MatchType:  "direct",
			AIEnhanced: true,
		},
	}

	require.NoError(t, s.Record(context.Background(), req, report))

	recs, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	got := recs[0]
	assert.Equal(t, id, got.ID.String())
	assert.Equal(t, cache.Key("cv", "technology", "data analyst", false, ""), got.CacheKey)
	assert.Equal(t, 72, got.Score)
	assert.Equal(t, 80, got.JobFit)
	assert.Equal(t, "direct", got.MatchType)
	assert.True(t, got.AIEnhanced)
	assert.False(t, got.Fallback)
	assert.True(t, fixed.Equal(got.CreatedAt))

	var decoded analyzer.Report
	require.NoError(t, json.Unmarshal([]byte(got.Report), &decoded))
	assert.Equal(t, []string{"SQL"}, decoded.Strengths)
}

func TestRecordGeneratesIDForNonUUID(t *testing.T) {
	s := openMemory(t)

	report := &analyzer.Report{Metadata: analyzer.Metadata{AnalysisID: "id-1"}}
	require.NoError(t, s.Record(context.Background(), analyzer.Request{}, report))
	require.NoError(t, s.Record(context.Background(), analyzer.Request{}, report))

	recs, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestRecordRejectsNilReport(t *testing.T) {
	s := openMemory(t)
	assert.Error(t, s.Record(context.Background(), analyzer.Request{}, nil))
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("mysql", "dsn", false, nil)
	assert.ErrorContains(t, err, "unsupported history driver")
}

func TestStoreRecordsThroughAnalyzer(t *testing.T) {
	s := openMemory(t)

	a := analyzer.New(analyzer.Deps{Recorder: s})
	r := a.Analyze(context.Background(), analyzer.Request{CVText: "Fire Safety Officer, 8 years, NEBOSH certified"})

	recs, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, r.Metadata.AnalysisID, recs[0].ID.String())
	assert.Equal(t, r.Score, recs[0].Score)
}
