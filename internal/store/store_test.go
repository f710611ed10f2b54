// Package store provides SQLite-backed persistence for ingested candidates.
package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_UpsertAndFetchByName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := Candidate{
		Filename: "Sarah_Jenkins.txt",
		Name:     "Sarah Jenkins",
		Role:     "Senior Consultant",
		Content:  "Led cloud migration for a bank",
	}
	require.NoError(t, s.UpsertCandidate(ctx, c))

	got, err := s.CandidateByName(ctx, "Sarah Jenkins")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, c.Content, got.Content)
	assert.Equal(t, c.Role, got.Role)
}

func TestStore_CandidateByName_AbsentReturnsNil(t *testing.T) {
	s := newTestStore(t)

	got, err := s.CandidateByName(context.Background(), "Nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_UpsertReplacesOnSameFilename(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertCandidate(ctx, Candidate{
		Filename: "a.txt", Name: "A", Content: "old",
	}))
	require.NoError(t, s.UpsertCandidate(ctx, Candidate{
		Filename: "a.txt", Name: "A", Content: "new",
	}))

	all, err := s.AllCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "new", all[0].Content)
}

func TestStore_AllCandidates_EmptyDatabase(t *testing.T) {
	s := newTestStore(t)

	all, err := s.AllCandidates(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
