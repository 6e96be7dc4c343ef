package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathlab/internal/store"
)

type fakeEvents struct {
	events []store.LLMRequestEventData
	err    error
}

func (f *fakeEvents) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	f.events = append(f.events, data)
	return f.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	rec := &fakeEvents{}
	mock := NewMockProvider(MockResponse{Content: okContent, Usage: Usage{InputTokens: 11, OutputTokens: 7}})
	p := WithLogging(mock, rec, nil)

	_, err := p.Generate(WithPurpose(context.Background(), "explain"), prompt())
	require.NoError(t, err)
	require.Len(t, rec.events, 1)

	e := rec.events[0]
	assert.Equal(t, "mock", e.Provider)
	assert.Equal(t, "explain", e.Purpose)
	assert.Equal(t, 11, e.InputTokens)
	assert.Equal(t, 7, e.OutputTokens)
	assert.True(t, e.Success)
	assert.Empty(t, e.ErrorMessage)
}

func TestLogging_RecordsFailure(t *testing.T) {
	rec := &fakeEvents{}
	p := WithLogging(NewMockProvider(MockResponse{Err: errors.New("boom")}), rec, nil)

	_, err := p.Generate(context.Background(), prompt())
	require.Error(t, err)
	require.Len(t, rec.events, 1)
	assert.False(t, rec.events[0].Success)
	assert.Equal(t, "boom", rec.events[0].ErrorMessage)
	assert.Equal(t, "unknown", rec.events[0].Purpose)
}

func TestLogging_RecorderFailureIgnored(t *testing.T) {
	rec := &fakeEvents{err: errors.New("db locked")}
	p := WithLogging(NewMockProvider(MockResponse{Content: okContent}), rec, nil)

	_, err := p.Generate(context.Background(), prompt())
	assert.NoError(t, err)
}

func TestLogging_NilRecorder(t *testing.T) {
	p := WithLogging(NewMockProvider(MockResponse{Content: okContent}), nil, nil)
	_, err := p.Generate(context.Background(), prompt())
	assert.NoError(t, err)
}

func TestLogging_StoreRecorder(t *testing.T) {
	s, err := store.Open(t.TempDir() + "/llm.db")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	p := WithLogging(NewMockProvider(MockResponse{Content: okContent, Usage: Usage{InputTokens: 4}}), s, nil)
	_, err = p.Generate(WithPurpose(context.Background(), "explain"), prompt())
	require.NoError(t, err)

	u, err := s.LLMUsage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, u.Requests)
	assert.Equal(t, 4, u.InputTokens)
}
