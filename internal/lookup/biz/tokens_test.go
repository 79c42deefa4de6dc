package biz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTiktokenCounter_UnknownEncoding(t *testing.T) {
	_, err := NewTiktokenCounter("no_such_encoding")
	assert.Error(t, err)
}

func TestTiktokenCounter_Count(t *testing.T) {
	counter, err := NewTiktokenCounter("cl100k_base")
	if err != nil {
		t.Skipf("encoding unavailable: %v", err)
	}
	require.NotNil(t, counter)

	assert.Zero(t, counter.Count(""))
	assert.Greater(t, counter.Count(BuildPrompt([]ResultItem{{Title: "Зар", Snippet: "Утас зарна"}})), 10)
}
