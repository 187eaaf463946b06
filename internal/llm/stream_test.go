package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(content string) string {
	return `data: {"choices":[{"delta":{"content":"` + content + `"}}]}` + "\n"
}

func TestStreamParserTwoChunks(t *testing.T) {
	p := NewStreamParser()

	first := p.Feed([]byte(event("Hel")))
	require.Equal(t, []string{"Hel"}, first)
	assert.False(t, p.Done())

	second := p.Feed([]byte(event("lo") + "data: [DONE]\n"))
	require.Equal(t, []string{"lo"}, second)
	assert.True(t, p.Done())

	assert.Equal(t, "Hello", strings.Join(append(first, second...), ""))
}

func TestStreamParserArbitraryChunkBoundaries(t *testing.T) {
	stream := event("one ") + event("two ") + event("three") + "data: [DONE]\n"

	// Every split point must reconstruct the same text, including splits
	// in the middle of a line.
	for cut := 0; cut <= len(stream); cut++ {
		p := NewStreamParser()
		var got []string
		got = append(got, p.Feed([]byte(stream[:cut]))...)
		got = append(got, p.Feed([]byte(stream[cut:]))...)
		assert.Equal(t, "one two three", strings.Join(got, ""), "split at %d", cut)
		assert.True(t, p.Done(), "split at %d", cut)
	}
}

func TestStreamParserByteAtATime(t *testing.T) {
	stream := event("a") + event("b") + "data: [DONE]\n"
	p := NewStreamParser()
	var got []string
	for i := 0; i < len(stream); i++ {
		got = append(got, p.Feed([]byte{stream[i]})...)
	}
	assert.Equal(t, []string{"a", "b"}, got)
	assert.True(t, p.Done())
}

func TestStreamParserSkipsNoise(t *testing.T) {
	p := NewStreamParser()
	input := ": keep-alive comment\n" +
		"\n" +
		"   \n" +
		"event: message\n" +
		event("kept") +
		"data: [DONE]\n"
	got := p.Feed([]byte(input))
	assert.Equal(t, []string{"kept"}, got)
	assert.True(t, p.Done())
}

func TestStreamParserToleratesCarriageReturns(t *testing.T) {
	p := NewStreamParser()
	got := p.Feed([]byte("data: {\"choices\":[{\"delta\":{\"content\":\"hi\"}}]}\r\ndata: [DONE]\r\n"))
	assert.Equal(t, []string{"hi"}, got)
	assert.True(t, p.Done())
}

func TestStreamParserDefersSplitJSON(t *testing.T) {
	p := NewStreamParser()

	// A complete line whose payload is still truncated JSON: held back,
	// not dropped.
	got := p.Feed([]byte(`data: {"choices":[{"delta":{"content":"par` + "\n"))
	assert.Empty(t, got)

	// The rest of the payload arrives and the line re-assembles. The
	// continuation replaces the broken tail by completing the JSON.
	got = p.Feed([]byte{})
	assert.Empty(t, got) // still incomplete, still retained

	p2 := NewStreamParser()
	p2.Feed([]byte(`data: {"choices":[{"delta":{"content":"par`))
	got = p2.Feed([]byte("tial\"}}]}\ndata: [DONE]\n"))
	assert.Equal(t, []string{"partial"}, got)
	assert.True(t, p2.Done())
}

func TestStreamParserEventsWithoutContent(t *testing.T) {
	p := NewStreamParser()
	got := p.Feed([]byte(`data: {"choices":[{"delta":{}}]}` + "\n" +
		`data: {"choices":[]}` + "\n" +
		event("x") + "data: [DONE]\n"))
	assert.Equal(t, []string{"x"}, got)
}

func TestStreamParserIgnoresInputAfterSentinel(t *testing.T) {
	p := NewStreamParser()
	p.Feed([]byte("data: [DONE]\n"))
	require.True(t, p.Done())
	assert.Empty(t, p.Feed([]byte(event("late"))))
}

func TestStreamParserSentinelWithPadding(t *testing.T) {
	p := NewStreamParser()
	p.Feed([]byte("data:  [DONE] \n"))
	assert.True(t, p.Done())
}
