package llm

import (
	"bytes"
	"encoding/json"
	"strings"
)

// doneSentinel is the literal end-of-stream marker in the event protocol.
const doneSentinel = "[DONE]"

const eventPrefix = "data: "

type streamEvent struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// StreamParser incrementally decodes a line-framed event stream into text
// fragments. Chunks may split a line anywhere, including mid-payload: a line
// whose JSON does not yet parse is pushed back onto the buffer and retried
// when more bytes arrive, so no event is ever dropped.
type StreamParser struct {
	buf  []byte
	done bool
}

func NewStreamParser() *StreamParser {
	return &StreamParser{}
}

// Done reports whether the end-of-stream sentinel has been observed.
func (p *StreamParser) Done() bool { return p.done }

// Feed appends a chunk to the buffer and returns the text fragments of every
// complete event it can decode, in arrival order.
func (p *StreamParser) Feed(chunk []byte) []string {
	if p.done {
		return nil
	}
	p.buf = append(p.buf, chunk...)

	var out []string
	for {
		nl := bytes.IndexByte(p.buf, '\n')
		if nl < 0 {
			break
		}
		line := string(p.buf[:nl])
		p.buf = p.buf[nl+1:]

		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, ":") || strings.TrimSpace(line) == "" {
			continue
		}
		payload, ok := strings.CutPrefix(line, eventPrefix)
		if !ok {
			continue
		}
		payload = strings.TrimSpace(payload)
		if payload == doneSentinel {
			p.done = true
			return out
		}

		var ev streamEvent
		if err := json.Unmarshal([]byte(payload), &ev); err != nil {
			// Likely a line split across network chunks: push it back and
			// reassemble on the next feed.
			p.buf = append([]byte(line+"\n"), p.buf...)
			return out
		}
		if len(ev.Choices) > 0 && ev.Choices[0].Delta.Content != "" {
			out = append(out, ev.Choices[0].Delta.Content)
		}
	}
	return out
}
