package handlers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// StreamTerminal plays a game over a reader and writer, typically stdin and
// stdout. Reads run on a background goroutine so a blocked read can be
// abandoned when the context is cancelled.
type StreamTerminal struct {
	w     io.Writer
	lines chan lineResult
	once  sync.Once
	r     *bufio.Scanner
}

type lineResult struct {
	line string
	err  error
}

// NewStreamTerminal creates a StreamTerminal over r and w.
func NewStreamTerminal(r io.Reader, w io.Writer) *StreamTerminal {
	return &StreamTerminal{
		w:     w,
		lines: make(chan lineResult),
		r:     bufio.NewScanner(r),
	}
}

func (s *StreamTerminal) pump() {
	for s.r.Scan() {
		s.lines <- lineResult{line: strings.TrimRight(s.r.Text(), "\r")}
	}
	err := s.r.Err()
	if err == nil {
		err = io.EOF
	}
	for {
		s.lines <- lineResult{err: err}
	}
}

// ReadLine implements gameserver.Terminal.
func (s *StreamTerminal) ReadLine(ctx context.Context, prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(s.w, prompt); err != nil {
			return "", fmt.Errorf("writing prompt: %w", err)
		}
	}
	s.once.Do(func() { go s.pump() })
	select {
	case res := <-s.lines:
		return res.line, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// WriteLine implements gameserver.Terminal.
func (s *StreamTerminal) WriteLine(text string) error {
	_, err := io.WriteString(s.w, text+"\n")
	return err
}
