// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var DefaultFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const (
	clearLineSeq  = "\r\033[K"
	hideCursorSeq = "\033[?25l"
	showCursorSeq = "\033[?25h"
)

type SpinnerOption func(*Spinner)

func WithFrames(frames []string) SpinnerOption {
	return func(s *Spinner) {
		if len(frames) > 0 {
			s.frames = frames
		}
	}
}

func WithInterval(d time.Duration) SpinnerOption {
	return func(s *Spinner) {
		if d > 0 {
			s.interval = d
		}
	}
}

func WithColor(c Colorizer, code string) SpinnerOption {
	return func(s *Spinner) {
		s.color = c
		s.frameColor = code
	}
}

func WithHideCursor(hide bool) SpinnerOption {
	return func(s *Spinner) {
		s.hideCursor = hide
	}
}

// Spinner animates a single status line until stopped. Only one
// goroutine writes frames; Stop waits for it to exit.
type Spinner struct {
	out        io.Writer
	frames     []string
	interval   time.Duration
	hideCursor bool
	color      Colorizer
	frameColor string

	mu      sync.Mutex
	text    string
	stop    chan struct{}
	done    chan struct{}
	running bool
}

func NewSpinner(out io.Writer, opts ...SpinnerOption) *Spinner {
	s := &Spinner{
		out:      out,
		frames:   DefaultFrames,
		interval: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Spinner) Start(text string) {
	s.mu.Lock()
	if s.running {
		s.text = text
		s.mu.Unlock()
		return
	}
	s.text = text
	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.mu.Unlock()

	if s.hideCursor {
		fmt.Fprint(s.out, hideCursorSeq)
	}
	go s.loop()
}

func (s *Spinner) Update(text string) {
	s.mu.Lock()
	s.text = text
	s.mu.Unlock()
}

// Stop halts the animation. With clear set the spinner line is erased;
// otherwise the last frame stays and a newline follows it.
func (s *Spinner) Stop(clear bool) {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	done := s.done
	s.mu.Unlock()

	<-done
	if clear {
		s.clearLine()
	} else {
		fmt.Fprintln(s.out)
	}
	if s.hideCursor {
		fmt.Fprint(s.out, showCursorSeq)
	}
}

func (s *Spinner) loop() {
	defer close(s.done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for i := 0; ; i++ {
		s.mu.Lock()
		text := s.text
		s.mu.Unlock()
		s.renderFrame(i, text)
		select {
		case <-s.stop:
			return
		case <-ticker.C:
		}
	}
}

func (s *Spinner) renderFrame(i int, text string) {
	frame := s.frames[i%len(s.frames)]
	if s.frameColor != "" {
		frame = s.color.Wrap(s.frameColor, frame)
	}
	fmt.Fprintf(s.out, "%s%s %s", clearLineSeq, frame, text)
}

func (s *Spinner) clearLine() {
	fmt.Fprint(s.out, clearLineSeq)
}
