// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dispatch

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/shayne/cmdrelay/internal/command"
	"github.com/shayne/cmdrelay/internal/device"
	"github.com/shayne/cmdrelay/internal/interpreter"
)

type recorder struct {
	events []string
}

func (r *recorder) Step(name string) { r.events = append(r.events, "step "+name) }
func (r *recorder) Done(detail string) { r.events = append(r.events, "done "+detail) }
func (r *recorder) Fail(detail string) { r.events = append(r.events, "fail "+detail) }
func (r *recorder) Warn(msg string) { r.events = append(r.events, "warn "+msg) }

type stubInterpreter struct {
	info  command.Info
	err   error
	calls int
}

func (s *stubInterpreter) Name() string { return "stub" }

func (s *stubInterpreter) Interpret(ctx context.Context, text string) (command.Info, error) {
	s.calls++
	return s.info, s.err
}

type deviceServer struct {
	server *httptest.Server
	calls  int32
	body   atomic.Value
}

func newDeviceServer(t *testing.T, status int) *deviceServer {
	t.Helper()
	d := &deviceServer{}
	d.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&d.calls, 1)
		b, _ := io.ReadAll(r.Body)
		d.body.Store(string(b))
		w.WriteHeader(status)
		_, _ = w.Write([]byte("LED updated"))
	}))
	t.Cleanup(d.server.Close)
	return d
}

func (d *deviceServer) relay() *device.Relay {
	return device.NewRelay(d.server.URL+"/led", d.server.Client())
}

func TestSubmitEmptyTextWarnsWithoutCalls(t *testing.T) {
	interp := &stubInterpreter{}
	dev := newDeviceServer(t, http.StatusOK)
	rec := &recorder{}

	out := New(interp, dev.relay(), nil).Submit(context.Background(), "   ", rec)
	if !errors.Is(out.Err, command.ErrEmptyText) || out.Stage != StageInput {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if n := atomic.LoadInt32(&dev.calls); interp.calls != 0 || n != 0 {
		t.Fatalf("expected no calls, got interpreter=%d device=%d", interp.calls, n)
	}
	if want := []string{"warn " + MsgEmptyText}; !reflect.DeepEqual(rec.events, want) {
		t.Fatalf("events=%v want %v", rec.events, want)
	}
}

func TestSubmitRelaysFirstReportVerbatim(t *testing.T) {
	var interpCalls int32
	interpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&interpCalls, 1)
		_, _ = w.Write([]byte(`{"reports": [{"action": "off", "delay_sec": 120}]}`))
	}))
	defer interpServer.Close()
	dev := newDeviceServer(t, http.StatusOK)
	rec := &recorder{}

	d := New(interpreter.NewJac(interpServer.URL, interpServer.Client()), dev.relay(), nil)
	out := d.Submit(context.Background(), "turn off after 2 minutes", rec)
	if !out.OK() || out.Stage != StageDone {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if out.ID == "" {
		t.Fatalf("expected request id")
	}
	if n := atomic.LoadInt32(&interpCalls); n != 1 {
		t.Fatalf("expected 1 interpreter call, got %d", n)
	}
	if n := atomic.LoadInt32(&dev.calls); n != 1 {
		t.Fatalf("expected 1 device call, got %d", n)
	}
	if got, _ := dev.body.Load().(string); got != `{"action": "off", "delay_sec": 120}` {
		t.Fatalf("device body %q", got)
	}
	want := []string{
		"step " + StepInterpret,
		`done parsed {"action":"off","delay_sec":120}`,
		"step " + StepRelay,
		"done " + MsgSent,
	}
	if !reflect.DeepEqual(rec.events, want) {
		t.Fatalf("events=%v want %v", rec.events, want)
	}
}

func TestSubmitNoResultSkipsDevice(t *testing.T) {
	interp := &stubInterpreter{err: interpreter.ErrNoResult}
	dev := newDeviceServer(t, http.StatusOK)
	rec := &recorder{}

	out := New(interp, dev.relay(), nil).Submit(context.Background(), "on", rec)
	if !errors.Is(out.Err, interpreter.ErrNoResult) || out.Stage != StageInterpret {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if atomic.LoadInt32(&dev.calls) != 0 {
		t.Fatalf("expected no device call")
	}
	want := []string{"step " + StepInterpret, "fail " + MsgNoResult}
	if !reflect.DeepEqual(rec.events, want) {
		t.Fatalf("events=%v want %v", rec.events, want)
	}
}

func TestSubmitInterpreterErrorSkipsDevice(t *testing.T) {
	interpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "walker crashed", http.StatusInternalServerError)
	}))
	defer interpServer.Close()
	dev := newDeviceServer(t, http.StatusOK)
	rec := &recorder{}

	d := New(interpreter.NewJac(interpServer.URL, interpServer.Client()), dev.relay(), nil)
	out := d.Submit(context.Background(), "on", rec)
	if out.OK() || out.Stage != StageInterpret {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if atomic.LoadInt32(&dev.calls) != 0 {
		t.Fatalf("expected no device call")
	}
	if len(rec.events) != 2 || !strings.HasPrefix(rec.events[1], "fail Error: ") {
		t.Fatalf("unexpected events %v", rec.events)
	}
	if !strings.Contains(rec.events[1], "500") {
		t.Fatalf("expected status in failure detail, got %q", rec.events[1])
	}
}

func TestSubmitDeviceFailureKeepsParsedLine(t *testing.T) {
	interp := &stubInterpreter{info: command.NewInfo([]byte(`{"action":"on"}`))}
	dev := newDeviceServer(t, http.StatusServiceUnavailable)
	rec := &recorder{}

	out := New(interp, dev.relay(), nil).Submit(context.Background(), "on", rec)
	if out.OK() || out.Stage != StageRelay {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if string(out.Info) != `{"action":"on"}` {
		t.Fatalf("expected parsed info to be kept, got %s", out.Info)
	}
	if len(rec.events) != 4 {
		t.Fatalf("unexpected events %v", rec.events)
	}
	if rec.events[1] != `done parsed {"action":"on"}` {
		t.Fatalf("expected parsed line, got %q", rec.events[1])
	}
	if !strings.HasPrefix(rec.events[3], "fail Error: device request failed") {
		t.Fatalf("unexpected failure line %q", rec.events[3])
	}
}

func TestStageString(t *testing.T) {
	for stage, want := range map[Stage]string{
		StageInput:     "input",
		StageInterpret: "interpret",
		StageRelay:     "relay",
		StageDone:      "done",
		Stage(9):       "unknown",
	} {
		if got := stage.String(); got != want {
			t.Fatalf("Stage(%d)=%q want %q", stage, got, want)
		}
	}
}
