// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dispatch runs one submission: validate the text, interpret it,
// relay the result to the device, and report each step in order.
package dispatch

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shayne/cmdrelay/internal/command"
	"github.com/shayne/cmdrelay/internal/interpreter"
	"github.com/shayne/cmdrelay/internal/logging"
)

const (
	StepInterpret = "Contacting interpreter"
	StepRelay     = "Sending to device"

	MsgEmptyText = "Please enter a command."
	MsgNoResult  = "no response from interpreter"
	MsgSent      = "command sent to device"
)

// Reporter receives the status lines of one submission. Step opens a
// step; Done or Fail closes it.
type Reporter interface {
	Step(name string)
	Done(detail string)
	Fail(detail string)
	Warn(msg string)
}

// Relay is the device side of a submission.
type Relay interface {
	URL() string
	Send(ctx context.Context, info command.Info) error
}

type Stage int

const (
	StageInput Stage = iota
	StageInterpret
	StageRelay
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageInput:
		return "input"
	case StageInterpret:
		return "interpret"
	case StageRelay:
		return "relay"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}

// Outcome records how far a submission got. Stage is the stage that
// failed, or StageDone.
type Outcome struct {
	ID    string
	Text  string
	Info  command.Info
	Stage Stage
	Err   error
}

func (o Outcome) OK() bool { return o.Err == nil }

type Dispatcher struct {
	interp interpreter.Interpreter
	relay  Relay
	log    logrus.FieldLogger
	newID  func() string
}

func New(interp interpreter.Interpreter, relay Relay, log logrus.FieldLogger) *Dispatcher {
	if log == nil {
		log = logging.Discard()
	}
	return &Dispatcher{interp: interp, relay: relay, log: log, newID: uuid.NewString}
}

// Submit runs one cycle. The relay call starts only after the
// interpreter returned a result; a failed relay leaves the already
// reported interpretation in place.
func (d *Dispatcher) Submit(ctx context.Context, text string, rep Reporter) Outcome {
	out := Outcome{ID: d.newID(), Text: text, Stage: StageInput}
	log := d.log.WithFields(logrus.Fields{
		"request_id": out.ID,
		"backend":    d.interp.Name(),
	})

	if err := command.ValidateText(text); err != nil {
		log.WithField("stage", out.Stage.String()).Debug("rejected empty command")
		rep.Warn(MsgEmptyText)
		out.Err = err
		return out
	}

	out.Stage = StageInterpret
	log.WithField("stage", out.Stage.String()).Infof("interpreting %q", text)
	rep.Step(StepInterpret)
	info, err := d.interp.Interpret(ctx, text)
	if err != nil {
		log.WithField("stage", out.Stage.String()).WithError(err).Warn("interpretation failed")
		rep.Fail(failureDetail(err))
		out.Err = err
		return out
	}
	out.Info = info
	rep.Done("parsed " + info.String())

	out.Stage = StageRelay
	log.WithFields(logrus.Fields{"stage": out.Stage.String(), "device": d.relay.URL()}).Infof("relaying %s", info.String())
	rep.Step(StepRelay)
	if err := d.relay.Send(ctx, info); err != nil {
		log.WithField("stage", out.Stage.String()).WithError(err).Warn("relay failed")
		rep.Fail(failureDetail(err))
		out.Err = err
		return out
	}
	rep.Done(MsgSent)

	out.Stage = StageDone
	log.WithField("stage", out.Stage.String()).Info("command delivered")
	return out
}

func failureDetail(err error) string {
	if errors.Is(err, interpreter.ErrNoResult) {
		return MsgNoResult
	}
	return "Error: " + err.Error()
}
