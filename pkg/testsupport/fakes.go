// Package testsupport provides scripted fakes for the installer's two
// injected capabilities: the prompt driver and the command runner. Tests
// script the answers up front and assert on what was recorded.
package testsupport

import (
	"context"
	"errors"
	"strings"

	"github.com/yoruboku/vito-setup/pkg/prompt"
)

// ScriptedDriver implements prompt.Driver with pre-recorded answers.
// Each call consumes the next scripted value; running out of script is an
// error so tests fail loudly instead of hanging on a missing answer.
type ScriptedDriver struct {
	Inputs    []string
	Passwords []string
	Confirms  []bool
	Selects   []int

	// Infos records every message shown to the user, so tests can assert
	// on previews without a terminal.
	Infos []string

	inputPos   int
	passPos    int
	confirmPos int
	selectPos  int
}

var _ prompt.Driver = (*ScriptedDriver)(nil)

func (s *ScriptedDriver) Input(_ context.Context, _ prompt.InputConfig) (string, error) {
	if s.inputPos >= len(s.Inputs) {
		return "", errors.New("testsupport: no input scripted")
	}
	val := s.Inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *ScriptedDriver) Password(_ context.Context, _ prompt.InputConfig) (string, error) {
	if s.passPos >= len(s.Passwords) {
		return "", errors.New("testsupport: no password scripted")
	}
	val := s.Passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *ScriptedDriver) Confirm(_ context.Context, _ prompt.ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.Confirms) {
		return false, errors.New("testsupport: no confirm scripted")
	}
	val := s.Confirms[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *ScriptedDriver) Select(_ context.Context, _ prompt.SelectConfig) (int, error) {
	if s.selectPos >= len(s.Selects) {
		return -1, errors.New("testsupport: no select scripted")
	}
	val := s.Selects[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *ScriptedDriver) Info(_ context.Context, msg string) error {
	s.Infos = append(s.Infos, msg)
	return nil
}

// SelectCalls reports how many Select prompts were shown.
func (s *ScriptedDriver) SelectCalls() int {
	return s.selectPos
}

// RecordingRunner implements command.Runner by recording every spawned
// argv instead of executing it.
type RecordingRunner struct {
	// Calls holds each Run invocation as name followed by its arguments.
	Calls [][]string

	// FailOn, when non-nil, is consulted per call; a non-nil result is
	// returned as the command's failure.
	FailOn func(argv []string) error

	// Missing lists command names Look should report as absent.
	Missing map[string]bool
}

func (r *RecordingRunner) Run(_ context.Context, name string, args ...string) error {
	argv := append([]string{name}, args...)
	r.Calls = append(r.Calls, argv)
	if r.FailOn != nil {
		return r.FailOn(argv)
	}
	return nil
}

func (r *RecordingRunner) Look(name string) (string, error) {
	if r.Missing[name] {
		return "", errors.New("testsupport: " + name + " not found")
	}
	return "/usr/bin/" + name, nil
}

// Commands flattens recorded calls into single strings for substring
// assertions.
func (r *RecordingRunner) Commands() []string {
	out := make([]string, 0, len(r.Calls))
	for _, argv := range r.Calls {
		out = append(out, strings.Join(argv, " "))
	}
	return out
}
