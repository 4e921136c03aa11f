// Package replay runs scripted visibility signals against an in-memory host.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/visibility/pkg/host/memhost"
	"github.com/go-drift/visibility/pkg/visibility"
)

// Actions accepted in a step.
const (
	ActionStart   = "start"
	ActionPause   = "pause"
	ActionDestroy = "destroy"
)

// Script describes a replay: the host profile to simulate and the steps to
// run against it.
type Script struct {
	Host    string `yaml:"host"`
	Prefix  string `yaml:"prefix,omitempty"`
	Initial string `yaml:"initial,omitempty"`
	Steps   []Step `yaml:"steps"`
}

// Step is either a lifecycle action or a native signal.
type Step struct {
	Action string `yaml:"action,omitempty"`
	Signal string `yaml:"signal,omitempty"`
}

// Result summarizes a finished replay.
type Result struct {
	Strategy    visibility.Strategy
	Transitions []visibility.State
	Final       visibility.State
	Changes     int
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a yaml script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the host profile and every step.
func (s *Script) Validate() error {
	switch memhost.Profile(s.Host) {
	case memhost.ProfileModern, memhost.ProfileFocus, memhost.ProfileLegacy:
	case "":
		return errors.New("script: host is required")
	default:
		return fmt.Errorf("script: unknown host %q (want modern, focus or legacy)", s.Host)
	}
	for i, step := range s.Steps {
		if (step.Action == "") == (step.Signal == "") {
			return fmt.Errorf("script: step %d must set exactly one of action or signal", i+1)
		}
		switch step.Action {
		case "", ActionStart, ActionPause, ActionDestroy:
		default:
			return fmt.Errorf("script: step %d: unknown action %q", i+1, step.Action)
		}
	}
	return nil
}

// Run replays s against a fresh in-memory host and writes one line per
// step and per published transition to w. Each run starts with an empty
// vendor prefix cache, as if in a new process.
func Run(s *Script, w io.Writer) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	initial := visibility.State(strings.TrimSpace(s.Initial))
	if initial == "" {
		initial = visibility.DefaultState
	}

	visibility.ResetPrefixCache()
	host, _ := memhost.New(memhost.Profile(s.Host), s.Prefix, initial)

	clock := memhost.NewFakeClock()
	cfg := host.Config()
	cfg.Clock = clock
	tracker := visibility.New(cfg)
	defer tracker.Destroy()

	res := &Result{Strategy: tracker.Strategy()}
	var werr error
	printf := func(format string, args ...any) {
		if werr == nil {
			_, werr = fmt.Fprintf(w, format, args...)
		}
	}

	printf("host=%s strategy=%s prefix=%q state=%s\n",
		s.Host, tracker.Strategy(), tracker.VendorPrefix(), tracker.State())

	tracker.OnUpdate(func(state visibility.State) {
		res.Transitions = append(res.Transitions, state)
		printf("  update %s changes=%d\n", state, tracker.StateChangeCount())
	})

	for i, step := range s.Steps {
		clock.Advance(time.Second)
		switch step.Action {
		case ActionStart:
			printf("%d start ok=%t\n", i+1, tracker.Start())
		case ActionPause:
			printf("%d pause ok=%t\n", i+1, tracker.Pause())
		case ActionDestroy:
			tracker.Destroy()
			printf("%d destroy\n", i+1)
		default:
			printf("%d signal %s\n", i+1, step.Signal)
			host.Signal(visibility.State(step.Signal))
		}
	}

	res.Final = tracker.State()
	res.Changes = tracker.StateChangeCount()
	printf("final state=%s changes=%d\n", res.Final, res.Changes)
	return res, werr
}
