package cmd

import (
	"fmt"

	"github.com/go-drift/visibility/cmd/visibility/internal/replay"
)

func init() {
	RegisterCommand(&Command{
		Name:  "replay",
		Short: "Replay a scripted session against a simulated host",
		Long: `Replay a yaml script of lifecycle actions and native signals against
an in-memory host and print every step and published transition.

Script format:
  host: modern | focus | legacy
  prefix: webkit        # modern only
  initial: visible
  steps:
    - action: start | pause | destroy
    - signal: hidden | visible | prerender

On focus and legacy hosts, "visible" becomes a focus signal and any other
value becomes a blur signal.`,
		Usage: "visibility replay <script.yaml>",
		Run:   runReplay,
	})
}

func runReplay(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("replay requires exactly one script file\n\nUsage: visibility replay <script.yaml>")
	}

	script, err := replay.Load(args[0])
	if err != nil {
		return err
	}

	_, err = replay.Run(script, stdout)
	return err
}
