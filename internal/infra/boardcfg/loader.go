// Package boardcfg loads the board configuration (pin map and timings) from
// board.yaml, applying the reference board's defaults for anything missing.
package boardcfg

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/domain"
)

// DefaultFile is the config filename looked up in the working directory.
const DefaultFile = "board.yaml"

// Load reads a board file. A missing file is not an error: the reference
// board's defaults apply, so the program runs without any configuration.
func Load(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.DefaultConfig(), nil
	}
	if err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "boardcfg.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLBoard
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "boardcfg.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return Map(path, dto)
}

// defaultYAML is the commented starter file written by `init`.
const defaultYAML = `# Dice roller board configuration.
# Pin numbers follow the reference wiring; every key is optional.

pins:
  die1: [3, 4, 5]    # BCD bits A, B, C (LSB first); D is tied low
  die2: [8, 9, 10]
  buzzer: 6
  button1: 2         # active low, external pull-up
  button2: 11
  noise: 0           # floating analog channel, sampled once for the RNG seed

timing:
  frames: 20
  frame_delay_ms: 50
  frame_step_ms: 2
  debounce_ms: 300
  poll_interval_ms: 1
`

// Save writes the commented default board file. With force false an existing
// file is left untouched.
func Save(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return &domain.OpError{
				Op:   "boardcfg.save",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  errors.New("file exists (use force to overwrite)"),
			}
		}
	}

	if err := os.WriteFile(path, []byte(defaultYAML), 0o644); err != nil {
		return &domain.OpError{
			Op:   "boardcfg.save",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}
