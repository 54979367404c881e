package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/qnkhuat/tetristerm/pkg/gui"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const (
	DefaultTickInterval = 500 * time.Millisecond
	DefaultLogPath      = "./tetristerm.log"
)

var ErrUnknownRotation = errors.New("unknown rotation")

// Duration is a time.Duration read from strings such as "500ms".
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}

	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}

	*d = Duration(v)
	return nil
}

// Config holds the player settings shared by every frontend.
type Config struct {
	TickInterval Duration       `json:"tickInterval"`
	Seed         int64          `json:"seed"`
	Rotation     string         `json:"rotation"`
	Theme        string         `json:"theme"`
	Themes       []gui.ThemeHex `json:"themes,omitempty"`
	LogPath      string         `json:"logPath"`
}

func Default() Config {
	return Config{
		TickInterval: Duration(DefaultTickInterval),
		Rotation:     mino.RotateLegacy.String(),
		Theme:        gui.ThemeBasic.Name,
		LogPath:      DefaultLogPath,
	}
}

// Load reads a JSON config file on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := json.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", time.Duration(c.TickInterval))
	}

	if _, err := c.RotationMode(); err != nil {
		return err
	}

	if _, err := c.LoadTheme(); err != nil {
		return err
	}

	return nil
}

func (c Config) Interval() time.Duration {
	return time.Duration(c.TickInterval)
}

func (c Config) RotationMode() (mino.RotationMode, error) {
	switch strings.ToLower(c.Rotation) {
	case "", mino.RotateLegacy.String():
		return mino.RotateLegacy, nil
	case mino.RotateClockwise.String():
		return mino.RotateClockwise, nil
	default:
		return mino.RotateLegacy, fmt.Errorf("%w: %q", ErrUnknownRotation, c.Rotation)
	}
}

// LoadTheme resolves the configured theme name, preferring themes defined in
// the config over the built in ones.
func (c Config) LoadTheme() (gui.Theme, error) {
	if t, err := gui.ImportThemes(c.Theme, c.Themes); err == nil {
		return t, nil
	}

	return gui.ImportThemes(c.Theme, gui.BuiltinThemes())
}
