package glide

import (
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// DefaultFrameRate is the frame rate an Animator assumes when none is
// configured. It matches Ebitengine's default ticks per second.
const DefaultFrameRate = ebiten.DefaultTPS

// Config configures an Animator.
//
// Config files are YAML:
//
//	frameRate: 60
//	debug: false
type Config struct {
	// FrameRate is the number of frame ticks per second the host calls
	// Animator.Update at. Per-frame steps are sized from it.
	FrameRate int `yaml:"frameRate"`

	// Debug enables "[glide]" log lines for tween lifecycle and ticks.
	Debug bool `yaml:"debug"`

	// LogWriter receives debug output. Defaults to os.Stderr.
	LogWriter io.Writer `yaml:"-"`
}

// DefaultConfig returns the configuration NewAnimator falls back to.
func DefaultConfig() Config {
	return Config{FrameRate: DefaultFrameRate}
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read glide config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML config data over DefaultConfig and validates it.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse glide config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether the config can drive an Animator.
func (c Config) Validate() error {
	if c.FrameRate <= 0 {
		return fmt.Errorf("invalid glide config: frameRate must be positive, got %d", c.FrameRate)
	}
	return nil
}
