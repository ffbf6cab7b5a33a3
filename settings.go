package smolder

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// Settings are stored externally as a flat key-value table keyed
// <effectId>-<property>. They are decoded and validated once, at load
// time, into a typed Config that is then passed by value into effect
// configuration — the core never does string-keyed settings access.

// TVSettings configures the TV effect.
type TVSettings struct {
	// AnimationTime is the wall-clock length of the transition.
	AnimationTime time.Duration
	// FlashColor tints the window as it collapses. Straight alpha.
	FlashColor Color
}

// FadeSettings configures the Fade effect.
type FadeSettings struct {
	AnimationTime time.Duration
	// Scale is the scale factor the actor shrinks to while fading,
	// in (0, 1].
	Scale float64
}

// Config is the validated settings snapshot for all effects. Values are
// guaranteed in range; effects consume them without further checking.
type Config struct {
	TV   TVSettings
	Fade FadeSettings
}

// Default settings, also surfaced on the preferences pages.
const (
	defaultTVTime       = 250 * time.Millisecond
	defaultTVFlashColor = "#ffffff"
	defaultFadeTime     = 150 * time.Millisecond
	defaultFadeScale    = 0.85
)

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		TV: TVSettings{
			AnimationTime: defaultTVTime,
			FlashColor:    ColorWhite,
		},
		Fade: FadeSettings{
			AnimationTime: defaultFadeTime,
			Scale:         defaultFadeScale,
		},
	}
}

// storeConfig mirrors the external store's flat schema. Durations are
// milliseconds, colors are hex strings.
type storeConfig struct {
	TVAnimationTime   int64   `toml:"tv-animation-time"`
	TVFlashColor      string  `toml:"tv-flash-color"`
	FadeAnimationTime int64   `toml:"fade-animation-time"`
	FadeScale         float64 `toml:"fade-scale"`
}

// LoadConfig decodes a TOML settings store and validates every value.
// Malformed or out-of-range values fall back to their defaults with a
// warning; only an unreadable store returns an error.
func LoadConfig(r io.Reader) (Config, error) {
	store := storeConfig{
		TVAnimationTime:   defaultTVTime.Milliseconds(),
		TVFlashColor:      defaultTVFlashColor,
		FadeAnimationTime: defaultFadeTime.Milliseconds(),
		FadeScale:         defaultFadeScale,
	}
	if err := toml.NewDecoder(r).Decode(&store); err != nil {
		return Config{}, fmt.Errorf("smolder: decode settings: %w", err)
	}
	return validate(store), nil
}

// LoadConfigFile loads and validates a settings store from disk.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("smolder: open settings: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// validate converts the raw store values into the typed Config, replacing
// anything unusable with its default.
func validate(store storeConfig) Config {
	cfg := DefaultConfig()

	if store.TVAnimationTime > 0 {
		cfg.TV.AnimationTime = time.Duration(store.TVAnimationTime) * time.Millisecond
	} else {
		logger().Warn("settings: tv-animation-time must be positive, using default",
			"value", store.TVAnimationTime)
	}
	if c, err := colorful.Hex(store.TVFlashColor); err == nil {
		cfg.TV.FlashColor = Color{R: c.R, G: c.G, B: c.B, A: 1}
	} else {
		logger().Warn("settings: tv-flash-color is not a hex color, using default",
			"value", store.TVFlashColor)
	}

	if store.FadeAnimationTime > 0 {
		cfg.Fade.AnimationTime = time.Duration(store.FadeAnimationTime) * time.Millisecond
	} else {
		logger().Warn("settings: fade-animation-time must be positive, using default",
			"value", store.FadeAnimationTime)
	}
	if store.FadeScale > 0 && store.FadeScale <= 1 {
		cfg.Fade.Scale = store.FadeScale
	} else {
		logger().Warn("settings: fade-scale must be in (0, 1], using default",
			"value", store.FadeScale)
	}

	return cfg
}
