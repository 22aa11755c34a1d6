package config

import "time"

// CurrentConfigVersion is the schema version of the config file.
const CurrentConfigVersion = 1

// Config is the complete gcssh configuration. Everything here is cosmetic or
// environmental; the provisioning workflow itself has no tunable behavior.
type Config struct {
	Version    int              `yaml:"version" mapstructure:"version"`
	Gcloud     GcloudConfig     `yaml:"gcloud" mapstructure:"gcloud"`
	Animations AnimationsConfig `yaml:"animations" mapstructure:"animations"`
	Layout     LayoutConfig     `yaml:"layout" mapstructure:"layout"`
	Help       HelpConfig       `yaml:"help" mapstructure:"help"`
}

// GcloudConfig locates the external CLI collaborator.
type GcloudConfig struct {
	// Binary is the gcloud executable; resolved via PATH when not absolute.
	Binary string `yaml:"binary" mapstructure:"binary"`
}

// AnimationsConfig controls the decorative timed effects. All of these are
// pure presentation: disabling them changes no data-flow guarantee.
type AnimationsConfig struct {
	Enabled          bool          `yaml:"enabled" mapstructure:"enabled"`
	TypingSpeed      time.Duration `yaml:"typing_speed" mapstructure:"typing_speed"`
	SpinnerDuration  time.Duration `yaml:"spinner_duration" mapstructure:"spinner_duration"`
	ProgressSteps    int           `yaml:"progress_steps" mapstructure:"progress_steps"`
	ProgressDuration time.Duration `yaml:"progress_duration" mapstructure:"progress_duration"`
}

// LayoutConfig controls framed-message rendering.
type LayoutConfig struct {
	// FrameWidth is the fallback width when terminal size detection fails.
	FrameWidth int `yaml:"frame_width" mapstructure:"frame_width"`
}

// HelpConfig controls the tutorial text shown before the workflow runs.
type HelpConfig struct {
	Tutorial bool `yaml:"tutorial" mapstructure:"tutorial"`
	Tips     bool `yaml:"tips" mapstructure:"tips"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Gcloud: GcloudConfig{
			Binary: "gcloud",
		},
		Animations: AnimationsConfig{
			Enabled:          true,
			TypingSpeed:      10 * time.Millisecond,
			SpinnerDuration:  time.Second,
			ProgressSteps:    20,
			ProgressDuration: 1500 * time.Millisecond,
		},
		Layout: LayoutConfig{
			FrameWidth: 80,
		},
		Help: HelpConfig{
			Tutorial: true,
			Tips:     true,
		},
	}
}
