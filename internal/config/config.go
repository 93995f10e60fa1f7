// Package config loads the YAML configuration of the tourqr service.
package config

import (
	"os"

	"github.com/pkg/errors"
	validator "gopkg.in/validator.v2"
	yaml "gopkg.in/yaml.v2"

	"paepcke.de/tourqr"
	"paepcke.de/tourqr/render"
)

var errNoFilesToLoad = errors.New("attempt to load configuration with no files")

// Configuration is the top level configuration.
type Configuration struct {
	// ListenAddress is the HTTP listen address of the service.
	ListenAddress string `yaml:"listenAddress" validate:"nonzero"`

	// BaseURL prefixes the panorama links encoded into QR codes.
	BaseURL string `yaml:"baseURL" validate:"nonzero"`

	Logging LoggingConfiguration `yaml:"logging"`
	QR      QRConfiguration      `yaml:"qr"`
	SVG     SVGConfiguration     `yaml:"svg"`
}

// LoggingConfiguration configures the logger.
type LoggingConfiguration struct {
	Level string `yaml:"level" validate:"regexp=^(debug|info|warn|error)?$"`
}

// QRConfiguration holds the symbol generation defaults.
type QRConfiguration struct {
	// Level is one of L, M, Q, H.
	Level string `yaml:"level" validate:"regexp=^[LMQHlmqh]?$"`

	// Layout is interleaved or sequential.
	Layout string `yaml:"layout" validate:"regexp=^(interleaved|sequential)?$"`

	// MaxPayload caps the request payload in bytes, 0 for no cap beyond
	// the symbol capacity.
	MaxPayload int `yaml:"maxPayload" validate:"min=0"`
}

// SVGConfiguration holds the default SVG styling.
type SVGConfiguration struct {
	Margin     int    `yaml:"margin" validate:"min=0,max=64"`
	Scale      int    `yaml:"scale" validate:"min=0,max=64"`
	Color      string `yaml:"color" validate:"regexp=^(#[0-9a-fA-F]+)?$"`
	Background string `yaml:"background" validate:"regexp=^(#[0-9a-fA-F]+)?$"`
}

// Default returns the configuration used when no file is given.
func Default() Configuration {
	return Configuration{
		ListenAddress: "0.0.0.0:3000",
		BaseURL:       "http://localhost:3000",
		Logging:       LoggingConfiguration{Level: "info"},
		QR: QRConfiguration{
			Level:      tourqr.DefaultLevel.String(),
			Layout:     tourqr.LayoutInterleaved.String(),
			MaxPayload: 2048,
		},
		SVG: SVGConfiguration{
			Margin:     2,
			Scale:      render.DefaultScale,
			Color:      "#063c46",
			Background: render.DefaultBackground,
		},
	}
}

// LoadFile loads a config from a file on top of the current values of cfg.
func LoadFile(cfg *Configuration, fname string) error {
	return loadFiles(cfg, fname)
}

// loadFiles loads a config from a list of files. A value present in
// several files is taken from the last one. Validation runs after all
// files are merged.
func loadFiles(cfg *Configuration, fnames ...string) error {
	if len(fnames) == 0 {
		return errNoFilesToLoad
	}
	for _, fname := range fnames {
		data, err := os.ReadFile(fname)
		if err != nil {
			return errors.Wrapf(err, "reading %s", fname)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return errors.Wrapf(err, "parsing %s", fname)
		}
	}
	return cfg.Validate()
}

// Validate checks the field constraints and the QR settings.
func (c Configuration) Validate() error {
	if err := validator.Validate(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	if _, err := c.QR.Options(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	return nil
}

// Options converts the QR defaults into generator options.
func (c QRConfiguration) Options() (tourqr.Options, error) {
	level, err := tourqr.ParseLevel(c.Level)
	if err != nil {
		return tourqr.Options{}, err
	}
	layout, err := tourqr.ParseLayout(c.Layout)
	if err != nil {
		return tourqr.Options{}, err
	}
	return tourqr.Options{Level: level, Layout: layout}, nil
}

// Options converts the SVG defaults into renderer options.
func (c SVGConfiguration) Options() render.SVGOptions {
	return render.SVGOptions{
		Margin:     c.Margin,
		Scale:      c.Scale,
		Color:      c.Color,
		Background: c.Background,
	}
}
