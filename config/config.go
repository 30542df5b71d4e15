// Package config loads the project settings consulted when the XR extension wrappers are created.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// FoveationSettings are read once when the foveation extension is constructed. FoveationLevel is
// passed through unvalidated; the extension decides what to do with values outside its range.
type FoveationSettings struct {
	FoveationLevel   int  `yaml:"foveation_level"`
	FoveationDynamic bool `yaml:"foveation_dynamic"`
}

type OpenXRSettings struct {
	FoveationSettings `yaml:",inline"`
}

type XRSettings struct {
	OpenXR OpenXRSettings `yaml:"openxr"`
}

type RenderingSettings struct {
	Driver string `yaml:"driver"`
}

type ProjectSettings struct {
	Rendering RenderingSettings `yaml:"rendering"`
	XR        XRSettings        `yaml:"xr"`
}

const defaultRenderingDriver = "vulkan"

// Default returns the settings used for any key that is absent from a settings file
func Default() ProjectSettings {
	return ProjectSettings{
		Rendering: RenderingSettings{
			Driver: defaultRenderingDriver,
		},
		XR: XRSettings{
			OpenXR: OpenXRSettings{
				FoveationSettings: FoveationSettings{
					FoveationLevel:   0,
					FoveationDynamic: false,
				},
			},
		},
	}
}

// Parse decodes YAML project settings on top of Default
func Parse(data []byte) (*ProjectSettings, error) {
	settings := Default()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, errors.Wrap(err, "failed to parse project settings")
	}

	if settings.Rendering.Driver == "" {
		settings.Rendering.Driver = defaultRenderingDriver
	}

	return &settings, nil
}

// Load reads and decodes the YAML project settings file at path
func Load(path string) (*ProjectSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read project settings %s", path)
	}

	return Parse(data)
}

// Foveation returns the settings the foveation extension is constructed from
func (s *ProjectSettings) Foveation() FoveationSettings {
	return s.XR.OpenXR.FoveationSettings
}
