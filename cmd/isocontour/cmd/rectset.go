package cmd

import "github.com/arl/isocontour"

// rectYAML is a single rectangle as read from an input YAML file.
type rectYAML struct {
	XLo float64 `yaml:"xlo"`
	YLo float64 `yaml:"ylo"`
	XHi float64 `yaml:"xhi"`
	YHi float64 `yaml:"yhi"`
}

// rectSetYAML is the top-level shape of an input rectangle file.
type rectSetYAML struct {
	Rects []rectYAML `yaml:"rects"`
}

func (s rectSetYAML) toRects() []isocontour.Rect {
	out := make([]isocontour.Rect, len(s.Rects))
	for i, r := range s.Rects {
		out[i] = isocontour.NewRect(r.XLo, r.YLo, r.XHi, r.YHi)
	}
	return out
}

// settingsYAML is the on-disk shape of a build settings file, mirroring
// isocontour.Config.
type settingsYAML struct {
	MaxVertsHint    int  `yaml:"maxVertsHint"`
	EnableLog       bool `yaml:"enableLog"`
	EnableTimers    bool `yaml:"enableTimers"`
	NormalizeOutput bool `yaml:"normalizeOutput"`
}

func defaultSettingsYAML() settingsYAML {
	cfg := isocontour.DefaultConfig()
	return settingsYAML{
		MaxVertsHint:    cfg.MaxVertsHint,
		EnableLog:       cfg.EnableLog,
		EnableTimers:    cfg.EnableTimers,
		NormalizeOutput: true,
	}
}

func (s settingsYAML) toConfig() isocontour.Config {
	return isocontour.Config{
		MaxVertsHint:    s.MaxVertsHint,
		EnableLog:       s.EnableLog,
		EnableTimers:    s.EnableTimers,
		NormalizeOutput: s.NormalizeOutput,
	}
}
