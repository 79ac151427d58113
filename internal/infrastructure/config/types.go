package config

// Config is the framepad configuration file (framepad.yaml)
type Config struct {
	Output   OutputConfig        `yaml:"output"`
	Keys     map[string][]string `yaml:"keys"` // button name -> ebiten key names
	Recorder RecorderConfig      `yaml:"recorder"`
}

// OutputConfig controls the presentation formats
type OutputConfig struct {
	TextHeader      bool `yaml:"textHeader"`
	CSVHeader       bool `yaml:"csvHeader"`
	JSONPretty      bool `yaml:"jsonPretty"`
	VisualizeFrames int  `yaml:"visualizeFrames"` // negative shows every frame
}

// RecorderConfig controls the record and play windows
type RecorderConfig struct {
	TPS          int    `yaml:"tps"`
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
	StopKey      string `yaml:"stopKey"`
	OutputDir    string `yaml:"outputDir"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			TextHeader:      true,
			CSVHeader:       true,
			JSONPretty:      true,
			VisualizeFrames: -1,
		},
		Keys: map[string][]string{
			"left":  {"ArrowLeft"},
			"right": {"ArrowRight"},
			"up":    {"ArrowUp"},
			"down":  {"ArrowDown"},
			"a":     {"X"},
			"b":     {"Z"},
		},
		Recorder: RecorderConfig{
			TPS:          60,
			ScreenWidth:  320,
			ScreenHeight: 240,
			Scale:        2,
			StopKey:      "Escape",
			OutputDir:    ".",
		},
	}
}
