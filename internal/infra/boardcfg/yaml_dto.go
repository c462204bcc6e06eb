package boardcfg

// YAMLBoard mirrors board.yaml. Every section is optional; missing sections
// fall back to the reference board's defaults.
type YAMLBoard struct {
	Pins   *YAMLPins   `yaml:"pins"`
	Timing *YAMLTiming `yaml:"timing"`
}

type YAMLPins struct {
	Die1    []int `yaml:"die1"` // BCD bit lines A,B,C, LSB first
	Die2    []int `yaml:"die2"`
	Buzzer  *int  `yaml:"buzzer"`
	Button1 *int  `yaml:"button1"`
	Button2 *int  `yaml:"button2"`
	Noise   *int  `yaml:"noise"` // analog channel for the seed sample
}

type YAMLTiming struct {
	Frames         *int `yaml:"frames"`
	FrameDelayMS   *int `yaml:"frame_delay_ms"`
	FrameStepMS    *int `yaml:"frame_step_ms"`
	DebounceMS     *int `yaml:"debounce_ms"`
	PollIntervalMS *int `yaml:"poll_interval_ms"`
}
