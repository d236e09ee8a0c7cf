package terminal

// Config controls the pad layout on screen
type Config struct {
	// CellWidth and CellHeight are the screen cells drawn per pad button
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`

	// ShowStatus draws the metrics line under the pad
	ShowStatus bool `yaml:"show_status"`
}

// DefaultConfig returns a layout that fits an 80x25 terminal
func DefaultConfig() Config {
	return Config{
		CellWidth:  4,
		CellHeight: 2,
		ShowStatus: true,
	}
}
