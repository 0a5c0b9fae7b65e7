package config

// Source describes one named upstream feed served by the application.
type Source struct {
	Name     string         // Derived from filename (without extension)
	URL      string         `yaml:"url"`
	Title    string         `yaml:"title"`
	Settings SourceSettings `yaml:"settings"`
}

type SourceSettings struct {
	Timeout int `yaml:"timeout"` // seconds; 0 falls back to the global fetch timeout
}
