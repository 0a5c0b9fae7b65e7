package cfg

type Cfg struct {
	// Application configuration
	FeedsDir     string
	Port         string
	APIAccessKey string
	InputFile    string

	// Fetch configuration
	UserAgent    string
	FetchTimeout int

	// Application metadata
	Debug   bool
	Version string
}
