package pipeline

import (
	"time"

	"techrank/internal/extract"
	"techrank/lib/configutil"
	"techrank/lib/sqliteutil"
	"techrank/lib/telemetry"
)

const DefaultUrl = "https://web.archive.org/web/20230901213946/https://en.wikipedia.org/wiki/List_of_largest_technology_companies_by_revenue"

type SourceConfig struct {
	Url       string `json:"url"`
	UserAgent string `json:"user_agent"`
	// zero means the request never times out
	TimeoutSeconds   int  `json:"timeout_seconds"`
	CloudflareBypass bool `json:"cloudflare_bypass"`
	// directory receiving raw http dumps while running verbosely, empty disables dumps
	DumpDir string `json:"dump_dir"`
}

func (c SourceConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type OutputConfig struct {
	Csv      string            `json:"csv"`
	Database sqliteutil.Config `json:"database"`
	Table    string            `json:"table"`
	Log      string            `json:"log"`
}

type Config struct {
	Source SourceConfig `json:"source"`
	// one of extract.LayoutNames()
	Layout string       `json:"layout"`
	Output OutputConfig `json:"output"`
	// number of extracted rows printed before transforming
	Preview   int              `json:"preview"`
	Telemetry telemetry.Config `json:"telemetry"`
}

func DefaultConfig() Config {
	return Config{
		Source: SourceConfig{
			Url: DefaultUrl,
		},
		Layout: extract.Classed.Name,
		Output: OutputConfig{
			Csv:      "Largest_tech_companies_by_revenue.csv",
			Database: sqliteutil.Config{File: "Tech_Companies.db"},
			Table:    "Largest_tech_companies",
			Log:      "code_log.txt",
		},
		Preview: 5,
	}
}

// LoadConfig reads `path` (and its .local override) on top of DefaultConfig,
// a missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	return configutil.ReadConfigWithDefaults(path, DefaultConfig())
}
