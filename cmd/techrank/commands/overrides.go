package commands

import "techrank/internal/pipeline"

// overrides are the config values that can be replaced from the command
// line, empty fields leave the config untouched.
type overrides struct {
	Db     string
	Table  string
	Layout string
	Csv    string
}

func applyOverrides(cfg pipeline.Config, o overrides) pipeline.Config {
	if o.Db != "" {
		// a local file always wins over a configured remote database
		cfg.Output.Database.File = o.Db
		cfg.Output.Database.Url = ""
		cfg.Output.Database.AuthToken = ""
	}
	if o.Table != "" {
		cfg.Output.Table = o.Table
	}
	if o.Layout != "" {
		cfg.Layout = o.Layout
	}
	if o.Csv != "" {
		cfg.Output.Csv = o.Csv
	}
	return cfg
}
