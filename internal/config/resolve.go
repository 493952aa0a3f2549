package config

// Sources reported for the resolved store path.
const (
	SourceFlag    = "flag"
	SourceEnv     = "env"
	SourceConfig  = "config"
	SourceDefault = "default"
)

// DefaultLogLevel is used when nothing else sets a level.
const DefaultLogLevel = "warn"

// Settings is the effective configuration for one invocation.
type Settings struct {
	DBPath     string `json:"db_path"`
	DBSource   string `json:"db_source"`
	LogLevel   string `json:"log_level"`
	Color      string `json:"color"`
	ConfigPath string `json:"config_path"`
}

// Overrides carries values from command-line flags.
type Overrides struct {
	DBPath  string
	Verbose bool
}

// Resolve merges flags, environment, the global config file, and defaults,
// in that order of precedence.
func Resolve(o Overrides) (*Settings, error) {
	e, err := LoadEnv()
	if err != nil {
		return nil, err
	}
	g, err := LoadGlobalConfig()
	if err != nil {
		return nil, err
	}
	return merge(o, e, g)
}

func merge(o Overrides, e *Env, g *GlobalConfig) (*Settings, error) {
	s := &Settings{ConfigPath: GlobalConfigPath()}

	switch {
	case o.DBPath != "":
		s.DBPath, s.DBSource = ExpandPath(o.DBPath), SourceFlag
	case e.DBPath != "":
		s.DBPath, s.DBSource = e.DBPath, SourceEnv
	case g.DBPath != "":
		s.DBPath, s.DBSource = g.DBPath, SourceConfig
	default:
		path, err := DefaultDBPath()
		if err != nil {
			return nil, err
		}
		s.DBPath, s.DBSource = path, SourceDefault
	}

	switch {
	case o.Verbose:
		s.LogLevel = "debug"
	case e.LogLevel != "":
		s.LogLevel = e.LogLevel
	case g.LogLevel != "":
		s.LogLevel = g.LogLevel
	default:
		s.LogLevel = DefaultLogLevel
	}

	s.Color = g.Color
	if s.Color == "" {
		s.Color = ColorAuto
	}
	if e.NoColor != "" {
		s.Color = ColorNever
	}
	return s, nil
}
