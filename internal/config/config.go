package config

// Config is the root application configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Source   SourceConfig   `yaml:"source"`
	Grouping GroupingConfig `yaml:"grouping"`
	Quiz     QuizConfig     `yaml:"quiz"`
	Store    StoreConfig    `yaml:"store"`
	Audio    AudioConfig    `yaml:"audio"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"VOCAB_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"VOCAB_LOG_FORMAT" env-default:"text"`
}

// SourceConfig locates the vocabulary file and names its columns.
type SourceConfig struct {
	Path              string `yaml:"path"               env:"VOCAB_SOURCE_PATH"        env-default:"merged_esperanto_vocab_completed.csv"`
	Format            string `yaml:"format"             env:"VOCAB_SOURCE_FORMAT"      env-default:"auto"`
	TextColumn        string `yaml:"text_column"        env:"VOCAB_TEXT_COLUMN"        env-default:"Esperanto"`
	TranslationColumn string `yaml:"translation_column" env:"VOCAB_TRANSLATION_COLUMN" env-default:"Japanese_Trans"`
	LevelColumn       string `yaml:"level_column"       env:"VOCAB_LEVEL_COLUMN"       env-default:"Unified_Level"`
}

// GroupingConfig controls how the seed drives group membership.
type GroupingConfig struct {
	Seed     int64  `yaml:"seed"      env:"VOCAB_SEED"      env-default:"1"`
	SeedMode string `yaml:"seed_mode" env:"VOCAB_SEED_MODE" env-default:"derived"`
}

// QuizConfig bounds the number of options per question.
type QuizConfig struct {
	MinOptions int `yaml:"min_options" env:"VOCAB_MIN_OPTIONS" env-default:"2"`
	MaxOptions int `yaml:"max_options" env:"VOCAB_MAX_OPTIONS" env-default:"4"`
}

// StoreConfig holds layout cache database settings. An empty Path means
// the XDG data directory.
type StoreConfig struct {
	Path string `yaml:"path" env:"VOCAB_DB"`

	// env-default only fills zero values, so booleans must default to false.
	Disabled    bool `yaml:"disabled"     env:"VOCAB_STORE_DISABLED"`
	KeepLayouts int  `yaml:"keep_layouts" env:"VOCAB_KEEP_LAYOUTS" env-default:"20"`
}

// AudioConfig points at pre-rendered pronunciation files.
type AudioConfig struct {
	Dir        string   `yaml:"dir"        env:"VOCAB_AUDIO_DIR"        env-default:"audio"`
	Extensions []string `yaml:"extensions" env:"VOCAB_AUDIO_EXTENSIONS" env-default:".wav,.mp3,.ogg" env-separator:","`
}
