package settings

// Config is the top-level configuration for the key analysis tooling.
type Config struct {
	Analyzer Analyzer `mapstructure:"analyzer" yaml:"analyzer"`
	Logger   Logger   `mapstructure:"logger" yaml:"logger"`
}

// Analyzer is the configuration for the classifier, the group builder sweep
// and the locator. All constants the analysis depends on are explicit here;
// nothing is read from process-wide globals.
type Analyzer struct {
	Cutoff     uint32   `mapstructure:"cutoff" yaml:"cutoff" validate:"gt=0"`
	Divisor    uint32   `mapstructure:"divisor" yaml:"divisor" validate:"gte=1"`
	Page       uint32   `mapstructure:"page" yaml:"page" validate:"gte=1"`
	Tolerances []uint32 `mapstructure:"tolerances" yaml:"tolerances" validate:"omitempty,dive,gte=1"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`
	FileLogName string `mapstructure:"file_log_name" yaml:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}
