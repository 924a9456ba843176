package config

// Config is the persisted botkeeper settings document. The three path fields
// may be empty until the user configures them; path existence is checked by
// the pathcheck package at operation time, not here.
type Config struct {
	// InstancesRoot is the directory whose children are the managed instances.
	InstancesRoot string `yaml:"instances_root"`
	// CoreFile is the source path of the core archive distributed to every
	// instance root.
	CoreFile string `yaml:"core_file"`
	// PluginSource is the directory holding candidate plugin archives.
	PluginSource string `yaml:"plugin_source"`
	// Language selects the translation table (two-letter code).
	Language string `yaml:"language" validate:"omitempty,lang_code"`
	// LogExtension is the suffix of files purged from each instance's logs
	// directory.
	LogExtension string `yaml:"log_extension" validate:"required,file_ext"`
	// ArchiveExtension is the suffix of plugin archive files.
	ArchiveExtension string `yaml:"archive_extension" validate:"required,file_ext"`
}

// Default returns the configuration written on first run.
func Default() *Config {
	return &Config{
		Language:         "en",
		LogExtension:     ".log",
		ArchiveExtension: ".jar",
	}
}

// applyDefaults backfills fields a hand-edited file may have dropped.
// Reports whether anything changed so the caller can persist the repair.
func (c *Config) applyDefaults() bool {
	changed := false
	def := Default()
	if c.Language == "" {
		c.Language = def.Language
		changed = true
	}
	if c.LogExtension == "" {
		c.LogExtension = def.LogExtension
		changed = true
	}
	if c.ArchiveExtension == "" {
		c.ArchiveExtension = def.ArchiveExtension
		changed = true
	}
	return changed
}
