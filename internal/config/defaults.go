package config

const (
	defaultProjectDir    = "~/hermes/projects"
	defaultLogFileName   = "log_hermes.log"
	defaultLogLevel      = "debug"
	defaultRetentionDays = 90
	defaultStoreBackend  = BackendFile

	// Organization and Application form the settings store namespace.
	Organization = "CoEDL"
	Application  = "Language Resource Creator"
)

// Store backend identifiers accepted in [store] backend.
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendRegistry = "registry"
	BackendMemory   = "memory"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DefaultProjectDir: defaultProjectDir,
		},
		Logging: Logging{
			Level:         defaultLogLevel,
			FileName:      defaultLogFileName,
			RetentionDays: defaultRetentionDays,
			Console:       true,
		},
		Store: Store{
			Backend: defaultStoreBackend,
		},
	}
}
