package settings

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"lrc/internal/logging"
)

// LoggerName tags every line written by the service.
const LoggerName = "SettingsUtil"

// Store is the string-keyed preference storage behind a Service. Keys are
// never deleted. A missing key is not an error; call Contains first when a
// key may legitimately be absent.
type Store interface {
	// Path names the backing file or registry key.
	Path() string
	// Exists reports whether anything has been persisted yet.
	Exists() bool
	Value(key string) (string, bool)
	Contains(key string) bool
	Set(key, value string)
	// Sync flushes pending writes to durable storage.
	Sync() error
}

// ConverterHook receives the transcoder binary path whenever it changes. An
// empty path selects the system default.
type ConverterHook func(path string)

// Service translates between a Store and AppSettings.
type Service struct {
	store             Store
	logger            *slog.Logger
	out               io.Writer
	converter         ConverterHook
	defaultProjectDir string
}

// Option customises a Service.
type Option func(*Service)

// WithLogger sets the logger used by the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithOutput redirects the operator summary printed after each save.
func WithOutput(w io.Writer) Option {
	return func(s *Service) {
		if w != nil {
			s.out = w
		}
	}
}

// WithConverter installs the hook called by SetFFmpegLocation.
func WithConverter(hook ConverterHook) Option {
	return func(s *Service) {
		s.converter = hook
	}
}

// WithDefaultProjectDir overrides the derived default project directory.
func WithDefaultProjectDir(dir string) Option {
	return func(s *Service) {
		if strings.TrimSpace(dir) != "" {
			s.defaultProjectDir = dir
		}
	}
}

// New builds a Service over store.
func New(store Store, opts ...Option) *Service {
	s := &Service{
		store:             store,
		logger:            logging.NewNop(),
		out:               os.Stdout,
		defaultProjectDir: DefaultProjectDir(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Exists reports whether settings have been saved before. The shell uses it
// to choose between the first-run setup flow and Load.
func (s *Service) Exists() bool {
	if !s.store.Exists() {
		return false
	}
	s.logger.Debug("system settings found", logging.String("path", s.store.Path()))
	return true
}

// Load reads the persisted preferences. Unrecognised quality or format
// values return an error wrapping ErrCorruptConfig.
func (s *Service) Load() (AppSettings, error) {
	settings := Defaults(s.defaultProjectDir)

	rawQuality, _ := s.store.Value(KeyAudioQuality)
	quality, ok := AudioQualityByName[rawQuality]
	if !ok {
		return AppSettings{}, &CorruptError{Key: KeyAudioQuality, Value: rawQuality}
	}
	settings.AudioQuality = quality

	rawFormat, _ := s.store.Value(KeyOutputFormat)
	format, err := decodeOutputMode(rawFormat)
	if err != nil {
		return AppSettings{}, &CorruptError{Key: KeyOutputFormat, Value: rawFormat, Err: err}
	}
	settings.OutputFormat = format

	settings.Microphone, _ = s.store.Value(KeyMicrophone)
	projects, _ := s.store.Value(KeyProjectRootDir)
	settings.ProjectRootDir = decodeNullable(projects)

	if s.store.Contains(KeyFFmpegLocation) {
		location, _ := s.store.Value(KeyFFmpegLocation)
		// The path is not checked here; the audio tools report a bad path
		// when they first run it.
		settings.FFmpegLocation = decodeNullable(location)
	}
	return settings, nil
}

// Save writes every preference, flushes the store and prints the persisted
// values to the operator output.
func (s *Service) Save(settings AppSettings) error {
	quality, ok := AudioQualityNames[settings.AudioQuality]
	if !ok {
		return &CorruptError{Key: KeyAudioQuality, Value: settings.AudioQuality.String()}
	}
	if _, ok := OutputModeNames[settings.OutputFormat]; !ok {
		return &CorruptError{Key: KeyOutputFormat, Value: strconv.Itoa(int(settings.OutputFormat))}
	}

	s.store.Set(KeyAudioQuality, quality)
	s.store.Set(KeyOutputFormat, strconv.Itoa(int(settings.OutputFormat)))
	s.store.Set(KeyMicrophone, settings.Microphone)
	s.store.Set(KeyFFmpegLocation, encodeNullable(settings.FFmpegLocation))
	s.store.Set(KeyProjectRootDir, encodeNullable(settings.ProjectRootDir))
	if err := s.store.Sync(); err != nil {
		s.logger.Error("settings save failed", logging.String("path", s.store.Path()), logging.Error(err))
		return &StoreError{Operation: "save", Err: err}
	}
	s.logger.Info("settings saved", logging.String("path", s.store.Path()))

	s.Print()
	return nil
}

// SetFFmpegLocation records a new transcoder path as given, saves it, and
// points the audio converter at it. An empty path selects the system FFmpeg.
func (s *Service) SetFFmpegLocation(settings *AppSettings, path string) error {
	settings.FFmpegLocation = path
	if err := s.Save(*settings); err != nil {
		return err
	}
	if s.converter != nil {
		s.converter(settings.FFmpegLocation)
	}
	s.logger.Info("transcoder location updated", logging.String("ffmpeg", displayValue(settings.FFmpegLocation)))
	return nil
}

func decodeOutputMode(value string) (OutputMode, error) {
	index, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("output format index: %w", err)
	}
	if index < 0 || index >= len(outputModes) {
		return 0, fmt.Errorf("output format index %d out of range [0,%d)", index, len(outputModes))
	}
	return outputModes[index], nil
}

// decodeNullable maps the "None" sentinel back to an unset value.
func decodeNullable(value string) string {
	if value == noneValue {
		return ""
	}
	return value
}

func encodeNullable(value string) string {
	if value == "" {
		return noneValue
	}
	return value
}
