package settings_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"lrc/internal/logging"
	"lrc/internal/settings"
	"lrc/internal/testsupport"
)

const projects = "/home/u/projects"

func newService(t *testing.T, s settings.Store, opts ...settings.Option) (*settings.Service, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	opts = append([]settings.Option{
		settings.WithOutput(out),
		settings.WithDefaultProjectDir(projects),
	}, opts...)
	return settings.New(s, opts...), out
}

func sample() settings.AppSettings {
	return settings.AppSettings{
		AudioQuality:      settings.QualityHigh,
		OutputFormat:      settings.OutputWAV,
		Microphone:        "USB Mic",
		ProjectRootDir:    projects,
		DefaultProjectDir: projects,
	}
}

func TestExistsFalseOnFirstRun(t *testing.T) {
	svc, _ := newService(t, testsupport.NewMemoryStore(t, nil))
	if svc.Exists() {
		t.Fatal("expected no settings on first run")
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	mem := testsupport.NewMemoryStore(t, nil)
	svc, out := newService(t, mem)

	if err := svc.Save(sample()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !svc.Exists() {
		t.Fatal("expected settings to exist after Save")
	}

	persisted := mem.Persisted()
	want := map[string]string{
		settings.KeyAudioQuality:   "High",
		settings.KeyOutputFormat:   "0",
		settings.KeyMicrophone:     "USB Mic",
		settings.KeyFFmpegLocation: "None",
		settings.KeyProjectRootDir: projects,
	}
	for key, value := range want {
		if persisted[key] != value {
			t.Fatalf("persisted %q = %q, want %q", key, persisted[key], value)
		}
	}

	wantSummary := "Audio Quality: High\nOutput Format: WAV\nMicrophone: USB Mic\nProjects Directory: /home/u/projects\n"
	if out.String() != wantSummary {
		t.Fatalf("unexpected summary:\n%s", out.String())
	}

	loaded, err := svc.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != sample() {
		t.Fatalf("loaded %+v, want %+v", loaded, sample())
	}
}

func TestEveryQualityAndFormatRoundTrips(t *testing.T) {
	for _, quality := range settings.AudioQualities() {
		for _, format := range settings.OutputModes() {
			svc, _ := newService(t, testsupport.NewMemoryStore(t, nil))
			record := sample()
			record.AudioQuality = quality
			record.OutputFormat = format
			if err := svc.Save(record); err != nil {
				t.Fatalf("Save(%v, %v): %v", quality, format, err)
			}
			loaded, err := svc.Load()
			if err != nil {
				t.Fatalf("Load(%v, %v): %v", quality, format, err)
			}
			if loaded.AudioQuality != quality || loaded.OutputFormat != format {
				t.Fatalf("got %v/%v, want %v/%v", loaded.AudioQuality, loaded.OutputFormat, quality, format)
			}
		}
	}
}

func TestEmptyFFmpegLocationPersistsAsNone(t *testing.T) {
	mem := testsupport.NewMemoryStore(t, nil)
	svc, _ := newService(t, mem)

	record := sample()
	record.FFmpegLocation = ""
	if err := svc.Save(record); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := mem.Persisted()[settings.KeyFFmpegLocation]; got != "None" {
		t.Fatalf("expected None on disk, got %q", got)
	}
	loaded, err := svc.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.FFmpegLocation != "" {
		t.Fatalf("expected empty location, got %q", loaded.FFmpegLocation)
	}
}

func TestLoadWithoutFFmpegKeyKeepsDefault(t *testing.T) {
	mem := testsupport.NewMemoryStore(t, map[string]string{
		settings.KeyAudioQuality: "Low",
		settings.KeyOutputFormat: "2",
	})
	svc, _ := newService(t, mem)

	loaded, err := svc.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.FFmpegLocation != "" {
		t.Fatalf("expected default location, got %q", loaded.FFmpegLocation)
	}
	if loaded.AudioQuality != settings.QualityLow || loaded.OutputFormat != settings.OutputOGG {
		t.Fatalf("unexpected record %+v", loaded)
	}
	if loaded.Microphone != "" {
		t.Fatalf("expected no microphone, got %q", loaded.Microphone)
	}
	if loaded.DefaultProjectDir != projects {
		t.Fatalf("expected derived default dir, got %q", loaded.DefaultProjectDir)
	}
}

func TestEmptyProjectDirPersistsAsNone(t *testing.T) {
	mem := testsupport.NewMemoryStore(t, nil)
	svc, out := newService(t, mem)

	record := sample()
	record.ProjectRootDir = ""
	if err := svc.Save(record); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := mem.Persisted()[settings.KeyProjectRootDir]; got != "None" {
		t.Fatalf("expected None on disk, got %q", got)
	}
	requireLine(t, out.String(), "Projects Directory: None")

	loaded, err := svc.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.ProjectRootDir != "" {
		t.Fatalf("expected unset project dir, got %q", loaded.ProjectRootDir)
	}
	if loaded != record {
		t.Fatalf("loaded %+v, want %+v", loaded, record)
	}
}

func TestLoadOnEmptyStoreIsCorrupt(t *testing.T) {
	svc, _ := newService(t, testsupport.NewMemoryStore(t, nil))

	if svc.Exists() {
		t.Fatal("expected empty store to not exist")
	}
	_, err := svc.Load()
	if !errors.Is(err, settings.ErrCorruptConfig) {
		t.Fatalf("expected ErrCorruptConfig, got %v", err)
	}
	var corrupt *settings.CorruptError
	if !errors.As(err, &corrupt) || corrupt.Key != settings.KeyAudioQuality {
		t.Fatalf("expected missing quality to be reported, got %#v", err)
	}
}

func TestLoadRejectsUnknownQuality(t *testing.T) {
	mem := testsupport.NewMemoryStore(t, map[string]string{
		settings.KeyAudioQuality: "Ultra",
		settings.KeyOutputFormat: "0",
	})
	svc, _ := newService(t, mem)

	_, err := svc.Load()
	if !errors.Is(err, settings.ErrCorruptConfig) {
		t.Fatalf("expected ErrCorruptConfig, got %v", err)
	}
	var corrupt *settings.CorruptError
	if !errors.As(err, &corrupt) || corrupt.Key != settings.KeyAudioQuality || corrupt.Value != "Ultra" {
		t.Fatalf("expected corrupt quality details, got %#v", err)
	}
}

func TestLoadRejectsBadFormat(t *testing.T) {
	for _, raw := range []string{"7", "-1", "WAV", ""} {
		mem := testsupport.NewMemoryStore(t, map[string]string{
			settings.KeyAudioQuality: "High",
			settings.KeyOutputFormat: raw,
		})
		svc, _ := newService(t, mem)
		_, err := svc.Load()
		var corrupt *settings.CorruptError
		if !errors.As(err, &corrupt) || corrupt.Key != settings.KeyOutputFormat {
			t.Fatalf("format %q: expected corrupt format error, got %v", raw, err)
		}
	}
}

func TestSaveRejectsOutOfRangeValues(t *testing.T) {
	mem := testsupport.NewMemoryStore(t, nil)
	svc, out := newService(t, mem)

	record := sample()
	record.AudioQuality = settings.AudioQuality(42)
	if err := svc.Save(record); !errors.Is(err, settings.ErrCorruptConfig) {
		t.Fatalf("expected ErrCorruptConfig, got %v", err)
	}
	record = sample()
	record.OutputFormat = settings.OutputMode(9)
	if err := svc.Save(record); !errors.Is(err, settings.ErrCorruptConfig) {
		t.Fatalf("expected ErrCorruptConfig, got %v", err)
	}
	if mem.Exists() || len(mem.Persisted()) != 0 {
		t.Fatal("rejected save must not write anything")
	}
	if out.Len() != 0 {
		t.Fatal("rejected save must not print")
	}
}

func TestSaveReportsStoreFailure(t *testing.T) {
	mem := testsupport.NewMemoryStore(t, nil)
	mem.SyncErr = errors.New("read-only filesystem")
	svc, out := newService(t, mem)

	err := svc.Save(sample())
	var storeErr *settings.StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected StoreError, got %v", err)
	}
	if !errors.Is(err, mem.SyncErr) {
		t.Fatalf("expected wrapped sync error, got %v", err)
	}
	if len(mem.Persisted()) != 0 {
		t.Fatal("failed sync must not persist any key")
	}
	if out.Len() != 0 {
		t.Fatal("failed save must not print")
	}
}

func TestSetFFmpegLocationSavesAndNotifiesConverter(t *testing.T) {
	mem := testsupport.NewMemoryStore(t, nil)
	var got []string
	svc, _ := newService(t, mem, settings.WithConverter(func(path string) {
		got = append(got, path)
	}))

	record := sample()
	if err := svc.SetFFmpegLocation(&record, "/opt/ffmpeg/bin/ffmpeg"); err != nil {
		t.Fatalf("SetFFmpegLocation: %v", err)
	}
	if record.FFmpegLocation != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("record not updated: %q", record.FFmpegLocation)
	}
	if mem.Persisted()[settings.KeyFFmpegLocation] != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("location not persisted: %v", mem.Persisted())
	}

	if err := svc.SetFFmpegLocation(&record, ""); err != nil {
		t.Fatalf("SetFFmpegLocation reset: %v", err)
	}
	if mem.Persisted()[settings.KeyFFmpegLocation] != "None" {
		t.Fatalf("expected None after reset, got %q", mem.Persisted()[settings.KeyFFmpegLocation])
	}
	if len(got) != 2 || got[0] != "/opt/ffmpeg/bin/ffmpeg" || got[1] != "" {
		t.Fatalf("unexpected converter calls %q", got)
	}
}

func TestSetFFmpegLocationKeepsPathVerbatim(t *testing.T) {
	mem := testsupport.NewMemoryStore(t, nil)
	var got string
	svc, _ := newService(t, mem, settings.WithConverter(func(path string) { got = path }))

	padded := " /Volumes/Audio Tools/ffmpeg "
	record := sample()
	if err := svc.SetFFmpegLocation(&record, padded); err != nil {
		t.Fatalf("SetFFmpegLocation: %v", err)
	}
	if record.FFmpegLocation != padded || got != padded {
		t.Fatalf("expected path unchanged, record=%q converter=%q", record.FFmpegLocation, got)
	}
	if mem.Persisted()[settings.KeyFFmpegLocation] != padded {
		t.Fatalf("expected path persisted unchanged, got %q", mem.Persisted()[settings.KeyFFmpegLocation])
	}
}

func TestSetFFmpegLocationSkipsConverterOnFailure(t *testing.T) {
	mem := testsupport.NewMemoryStore(t, nil)
	mem.SyncErr = errors.New("locked")
	called := false
	svc, _ := newService(t, mem, settings.WithConverter(func(string) { called = true }))

	record := sample()
	if err := svc.SetFFmpegLocation(&record, "/usr/bin/ffmpeg"); err == nil {
		t.Fatal("expected error")
	}
	if called {
		t.Fatal("converter must not change when the save fails")
	}
}

func TestPrintShowsStoredValuesAndNone(t *testing.T) {
	mem := testsupport.NewMemoryStore(t, map[string]string{
		settings.KeyAudioQuality:   "Normal",
		settings.KeyOutputFormat:   "2",
		settings.KeyMicrophone:     "",
		settings.KeyProjectRootDir: projects,
	})
	svc, out := newService(t, mem)
	svc.Print()

	want := "Audio Quality: Normal\nOutput Format: OGG Vorbis\nMicrophone: None\nProjects Directory: /home/u/projects\n"
	if out.String() != want {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestPrintCurrentDescribesRecord(t *testing.T) {
	svc, out := newService(t, testsupport.NewMemoryStore(t, nil))
	record := sample()
	record.OutputFormat = settings.OutputFLAC
	record.Microphone = ""
	svc.PrintCurrent(record)

	if !strings.Contains(out.String(), "Output Format: FLAC\n") || !strings.Contains(out.String(), "Microphone: None\n") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestServiceLogsUnderSettingsName(t *testing.T) {
	console := &bytes.Buffer{}
	logger, err := logging.New(logging.Options{Dir: t.TempDir(), Level: "debug", Console: console})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	t.Cleanup(func() { _ = logger.Close() })

	svc, _ := newService(t, testsupport.NewMemoryStore(t, nil), settings.WithLogger(logger.Named(settings.LoggerName)))
	if err := svc.Save(sample()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !svc.Exists() {
		t.Fatal("expected settings to exist")
	}

	logged := console.String()
	if !strings.Contains(logged, "INFO [SettingsUtil] settings saved") {
		t.Fatalf("expected save line, got:\n%s", logged)
	}
	if !strings.Contains(logged, "DEBUG [SettingsUtil] system settings found") {
		t.Fatalf("expected debug line, got:\n%s", logged)
	}
}

func requireLine(t *testing.T, output, line string) {
	t.Helper()
	for _, got := range strings.Split(output, "\n") {
		if got == line {
			return
		}
	}
	t.Fatalf("expected line %q in:\n%s", line, output)
}
