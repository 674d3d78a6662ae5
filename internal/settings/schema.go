package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AudioQuality is a recording quality preset.
type AudioQuality int

const (
	QualityLow AudioQuality = iota + 1
	QualityNormal
	QualityHigh
	QualityHighest
)

// SampleRate returns the capture sample rate in Hz for the preset.
func (q AudioQuality) SampleRate() int {
	switch q {
	case QualityLow:
		return 11025
	case QualityNormal:
		return 22050
	case QualityHigh:
		return 44100
	case QualityHighest:
		return 48000
	}
	return 0
}

func (q AudioQuality) String() string {
	if name, ok := AudioQualityNames[q]; ok {
		return name
	}
	return fmt.Sprintf("AudioQuality(%d)", int(q))
}

// audioQualityTable is the single source for the persisted quality names.
// Both lookup maps below are derived from it.
var audioQualityTable = []struct {
	quality AudioQuality
	name    string
}{
	{QualityLow, "Low"},
	{QualityNormal, "Normal"},
	{QualityHigh, "High"},
	{QualityHighest, "Highest"},
}

var (
	// AudioQualityByName decodes a persisted display name.
	AudioQualityByName map[string]AudioQuality
	// AudioQualityNames encodes a quality to its persisted display name.
	AudioQualityNames map[AudioQuality]string
)

func init() {
	AudioQualityByName, AudioQualityNames = buildQualityMaps()
}

func buildQualityMaps() (map[string]AudioQuality, map[AudioQuality]string) {
	byName := make(map[string]AudioQuality, len(audioQualityTable))
	names := make(map[AudioQuality]string, len(audioQualityTable))
	for _, entry := range audioQualityTable {
		if _, dup := byName[entry.name]; dup {
			panic(fmt.Sprintf("settings: audio quality name %q listed twice", entry.name))
		}
		if _, dup := names[entry.quality]; dup {
			panic(fmt.Sprintf("settings: audio quality %d listed twice", int(entry.quality)))
		}
		byName[entry.name] = entry.quality
		names[entry.quality] = entry.name
	}
	return byName, names
}

// AudioQualities returns every quality preset from lowest to highest.
func AudioQualities() []AudioQuality {
	out := make([]AudioQuality, 0, len(audioQualityTable))
	for _, entry := range audioQualityTable {
		out = append(out, entry.quality)
	}
	return out
}

// OutputMode is the container/encoding used for exported recordings. The
// numeric value is written to the settings store; never reorder members.
type OutputMode int

const (
	OutputWAV OutputMode = iota
	OutputMP3
	OutputOGG
	OutputFLAC
)

var outputModes = []OutputMode{OutputWAV, OutputMP3, OutputOGG, OutputFLAC}

// OutputModeNames holds display labels. They are never persisted.
var OutputModeNames = map[OutputMode]string{
	OutputWAV:  "WAV",
	OutputMP3:  "MP3",
	OutputOGG:  "OGG Vorbis",
	OutputFLAC: "FLAC",
}

// OutputModes returns the members in ordinal order.
func OutputModes() []OutputMode {
	return append([]OutputMode(nil), outputModes...)
}

func (m OutputMode) String() string {
	if name, ok := OutputModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("OutputMode(%d)", int(m))
}

// Extension returns the file extension written for the mode.
func (m OutputMode) Extension() string {
	switch m {
	case OutputMP3:
		return ".mp3"
	case OutputOGG:
		return ".ogg"
	case OutputFLAC:
		return ".flac"
	default:
		return ".wav"
	}
}

// ParseAudioQuality accepts a display name in any letter case.
func ParseAudioQuality(value string) (AudioQuality, error) {
	name := cases.Title(language.English).String(strings.TrimSpace(value))
	if q, ok := AudioQualityByName[name]; ok {
		return q, nil
	}
	return 0, fmt.Errorf("unknown audio quality %q (want one of %s)", value, strings.Join(qualityNames(), ", "))
}

// ParseOutputMode accepts a display label, its first word ("ogg") or the
// ordinal.
func ParseOutputMode(value string) (OutputMode, error) {
	trimmed := strings.TrimSpace(value)
	for _, mode := range outputModes {
		label := OutputModeNames[mode]
		if strings.EqualFold(trimmed, label) || strings.EqualFold(trimmed, strings.Fields(label)[0]) {
			return mode, nil
		}
	}
	if mode, err := decodeOutputMode(trimmed); err == nil {
		return mode, nil
	}
	return 0, fmt.Errorf("unknown output format %q", value)
}

func qualityNames() []string {
	names := make([]string, 0, len(audioQualityTable))
	for _, entry := range audioQualityTable {
		names = append(names, entry.name)
	}
	return names
}

// DefaultProjectDir returns the directory new projects are created in when
// the user has not chosen one. Log files live in its parent.
func DefaultProjectDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("hermes", "projects")
	}
	return filepath.Join(home, "hermes", "projects")
}
