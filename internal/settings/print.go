package settings

import (
	"fmt"
	"io"
)

// Field is one labelled line of the operator summary.
type Field struct {
	Label string
	Value string
}

// Describe returns the human-facing preferences of settings in display order.
func Describe(settings AppSettings) []Field {
	return []Field{
		{Label: "Audio Quality", Value: settings.AudioQuality.String()},
		{Label: "Output Format", Value: settings.OutputFormat.String()},
		{Label: "Microphone", Value: displayValue(settings.Microphone)},
		{Label: "Projects Directory", Value: displayValue(settings.ProjectRootDir)},
	}
}

// PrintCurrent writes the summary for an in-memory record.
func (s *Service) PrintCurrent(settings AppSettings) {
	writeFields(s.out, Describe(settings))
}

// Print writes the summary of what is currently persisted. Values the schema
// does not recognise are shown as stored.
func (s *Service) Print() {
	quality, _ := s.store.Value(KeyAudioQuality)
	format, _ := s.store.Value(KeyOutputFormat)
	if mode, err := decodeOutputMode(format); err == nil {
		format = mode.String()
	}
	microphone, _ := s.store.Value(KeyMicrophone)
	projects, _ := s.store.Value(KeyProjectRootDir)

	writeFields(s.out, []Field{
		{Label: "Audio Quality", Value: displayValue(quality)},
		{Label: "Output Format", Value: displayValue(format)},
		{Label: "Microphone", Value: displayValue(microphone)},
		{Label: "Projects Directory", Value: displayValue(projects)},
	})
}

func writeFields(w io.Writer, fields []Field) {
	for _, field := range fields {
		fmt.Fprintf(w, "%s: %s\n", field.Label, field.Value)
	}
}

func displayValue(value string) string {
	if value == "" {
		return noneValue
	}
	return value
}
