package settings

// Keys in the settings store. They are part of the on-disk format.
const (
	KeyAudioQuality   = "Audio Quality"
	KeyOutputFormat   = "Output Format"
	KeyMicrophone     = "Microphone"
	KeyProjectRootDir = "Project Root Dir"
	KeyFFmpegLocation = "FFMPEG Location"
)

// noneValue is written for an unset FFmpeg location or project directory.
const noneValue = "None"

// AppSettings holds the user's preferences for one running application.
// Empty strings stand for "not set": no microphone chosen, or the system
// FFmpeg for FFmpegLocation.
type AppSettings struct {
	AudioQuality   AudioQuality
	OutputFormat   OutputMode
	Microphone     string
	ProjectRootDir string
	FFmpegLocation string

	// DefaultProjectDir is derived, never persisted.
	DefaultProjectDir string
}

// Defaults returns the preferences used before anything has been saved.
func Defaults(defaultProjectDir string) AppSettings {
	return AppSettings{
		AudioQuality:      QualityHigh,
		OutputFormat:      OutputWAV,
		ProjectRootDir:    defaultProjectDir,
		DefaultProjectDir: defaultProjectDir,
	}
}
