package deps

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"lrc/internal/audio"
)

// CheckTranscoder reports the FFmpeg binary conversions will execute. A
// non-empty location is the user's saved choice; otherwise "ffmpeg" is
// resolved from PATH. The result is informational: saving an unusable
// location is allowed and surfaces here or when the converter first runs.
func CheckTranscoder(location string) Status {
	location = strings.TrimSpace(location)
	if location == "" {
		return Check(Requirement{
			Name:        "FFmpeg",
			Command:     audio.DefaultConverter,
			Description: "System transcoder for exported recordings",
		})
	}

	result := Status{
		Name:        "FFmpeg",
		Command:     location,
		Description: "Configured transcoder for exported recordings",
	}
	info, err := os.Stat(location)
	switch {
	case err != nil:
		result.Detail = fmt.Sprintf("configured binary %q not found", location)
	case !isExecutable(info):
		result.Detail = fmt.Sprintf("configured path %q is not an executable file", location)
	default:
		result.Available = true
	}
	return result
}

func isExecutable(info os.FileInfo) bool {
	if info == nil {
		return false
	}
	if info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
