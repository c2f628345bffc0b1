package speech

import (
	"bytes"
	"os/exec"
	"strconv"
	"strings"
)

// DurationMs probes the audio with ffprobe and falls back to a PCM
// estimate when ffprobe is missing or cannot parse the container.
func DurationMs(data []byte) int {
	cmd := exec.Command("ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		"-",
	)
	cmd.Stdin = bytes.NewReader(data)

	out, err := cmd.Output()
	if err != nil {
		return pcmEstimateMs(data)
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil || seconds <= 0 {
		return pcmEstimateMs(data)
	}

	return int(seconds * 1000)
}

// pcmEstimateMs assumes 24 kHz 16-bit mono PCM.
func pcmEstimateMs(data []byte) int {
	return int(float64(len(data)) / 24000.0 / 2.0 * 1000.0)
}
