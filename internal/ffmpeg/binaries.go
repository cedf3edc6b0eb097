package ffmpeg

import (
	"fmt"
	"os"
	"os/exec"
	"sync"
)

// environment overrides for the resolved binaries
const (
	FFmpegEnv  = "SUBTEXT_FFMPEG_PATH"
	FFprobeEnv = "SUBTEXT_FFPROBE_PATH"
)

type BinaryPaths struct {
	FFmpeg  string
	FFprobe string
}

var (
	ensureOnce sync.Once
	ensureErr  error
	ensurePath BinaryPaths
)

// Ensure resolves the ffmpeg and ffprobe binaries once per process.
// Resolution order: environment override, then PATH. There is no
// download fallback; a missing ffprobe is a startup error.
func Ensure() (BinaryPaths, error) {
	ensureOnce.Do(func() {
		ensurePath, ensureErr = ensure()
	})
	return ensurePath, ensureErr
}

func ensure() (BinaryPaths, error) {
	ffmpegPath := os.Getenv(FFmpegEnv)
	ffprobePath := os.Getenv(FFprobeEnv)
	if ffmpegPath != "" && ffprobePath != "" {
		return BinaryPaths{FFmpeg: ffmpegPath, FFprobe: ffprobePath}, nil
	}

	if ffmpegPath == "" {
		if found, err := exec.LookPath("ffmpeg"); err == nil {
			ffmpegPath = found
		}
	}
	if ffprobePath == "" {
		if found, err := exec.LookPath("ffprobe"); err == nil {
			ffprobePath = found
		}
	}

	// ffprobe does the demuxing; ffmpeg itself is optional
	if ffprobePath == "" {
		return BinaryPaths{}, fmt.Errorf(
			"ffprobe not found: install ffmpeg or set %s", FFprobeEnv,
		)
	}

	return BinaryPaths{FFmpeg: ffmpegPath, FFprobe: ffprobePath}, nil
}
