package ffmpeg

import (
	"path/filepath"
	"testing"
)

func TestEnsureEnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	ffmpegPath := filepath.Join(tmpDir, "ffmpeg")
	ffprobePath := filepath.Join(tmpDir, "ffprobe")
	t.Setenv(FFmpegEnv, ffmpegPath)
	t.Setenv(FFprobeEnv, ffprobePath)

	paths, err := ensure()
	if err != nil {
		t.Fatalf("ensure failed: %v", err)
	}
	if paths.FFmpeg != ffmpegPath {
		t.Errorf("FFmpeg = %q, want override %q", paths.FFmpeg, ffmpegPath)
	}
	if paths.FFprobe != ffprobePath {
		t.Errorf("FFprobe = %q, want override %q", paths.FFprobe, ffprobePath)
	}
}

func TestEnsureFFprobeOverrideAlone(t *testing.T) {
	// an ffprobe override is enough to start even with an empty PATH
	t.Setenv(FFmpegEnv, "")
	t.Setenv(FFprobeEnv, "/opt/ffmpeg/bin/ffprobe")
	t.Setenv("PATH", t.TempDir())

	paths, err := ensure()
	if err != nil {
		t.Fatalf("ensure failed: %v", err)
	}
	if paths.FFprobe != "/opt/ffmpeg/bin/ffprobe" {
		t.Errorf("FFprobe = %q, want override", paths.FFprobe)
	}
	if paths.FFmpeg != "" {
		t.Errorf("FFmpeg = %q, want empty with bare PATH", paths.FFmpeg)
	}
}

func TestEnsureMissingFFprobe(t *testing.T) {
	t.Setenv(FFmpegEnv, "")
	t.Setenv(FFprobeEnv, "")
	t.Setenv("PATH", t.TempDir())

	if _, err := ensure(); err == nil {
		t.Error("expected an error when ffprobe is unresolvable")
	}
}
