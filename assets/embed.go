package assets

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed *.wav
var assetsFS embed.FS

const sampleRate = 44100

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// Context returns the shared audio context, creating it on first use.
func Context() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.CurrentContext()
		if audioContext == nil {
			audioContext = audio.NewContext(sampleRate)
		}
	})
	return audioContext
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

// LoadAudioPlayer decodes an embedded wav cue into a fresh player.
func LoadAudioPlayer(path string) (*audio.Player, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	ctx := Context()
	stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode wav %q: %w", path, err)
	}
	return ctx.NewPlayer(stream)
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
		s = s[idx+len("/assets/"):]
	}
	s = strings.TrimPrefix(s, "assets/")
	if filepath.Ext(s) == "" {
		s += ".wav"
	}
	return s
}
