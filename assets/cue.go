package assets

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

type cue interface {
	SetVolume(volume float64)
	SetPosition(offset time.Duration) error
	Play()
}

// CuePlayer plays short named sound cues. Failures are logged once per cue
// and never reach the caller.
type CuePlayer struct {
	logger *log.Logger
	volume float64
	load   func(name string) (cue, error)

	cues   map[string]cue
	failed map[string]bool
	muted  bool
}

func NewCuePlayer(logger *log.Logger, volume float64) *CuePlayer {
	return newCuePlayer(logger, volume, func(name string) (cue, error) {
		return LoadAudioPlayer(name)
	})
}

func newCuePlayer(logger *log.Logger, volume float64, load func(string) (cue, error)) *CuePlayer {
	return &CuePlayer{
		logger: logger,
		volume: volume,
		load:   load,
		cues:   make(map[string]cue),
		failed: make(map[string]bool),
	}
}

// SetMuted silences every later Play call.
func (c *CuePlayer) SetMuted(muted bool) {
	if c == nil {
		return
	}
	c.muted = muted
}

// Play restarts the named cue from the beginning.
func (c *CuePlayer) Play(name string) {
	if c == nil || c.muted || name == "" || c.failed[name] {
		return
	}

	p, ok := c.cues[name]
	if !ok {
		loaded, err := c.safeLoad(name)
		if err != nil {
			c.failed[name] = true
			if c.logger != nil {
				c.logger.Warn("audio cue unavailable", "cue", name, "err", err)
			}
			return
		}
		loaded.SetVolume(c.volume)
		c.cues[name] = loaded
		p = loaded
	}

	if err := p.SetPosition(0); err != nil && c.logger != nil {
		c.logger.Debug("audio cue rewind failed", "cue", name, "err", err)
	}
	p.Play()
}

// safeLoad turns a panicking audio backend into an error.
func (c *CuePlayer) safeLoad(name string) (p cue, err error) {
	defer func() {
		if r := recover(); r != nil {
			p = nil
			err = &loadPanic{value: r}
		}
	}()
	return c.load(name)
}

type loadPanic struct {
	value any
}

func (e *loadPanic) Error() string {
	return fmt.Sprintf("audio backend panic: %v", e.value)
}
