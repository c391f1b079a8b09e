package notifier

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/speaker"
)

const drainSlack = 500 * time.Millisecond

type player interface {
	Play(s ...beep.Streamer)
	Close()
}

type speakerPlayer struct{}

func (speakerPlayer) Play(s ...beep.Streamer) {
	speaker.Play(s...)
}

func (speakerPlayer) Close() {
	speaker.Close()
}

// Sound plays a short FLAC clip. The clip is decoded once and kept in memory so it can be replayed.
type Sound struct {
	buffer  *beep.Buffer
	player  player
	playing sync.WaitGroup
	// Close waits at most this long for clips still playing.
	drainTimeout time.Duration
}

// LoadSound decodes the clip and opens the audio device.
func LoadSound(path string) (*Sound, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound: %w", err)
	}

	defer func() {
		_ = f.Close()
	}()

	streamer, format, err := flac.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound: %w", err)
	}

	defer func() {
		_ = streamer.Close()
	}()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}

	return newSound(buffer, speakerPlayer{}), nil
}

func newSound(buffer *beep.Buffer, p player) *Sound {
	return &Sound{
		buffer:       buffer,
		player:       p,
		drainTimeout: buffer.Format().SampleRate.D(buffer.Len()) + drainSlack,
	}
}

// Notify starts playback and returns without waiting for it to finish.
func (s *Sound) Notify(_ context.Context, _ string) error {
	s.playing.Add(1)
	s.player.Play(beep.Seq(s.buffer.Streamer(0, s.buffer.Len()), beep.Callback(s.playing.Done)))

	return nil
}

// Close lets clips still playing finish, then releases the audio device.
func (s *Sound) Close() {
	done := make(chan struct{})

	go func() {
		s.playing.Wait()
		close(done)
	}()

	timer := time.NewTimer(s.drainTimeout)
	defer timer.Stop()

	select {
	case <-done:
	case <-timer.C:
	}

	s.player.Close()
}
