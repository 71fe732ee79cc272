// SPDX-License-Identifier: EPL-2.0

// Package capture records mono audio from the default input device through
// PortAudio and hands it to the noise pipeline as a Waveform.
//
// PortAudio is a cgo binding; building this package needs the portaudio
// development headers installed.
package capture

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gordonklaus/portaudio"
	"github.com/ik5/noisetonoise/audio"
)

const (
	DefaultSampleRate = 44100
	DefaultChunkSize  = 1024
)

var (
	ErrInvalidChunkSize = errors.New("chunk size must be positive")
	ErrNotRecording     = errors.New("recorder is not running")
	ErrAlreadyRecording = errors.New("recorder is already running")
)

// Recorder captures mono float32 audio from the default input device.
type Recorder struct {
	sampleRate int
	chunkSize  int
	stream     *portaudio.Stream
	buf        []float32

	mtx      sync.Mutex
	recorded []float32
	running  bool
	done     chan struct{}
	stopped  chan struct{}
	readErr  error
}

// NewRecorder initializes PortAudio and opens the default input stream.
// Call Close when finished to release PortAudio.
func NewRecorder(sampleRate, chunkSize int) (*Recorder, error) {
	if err := validate(sampleRate, chunkSize); err != nil {
		return nil, err
	}

	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("portaudio init: %w", err)
	}

	buf := make([]float32, chunkSize)
	stream, err := portaudio.OpenDefaultStream(1, 0, float64(sampleRate), chunkSize, buf)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("open mic: %w", err)
	}

	return &Recorder{
		sampleRate: sampleRate,
		chunkSize:  chunkSize,
		stream:     stream,
		buf:        buf,
	}, nil
}

func validate(sampleRate, chunkSize int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, sampleRate)
	}
	if chunkSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidChunkSize, chunkSize)
	}

	return nil
}

func (r *Recorder) SampleRate() int { return r.sampleRate }

// Start begins capturing in a background goroutine.
func (r *Recorder) Start() error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.running {
		return ErrAlreadyRecording
	}
	if err := r.stream.Start(); err != nil {
		return fmt.Errorf("start mic: %w", err)
	}

	r.running = true
	r.readErr = nil
	r.done = make(chan struct{})
	r.stopped = make(chan struct{})
	go r.capture(r.done, r.stopped)

	return nil
}

func (r *Recorder) capture(done <-chan struct{}, stopped chan<- struct{}) {
	defer close(stopped)
	for {
		select {
		case <-done:
			return
		default:
		}

		if err := r.stream.Read(); err != nil {
			// overflow drops a chunk but the stream is still usable
			if errors.Is(err, portaudio.InputOverflowed) {
				continue
			}
			r.mtx.Lock()
			r.readErr = err
			r.mtx.Unlock()
			return
		}

		r.mtx.Lock()
		r.recorded = append(r.recorded, r.buf...)
		r.mtx.Unlock()
	}
}

// Stop ends the recording and returns the captured samples. The recorder
// can be started again afterwards.
func (r *Recorder) Stop() ([]float32, error) {
	r.mtx.Lock()
	if !r.running {
		r.mtx.Unlock()
		return nil, ErrNotRecording
	}
	r.running = false
	done, stopped := r.done, r.stopped
	r.mtx.Unlock()

	close(done)
	<-stopped
	stopErr := r.stream.Stop()

	r.mtx.Lock()
	samples := r.recorded
	r.recorded = nil
	readErr := r.readErr
	r.mtx.Unlock()

	if readErr != nil {
		return samples, fmt.Errorf("reading mic: %w", readErr)
	}
	if stopErr != nil {
		return samples, fmt.Errorf("stop mic: %w", stopErr)
	}

	return samples, nil
}

// Record captures for d, or until ctx is done, and returns the raw samples.
func (r *Recorder) Record(ctx context.Context, d time.Duration) ([]float32, error) {
	if err := r.Start(); err != nil {
		return nil, err
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}

	samples, err := r.Stop()
	if err != nil {
		return samples, err
	}

	return trim(samples, r.sampleRate, d), nil
}

// Waveform wraps recorded samples for the noise pipeline.
func (r *Recorder) Waveform(samples []float32) (*audio.Waveform, error) {
	return audio.WaveformFromFloat32(samples, r.sampleRate)
}

// Close releases the stream and terminates PortAudio.
func (r *Recorder) Close() error {
	if err := r.stream.Close(); err != nil {
		portaudio.Terminate()
		return fmt.Errorf("close mic: %w", err)
	}

	return portaudio.Terminate()
}

// trim drops whole chunks read past the requested duration.
func trim(samples []float32, sampleRate int, d time.Duration) []float32 {
	want := framesFor(d, sampleRate)
	if want >= 0 && len(samples) > want {
		return samples[:want]
	}

	return samples
}

func framesFor(d time.Duration, sampleRate int) int {
	if d <= 0 || sampleRate <= 0 {
		return 0
	}

	return int(int64(d) * int64(sampleRate) / int64(time.Second))
}
