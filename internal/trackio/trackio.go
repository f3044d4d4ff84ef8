package trackio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-audio/wav"

	"github.com/cwbudde/vocalblend/dsp/buffer"
)

// Library loads track stems from a directory tree laid out as
// <root>/<track>/<role>.wav.
type Library struct {
	root string
}

// New returns a Library rooted at the given directory.
func New(root string) *Library {
	return &Library{root: root}
}

// Root returns the library's root directory.
func (l *Library) Root() string {
	return l.root
}

// Load decodes <root>/<track>/<role>.wav into a channel-major float
// buffer. Integer PCM is normalized to [-1, 1) by the source bit depth.
func (l *Library) Load(track, role string) (*buffer.Audio, error) {
	path := filepath.Join(l.root, track, role+".wav")

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("trackio: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("trackio: %s: not a valid WAV file", path)
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("trackio: %s: decode: %w", path, err)
	}
	numChannels := pcm.Format.NumChannels
	if numChannels <= 0 {
		return nil, fmt.Errorf("trackio: %s: no channels", path)
	}

	bitDepth := pcm.SourceBitDepth
	if bitDepth <= 0 {
		bitDepth = 16
	}
	scale := 1 / float64(int64(1)<<(bitDepth-1))

	frames := len(pcm.Data) / numChannels
	channels := make([][]float64, numChannels)
	for c := range channels {
		channels[c] = make([]float64, frames)
	}
	for i := 0; i < frames; i++ {
		for c := 0; c < numChannels; c++ {
			channels[c][i] = float64(pcm.Data[i*numChannels+c]) * scale
		}
	}

	a, err := buffer.FromChannels(channels, pcm.Format.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("trackio: %s: %w", path, err)
	}
	return a, nil
}

// Discover returns the track IDs under root: the names of its
// immediate subdirectories, sorted.
func Discover(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("trackio: %w", err)
	}

	var tracks []string
	for _, e := range entries {
		if e.IsDir() {
			tracks = append(tracks, e.Name())
		}
	}
	return tracks, nil
}
