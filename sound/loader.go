package sound

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Loader reads sound files from a file system and keeps decoded effects in
// memory.
type Loader struct {
	fsys     fs.FS
	sfxCache map[string][]byte
	context  *audio.Context
}

func NewLoader(ctx *audio.Context, fsys fs.FS) *Loader {
	return &Loader{
		fsys:     fsys,
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// decode reads path and returns its stream resampled to the context rate.
func (l *Loader) decode(path string) (io.Reader, int64, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, 0, fmt.Errorf("read audio file %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, 0, fmt.Errorf("decode ogg %s: %w", path, err)
		}
		return stream, stream.Length(), nil
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, 0, fmt.Errorf("decode wav %s: %w", path, err)
		}
		return stream, stream.Length(), nil
	default:
		return nil, 0, fmt.Errorf("unsupported audio format %q for %s", ext, path)
	}
}

// Preload decodes a sound effect into the cache.
func (l *Loader) Preload(path string) error {
	if _, ok := l.sfxCache[path]; ok {
		return nil
	}
	stream, _, err := l.decode(path)
	if err != nil {
		return err
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("read decoded audio %s: %w", path, err)
	}
	l.sfxCache[path] = decoded
	return nil
}

// SFX returns a new player for a cached sound effect, decoding it first if
// needed.
func (l *Loader) SFX(path string) (*audio.Player, error) {
	if err := l.Preload(path); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[path]))
}

// Music returns a looping player that streams path.
func (l *Loader) Music(path string) (*audio.Player, error) {
	stream, length, err := l.decode(path)
	if err != nil {
		return nil, err
	}
	seeker, ok := stream.(io.ReadSeeker)
	if !ok {
		return nil, fmt.Errorf("music %s: stream is not seekable", path)
	}
	return l.context.NewPlayer(audio.NewInfiniteLoop(seeker, length))
}
