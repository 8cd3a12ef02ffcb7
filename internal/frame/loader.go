package frame

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoFrames is returned when a source yields no frame art at all.
var ErrNoFrames = errors.New("frame: no frames found")

// artExtension is the file extension frame art is stored under.
const artExtension = ".txt"

//go:embed art/*.txt
var defaultArt embed.FS

// Loader loads frame art from a directory of text files.
type Loader struct {
	Root string
}

// NewLoader creates a new frame loader rooted at dir.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll loads every art file under Root, sorted by name so the animation
// cycle is deterministic. Unlike a best-effort scan, a single malformed file
// fails the whole load: corrupt art cannot be recovered from at runtime.
func (l *Loader) LoadAll() ([]Frame, error) {
	var paths []string

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.ToLower(filepath.Ext(path)) == artExtension {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	frames, err := LoadFiles(paths...)
	if err != nil {
		return nil, err
	}
	sortByName(frames)
	return frames, nil
}

// LoadFile loads a single art file. The frame is named after the file
// without its extension.
func LoadFile(path string) (Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Frame{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	return Parse(nameFromPath(path), string(data))
}

// LoadFiles loads the given art files in order.
func LoadFiles(paths ...string) ([]Frame, error) {
	if len(paths) == 0 {
		return nil, ErrNoFrames
	}

	frames := make([]Frame, 0, len(paths))
	for _, p := range paths {
		f, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// Defaults returns the rocket frames compiled into the binary.
func Defaults() ([]Frame, error) {
	paths, err := fs.Glob(defaultArt, "art/*"+artExtension)
	if err != nil {
		return nil, fmt.Errorf("listing embedded art: %w", err)
	}
	if len(paths) == 0 {
		return nil, ErrNoFrames
	}

	frames := make([]Frame, 0, len(paths))
	for _, p := range paths {
		data, err := defaultArt.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading embedded art %s: %w", p, err)
		}
		f, err := Parse(nameFromPath(p), string(data))
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	sortByName(frames)
	return frames, nil
}

// Load resolves the frame set to animate.
// Search order: dir -> ~/.starship/frames -> ./frames -> embedded defaults.
// An explicit dir that fails to load is an error; the fallbacks are skipped
// silently when absent.
func Load(dir string) ([]Frame, error) {
	if dir != "" {
		return NewLoader(dir).LoadAll()
	}

	for _, candidate := range []string{userFramesPath(), "frames"} {
		if candidate == "" {
			continue
		}
		if info, err := os.Stat(candidate); err != nil || !info.IsDir() {
			continue
		}
		frames, err := NewLoader(candidate).LoadAll()
		if err != nil {
			return nil, err
		}
		return frames, nil
	}

	return Defaults()
}

// userFramesPath returns the per-user art directory, or empty if home is
// unavailable.
func userFramesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starship", "frames")
}

func nameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func sortByName(frames []Frame) {
	sort.SliceStable(frames, func(i, j int) bool {
		return frames[i].name < frames[j].name
	})
}
