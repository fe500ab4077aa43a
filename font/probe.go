package font

import "os"
import "errors"
import "runtime"
import "strings"
import "io/fs"
import "path/filepath"

import "golang.org/x/image/font/sfnt"

// Returned by [FirstAvailable]() when none of the platform's candidate
// fonts can be found or parsed. This is a recoverable condition: the
// generation pipeline falls back to built-in bitmap glyphs.
var ErrNoFontFound = errors.New("no usable system font found")

// A candidate font location. Dir candidates point at a directory to be
// scanned for the first parseable .ttf/.otf file; the others point at
// a concrete file. Index is only relevant for .ttc collections.
type Candidate struct {
	Name  string
	Path  string
	Index int
	Dir   bool
}

// Returns the ranked font candidates for the current platform. Bold
// monospaced faces rank first, as they produce the most legible masks.
func Candidates() []Candidate {
	switch runtime.GOOS {
	case "darwin":
		return []Candidate{
			{Name: "Menlo Bold", Path: "/System/Library/Fonts/Menlo.ttc", Index: 1},
			{Name: "Arial Bold", Path: "/Library/Fonts/Arial Bold.ttf"},
			{Name: "SF Mono", Path: "/System/Library/Fonts/SFNSMono.ttf"},
		}
	case "windows":
		return []Candidate{
			{Name: "Consolas Bold", Path: "C:/Windows/Fonts/consolab.ttf"},
			{Name: "Courier New Bold", Path: "C:/Windows/Fonts/courbd.ttf"},
			{Name: "Lucida Console", Path: "C:/Windows/Fonts/lucon.ttf"},
			{Name: "Arial Bold", Path: "C:/Windows/Fonts/arialbd.ttf"},
		}
	default: // linux and friends
		candidates := []Candidate{
			{Name: "DejaVu Sans Mono Bold", Path: "/usr/share/fonts/truetype/dejavu/DejaVuSansMono-Bold.ttf"},
			{Name: "Liberation Mono Bold", Path: "/usr/share/fonts/truetype/liberation/LiberationMono-Bold.ttf"},
			{Name: "Ubuntu Mono Bold", Path: "/usr/share/fonts/truetype/ubuntu/UbuntuMono-B.ttf"},
		}
		home, err := os.UserHomeDir()
		if err == nil {
			candidates = append(candidates, Candidate{
				Name: "User fonts",
				Path: filepath.Join(home, ".local/share/fonts"),
				Dir: true,
			})
		}
		return candidates
	}
}

// Probes the platform's ranked candidates and returns the first font
// that can be parsed, along with its name. Returns [ErrNoFontFound]
// if every candidate is missing or unparseable.
func FirstAvailable() (*sfnt.Font, string, error) {
	for _, candidate := range Candidates() {
		sfntFont, name, err := tryCandidate(candidate)
		if err == nil { return sfntFont, name, nil }
	}
	return nil, "", ErrNoFontFound
}

func tryCandidate(candidate Candidate) (*sfnt.Font, string, error) {
	if candidate.Dir {
		return FirstFromDir(candidate.Path)
	}
	if strings.HasSuffix(candidate.Path, ".ttc") {
		sfntFont, err := ParseCollectionFromPath(candidate.Path, candidate.Index)
		return sfntFont, candidate.Name, err
	}
	sfntFont, err := ParseFromPath(candidate.Path)
	return sfntFont, candidate.Name, err
}

// Walks the given directory non-recursively and returns the first
// .ttf or .otf font that parses, along with its file name. Returns
// [ErrNoFontFound] when the directory holds no parseable font.
func FirstFromDir(dirName string) (*sfnt.Font, string, error) {
	var foundFont *sfnt.Font
	var foundName string
	err := filepath.WalkDir(dirName,
		func(path string, info fs.DirEntry, err error) error {
			if err != nil { return err }
			if info.IsDir() {
				if path == dirName { return nil }
				return fs.SkipDir
			}
			if !hasValidFontExtension(path) { return nil }
			sfntFont, parseErr := ParseFromPath(path)
			if parseErr != nil { return nil } // keep scanning
			foundFont = sfntFont
			foundName = filepath.Base(path)
			return fs.SkipAll
		})
	if err != nil { return nil, "", err }
	if foundFont == nil { return nil, "", ErrNoFontFound }
	return foundFont, foundName, nil
}
