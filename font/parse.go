package font

import "os"
import "io"
import "io/fs"
import "errors"

import "golang.org/x/image/font/sfnt"

// Similar to [sfnt.Parse](). The bytes must not be modified while the
// font is in use. When in doubt, pass a copy.
//
// [sfnt.Parse]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Parse
func ParseFromBytes(fontBytes []byte) (*sfnt.Font, error) {
	return sfnt.Parse(fontBytes)
}

// Attempts to parse a font located at the given filepath. Supported
// formats are .ttf and .otf; for .ttc collections see
// [ParseCollectionFromPath]().
func ParseFromPath(path string) (*sfnt.Font, error) {
	if !hasValidFontExtension(path) {
		return nil, errors.New("invalid font path '" + path + "'")
	}
	file, err := os.Open(path)
	if err != nil { return nil, err }
	return parseFontFileAndClose(file)
}

// Same as [ParseFromPath](), but for filesystems. This is mainly
// provided to support [embed.FS] and embedded fonts.
func ParseFromFS(filesys fs.FS, path string) (*sfnt.Font, error) {
	if !hasValidFontExtension(path) {
		return nil, errors.New("invalid font path '" + path + "'")
	}
	file, err := filesys.Open(path)
	if err != nil { return nil, err }
	return parseFontFileAndClose(file)
}

// Parses one font out of a .ttc font collection file.
func ParseCollectionFromPath(path string, index int) (*sfnt.Font, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil { return nil, err }
	collection, err := sfnt.ParseCollection(fontBytes)
	if err != nil { return nil, err }
	if index < 0 || index >= collection.NumFonts() {
		return nil, errors.New("font collection index out of range")
	}
	return collection.Font(index)
}

// ---- helpers ----

func parseFontFileAndClose(file io.ReadCloser) (*sfnt.Font, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	err = file.Close()
	if err != nil { return nil, err }
	return ParseFromBytes(fontBytes)
}

// Whether font path ends in .ttf or .otf.
func hasValidFontExtension(path string) bool {
	if len(path) < 4 { return false }
	if path[len(path) - 1] != 'f' { return false }
	if path[len(path) - 2] != 't' { return false }
	thrd := path[len(path) - 3]
	if thrd != 't' && thrd != 'o' { return false }
	if path[len(path) - 4] != '.' { return false }
	return true
}
