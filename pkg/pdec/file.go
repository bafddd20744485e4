package pdec

import (
	"bufio"
	"bytes"
	"sort"
	"strings"

	"github.com/arthur-debert/potbin/pkg/errors"
	"github.com/arthur-debert/potbin/pkg/types"
)

// DefaultExtension is the declaration file extension.
const DefaultExtension = ".pdec"

// Discover returns the files in dir (not recursive) ending in ext, sorted
// by name.
func Discover(fs types.FS, dir, ext string) ([]string, error) {
	if ext == "" {
		ext = DefaultExtension
	}
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "cannot list declaration directory %s", dir).
			WithDetail("dir", dir)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		files = append(files, joinPath(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// ReadLines returns the raw lines of the file at path.
func ReadLines(fs types.FS, path string) ([]string, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "file %s cannot be found or read", path).
			WithDetail("path", path)
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path).
			WithDetail("path", path)
	}
	return lines, nil
}

// ParseFile reads path and classifies every line with s. Line numbers
// start at 1. Lines that fail to parse are returned alongside their error
// in errs, keyed by line number.
func (s Syntax) ParseFile(fs types.FS, path string) ([]Line, map[int]error, error) {
	raw, err := ReadLines(fs, path)
	if err != nil {
		return nil, nil, err
	}

	lines := make([]Line, 0, len(raw))
	errs := map[int]error{}
	for i, text := range raw {
		line, err := s.ParseLine(text)
		line.Number = i + 1
		if err != nil {
			errs[line.Number] = err
		}
		lines = append(lines, line)
	}
	return lines, errs, nil
}

func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + "/" + name
}
