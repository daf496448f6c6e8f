package sources

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/reusee/contra/logs"
)

// Ext is the file extension of contra sources.
const Ext = ".contra"

// Load reads the named paths. Directories are walked for files with Ext.
type Load func(paths ...string) ([]*Source, error)

func (Module) Load(
	logger logs.Logger,
) Load {
	return func(paths ...string) (ret []*Source, err error) {
		for _, path := range paths {
			stat, err := os.Stat(path)
			if err != nil {
				return nil, wrap(err)
			}

			if !stat.IsDir() {
				// explicitly named files are loaded regardless of extension
				source, err := readFile(path)
				if err != nil {
					return nil, err
				}
				ret = append(ret, source)
				continue
			}

			var found []string
			if err := filepath.WalkDir(path, func(p string, entry os.DirEntry, err error) error {
				if err != nil {
					return err
				}
				name := entry.Name()
				// ignore hidden files
				if p != path && strings.HasPrefix(name, ".") {
					if entry.IsDir() {
						return filepath.SkipDir
					}
					return nil
				}
				if entry.IsDir() || filepath.Ext(name) != Ext {
					return nil
				}
				found = append(found, p)
				return nil
			}); err != nil {
				return nil, wrap(err)
			}
			slices.Sort(found)

			for _, p := range found {
				source, err := readFile(p)
				if err != nil {
					return nil, err
				}
				ret = append(ret, source)
			}
			logger.Debug("load dir",
				"path", path,
				"files", len(found),
			)
		}
		return
	}
}

func readFile(path string) (*Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, wrap(err)
	}
	return newTextSource(path, content)
}

// Read loads a source from r, rejecting content that is not text.
func Read(name string, r io.Reader) (*Source, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, wrap(err)
	}
	return newTextSource(name, content)
}

func newTextSource(name string, content []byte) (*Source, error) {
	if !IsText(content) {
		return nil, wrap(fmt.Errorf("%s: %s: %w", name, mimetype.Detect(content).String(), ErrNotText))
	}
	return NewSource(name, string(content)), nil
}

// IsText reports whether content is detected as some kind of plain text.
func IsText(content []byte) bool {
	if len(content) == 0 {
		return true
	}
	for t := mimetype.Detect(content); t != nil; t = t.Parent() {
		if t.Is("text/plain") {
			return true
		}
	}
	return false
}
