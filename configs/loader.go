package configs

import (
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader looks up values in a list of cue documents. Earlier documents take precedence.
type Loader struct {
	paths    []string
	getRoots func() ([]rootInfo, error)
}

// Document is an in-memory cue source.
type Document struct {
	Path    string
	Content []byte
}

func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		paths: filePaths,
		getRoots: sync.OnceValues(func() ([]rootInfo, error) {
			var docs []Document
			for _, filePath := range filePaths {
				content, err := os.ReadFile(filePath)
				if err != nil {
					return nil, err
				}
				docs = append(docs, Document{
					Path:    filePath,
					Content: content,
				})
			}
			return compileDocuments(docs, schemaSrc)
		}),
	}
}

func NewDocumentLoader(docs []Document, schemaSrc string) Loader {
	var paths []string
	for _, doc := range docs {
		paths = append(paths, doc.Path)
	}
	return Loader{
		paths: paths,
		getRoots: sync.OnceValues(func() ([]rootInfo, error) {
			return compileDocuments(docs, schemaSrc)
		}),
	}
}

func compileDocuments(docs []Document, schemaSrc string) (ret []rootInfo, err error) {
	var schema cue.Value
	if schemaSrc != "" {
		ctx := cuecontext.New()
		schema = ctx.CompileString("close({" + schemaSrc + "})")
		if err := schema.Err(); err != nil {
			return nil, fmt.Errorf("compile schema: %w", err)
		}
	}

	for _, doc := range docs {
		ctx := cuecontext.New()
		value := ctx.CompileBytes(
			doc.Content,
			cue.Filename(doc.Path),
		)
		if err = value.Err(); err != nil {
			return nil, err
		}

		if schema.Exists() {
			if err := schema.Unify(value).Validate(); err != nil {
				return nil, fmt.Errorf("%s: %w", doc.Path, err)
			}
		}

		ret = append(ret, rootInfo{
			value: value,
			path:  doc.Path,
		})
	}

	return
}

type rootInfo struct {
	value cue.Value
	path  string
}

func (l Loader) Paths() []string {
	return l.paths
}

func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		if l.getRoots == nil {
			return
		}
		roots, err := l.getRoots()
		if err != nil {
			yield(nil, err)
			return
		}

		cuePath := cue.ParsePath(path)
		for _, info := range roots {
			value := info.value.LookupPath(cuePath)
			if err := value.Err(); err == nil && value.Exists() {
				if !yield(&value, nil) {
					break
				}
			}
		}
	}
}

func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return ErrValueNotFound
}
