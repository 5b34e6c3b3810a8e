// Package audio finds vocabulary entries without a pronunciation file.
package audio

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
)

// DefaultExtensions are tried in order for every audio key.
var DefaultExtensions = []string{".wav", ".mp3", ".ogg"}

// Gap is an entry with no audio file under any extension.
type Gap struct {
	Text        string
	Key         string
	SourceIndex int
}

// Expected is the file name a regenerated recording should get.
func (g Gap) Expected(ext string) string {
	return g.Key + ext
}

// Index is the set of file names in an audio directory.
type Index map[string]struct{}

// ReadIndex lists the top level of fsys.
func ReadIndex(fsys fs.FS) (Index, error) {
	items, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read audio dir: %w", err)
	}
	idx := make(Index, len(items))
	for _, it := range items {
		if !it.IsDir() {
			idx[it.Name()] = struct{}{}
		}
	}
	return idx, nil
}

// Has reports whether key exists with any of exts.
func (idx Index) Has(key string, exts []string) bool {
	for _, ext := range exts {
		if _, ok := idx[key+ext]; ok {
			return true
		}
	}
	return false
}

// Missing returns the entries of entries that have no file in fsys, in
// input order. Entries without an audio key get the default one.
func Missing(fsys fs.FS, entries []*grouping.Entry, exts []string) ([]Gap, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	idx, err := ReadIndex(fsys)
	if err != nil {
		return nil, err
	}

	var gaps []Gap
	for _, e := range entries {
		key := e.AudioKey
		if key == "" {
			key = grouping.DefaultAudioKey(e.Text)
		}
		if !idx.Has(key, exts) {
			gaps = append(gaps, Gap{Text: e.Text, Key: key, SourceIndex: e.SourceIndex})
		}
	}
	return gaps, nil
}

// Orphans returns audio files whose stem matches no entry key, sorted by
// fs.ReadDir order.
func Orphans(fsys fs.FS, entries []*grouping.Entry, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	items, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read audio dir: %w", err)
	}

	keys := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		key := e.AudioKey
		if key == "" {
			key = grouping.DefaultAudioKey(e.Text)
		}
		keys[key] = struct{}{}
	}

	var orphans []string
	for _, it := range items {
		name := it.Name()
		if it.IsDir() || !hasExt(name, exts) {
			continue
		}
		if _, ok := keys[strings.TrimSuffix(name, path.Ext(name))]; !ok {
			orphans = append(orphans, name)
		}
	}
	return orphans, nil
}

func hasExt(name string, exts []string) bool {
	ext := path.Ext(name)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
