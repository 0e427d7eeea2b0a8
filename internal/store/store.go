package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// DataFileName is the store file kept in every project directory.
const DataFileName = "data.json"

// LoadState records how a store's contents were obtained when it was opened.
type LoadState int

const (
	// LoadFresh means no store file existed yet.
	LoadFresh LoadState = iota
	// LoadRestored means the store file was read and parsed.
	LoadRestored
	// LoadRecovered means a store file existed but could not be read or
	// parsed, and the store started empty.
	LoadRecovered
)

func (s LoadState) String() string {
	switch s {
	case LoadFresh:
		return "fresh"
	case LoadRestored:
		return "restored"
	case LoadRecovered:
		return "recovered"
	default:
		return fmt.Sprintf("LoadState(%d)", int(s))
	}
}

// projectDir holds the on-disk layout shared by both store kinds.
type projectDir struct {
	dir string
	log *zap.Logger
}

func (p projectDir) Dir() string {
	return p.dir
}

func (p projectDir) ScreenshotsDir() string {
	return filepath.Join(p.dir, "screenshots")
}

func (p projectDir) DataFile() string {
	return filepath.Join(p.dir, DataFileName)
}

func (p projectDir) ensureDirs(dirs ...string) error {
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}
	return nil
}

// load decodes the store file into v. Read and parse failures are not
// returned; they leave v untouched and yield LoadRecovered.
func (p projectDir) load(v any) LoadState {
	path := p.DataFile()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return LoadFresh
		}
		p.log.Info("store unreadable, starting empty", zap.String("path", path), zap.Error(err))
		return LoadRecovered
	}
	if err := json.Unmarshal(data, v); err != nil {
		p.log.Info("store corrupt, starting empty", zap.String("path", path), zap.Error(err))
		return LoadRecovered
	}
	return LoadRestored
}

// save rewrites the whole store file.
func (p projectDir) save(v any) error {
	data, err := Encode(v)
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}
	path := p.DataFile()
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	p.log.Debug("store saved", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}

// Encode renders v the way store files are written: two-space indent,
// non-ASCII and HTML characters kept literal (U+2028 and U+2029 included), no
// trailing newline.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return unescapeLineSeparators(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes encoding/json
// always emits back into the literal characters. Other escapes are copied
// through untouched.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			out = append(out, data[i])
			continue
		}
		if esc := data[i:]; len(esc) >= 6 && (string(esc[:6]) == `\u2028` || string(esc[:6]) == `\u2029`) {
			if esc[5] == '8' {
				out = append(out, "\u2028"...)
			} else {
				out = append(out, "\u2029"...)
			}
			i += 5
			continue
		}
		out = append(out, data[i], data[i+1])
		i++
	}
	return out
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
