// Package wordsource reads word lists from files in several formats:
// a JavaScript module exporting `wordList`, plain text, CSV and JSON.
// No database dependencies: bytes in, words out.
package wordsource

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/kesava/telugu-word-analysis/internal/domain"
)

// Format names a word list encoding.
type Format string

const (
	FormatAuto Format = "auto"
	FormatJS   Format = "js"
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ErrNoWordList is returned when a JS module has no `wordList` export.
var ErrNoWordList = errors.New("no wordList export found")

// ParseFormat validates a format name. An empty name means FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatJS, FormatText, FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", domain.NewValidationError("format", fmt.Sprintf("unknown word list format %q", s))
	}
}

// DetectFormat picks a format from the file extension. Unknown extensions
// yield FormatAuto so the content decides.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".mjs", ".ts":
		return FormatJS
	case ".csv":
		return FormatCSV
	case ".json":
		return FormatJSON
	case ".txt", ".lst":
		return FormatText
	default:
		return FormatAuto
	}
}

// ReadFile reads the word list at path. FormatAuto detects the format from
// the extension, then from the content.
func ReadFile(path string, format Format) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	if format == FormatAuto || format == "" {
		format = DetectFormat(path)
	}

	words, err := Parse(f, format)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return words, nil
}

// Parse reads a word list from r. Entries are trimmed and empty entries
// dropped; duplicates are kept.
func Parse(r io.Reader, format Format) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}

	if format == FormatAuto || format == "" {
		format = sniff(data)
	}

	switch format {
	case FormatJS:
		return parseJS(data)
	case FormatText:
		return parseText(data)
	case FormatCSV:
		return parseCSV(data)
	case FormatJSON:
		return parseJSON(data)
	default:
		return nil, domain.NewValidationError("format", fmt.Sprintf("unknown word list format %q", format))
	}
}

func sniff(data []byte) Format {
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(data, bomBytes))
	switch {
	case jsExport.Match(trimmed):
		return FormatJS
	case len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{'):
		return FormatJSON
	default:
		return FormatText
	}
}

const bom = "\ufeff"

var bomBytes = []byte(bom)

var jsExport = regexp.MustCompile(`export\s+const\s+wordList\s*=\s*\[([\s\S]*?)\]\s*;`)

// parseJS extracts the array literal of `export const wordList = [...];`
// and splits it on commas, stripping surrounding quotes from each entry.
func parseJS(data []byte) ([]string, error) {
	m := jsExport.FindSubmatch(data)
	if m == nil {
		return nil, ErrNoWordList
	}

	parts := strings.Split(string(m[1]), ",")
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		w := strings.Trim(strings.TrimSpace(p), "\"'`")
		if w != "" {
			words = append(words, w)
		}
	}
	return words, nil
}

// parseText reads one word per line. Lines starting with # are comments.
func parseText(data []byte) ([]string, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var words []string
	for sc.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(sc.Text(), bom))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read line: %w", err)
	}
	return nonNil(words), nil
}

var csvHeaders = map[string]bool{"word": true, "words": true, "text": true, "telugu": true}

// parseCSV takes the first column of every row. A first row naming the
// column (word, words, text, telugu) is skipped.
func parseCSV(data []byte) ([]string, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, bomBytes)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var words []string
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(record) == 0 {
			continue
		}

		w := strings.TrimSpace(record[0])
		if first {
			first = false
			if csvHeaders[strings.ToLower(w)] {
				continue
			}
		}
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	return nonNil(words), nil
}

// parseJSON accepts a bare array of strings or an object with a "words" or
// "wordList" array.
func parseJSON(data []byte) ([]string, error) {
	data = bytes.TrimPrefix(data, bomBytes)

	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		var obj struct {
			Words    []string `json:"words"`
			WordList []string `json:"wordList"`
		}
		if objErr := json.Unmarshal(data, &obj); objErr != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		raw = append(obj.Words, obj.WordList...)
	}

	words := make([]string, 0, len(raw))
	for _, w := range raw {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return words, nil
}

func nonNil(words []string) []string {
	if words == nil {
		return []string{}
	}
	return words
}
