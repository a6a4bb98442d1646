// Package answerstore keeps the answer baseline in a flat, line-oriented
// text file meant to be committed next to the solutions:
//
//	day1 part1: 42
//	day1 part2: 99
//
// Lines are rewritten in ascending (day, part) order on every save. Values
// that would not survive a line round trip (empty, padded, multi-line or
// containing quotes) are written as Go-quoted strings:
//
//	day13 part2: "#..#\n####"
package answerstore

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/ports"
)

const (
	DefaultFile = "answers.txt"
	filePerm    = 0o644
)

// FileStore implements ports.AnswerStore on top of a single text file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	if strings.TrimSpace(path) == "" {
		path = DefaultFile
	}
	return &FileStore{path: path}
}

var _ ports.AnswerStore = (*FileStore)(nil)

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load() (domain.Answers, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Answers{}, &domain.OpError{
				Op:   "answerstore.load",
				Kind: domain.KindNotFound,
				Path: s.path,
				Err:  domain.ErrNoAnswers,
			}
		}
		return nil, &domain.OpError{
			Op:   "answerstore.load",
			Kind: domain.KindAnswerStoreIO,
			Path: s.path,
			Err:  err,
		}
	}
	defer f.Close()

	answers, err := Decode(f)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "answerstore.load",
			Kind: domain.KindAnswerStoreCorrupt,
			Path: s.path,
			Err:  err,
		}
	}
	return answers, nil
}

func (s *FileStore) Save(entries []domain.Entry) error {
	existing, err := s.Load()
	if err != nil && !errors.Is(err, domain.ErrNoAnswers) {
		return err
	}

	merged := existing.Merge(entries)
	if err := writeFileAtomic(s.path, Encode(merged), filePerm); err != nil {
		return &domain.OpError{
			Op:   "answerstore.save",
			Kind: domain.KindAnswerStoreIO,
			Path: s.path,
			Err:  err,
		}
	}
	return nil
}

// Encode serializes answers in ascending (day, part) order.
func Encode(answers domain.Answers) []byte {
	var b bytes.Buffer
	for _, k := range answers.Keys() {
		fmt.Fprintf(&b, "%s: %s\n", k, encodeValue(answers[k]))
	}
	return b.Bytes()
}

func encodeValue(v string) string {
	q := strconv.Quote(v)
	if v == "" || v != strings.TrimSpace(v) || q[1:len(q)-1] != v {
		return q
	}
	return v
}

func decodeValue(v string) (string, bool) {
	if !strings.HasPrefix(v, `"`) {
		return v, v != ""
	}
	out, err := strconv.Unquote(v)
	return out, err == nil
}

// Decode parses the store format. It also accepts the older
// "<day>: <part1>, <part2>" lines so existing baselines keep working.
func Decode(r io.Reader) (domain.Answers, error) {
	out := domain.Answers{}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := sc.Text()
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entries, ok := parseLine(line)
		if !ok {
			return nil, &domain.CorruptLineError{Line: lineNo, Text: raw}
		}
		for _, e := range entries {
			if _, dup := out[e.Key]; dup {
				return nil, &domain.CorruptLineError{Line: lineNo, Text: raw}
			}
			out[e.Key] = e.Answer
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseLine(line string) ([]domain.Entry, bool) {
	keyText, value, found := strings.Cut(line, ":")
	if !found {
		return nil, false
	}
	keyText = strings.TrimSpace(keyText)
	value = strings.TrimSpace(value)

	if day, err := strconv.Atoi(keyText); err == nil {
		return parseLegacy(day, value)
	}

	key, ok := parseKey(keyText)
	if !ok {
		return nil, false
	}
	answer, ok := decodeValue(value)
	if !ok {
		return nil, false
	}
	return []domain.Entry{{Key: key, Answer: answer}}, true
}

func parseKey(s string) (domain.Key, bool) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return domain.Key{}, false
	}

	dayText, ok := strings.CutPrefix(fields[0], "day")
	if !ok {
		return domain.Key{}, false
	}
	partText, ok := strings.CutPrefix(fields[1], "part")
	if !ok {
		return domain.Key{}, false
	}

	day, err := strconv.Atoi(dayText)
	if err != nil || day <= 0 {
		return domain.Key{}, false
	}
	part, err := strconv.Atoi(partText)
	if err != nil || !domain.Part(part).Valid() {
		return domain.Key{}, false
	}
	return domain.Key{Day: day, Part: domain.Part(part)}, true
}

func parseLegacy(day int, value string) ([]domain.Entry, bool) {
	if day <= 0 {
		return nil, false
	}
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return nil, false
	}

	var out []domain.Entry
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			// Legacy files left a part empty when it was never run.
			continue
		}
		out = append(out, domain.Entry{
			Key:    domain.Key{Day: day, Part: domain.Parts[i]},
			Answer: p,
		})
	}
	return out, true
}

// writeFileAtomic writes to a temp file in the same directory, syncs it and
// renames it over path so readers never observe a partial file.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}
