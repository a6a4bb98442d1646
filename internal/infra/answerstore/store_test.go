package answerstore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/advent/internal/domain"
)

func key(day int, part domain.Part) domain.Key {
	return domain.Key{Day: day, Part: part}
}

func TestLoad_MissingFileIsNoAnswers(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "answers.txt"))

	got, err := s.Load()
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrNoAnswers)
	require.True(t, domain.IsKind(err, domain.KindNotFound))
	require.Empty(t, got)
}

func TestSave_CreatesSortedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.txt")
	s := NewFileStore(path)

	err := s.Save([]domain.Entry{
		{Key: key(10, domain.Part1), Answer: "7"},
		{Key: key(2, domain.Part2), Answer: "hello world"},
		{Key: key(2, domain.Part1), Answer: "-3"},
	})
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "day2 part1: -3\nday2 part2: hello world\nday10 part1: 7\n", string(b))
}

func TestSave_RoundTripLoad(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "answers.txt"))
	entries := []domain.Entry{
		{Key: key(1, domain.Part1), Answer: "42"},
		{Key: key(1, domain.Part2), Answer: "a:b"},
	}
	require.NoError(t, s.Save(entries))

	got, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, domain.Answers{
		key(1, domain.Part1): "42",
		key(1, domain.Part2): "a:b",
	}, got)
}

func TestSave_IdempotentBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.txt")
	s := NewFileStore(path)
	entries := []domain.Entry{
		{Key: key(4, domain.Part2), Answer: "8"},
		{Key: key(4, domain.Part1), Answer: "13"},
	}

	require.NoError(t, s.Save(entries))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, s.Save(entries))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestSave_MergePreservesOtherDays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.txt")
	require.NoError(t, os.WriteFile(path, []byte("day3 part1: 357\nday3 part2: 3121910778619\n"), 0o644))

	s := NewFileStore(path)
	require.NoError(t, s.Save([]domain.Entry{
		{Key: key(5, domain.Part1), Answer: "3"},
		{Key: key(5, domain.Part2), Answer: "14"},
	}))

	got, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, "357", got[key(3, domain.Part1)])
	require.Equal(t, "3121910778619", got[key(3, domain.Part2)])
	require.Equal(t, "14", got[key(5, domain.Part2)])
}

func TestSave_OverwritesSameKeyOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.txt")
	require.NoError(t, os.WriteFile(path, []byte("day1 part1: 1\nday1 part2: 2\n"), 0o644))

	s := NewFileStore(path)
	require.NoError(t, s.Save([]domain.Entry{{Key: key(1, domain.Part2), Answer: "20"}}))

	got, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, domain.Answers{key(1, domain.Part1): "1", key(1, domain.Part2): "20"}, got)
}

func TestSave_RefusesToOverwriteCorruptStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.txt")
	original := "day1 part1: 1\nthis is not an answer\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))

	err := NewFileStore(path).Save([]domain.Entry{{Key: key(2, domain.Part1), Answer: "x"}})
	require.True(t, domain.IsKind(err, domain.KindAnswerStoreCorrupt), "got %v", err)

	b, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	require.Equal(t, original, string(b))
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(filepath.Join(dir, "answers.txt"))
	require.NoError(t, s.Save([]domain.Entry{{Key: key(1, domain.Part1), Answer: "1"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "answers.txt", entries[0].Name())
}

func TestDecode_CorruptLineReportsLine(t *testing.T) {
	cases := []string{
		"day1 part1: 1\n\nday2 part3: 9\n",
		"day1 part1: 1\n\nnonsense\n",
		"day1 part1: 1\n\nday2 part1:\n",
		"day1 part1: 1\n\nday1 part1: 2\n",
		"day1 part1: 1\n\n4: only-one\n",
	}
	for _, in := range cases {
		_, err := Decode(strings.NewReader(in))
		var ce *domain.CorruptLineError
		if !errors.As(err, &ce) {
			t.Fatalf("input %q: expected CorruptLineError, got %v", in, err)
		}
		if ce.Line != 3 {
			t.Fatalf("input %q: expected line 3, got %d", in, ce.Line)
		}
	}
}

func TestDecode_SkipsBlankAndComments(t *testing.T) {
	got, err := Decode(strings.NewReader("# baseline\n\n  day6 part1: 4277556  \n"))
	require.NoError(t, err)
	require.Equal(t, domain.Answers{key(6, domain.Part1): "4277556"}, got)
}

func TestDecode_LegacyFormat(t *testing.T) {
	got, err := Decode(strings.NewReader("1: 1150, 6738\n2: , 31\n"))
	require.NoError(t, err)
	require.Equal(t, domain.Answers{
		key(1, domain.Part1): "1150",
		key(1, domain.Part2): "6738",
		key(2, domain.Part2): "31",
	}, got)
}

func TestLoad_CorruptIsAnswerStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.txt")
	require.NoError(t, os.WriteFile(path, []byte("garbage\n"), 0o644))

	_, err := NewFileStore(path).Load()
	require.True(t, domain.IsKind(err, domain.KindAnswerStoreCorrupt))
	require.Contains(t, err.Error(), `malformed line 1: "garbage"`)
}

func TestSave_TextAnswersRoundTrip(t *testing.T) {
	cases := map[string]string{
		"multiline": domain.Text("#..#\n####\n#..#").String(),
		"padded":    " AB ",
		"empty":     "",
		"quoted":    `say "hi"`,
		"comment":   "# not a comment",
	}

	for name, answer := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "answers.txt")
			s := NewFileStore(path)
			k := key(1, domain.Part1)

			require.NoError(t, s.Save([]domain.Entry{{Key: k, Answer: answer}}))

			b, err := os.ReadFile(path)
			require.NoError(t, err)
			require.Equal(t, 1, strings.Count(string(b), "\n"), "one line per answer, got %q", b)

			got, err := s.Load()
			require.NoError(t, err)
			require.Equal(t, answer, got[k])

			// The file must stay writable after the first save.
			require.NoError(t, s.Save([]domain.Entry{{Key: key(1, domain.Part2), Answer: "7"}}))
			got, err = s.Load()
			require.NoError(t, err)
			require.Equal(t, answer, got[k])
		})
	}
}

func TestEncode_QuotesOnlyWhenNeeded(t *testing.T) {
	got := string(Encode(domain.Answers{
		key(1, domain.Part1): "hello world",
		key(1, domain.Part2): "",
		key(2, domain.Part1): "a\nb",
	}))
	require.Equal(t, "day1 part1: hello world\nday1 part2: \"\"\nday2 part1: \"a\\nb\"\n", got)
}

func TestDecode_BadQuotedValueIsCorrupt(t *testing.T) {
	_, err := Decode(strings.NewReader("day1 part1: \"unterminated\n"))
	var ce *domain.CorruptLineError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, 1, ce.Line)
}
