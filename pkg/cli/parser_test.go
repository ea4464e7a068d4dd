package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, parse func(onEachSeq func(raw string) error) error) []string {
	t.Helper()
	var got []string
	require.NoError(t, parse(func(raw string) error {
		got = append(got, raw)
		return nil
	}))
	return got
}

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseText(t *testing.T) {
	got := collect(t, func(f func(string) error) error {
		return parseText(strings.NewReader("tea\r\n\nten\ninn"), f)
	})
	assert.Equal(t, []string{"tea", "ten", "inn"}, got, "Blank lines are skipped and CR trimmed")
}

func TestParseCsv(t *testing.T) {
	data := "id,sequence\n1,tea\n2,ten\n"
	got := collect(t, func(f func(string) error) error {
		return parseCsv(strings.NewReader(data), ',', "sequence", f)
	})
	assert.Equal(t, []string{"tea", "ten"}, got)

	got = collect(t, func(f func(string) error) error {
		return parseCsv(strings.NewReader("word\tn\ninn\t3\n"), '\t', "word", f)
	})
	assert.Equal(t, []string{"inn"}, got)

	err := parseCsv(strings.NewReader(data), ',', "word", func(string) error { return nil })
	assert.ErrorContains(t, err, `no "word" column`)

	got = collect(t, func(f func(string) error) error {
		return parseCsv(strings.NewReader(""), ',', "word", f)
	})
	assert.Empty(t, got, "An empty file has no sequences")
}

func TestParseJson(t *testing.T) {
	data := `["tea", {"sequence": "ten", "id": 2}, 42]`
	got := collect(t, func(f func(string) error) error {
		return parseJson(strings.NewReader(data), "sequence", f)
	})
	assert.Equal(t, []string{"tea", "ten", "42"}, got)

	err := parseJson(strings.NewReader(`{"sequence": "tea"}`), "sequence", func(string) error { return nil })
	assert.ErrorContains(t, err, "expected a json array")

	err = parseJson(strings.NewReader(`[{"id": 1}]`), "sequence", func(string) error { return nil })
	assert.ErrorContains(t, err, `no "sequence" field`)

	err = parseJson(strings.NewReader(`[[1, 2]]`), "sequence", func(string) error { return nil })
	assert.ErrorContains(t, err, "unsupported entry")
}

// TestParseJsonNumbers verifies numbers keep the text they were written with.
func TestParseJsonNumbers(t *testing.T) {
	data := `[1000000, 12345678901234567890, 0.1, 1e3, {"sequence": 12345678}, {"sequence": true}]`
	got := collect(t, func(f func(string) error) error {
		return parseJson(strings.NewReader(data), "sequence", f)
	})
	assert.Equal(t, []string{"1000000", "12345678901234567890", "0.1", "1e3", "12345678", "true"}, got)

	err := parseJson(strings.NewReader(`[{"sequence": null}]`), "sequence", func(string) error { return nil })
	assert.ErrorContains(t, err, "is not a scalar")
}

// TestParseYamlScalars verifies dates, numbers and other typed scalars are
// read as written.
func TestParseYamlScalars(t *testing.T) {
	data := "- 2001-12-14\n- 0x1F\n- 1e3\n- sequence: 2001-12-14t21:59:43.10-05:00\n- sequence: 007\n- &v yes\n- *v\n"
	got := collect(t, func(f func(string) error) error {
		return parseYaml(strings.NewReader(data), "sequence", f)
	})
	assert.Equal(t, []string{"2001-12-14", "0x1F", "1e3", "2001-12-14t21:59:43.10-05:00", "007", "yes", "yes"}, got)

	err := parseYaml(strings.NewReader("- ~\n"), "sequence", func(string) error { return nil })
	assert.ErrorContains(t, err, "null entry")

	err = parseYaml(strings.NewReader("- id: 1\n"), "sequence", func(string) error { return nil })
	assert.ErrorContains(t, err, `no "sequence" field`)

	err = parseYaml(strings.NewReader("- [a, b]\n"), "sequence", func(string) error { return nil })
	assert.ErrorContains(t, err, "unsupported entry")
}

func TestParseYaml(t *testing.T) {
	data := "- tea\n- sequence: ten\n  id: 2\n- 7\n"
	got := collect(t, func(f func(string) error) error {
		return parseYaml(strings.NewReader(data), "sequence", f)
	})
	assert.Equal(t, []string{"tea", "ten", "7"}, got)

	got = collect(t, func(f func(string) error) error {
		return parseYaml(strings.NewReader(""), "sequence", f)
	})
	assert.Empty(t, got)

	err := parseYaml(strings.NewReader("- sequence: {a: b}\n"), "sequence", func(string) error { return nil })
	assert.ErrorContains(t, err, "is not a scalar")
}

func TestParseFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"words.txt", "tea\nten\n"},
		{"words", "tea\nten\n"},
		{"words.csv", "sequence\ntea\nten\n"},
		{"words.TSV", "sequence\tn\ntea\t1\nten\t2\n"},
		{"words.json", `[{"sequence": "tea"}, "ten"]`},
		{"words.yml", "- tea\n- ten\n"},
		{"words.yaml", "- sequence: tea\n- sequence: ten\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.name, tt.content)
			got := collect(t, func(f func(string) error) error {
				return parseFile(path, "sequence", f)
			})
			assert.Equal(t, []string{"tea", "ten"}, got)
		})
	}

	err := parseFile(filepath.Join(t.TempDir(), "missing.txt"), "sequence", func(string) error { return nil })
	assert.Error(t, err)

	path := writeFile(t, "bad.json", `["tea", `)
	err = parseFile(path, "sequence", func(string) error { return nil })
	assert.ErrorContains(t, err, "parsing "+path)
}
