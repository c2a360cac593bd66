package normalize

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{name: "short", input: "hello", max: 500, want: "hello"},
		{name: "exact", input: strings.Repeat("a", 500), max: 500, want: strings.Repeat("a", 500)},
		{name: "long", input: strings.Repeat("a", 501), max: 500, want: strings.Repeat("a", 497) + "..."},
		{name: "multibyte", input: strings.Repeat("é", 10), max: 5, want: "éé..."},
		{name: "tiny max", input: "abcdef", max: 2, want: "ab"},
		{name: "empty", input: "", max: 500, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.max)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len([]rune(got)), tt.max)
		})
	}
}

func TestTruncatePtr(t *testing.T) {
	assert.Nil(t, TruncatePtr("", 10))

	got := TruncatePtr("abc", 10)
	require.NotNil(t, got)
	assert.Equal(t, "abc", *got)
}

func TestEmails(t *testing.T) {
	assert.Equal(t, []string{}, Emails(""))
	assert.Equal(t, []string{}, Emails("undisclosed-recipients:;"))

	got := Emails(`"Ann Lee" <ann@example.com>, bob@example.org, Ann <ann@example.com>`)
	assert.Equal(t, []string{"ann@example.com", "bob@example.org"}, got)

	assert.Equal(t, "ann@example.com", FirstEmail("Ann <ann@example.com>"))
	assert.Equal(t, "", FirstEmail("nobody"))
}

func TestParseSlackTS(t *testing.T) {
	got, err := ParseSlackTS("1700000000.000100")
	require.NoError(t, err)
	assert.Equal(t, time.Unix(1700000000, 100000).UTC(), got)

	got, err = ParseSlackTS("1700000000")
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), got.Unix())

	_, err = ParseSlackTS("not-a-ts")
	assert.Error(t, err)
}

func TestFormatSlackTS(t *testing.T) {
	ts := time.Unix(1700000000, 123456000)
	assert.Equal(t, "1700000000.123456", FormatSlackTS(ts))

	parsed, err := ParseSlackTS(FormatSlackTS(ts))
	require.NoError(t, err)
	assert.True(t, ts.Equal(parsed))
}

func TestParseGmailInternalDate(t *testing.T) {
	got := ParseGmailInternalDate(1700000000123)
	assert.Equal(t, time.UnixMilli(1700000000123).UTC(), got)
	assert.Equal(t, time.UTC, got.Location())
}
