package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/strview"
)

const splitFixture = `
cases:
  - text: "a,b,c"
    want: ["a", "b", "c"]
  - text: "a,,c"
    want: ["a", "", "c"]
  - text: ",x,"
    want: ["", "x", ""]
  - text: "plain"
    want: ["plain"]
  - text: ""
    want: [""]
`

func TestSplitByte(t *testing.T) {
	var fx struct {
		Cases []struct {
			Text string   `yaml:"text"`
			Want []string `yaml:"want"`
		} `yaml:"cases"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(splitFixture), &fx))

	for _, tc := range fx.Cases {
		v := strview.New(tc.Text)
		got := SplitByte(v, ',')
		require.Equal(t, tc.Want, Strings(got), "text %q", tc.Text)
		for _, p := range got {
			assert.Same(t, v.Buffer(), p.Buffer(), "split must not copy")
		}
	}
}

func TestLines(t *testing.T) {
	v := strview.New("one\ntwo\r\nthree\n")
	got := Strings(Lines(v))
	require.Equal(t, []string{"one", "two", "three"}, got)

	require.Empty(t, Lines(strview.New("")))
	require.Equal(t, []string{"solo"}, Strings(Lines(strview.New("solo"))))
	require.Equal(t, []string{"", ""}, Strings(Lines(strview.New("\n\n"))))
}

func TestFields(t *testing.T) {
	v := strview.New("  the\tquick \r\n brown  ")
	got := Fields(v)
	require.Equal(t, []string{"the", "quick", "brown"}, Strings(got))
	for _, f := range got {
		assert.Same(t, v.Buffer(), f.Buffer())
	}

	require.Empty(t, Fields(strview.New("   ")))
	require.Empty(t, Fields(strview.New("")))
	require.Empty(t, Fields(strview.Slice{}))
}

func TestCut(t *testing.T) {
	v := strview.New("key=value")
	before, after, ok := Cut(v, '=')
	require.True(t, ok)
	require.Equal(t, "key", before.String())
	require.Equal(t, "value", after.String())
	require.Same(t, v.Buffer(), before.Buffer())

	whole, null, ok := Cut(v, ';')
	require.False(t, ok)
	require.Equal(t, "key=value", whole.String())
	require.Equal(t, 0, null.Len())
}

func TestFieldsSharedMutation(t *testing.T) {
	v := strview.New("aa bb")
	fields := Fields(v)
	require.Len(t, fields, 2)
	v.Buffer().SetByte(3, 'X')
	require.Equal(t, "Xb", fields[1].String())
}

func BenchmarkFields(b *testing.B) {
	v := strview.New(strings.Repeat("alpha beta gamma delta ", 32))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Fields(v)
	}
}

func BenchmarkStringsFieldsBaseline(b *testing.B) {
	s := strings.Repeat("alpha beta gamma delta ", 32)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = strings.Fields(s)
	}
}

func BenchmarkYamlMarshalBaseline(b *testing.B) {
	fields := Strings(Fields(strview.New(strings.Repeat("alpha beta gamma delta ", 32))))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = yaml.Marshal(fields)
	}
}
