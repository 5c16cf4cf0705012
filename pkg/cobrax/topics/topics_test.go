package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"help/config.md":          {Data: []byte("# Config\n\nWhere mappings live")},
		"help/option-verbose.txt": {Data: []byte("Repeat -v for more output")},
		"help/nested/keys.txt":    {Data: []byte("Key names")},
		"help/ignore.json":        {Data: []byte("{}")},
	}
}

func TestScan(t *testing.T) {
	tm := New(testFS(), "help", Options{})
	require.NoError(t, tm.Scan())

	assert.Equal(t, []string{"config", "keys", "option-verbose"}, tm.ListTopics())

	topic, ok := tm.GetTopic("config")
	require.True(t, ok)
	assert.Equal(t, "help/config.md", topic.Path)
	assert.Equal(t, "# Config\n\nWhere mappings live", topic.Content)

	_, ok = tm.GetTopic("ignore")
	assert.False(t, ok)
}

func TestScanCustomExtensions(t *testing.T) {
	tm := New(testFS(), "help", Options{Extensions: []string{".json"}})
	require.NoError(t, tm.Scan())
	assert.Equal(t, []string{"ignore"}, tm.ListTopics())
}

func TestScanMissingDir(t *testing.T) {
	tm := New(testFS(), "nothing-here", Options{})
	require.NoError(t, tm.Scan())
	assert.Empty(t, tm.ListTopics())
}

func TestGetTopicFlagStyle(t *testing.T) {
	tm := New(testFS(), "help", Options{})
	require.NoError(t, tm.Scan())

	for _, name := range []string{"verbose", "--verbose", "-verbose", "option-verbose"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "option-verbose", topic.Name)
	}
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# x\n", r.Render("# x", ".md"))
	assert.Equal(t, "done\n", r.Render("done\n", ".txt"))
	assert.Equal(t, "", r.Render("", ".txt"))
}

func TestRendererFunc(t *testing.T) {
	var r Renderer = RendererFunc(func(content, format string) string {
		return format + ":" + content
	})
	assert.Equal(t, ".md:body", r.Render("body", ".md"))
}

func TestGlamourRendererSkipsText(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain", r.Render("plain", ".txt"))

	r.Style = "notty"
	assert.Contains(t, r.Render("# Title\n\nbody", ".md"), "body")
}

func TestInitializeHelpCommand(t *testing.T) {
	root := &cobra.Command{Use: "keyremap"}
	root.AddCommand(&cobra.Command{Use: "run", Short: "Run it", Run: func(*cobra.Command, []string) {}})

	_, err := Initialize(root, testFS(), "help", Options{})
	require.NoError(t, err)

	var out bytes.Buffer
	root.SetOut(&out)

	root.SetArgs([]string{"help", "topics"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "General topics:")
	assert.Contains(t, out.String(), "  config")
	assert.Contains(t, out.String(), "  --verbose")
	assert.Contains(t, out.String(), "Use 'keyremap help <topic>'")

	out.Reset()
	root.SetArgs([]string{"help", "config"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "# Config\n\nWhere mappings live\n", out.String())
}
