package model

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleCatalogs returns catalogs covering empty, single and mixed cases.
func sampleCatalogs() map[string][]Project {
	site := NewWebProject("Site", 40)
	site.AddTask("Design homepage")
	site.AddTask("Wire up checkout")

	app := NewMobileProject("App", 60)

	odd := NewWebProject("123", -1)
	odd.AddTask("null")
	odd.AddTask("line one\nline two")
	odd.AddTask("")
	odd.AddTask("a, b & <c>")

	breaks := NewMobileProject("\na", 3)
	breaks.AddTask("\n")
	breaks.AddTask("\n\n")
	breaks.AddTask("\n\nindented\n")
	breaks.AddTask("trailing\n\n")
	breaks.AddTask("carriage\r\nreturn")

	return map[string][]Project{
		"line breaks":      {breaks, NewWebProject("\n", 2)},
		"empty":            {},
		"single web":       {NewWebProject("Only", 8)},
		"single mobile":    {NewMobileProject("Only", 8)},
		"mixed":            {site, app},
		"awkward values":   {odd, NewMobileProject("", 0)},
		"repeated entries": {NewWebProject("Dup", 1), NewWebProject("Dup", 1), NewMobileProject("Dup", 1)},
	}
}

func assertSameProjects(t *testing.T, want, got []Project) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, ToRecord(want[i]), ToRecord(got[i]), "project %d", i+1)
		assert.IsType(t, want[i], got[i], "project %d", i+1)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	for name, projects := range sampleCatalogs() {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteYAML(&buf, projects))

			got, err := ReadYAML(&buf)
			require.NoError(t, err)
			assertSameProjects(t, projects, got)
		})
	}
}

func TestWriteYAML(t *testing.T) {
	t.Run("fields in fixed order with kind first", func(t *testing.T) {
		site := NewWebProject("Site", 40)
		site.AddTask("Design homepage")

		var buf bytes.Buffer
		require.NoError(t, WriteYAML(&buf, []Project{site, NewMobileProject("App", 60)}))

		content := buf.String()
		assert.True(t, strings.HasPrefix(content, "projects:\n"))
		assert.Contains(t, content, "- kind: web\n")
		assert.Contains(t, content, "- kind: mobile\n")
		assert.Contains(t, content, "title: Site\n")
		assert.Contains(t, content, "estimated_hours: 40\n")
		assert.Contains(t, content, "- Design homepage\n")
		assert.Less(t, strings.Index(content, "kind: web"), strings.Index(content, "title: Site"))
		assert.Less(t, strings.Index(content, "title: Site"), strings.Index(content, "estimated_hours: 40"))
		assert.Equal(t, 1, strings.Count(content, "tasks:"), "empty task list is omitted")
	})

	t.Run("empty catalog writes an empty list", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteYAML(&buf, nil))
		assert.Equal(t, "projects: []\n", buf.String())
	})

	t.Run("numeric-looking title is quoted", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteYAML(&buf, []Project{NewWebProject("123", 1)}))
		assert.Contains(t, buf.String(), `title: "123"`)
	})

	t.Run("multi-line task uses block scalar", func(t *testing.T) {
		p := NewWebProject("Site", 1)
		p.AddTask("first\nsecond")

		var buf bytes.Buffer
		require.NoError(t, WriteYAML(&buf, []Project{p}))
		assert.Contains(t, buf.String(), "- |-\n")
	})

	t.Run("leading line break is double quoted", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteYAML(&buf, []Project{NewMobileProject("\na", 1)}))
		assert.Contains(t, buf.String(), `title: "\na"`)

		got, err := ReadYAML(&buf)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "\na", got[0].Title())
	})
}

func TestReadYAML(t *testing.T) {
	t.Run("hand-written file", func(t *testing.T) {
		content := `projects:
  - kind: mobile
    title: Field app
    estimated_hours: 12
    tasks: [Offline sync, Camera upload]
  - kind: web
    title: Landing page
    estimated_hours: 3
`
		got, err := ReadYAML(strings.NewReader(content))
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, KindMobile, got[0].Kind())
		assert.Equal(t, "Field app", got[0].Title())
		assert.Equal(t, 12, got[0].EstimatedHours())
		assert.Equal(t, []string{"Offline sync", "Camera upload"}, got[0].(Taskable).Tasks())

		assert.Equal(t, KindWeb, got[1].Kind())
		assert.Empty(t, got[1].(Taskable).Tasks())
	})

	t.Run("empty input is an empty catalog", func(t *testing.T) {
		got, err := ReadYAML(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		_, err := ReadYAML(strings.NewReader("projects:\n  - kind: desktop\n    title: x\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownKind)
		assert.Contains(t, err.Error(), "entry 1")
	})

	t.Run("missing kind is rejected", func(t *testing.T) {
		_, err := ReadYAML(strings.NewReader("projects:\n  - title: x\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing kind")
	})

	t.Run("non-integer hours is rejected", func(t *testing.T) {
		_, err := ReadYAML(strings.NewReader("projects:\n  - kind: web\n    estimated_hours: lots\n"))
		require.Error(t, err)
	})

	t.Run("malformed yaml is rejected", func(t *testing.T) {
		_, err := ReadYAML(strings.NewReader("projects: [\n"))
		require.Error(t, err)
	})
}
