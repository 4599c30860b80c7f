package template

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTemplate(t *testing.T) {
	engine := NewEngine()

	for _, name := range []string{CourseTemplateName, ""} {
		t.Run("name="+name, func(t *testing.T) {
			tmpl, err := engine.LoadTemplate(name)
			require.NoError(t, err)
			assert.Equal(t, CourseTemplateName, tmpl.Name)
			assert.NotEmpty(t, tmpl.Description)
			assert.Len(t, tmpl.Directories, 51)
			assert.Len(t, tmpl.Groups, 4)
			require.NoError(t, tmpl.Validate())
		})
	}
}

func TestLoadTemplate_Invalid(t *testing.T) {
	engine := NewEngine()

	_, err := engine.LoadTemplate("invalid-template")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadTemplate_ReturnsFreshCopy(t *testing.T) {
	engine := NewEngine()

	first, err := engine.LoadTemplate(CourseTemplateName)
	require.NoError(t, err)
	first.Directories[0] = "changed"
	first.Groups[0].Files[0].Content = "changed"

	second, err := engine.LoadTemplate(CourseTemplateName)
	require.NoError(t, err)
	assert.Equal(t, "lectures", second.Directories[0])
	assert.NotEqual(t, "changed", second.Groups[0].Files[0].Content)
}

func TestCourseTemplate_FilePaths(t *testing.T) {
	tmpl := courseTemplate()

	assert.Equal(t, []string{
		"lectures/README.md",
		"notebooks/README.md",
		"exercises/README.md",
		"miniprojects/README.md",
		"resources/README.md",
		".gitignore",
		"requirements.txt",
		"LICENSE",
		"resources/python_cheatsheet.md",
		"resources/colab_guide.md",
		"miniprojects/project01_flocking_behavior/project_description.md",
	}, tmpl.FilePaths())

	titles := make([]string, len(tmpl.Groups))
	for i, g := range tmpl.Groups {
		titles[i] = g.Title
	}
	assert.Equal(t, []string{"README files", "configuration files", "sample resources", "project template"}, titles)
}

func TestCourseTemplate_Content(t *testing.T) {
	files := make(map[string]File)
	for _, f := range courseTemplate().Files() {
		files[f.Path] = f
	}

	assert.True(t, strings.HasPrefix(files["resources/python_cheatsheet.md"].Content,
		"# Python Cheatsheet for Complex Systems Modeling\n\n## Basic Data Types\n```python\n"))
	assert.Contains(t, files[".gitignore"].Content, "*_SOLUTIONS.ipynb\n")
	assert.Contains(t, files[".gitignore"].Content, ".ipynb_checkpoints\n")
	assert.Contains(t, files["requirements.txt"].Content, "networkx>=2.6.0\n")
	assert.Contains(t, files["LICENSE"].Content, "- Share — copy and redistribute")
	assert.Contains(t, files["resources/colab_guide.md"].Content, "File → Save a copy in Drive")
	assert.Contains(t, files["miniprojects/project01_flocking_behavior/project_description.md"].Content,
		"# Mini-Project 1: Flocking Behavior")
	assert.Equal(t, "Created README: lectures/README.md", files["lectures/README.md"].Notice)
	assert.Equal(t, "Created Python cheatsheet", files["resources/python_cheatsheet.md"].Notice)

	for path, f := range files {
		assert.True(t, strings.HasSuffix(f.Content, "\n"), "%s should end with a newline", path)
		assert.NotContains(t, f.Content, "\r", "%s should use unix line endings", path)
	}
}

func TestListTemplates(t *testing.T) {
	engine := NewEngine()

	templates := engine.ListTemplates()
	require.Len(t, templates, 1)
	assert.Equal(t, CourseTemplateName, templates[0].Name)
	assert.True(t, templates[0].BuiltIn)
	assert.Equal(t, 51, templates[0].Directories)
	assert.Contains(t, templates[0].Files, "LICENSE")
}

func TestExportTemplate_RoundTrip(t *testing.T) {
	templateDir := t.TempDir()
	engine := NewFileSystemEngine(templateDir)

	err := engine.ExportTemplate(CourseTemplateName, filepath.Join(templateDir, "my-course"))
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(templateDir, "my-course", ManifestFile))
	assert.FileExists(t, filepath.Join(templateDir, "my-course", "files", ".gitignore"))
	assert.FileExists(t, filepath.Join(templateDir, "my-course", "files", "resources", "colab_guide.md"))

	loaded, err := engine.LoadTemplate("my-course")
	require.NoError(t, err)

	original := courseTemplate()
	assert.Equal(t, "my-course", loaded.Name)
	assert.Equal(t, original.Directories, loaded.Directories)
	assert.Equal(t, original.NextSteps, loaded.NextSteps)
	require.Len(t, loaded.Groups, len(original.Groups))
	for gi := range original.Groups {
		assert.Equal(t, original.Groups[gi].Title, loaded.Groups[gi].Title)
		require.Len(t, loaded.Groups[gi].Files, len(original.Groups[gi].Files))
		for fi, want := range original.Groups[gi].Files {
			got := loaded.Groups[gi].Files[fi]
			assert.Equal(t, want.Path, got.Path)
			assert.Equal(t, want.Content, got.Content)
			assert.Equal(t, want.Notice, got.Notice)
		}
	}

	names := make([]string, 0)
	for _, info := range engine.ListTemplates() {
		names = append(names, info.Name)
	}
	assert.Equal(t, []string{CourseTemplateName, "my-course"}, names)
}

func TestLoadTemplate_FromDiskInlineContent(t *testing.T) {
	templateDir := t.TempDir()
	writeManifest(t, templateDir, "tiny", `description: Tiny layout
directories:
  - docs/guides
groups:
  - title: docs
    files:
      - path: docs/guides/intro.md
        content: "# Intro\n"
      - path: NOTES.txt
        content: ""
`)

	tmpl, err := NewFileSystemEngine(templateDir).LoadTemplate("tiny")
	require.NoError(t, err)
	assert.Equal(t, "tiny", tmpl.Name)
	assert.Equal(t, "Tiny layout", tmpl.Description)
	assert.Equal(t, []string{"docs/guides/intro.md", "NOTES.txt"}, tmpl.FilePaths())
	assert.Equal(t, "# Intro\n", tmpl.Groups[0].Files[0].Content)
}

func TestLoadTemplate_FromDiskInvalid(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		wantErr  error
	}{
		{
			name: "source escapes template dir",
			manifest: `directories: [docs]
groups:
  - title: docs
    files:
      - path: docs/a.md
        source: ../secret
`,
			wantErr: ErrInvalidTemplate,
		},
		{
			name: "missing parent directory",
			manifest: `directories: [docs]
groups:
  - title: docs
    files:
      - path: other/a.md
        content: x
`,
			wantErr: ErrInvalidTemplate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			templateDir := t.TempDir()
			writeManifest(t, templateDir, "broken", tt.manifest)

			_, err := NewFileSystemEngine(templateDir).LoadTemplate("broken")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadTemplate_FromDiskMissing(t *testing.T) {
	_, err := NewFileSystemEngine(t.TempDir()).LoadTemplate("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func writeManifest(t *testing.T, templateDir, name, manifest string) {
	t.Helper()
	dir := filepath.Join(templateDir, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFile), []byte(manifest), 0644))
}
