package template

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the name of the manifest inside an on-disk template directory.
const ManifestFile = "template.yaml"

// exportFilesDir holds the file sources of an exported template.
const exportFilesDir = "files"

// Built-in templates are constructed on every load so callers never share
// (and never mutate) the same value.
var builtInTemplates = map[string]func() *Template{
	CourseTemplateName: courseTemplate,
}

type FileSystemEngine struct {
	templateDir string
}

func NewFileSystemEngine(templateDir string) *FileSystemEngine {
	return &FileSystemEngine{
		templateDir: templateDir,
	}
}

func NewEngine() *FileSystemEngine {
	return &FileSystemEngine{
		templateDir: "",
	}
}

func (e *FileSystemEngine) LoadTemplate(name string) (*Template, error) {
	if name == "" {
		name = CourseTemplateName
	}

	if newTemplate, ok := builtInTemplates[name]; ok {
		return newTemplate(), nil
	}

	if e.templateDir != "" {
		return e.loadFromDisk(name)
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

func (e *FileSystemEngine) loadFromDisk(name string) (*Template, error) {
	if _, err := CleanPath(name); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrNotFound, name, err)
	}

	templatePath := filepath.Join(e.templateDir, name)

	info, err := os.Stat(templatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template %q is not a directory", name)
	}

	tmpl, err := readManifest(filepath.Join(templatePath, ManifestFile))
	if err != nil {
		return nil, err
	}
	tmpl.Name = name

	for gi := range tmpl.Groups {
		files := tmpl.Groups[gi].Files
		for fi := range files {
			if files[fi].Source == "" {
				continue
			}
			content, err := readSource(templatePath, files[fi].Source)
			if err != nil {
				return nil, fmt.Errorf("failed to read source of %s: %w", files[fi].Path, err)
			}
			files[fi].Content = content
		}
	}

	if err := tmpl.Validate(); err != nil {
		return nil, fmt.Errorf("template %q: %w", name, err)
	}
	return tmpl, nil
}

func readManifest(manifestPath string) (*Template, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template manifest: %w", err)
	}

	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("failed to parse template manifest %s: %w", manifestPath, err)
	}
	return &tmpl, nil
}

func readSource(templatePath, source string) (string, error) {
	clean, err := CleanPath(source)
	if err != nil {
		return "", fmt.Errorf("%w: source %q: %v", ErrInvalidTemplate, source, err)
	}
	data, err := os.ReadFile(filepath.Join(templatePath, filepath.FromSlash(clean)))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ExportTemplate writes the named template to targetDir as a manifest plus
// one source file per entry, ready to be edited and loaded back through a
// FileSystemEngine rooted at targetDir's parent. An on-disk template is named
// after its directory.
func (e *FileSystemEngine) ExportTemplate(name, targetDir string) error {
	tmpl, err := e.LoadTemplate(name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}

	manifest := *tmpl
	manifest.Name = filepath.Base(targetDir)
	manifest.Groups = make([]FileGroup, len(tmpl.Groups))
	for gi, g := range tmpl.Groups {
		files := make([]File, len(g.Files))
		for fi, f := range g.Files {
			source := path.Join(exportFilesDir, f.Path)
			fullPath := filepath.Join(targetDir, filepath.FromSlash(source))

			if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(fullPath), err)
			}
			if err := os.WriteFile(fullPath, []byte(f.Content), 0644); err != nil {
				return fmt.Errorf("failed to write file %s: %w", f.Path, err)
			}

			files[fi] = File{Path: f.Path, Source: source, Notice: f.Notice}
		}
		manifest.Groups[gi] = FileGroup{Title: g.Title, Files: files}
	}

	data, err := yaml.Marshal(&manifest)
	if err != nil {
		return fmt.Errorf("failed to marshal template manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(targetDir, ManifestFile), data, 0644); err != nil {
		return fmt.Errorf("failed to write template manifest: %w", err)
	}
	return nil
}

func (e *FileSystemEngine) ListTemplates() []TemplateInfo {
	infos := make([]TemplateInfo, 0, len(builtInTemplates))

	for _, name := range GetBuiltInTemplateNames() {
		infos = append(infos, newTemplateInfo(builtInTemplates[name](), true))
	}

	if e.templateDir != "" {
		entries, err := os.ReadDir(e.templateDir)
		if err == nil {
			for _, entry := range entries {
				if !entry.IsDir() {
					continue
				}
				if _, ok := builtInTemplates[entry.Name()]; ok {
					continue
				}
				tmpl, err := readManifest(filepath.Join(e.templateDir, entry.Name(), ManifestFile))
				if err != nil {
					continue
				}
				tmpl.Name = entry.Name()
				if tmpl.Description == "" {
					tmpl.Description = "Custom template"
				}
				infos = append(infos, newTemplateInfo(tmpl, false))
			}
		}
	}

	sort.SliceStable(infos, func(i, j int) bool {
		if infos[i].BuiltIn != infos[j].BuiltIn {
			return infos[i].BuiltIn
		}
		return infos[i].Name < infos[j].Name
	})
	return infos
}

func newTemplateInfo(t *Template, builtIn bool) TemplateInfo {
	return TemplateInfo{
		Name:        t.Name,
		Description: t.Description,
		Directories: len(t.Directories),
		Files:       t.FilePaths(),
		BuiltIn:     builtIn,
	}
}

func GetBuiltInTemplateNames() []string {
	names := make([]string, 0, len(builtInTemplates))
	for name := range builtInTemplates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
