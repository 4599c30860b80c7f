package template

// File is one entry of a file group: the full content written to Path.
// Source is only used by on-disk manifests and names a file, relative to
// the template directory, to read Content from.
type File struct {
	Path    string `yaml:"path"`
	Content string `yaml:"content,omitempty"`
	Source  string `yaml:"source,omitempty"`
	Notice  string `yaml:"notice,omitempty"`
}

// FileGroup is a batch of files written together as one setup step.
type FileGroup struct {
	Title string `yaml:"title"`
	Files []File `yaml:"files"`
}

// Template describes a repository layout: the directories to ensure and the
// files to write into them, in order.
type Template struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Title       string      `yaml:"title,omitempty"`
	Completion  string      `yaml:"completion,omitempty"`
	Farewell    string      `yaml:"farewell,omitempty"`
	Directories []string    `yaml:"directories"`
	Groups      []FileGroup `yaml:"groups"`
	NextSteps   []string    `yaml:"next_steps,omitempty"`
}

type TemplateInfo struct {
	Name        string
	Description string
	Directories int
	Files       []string
	BuiltIn     bool
}

type TemplateEngine interface {
	LoadTemplate(name string) (*Template, error)
	ListTemplates() []TemplateInfo
	ExportTemplate(name, targetDir string) error
}

// Files returns every file of the template in write order.
func (t *Template) Files() []File {
	var files []File
	for _, g := range t.Groups {
		files = append(files, g.Files...)
	}
	return files
}

// FilePaths returns the path of every file in write order.
func (t *Template) FilePaths() []string {
	files := t.Files()
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	return paths
}
