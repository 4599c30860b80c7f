package template

import (
	"embed"
	"fmt"
	"path"
)

// CourseTemplateName is the built-in template used when none is configured.
const CourseTemplateName = "complex-systems-course"

//go:embed all:course
var courseFiles embed.FS

func courseTemplate() *Template {
	return &Template{
		Name:        CourseTemplateName,
		Description: "Complex Systems Modeling course repository",
		Title:       "Setting up Complex Systems Modeling Course Repository",
		Completion:  "Repository setup complete!",
		Farewell:    "Your complex systems course repository is ready!",
		Directories: []string{
			"lectures",
			"notebooks",
			"exercises",
			"miniprojects",
			"resources",
			"data",
			"tools",
			"assessments",

			"lectures/week01_introduction",
			"lectures/week02_emergence",
			"lectures/week03_cellular_automata",
			"lectures/week04_agent_based",
			"lectures/week05_networks",

			"notebooks/session01_intro_python",
			"notebooks/session01_intro_python/solutions",
			"notebooks/session02_chaos_game",
			"notebooks/session02_chaos_game/solutions",
			"notebooks/session03_cellular_automata",
			"notebooks/session03_cellular_automata/solutions",
			"notebooks/session04_agent_based",
			"notebooks/session04_agent_based/solutions",
			"notebooks/session05_networks",
			"notebooks/session05_networks/solutions",

			"exercises/week01_basic_patterns",
			"exercises/week01_basic_patterns/solutions",
			"exercises/week02_fractals",
			"exercises/week02_fractals/solutions",
			"exercises/week03_cellular_automata",
			"exercises/week03_cellular_automata/solutions",
			"exercises/week04_agents",
			"exercises/week04_agents/solutions",
			"exercises/week05_networks",
			"exercises/week05_networks/solutions",

			"miniprojects/project01_flocking_behavior",
			"miniprojects/project01_flocking_behavior/data",
			"miniprojects/project01_flocking_behavior/reference_solution",
			"miniprojects/project02_epidemic_modeling",
			"miniprojects/project02_epidemic_modeling/data",
			"miniprojects/project02_epidemic_modeling/reference_solution",
			"miniprojects/project03_traffic_flow",
			"miniprojects/project03_traffic_flow/data",
			"miniprojects/project03_traffic_flow/reference_solution",

			"resources/visualization_gallery",
			"resources/visualization_gallery/fractal_examples",
			"resources/visualization_gallery/complex_systems_examples",

			"data/sample_datasets",
			"data/real_world_data",
			"data/synthetic_data",

			"assessments/midterm_project",
			"assessments/final_project",
			"assessments/grading_rubrics",
		},
		Groups: []FileGroup{
			{
				Title: "README files",
				Files: []File{
					readmeFile("lectures/README.md"),
					readmeFile("notebooks/README.md"),
					readmeFile("exercises/README.md"),
					readmeFile("miniprojects/README.md"),
					readmeFile("resources/README.md"),
				},
			},
			{
				Title: "configuration files",
				Files: []File{
					courseFile(".gitignore", "Created .gitignore"),
					courseFile("requirements.txt", "Created requirements.txt"),
					courseFile("LICENSE", "Created LICENSE"),
				},
			},
			{
				Title: "sample resources",
				Files: []File{
					courseFile("resources/python_cheatsheet.md", "Created Python cheatsheet"),
					courseFile("resources/colab_guide.md", "Created Colab guide"),
				},
			},
			{
				Title: "project template",
				Files: []File{
					courseFile("miniprojects/project01_flocking_behavior/project_description.md",
						"Created sample project description"),
				},
			},
		},
		NextSteps: []string{
			"Initialize git repository: git init",
			"Add files: git add .",
			"Commit: git commit -m 'Initial course repository setup'",
			"Create GitHub repository and push",
			"Add your course notebooks to appropriate directories",
			"Customize README.md with your specific details",
		},
	}
}

func readmeFile(p string) File {
	return courseFile(p, "Created README: "+p)
}

// courseFile panics on a missing asset: the set is fixed at build time.
func courseFile(p, notice string) File {
	data, err := courseFiles.ReadFile(path.Join("course", p))
	if err != nil {
		panic(fmt.Sprintf("template: missing embedded course file %s: %v", p, err))
	}
	return File{Path: p, Content: string(data), Notice: notice}
}
