// Package steps provides the option schemas used by the interactive
// pickers in the CLI flow.
package steps

// A StepSchema contains the data for one interactive step
type StepSchema struct {
	StepName string // The name of a given step
	Options  []Item // The slice of each option for a given step
	Headers  string // The title displayed at the top of a given step
}

// Steps contains a map of steps
type Steps struct {
	Steps map[string]StepSchema
}

// An Item contains the data for each option in a StepSchema.Options
type Item struct {
	Flag, Title, Desc string
}

// InitSteps initializes and returns the *Steps used by the CLI
func InitSteps() *Steps {
	steps := &Steps{
		map[string]StepSchema{
			"project_type": {
				StepName: "Project Type",
				Options: []Item{
					{
						Flag:  "go",
						Title: "Go",
						Desc:  "Go module with main.go, Makefile and go mod init",
					},
					{
						Flag:  "nextjs",
						Title: "Next.js",
						Desc:  "Next.js app with pages/ stub and package.json",
					},
					{
						Flag:  "python",
						Title: "Python",
						Desc:  "Python project with pyproject.toml and a virtualenv",
					},
				},
				Headers: "What kind of project are you starting?",
			},
			"python_env": {
				StepName: "Python Environment",
				Options: []Item{
					{
						Flag:  "venv",
						Title: "venv",
						Desc:  "Standard library virtual environment in .venv",
					},
					{
						Flag:  "poetry",
						Title: "Poetry",
						Desc:  "Poetry-managed environment and lockfile",
					},
					{
						Flag:  "conda",
						Title: "Conda",
						Desc:  "Named conda environment",
					},
					{
						Flag:  "none",
						Title: "None",
						Desc:  "Skip environment creation",
					},
				},
				Headers: "Which Python environment manager?",
			},
		},
	}

	return steps
}
