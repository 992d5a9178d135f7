package scaffold

// Project types mkdev can scaffold.
const (
	TypeGo     = "go"
	TypeNextJS = "nextjs"
	TypePython = "python"
)

// AllTypes lists the supported scaffold types in menu order.
var AllTypes = []string{TypeGo, TypeNextJS, TypePython}

// TemplateData is the interpolation context for every stamped file.
type TemplateData struct {
	Name        string
	Module      string
	AuthorName  string
	AuthorEmail string
	Year        int
}

// fileTemplates maps each project type to the files stamped into a
// new project. Paths are slash-separated and relative to the project
// root; intermediate directories are created as needed.
var fileTemplates = map[string]map[string]string{
	TypeGo: {
		"main.go": `package main

import "fmt"

func main() {
	fmt.Println("{{.Name}} is alive")
}
`,
		"README.md": `# {{.Name}}

A Go project.

## Build

` + "```sh\ngo build ./...\n```" + `

## Run

` + "```sh\ngo run .\n```" + `
{{if .AuthorName}}
## Author

{{.AuthorName}}{{if .AuthorEmail}} <{{.AuthorEmail}}>{{end}}
{{end}}`,
		".gitignore": `# Binaries
{{.Name}}
*.exe
*.test
*.out

# Coverage
coverage.*

# Vendored dependencies
vendor/

# Editor cruft
.idea/
.vscode/
`,
		"Makefile": `.PHONY: build test run

build:
	go build ./...

test:
	go test ./...

run:
	go run .
`,
	},
	TypeNextJS: {
		"package.json": `{
  "name": "{{.Name}}",
  "version": "0.1.0",
  "private": true,
  "scripts": {
    "dev": "next dev",
    "build": "next build",
    "start": "next start"
  },
  "dependencies": {
    "next": "^15.0.0",
    "react": "^19.0.0",
    "react-dom": "^19.0.0"
  }
}
`,
		"next.config.mjs": `/** @type {import('next').NextConfig} */
const nextConfig = {};

export default nextConfig;
`,
		"pages/index.jsx": `export default function Home() {
  return (
    <main>
      <h1>{{.Name}}</h1>
      <p>Generated by mkdev.</p>
    </main>
  );
}
`,
		"README.md": `# {{.Name}}

A Next.js project.

## Development

` + "```sh\nnpm run dev\n```" + `

## Production

` + "```sh\nnpm run build && npm start\n```" + `
{{if .AuthorName}}
## Author

{{.AuthorName}}{{if .AuthorEmail}} <{{.AuthorEmail}}>{{end}}
{{end}}`,
		".gitignore": `# Dependencies
node_modules/

# Next.js build output
.next/
out/

# Env files
.env*.local

# Editor cruft
.idea/
.vscode/
`,
	},
	TypePython: {
		"main.py": `def main() -> None:
    print("{{.Name}} is alive")


if __name__ == "__main__":
    main()
`,
		"requirements.txt": `# {{.Name}} dependencies
`,
		"pyproject.toml": `[project]
name = "{{.Name}}"
version = "0.1.0"
requires-python = ">=3.11"
{{if .AuthorName}}authors = [{ name = "{{.AuthorName}}"{{if .AuthorEmail}}, email = "{{.AuthorEmail}}"{{end}} }]
{{end}}
[build-system]
requires = ["setuptools>=68"]
build-backend = "setuptools.build_meta"
`,
		"README.md": `# {{.Name}}

A Python project.

## Setup

` + "```sh\npython3 -m venv .venv && source .venv/bin/activate\npip install -r requirements.txt\n```" + `

## Run

` + "```sh\npython main.py\n```" + `
{{if .AuthorName}}
## Author

{{.AuthorName}}{{if .AuthorEmail}} <{{.AuthorEmail}}>{{end}}
{{end}}`,
		".gitignore": `# Byte-compiled files
__pycache__/
*.py[cod]

# Environments
.venv/
venv/
.env

# Distribution
build/
dist/
*.egg-info/

# Editor cruft
.idea/
.vscode/
`,
	},
}

// goModTemplate is stamped only when the go toolchain is not on PATH;
// otherwise `go mod init` writes the real one.
const goModTemplate = `module {{.Module}}

go 1.24
`
