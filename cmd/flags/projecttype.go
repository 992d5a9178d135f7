package flags

import (
	"fmt"
	"strings"
)

type ProjectType string

// Project types mkdev can scaffold
const (
	Go     ProjectType = "go"
	NextJS ProjectType = "nextjs"
	Python ProjectType = "python"
)

var AllowedTypes = []string{string(Go), string(NextJS), string(Python)}

func (t ProjectType) String() string {
	return string(t)
}

func (t *ProjectType) Type() string {
	return "ProjectType"
}

func (t *ProjectType) Set(value string) error {
	for _, allowed := range AllowedTypes {
		if allowed == value {
			*t = ProjectType(value)
			return nil
		}
	}

	return fmt.Errorf("Project type. Allowed values: %s", strings.Join(AllowedTypes, ", "))
}
