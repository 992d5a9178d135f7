// Package state keeps a registry of everything mkdev has scaffolded
// or sorted, one JSON record per project under ~/.mkdev/state.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"mkdev/pkg/config"
)

// Origin values for ProjectRecord.
const (
	OriginScaffolded = "scaffolded"
	OriginCloned     = "cloned"
)

// ProjectRecord describes one project mkdev created or filed.
type ProjectRecord struct {
	Name      string    `json:"name"`
	Type      string    `json:"type"` // scaffold type or language tag
	Path      string    `json:"path"`
	Origin    string    `json:"origin"`
	CreatedAt time.Time `json:"created_at"`
}

// GetStatePath returns the path to the registry directory.
func GetStatePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(config.LocalConfigDir, config.LocalStateDir)
	}
	return filepath.Join(homeDir, config.LocalConfigDir, config.LocalStateDir)
}

// GetRecordPath returns the path to a specific project's record.
func GetRecordPath(name string) string {
	return filepath.Join(GetStatePath(), name+".json")
}

// SaveRecord writes a project record, overwriting any previous one
// with the same name.
func SaveRecord(record ProjectRecord) error {
	recordPath := GetRecordPath(record.Name)

	if err := os.MkdirAll(filepath.Dir(recordPath), config.PermDirectory); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if err := os.WriteFile(recordPath, data, config.PermConfigFile); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	return nil
}

// LoadRecord reads a project record by name.
func LoadRecord(name string) (*ProjectRecord, error) {
	data, err := os.ReadFile(GetRecordPath(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	var record ProjectRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse record: %w", err)
	}

	return &record, nil
}

// ListRecords returns every project record, sorted by name. A
// missing registry directory is an empty registry, not an error.
func ListRecords() ([]ProjectRecord, error) {
	entries, err := os.ReadDir(GetStatePath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read state directory: %w", err)
	}

	var records []ProjectRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		record, err := LoadRecord(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			continue
		}
		records = append(records, *record)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records, nil
}

// RecordScaffolded registers a freshly scaffolded project.
func RecordScaffolded(name, projectType, path string) error {
	return SaveRecord(ProjectRecord{
		Name:      name,
		Type:      projectType,
		Path:      path,
		Origin:    OriginScaffolded,
		CreatedAt: time.Now(),
	})
}

// RecordCloned registers a cloned and sorted repository.
func RecordCloned(name, language, path string) error {
	return SaveRecord(ProjectRecord{
		Name:      name,
		Type:      language,
		Path:      path,
		Origin:    OriginCloned,
		CreatedAt: time.Now(),
	})
}
