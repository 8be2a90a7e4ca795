// Package projectio reads a project's building description from disk. It
// is an external collaborator, like stationio: the calculation core never
// imports it.
package projectio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/e10lab/din18599/internal/model"
)

// ReadProjectJSON loads a whole Project — zones, surfaces, constructions,
// ventilation units and systems — from a single JSON document. Field
// names match the model's Go field names case-insensitively, so a project
// file is a direct, uncoupled serialization of model.Project rather than
// a separate schema the engine has to translate.
func ReadProjectJSON(path string) (model.Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("opening project file %q: %w", path, err)
	}
	defer f.Close()

	var project model.Project
	if err := json.NewDecoder(f).Decode(&project); err != nil {
		return model.Project{}, fmt.Errorf("decoding project file %q: %w", path, err)
	}
	if len(project.Zones) == 0 {
		return model.Project{}, fmt.Errorf("project file %q: declares no zones", path)
	}
	return project, nil
}
