package playbook

import (
	"embed"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/fieldgeneral/playcall/pkg/errors"
)

// Data file names, both embedded and on disk.
const (
	DefensesFile = "defenses.json"
	ConceptsFile = "offensive_concepts.json"
)

//go:embed data/defenses.json data/offensive_concepts.json
var defaultData embed.FS

// Default returns the library built from the embedded reference data.
func Default() (*Library, error) {
	defenses, err := defaultData.Open("data/" + DefensesFile)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open embedded defenses")
	}
	defer defenses.Close()

	concepts, err := defaultData.Open("data/" + ConceptsFile)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open embedded concepts")
	}
	defer concepts.Close()

	return Read(defenses, concepts)
}

// Load builds the library from defenses.json and offensive_concepts.json
// in dir. Missing or malformed files are errors: a partial dataset would
// silently drop answers.
func Load(dir string) (*Library, error) {
	defenses, err := os.Open(filepath.Join(dir, DefensesFile))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", DefensesFile)
	}
	defer defenses.Close()

	concepts, err := os.Open(filepath.Join(dir, ConceptsFile))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", ConceptsFile)
	}
	defer concepts.Close()

	return Read(defenses, concepts)
}

// Read decodes the two reference files into one library.
func Read(defenses, concepts io.Reader) (*Library, error) {
	var lib Library
	if err := json.NewDecoder(defenses).Decode(&lib); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode defenses")
	}

	var off struct {
		PassConcepts map[string]PassConcept `json:"pass_concepts"`
		RunConcepts  map[string]RunConcept  `json:"run_concepts"`
		Beaters      map[string]Beater      `json:"coverage_beaters"`
	}
	if err := json.NewDecoder(concepts).Decode(&off); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode concepts")
	}
	lib.PassConcepts = off.PassConcepts
	lib.RunConcepts = off.RunConcepts
	lib.Beaters = off.Beaters

	if err := lib.validate(); err != nil {
		return nil, err
	}
	return &lib, nil
}

// validate checks referential integrity: every concept a beater names
// must exist, or analysis answers would silently vanish.
func (l *Library) validate() error {
	if len(l.Formations) == 0 || len(l.Coverages) == 0 {
		return errors.New(errors.ErrCodeInvalidDataset, "defenses data is missing formations or coverages")
	}
	for key, b := range l.Beaters {
		for _, c := range b.BestPass {
			if _, ok := l.PassConcepts[c]; !ok {
				return errors.New(errors.ErrCodeInvalidDataset,
					"beater %q references unknown pass concept %q", key, c)
			}
		}
		for _, c := range b.BestRun {
			if _, ok := l.RunConcepts[c]; !ok {
				return errors.New(errors.ErrCodeInvalidDataset,
					"beater %q references unknown run concept %q", key, c)
			}
		}
	}
	return nil
}
