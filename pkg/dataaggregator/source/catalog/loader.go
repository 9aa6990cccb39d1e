package catalog

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/travigo/busload/pkg/ctdf"
	"gopkg.in/yaml.v3"
)

//go:embed data
var defaultCatalog embed.FS

type lineDocument struct {
	ctdf.Line `yaml:",inline"`

	SchedulesFile string
}

// LoadDefault loads the catalog bundled into the binary.
func LoadDefault() (*Source, error) {
	return LoadFS(defaultCatalog, "data", "embedded")
}

// Load reads a catalog from a YAML file or a directory of YAML files.
func Load(catalogPath string) (*Source, error) {
	info, err := os.Stat(catalogPath)
	if err != nil {
		return nil, err
	}

	if info.IsDir() {
		return LoadFS(os.DirFS(catalogPath), ".", catalogPath)
	}

	return LoadFS(os.DirFS(filepath.Dir(catalogPath)), filepath.Base(catalogPath), catalogPath)
}

// LoadFS walks root inside fsys and loads every .yaml/.yml file as one or
// more line documents.
func LoadFS(fsys fs.FS, root string, dataset string) (*Source, error) {
	source := &Source{
		lines: map[string]*ctdf.Line{},
	}

	err := fs.WalkDir(fsys, root, func(filePath string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			return nil
		}

		extension := path.Ext(filePath)
		if extension != ".yaml" && extension != ".yml" {
			return nil
		}

		log.Debug().Str("path", filePath).Msg("Loading line catalog file")

		return source.loadFile(fsys, filePath, dataset)
	})
	if err != nil {
		return nil, err
	}

	if len(source.lines) == 0 {
		return nil, fmt.Errorf("catalog %s: no lines found", dataset)
	}

	return source, nil
}

func (s *Source) loadFile(fsys fs.FS, filePath string, dataset string) error {
	lineYaml, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(lineYaml))

	for {
		var document lineDocument
		err := decoder.Decode(&document)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%s: %w", filePath, err)
		}

		line := document.Line

		if document.SchedulesFile != "" {
			schedulesPath := path.Join(path.Dir(filePath), document.SchedulesFile)

			schedulesCSV, err := fs.ReadFile(fsys, schedulesPath)
			if err != nil {
				return fmt.Errorf("%s: %w", filePath, err)
			}

			schedules, err := parseSchedulesCSV(schedulesCSV)
			if err != nil {
				return fmt.Errorf("%s: %w", schedulesPath, err)
			}

			if line.Schedules == nil {
				line.Schedules = map[ctdf.Direction][]*ctdf.ScheduleEntry{}
			}
			for direction, entries := range schedules {
				line.Schedules[direction] = append(line.Schedules[direction], entries...)
			}
		}

		if line.TransportType == "" {
			line.TransportType = ctdf.TransportTypeBus
		}

		line.DataSource = &ctdf.DataSource{
			Provider: "catalog",
			Dataset:  dataset,
		}

		if err := line.Validate(); err != nil {
			return fmt.Errorf("%s: %w", filePath, err)
		}

		if _, exists := s.lines[line.Identifier]; exists {
			return fmt.Errorf("%s: line %s is defined more than once", filePath, line.Identifier)
		}

		s.lines[line.Identifier] = &line
		s.order = append(s.order, line.Identifier)
	}

	return nil
}
