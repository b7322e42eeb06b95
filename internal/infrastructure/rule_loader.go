package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/Victor-armando18/cupcake-corner/internal/domain"
	yamlfile "github.com/Victor-armando18/cupcake-corner/internal/infrastructure/yaml"
	"github.com/Victor-armando18/cupcake-corner/internal/interfaces"
)

type FileRuleLoader struct {
	BaseDir string
}

// NewFileRuleLoader reads <version>_guards.yaml files from baseDir.
func NewFileRuleLoader(baseDir string) interfaces.RulePackLoader {
	return &FileRuleLoader{BaseDir: baseDir}
}

func (l *FileRuleLoader) Load(ctx context.Context, version string) (*domain.RulePackDefinition, error) {
	path := filepath.Join(l.BaseDir, fmt.Sprintf("%s_guards.yaml", version))

	var def domain.RulePackDefinition
	if err := yamlfile.LoadFile(path, &def); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRulePackNotFound, path)
		}
		return nil, fmt.Errorf("failed to read rule file %s: %w", path, err)
	}
	if def.Version == "" {
		def.Version = version
	}
	return &def, nil
}
