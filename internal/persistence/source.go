package persistence

import (
	"fmt"
	"skilld/internal/persistence/interfaces"
	"skilld/internal/providers"
	"skilld/internal/structures"
)

const (
	SourceFile   = "file"
	SourceSQLite = "sqlite"
)

// NewSource builds the snapshot source selected by conf.Source.Kind.
func NewSource(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) (interfaces.SourceInterface, error) {
	switch conf.Source.Kind {
	case SourceFile:
		return NewFileManager(conf.Source.FilePath, compressor, logger), nil
	case SourceSQLite:
		return OpenSQLiteSource(conf.Source.DSN, logger)
	default:
		return nil, fmt.Errorf("unknown source kind %q", conf.Source.Kind)
	}
}
