package providers

import (
	"fmt"
	"skilld/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

// Validate checks the struct tags and the cross-field rules the tags cannot express.
func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return fmt.Errorf("invalid config: %s", v.Errors.One())
	}

	switch cv.conf.Source.Kind {
	case "file":
		if cv.conf.Source.FilePath == "" {
			return fmt.Errorf("invalid config: source.filePath is required for file source")
		}
	case "sqlite":
		if cv.conf.Source.DSN == "" {
			return fmt.Errorf("invalid config: source.dsn is required for sqlite source")
		}
	}
	return nil
}
