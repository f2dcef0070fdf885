// Package validation provides input validation for streamkit configs
// and pipeline parameters.
//
// It supports both struct tag validation (using the validator library)
// and programmatic validation with error collection.
//
// # Struct Tag Validation
//
//	type SourceConfig struct {
//	    Path     string `validate:"required"`
//	    Interval int    `validate:"min=1"`
//	}
//	err := validation.ValidateStruct(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Check(len(sources) > 0, "sources", "at least one source is required")
//	err := v.Error()
package validation
