package exporter

import "fmt"

// TemplateAssetError means a template file is missing or unusable.
type TemplateAssetError struct {
	Path string
	Err  error
}

func (e *TemplateAssetError) Error() string {
	return fmt.Sprintf("template %s: %v", e.Path, e.Err)
}

func (e *TemplateAssetError) Unwrap() error { return e.Err }

// OutputWriteError means an artifact could not be saved. Files written
// before the failure are left in place.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }
