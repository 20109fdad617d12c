// Package verify re-reads a produced OpenAPI document with an independent
// parser and reports whether a complete model can be built from it.
package verify

import (
	"errors"
	"fmt"

	"github.com/pb33f/libopenapi"
)

// Summary describes the model built from a document.
type Summary struct {
	// OpenAPI is the version declared by the document
	OpenAPI string
	// Title is info.title
	Title string
	// Paths lists the path templates in document order
	Paths []string
	// Operations is the number of operations across all paths
	Operations int
	// SecuritySchemes lists the names in components.securitySchemes
	SecuritySchemes []string
}

// Document builds a v3 model from data, which may be JSON or YAML.
func Document(data []byte) (*Summary, error) {
	d, err := libopenapi.NewDocument(data)
	if err != nil {
		return nil, fmt.Errorf("verify: failed to read document: %w", err)
	}

	doc, modelErrors := d.BuildV3Model()
	if len(modelErrors) > 0 {
		return nil, fmt.Errorf("verify: failed to build model: %w", errors.Join(modelErrors...))
	}
	if doc == nil {
		return nil, fmt.Errorf("verify: failed to build model")
	}

	s := &Summary{OpenAPI: doc.Model.Version}
	if doc.Model.Info != nil {
		s.Title = doc.Model.Info.Title
	}
	if doc.Model.Paths != nil && doc.Model.Paths.PathItems != nil {
		for pair := doc.Model.Paths.PathItems.First(); pair != nil; pair = pair.Next() {
			s.Paths = append(s.Paths, pair.Key())
			if ops := pair.Value().GetOperations(); ops != nil {
				s.Operations += ops.Len()
			}
		}
	}
	if doc.Model.Components != nil && doc.Model.Components.SecuritySchemes != nil {
		for pair := doc.Model.Components.SecuritySchemes.First(); pair != nil; pair = pair.Next() {
			s.SecuritySchemes = append(s.SecuritySchemes, pair.Key())
		}
	}
	return s, nil
}
