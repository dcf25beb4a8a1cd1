// Package ner provides the named-entity recognition collaborator backed by
// the prose NLP library.
package ner

import (
	"fmt"

	"github.com/jdkato/prose/v2"

	"InsuranceNewsAgent/internal/ports"
)

// ProseRecognizer runs prose's statistical entity tagger over plain text.
type ProseRecognizer struct{}

var _ ports.EntityRecognizer = (*ProseRecognizer)(nil)

// NewProseRecognizer builds a recognizer; the underlying model is loaded
// lazily per document by prose itself.
func NewProseRecognizer() *ProseRecognizer {
	return &ProseRecognizer{}
}

// Entities tags the text and returns every recognized entity with its
// label. Callers filter for the labels they care about.
func (r *ProseRecognizer) Entities(text string) ([]ports.Entity, error) {
	if text == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("ner document: %w", err)
	}

	tagged := doc.Entities()
	entities := make([]ports.Entity, 0, len(tagged))
	for _, ent := range tagged {
		entities = append(entities, ports.Entity{Text: ent.Text, Label: ent.Label})
	}
	return entities, nil
}
