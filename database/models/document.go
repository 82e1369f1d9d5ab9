package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

type DocumentComponentType string

const (
	DocumentComponentTypeHeaderH1     DocumentComponentType = "HEADER_H1"
	DocumentComponentTypeHeaderH2     DocumentComponentType = "HEADER_H2"
	DocumentComponentTypeParagraph    DocumentComponentType = "PARAGRAPH"
	DocumentComponentTypeBulletPoints DocumentComponentType = "BULLET_POINTS"
	DocumentComponentTypeLink         DocumentComponentType = "LINK"
)

// DocumentComponent is one typed block of the rendered letter. The order of
// the blocks is the order they appear in the PDF.
type DocumentComponent struct {
	Type  DocumentComponentType `json:"type"`
	Key   *string               `json:"key,omitempty"`
	Title *string               `json:"title,omitempty"`
	Texts []string              `json:"texts"`
}

type DocumentComponents []DocumentComponent

func (d DocumentComponents) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *DocumentComponents) Scan(value any) error {
	data, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(data, d)
}
