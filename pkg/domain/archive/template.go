// Package archive implements the release-baseline archiving rules: the
// required-document catalog, maturity lifecycle, canonical naming, payload
// resolution and the upload session records.
package archive

import (
	"fmt"
	"sort"
)

// DocumentTemplate describes one required baseline document.
type DocumentTemplate struct {
	ID                   string `json:"id" yaml:"id"`
	DisplayName          string `json:"display_name" yaml:"display_name"`
	DepartmentCode       string `json:"department_code" yaml:"department_code"`
	DepartmentName       string `json:"department_name" yaml:"department_name"`
	ExpectedBaseFilename string `json:"expected_base_filename" yaml:"expected_base_filename"`
}

// ExpectedPDFName returns the PDF filename a zip archive is searched for.
func (t DocumentTemplate) ExpectedPDFName() string {
	return t.ExpectedBaseFilename + ".pdf"
}

// Catalog is an immutable, validated set of document templates.
type Catalog struct {
	templates []DocumentTemplate
	byID      map[string]DocumentTemplate
}

// NewCatalog validates the templates and builds lookup indices. Template IDs
// must be unique and every field must be set.
func NewCatalog(templates []DocumentTemplate) (*Catalog, error) {
	if len(templates) == 0 {
		return nil, fmt.Errorf("catalog must contain at least one template")
	}

	byID := make(map[string]DocumentTemplate, len(templates))
	for _, t := range templates {
		if t.ID == "" || t.DisplayName == "" || t.DepartmentCode == "" ||
			t.DepartmentName == "" || t.ExpectedBaseFilename == "" {
			return nil, fmt.Errorf("incomplete template definition: %+v", t)
		}
		if _, exists := byID[t.ID]; exists {
			return nil, fmt.Errorf("duplicate template id: %s", t.ID)
		}
		byID[t.ID] = t
	}

	return &Catalog{
		templates: append([]DocumentTemplate(nil), templates...),
		byID:      byID,
	}, nil
}

// Templates returns a copy of all templates in catalog order.
func (c *Catalog) Templates() []DocumentTemplate {
	return append([]DocumentTemplate(nil), c.templates...)
}

// Len returns the number of templates.
func (c *Catalog) Len() int { return len(c.templates) }

// ByID looks a template up by its identifier.
func (c *Catalog) ByID(id string) (DocumentTemplate, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// ByDepartment returns the templates of one department in catalog order.
func (c *Catalog) ByDepartment(departmentName string) []DocumentTemplate {
	var out []DocumentTemplate
	for _, t := range c.templates {
		if t.DepartmentName == departmentName {
			out = append(out, t)
		}
	}
	return out
}

// ByExpectedBaseFilename looks a template up by its expected base filename.
func (c *Catalog) ByExpectedBaseFilename(base string) (DocumentTemplate, bool) {
	for _, t := range c.templates {
		if t.ExpectedBaseFilename == base {
			return t, true
		}
	}
	return DocumentTemplate{}, false
}

// Departments returns the distinct department names, sorted.
func (c *Catalog) Departments() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range c.templates {
		if !seen[t.DepartmentName] {
			seen[t.DepartmentName] = true
			out = append(out, t.DepartmentName)
		}
	}
	sort.Strings(out)
	return out
}
