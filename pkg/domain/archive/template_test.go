package archive

import "testing"

func TestNewCatalog_RejectsDuplicates(t *testing.T) {
	_, err := NewCatalog([]DocumentTemplate{
		testTemplate,
		testTemplate,
	})
	if err == nil {
		t.Error("expected duplicate template ids to be rejected")
	}
}

func TestNewCatalog_RejectsIncomplete(t *testing.T) {
	incomplete := testTemplate
	incomplete.ExpectedBaseFilename = ""

	if _, err := NewCatalog([]DocumentTemplate{incomplete}); err == nil {
		t.Error("expected incomplete template to be rejected")
	}
	if _, err := NewCatalog(nil); err == nil {
		t.Error("expected empty catalog to be rejected")
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	if c.Len() != 31 {
		t.Errorf("expected 31 templates, got %d", c.Len())
	}

	pra, ok := c.ByID("PRA")
	if !ok {
		t.Fatal("expected PRA in the default catalog")
	}
	if pra.DisplayName != "Project Risk Analysis" {
		t.Errorf("unexpected display name: %q", pra.DisplayName)
	}
	if pra.ExpectedPDFName() != "ProjectRiskAnalysis.pdf" {
		t.Errorf("unexpected expected PDF name: %q", pra.ExpectedPDFName())
	}

	departments := c.Departments()
	if len(departments) != 8 {
		t.Errorf("expected 8 departments, got %d: %v", len(departments), departments)
	}

	pm := c.ByDepartment("Project Management")
	if len(pm) != 7 {
		t.Errorf("expected 7 Project Management templates, got %d", len(pm))
	}
}

func TestCatalog_ByExpectedBaseFilename(t *testing.T) {
	c := DefaultCatalog()

	tmpl, ok := c.ByExpectedBaseFilename("TestStatusReport")
	if !ok {
		t.Fatal("expected TestStatusReport lookup to succeed")
	}
	if tmpl.ID != "TSTR" {
		t.Errorf("unexpected template: %s", tmpl.ID)
	}

	if _, ok := c.ByExpectedBaseFilename("NoSuchDocument"); ok {
		t.Error("expected unknown base filename lookup to fail")
	}
}

func TestCatalog_TemplatesIsACopy(t *testing.T) {
	c := DefaultCatalog()

	templates := c.Templates()
	templates[0].ID = "MUTATED"

	again := c.Templates()
	if again[0].ID == "MUTATED" {
		t.Error("mutating the returned slice affected the catalog")
	}
}
