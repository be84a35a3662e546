package archive

// DefaultTemplates returns the built-in required-document catalog for a
// release baseline, grouped by department.
func DefaultTemplates() []DocumentTemplate {
	return []DocumentTemplate{
		// Project Management
		{ID: "PRA", DisplayName: "Project Risk Analysis", DepartmentCode: "PM", DepartmentName: "Project Management", ExpectedBaseFilename: "ProjectRiskAnalysis"},
		{ID: "ERN", DisplayName: "External Release Notes", DepartmentCode: "PM", DepartmentName: "Project Management", ExpectedBaseFilename: "ExternalReleaseNotes"},
		{ID: "RNK", DisplayName: "Release Notes (with KPIs)", DepartmentCode: "PM", DepartmentName: "Project Management", ExpectedBaseFilename: "ReleaseNotesKPIs"},
		{ID: "CNE", DisplayName: "Compliance Evidence (UNECE, FuSi, E/E)", DepartmentCode: "PM", DepartmentName: "Project Management", ExpectedBaseFilename: "ComplianceEvidenceUNECEFuSiEE"},
		{ID: "PHB", DisplayName: "Project Handbook", DepartmentCode: "PM", DepartmentName: "Project Management", ExpectedBaseFilename: "ProjectHandbook"},
		{ID: "FOS", DisplayName: "FOSS Documentation/Ticket", DepartmentCode: "PM", DepartmentName: "Project Management", ExpectedBaseFilename: "FOSSDocumentation"},
		{ID: "PBM", DisplayName: "Proof of BsM Relevance", DepartmentCode: "PM", DepartmentName: "Project Management", ExpectedBaseFilename: "ProofOfBsMRelevance"},

		// Requirements Management
		{ID: "SRA", DisplayName: "System Requirements Analysis", DepartmentCode: "REQ", DepartmentName: "Requirements Management", ExpectedBaseFilename: "SystemRequirementsAnalysis"},
		{ID: "SRBID", DisplayName: "Software Requirements Baseline ID", DepartmentCode: "REQ", DepartmentName: "Requirements Management", ExpectedBaseFilename: "SoftwareRequirementsBaselineID"},
		{ID: "SREXP", DisplayName: "Software Requirements Export (DOORS)", DepartmentCode: "REQ", DepartmentName: "Requirements Management", ExpectedBaseFilename: "SoftwareRequirementsExportDOORS"},
		{ID: "SRDEV", DisplayName: "Software Requirements Deviation Report", DepartmentCode: "REQ", DepartmentName: "Requirements Management", ExpectedBaseFilename: "SoftwareRequirementsDeviationReport"},

		// Architecture
		{ID: "ARCHD", DisplayName: "System/Software Architecture Document", DepartmentCode: "ARCH", DepartmentName: "Architecture", ExpectedBaseFilename: "ArchitectureDocument"},
		{ID: "ARCHBID", DisplayName: "Architecture Baseline ID", DepartmentCode: "ARCH", DepartmentName: "Architecture", ExpectedBaseFilename: "ArchitectureBaselineID"},

		// Test & Validation
		{ID: "TSTR", DisplayName: "Test Status Report", DepartmentCode: "TEST", DepartmentName: "Test & Validation", ExpectedBaseFilename: "TestStatusReport"},
		{ID: "TBER", DisplayName: "Test Report", DepartmentCode: "TEST", DepartmentName: "Test & Validation", ExpectedBaseFilename: "TestReport"},
		{ID: "SWE4S", DisplayName: "SWE.4 Specification (DOORS Export)", DepartmentCode: "TEST", DepartmentName: "Test & Validation", ExpectedBaseFilename: "SWE4Specification"},
		{ID: "SWE5S", DisplayName: "SWE.5 Specification (DOORS Export)", DepartmentCode: "TEST", DepartmentName: "Test & Validation", ExpectedBaseFilename: "SWE5Specification"},
		{ID: "SWE6S", DisplayName: "SWE.6 Specification (DOORS Export)", DepartmentCode: "TEST", DepartmentName: "Test & Validation", ExpectedBaseFilename: "SWE6Specification"},
		{ID: "TRISK", DisplayName: "Test Risk Analysis", DepartmentCode: "TEST", DepartmentName: "Test & Validation", ExpectedBaseFilename: "TestRiskAnalysis"},

		// Issue & Defect Management
		{ID: "CIL", DisplayName: "Comprehensive Issue List (CRs, Bugs, etc.)", DepartmentCode: "ISSUE", DepartmentName: "Issue & Defect Management", ExpectedBaseFilename: "ComprehensiveIssueList"},
		{ID: "KEL", DisplayName: "Known Error List (from Release Notes)", DepartmentCode: "ISSUE", DepartmentName: "Issue & Defect Management", ExpectedBaseFilename: "KnownErrorList"},
		{ID: "ODD", DisplayName: "List of Open Documentation Defects", DepartmentCode: "ISSUE", DepartmentName: "Issue & Defect Management", ExpectedBaseFilename: "OpenDocumentationDefects"},
		{ID: "OAPD", DisplayName: "List of Open Accepted Product Defects", DepartmentCode: "ISSUE", DepartmentName: "Issue & Defect Management", ExpectedBaseFilename: "OpenAcceptedProductDefects"},

		// Security
		{ID: "SECRBID", DisplayName: "Security Requirements Baseline ID", DepartmentCode: "SEC", DepartmentName: "Security", ExpectedBaseFilename: "SecurityRequirementsBaselineID"},
		{ID: "SECREXP", DisplayName: "Security Requirements Export (DOORS)", DepartmentCode: "SEC", DepartmentName: "Security", ExpectedBaseFilename: "SecurityRequirementsExportDOORS"},
		{ID: "SECCN", DisplayName: "Security Compliance Evidence", DepartmentCode: "SEC", DepartmentName: "Security", ExpectedBaseFilename: "SecurityComplianceEvidence"},

		// Configuration Management
		{ID: "LOTU", DisplayName: "List of Used Tools (HW & SW, versions)", DepartmentCode: "CM", DepartmentName: "Configuration Management", ExpectedBaseFilename: "ListOfUsedTools"},
		{ID: "KMSR", DisplayName: "Configuration Management (CM) Status Report", DepartmentCode: "CM", DepartmentName: "Configuration Management", ExpectedBaseFilename: "CMStatusReport"},

		// Quality Assurance
		{ID: "QAR", DisplayName: "Quality Assessment Report", DepartmentCode: "QA", DepartmentName: "Quality Assurance", ExpectedBaseFilename: "QualityAssessmentReport"},
		{ID: "TRSF", DisplayName: "TRS Final Report", DepartmentCode: "QA", DepartmentName: "Quality Assurance", ExpectedBaseFilename: "TRSFinalReport"},
		{ID: "KGFC", DisplayName: "KGAS & Formula Q Conformance Confirmation", DepartmentCode: "QA", DepartmentName: "Quality Assurance", ExpectedBaseFilename: "KGASFormulaQConfirmation"},
		{ID: "KGDE", DisplayName: "KGAS Data Export (Excel)", DepartmentCode: "QA", DepartmentName: "Quality Assurance", ExpectedBaseFilename: "KGASDataExport"},
	}
}

// DefaultCatalog returns the validated built-in catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultTemplates())
	if err != nil {
		// the built-in catalog is validated by tests
		panic(err)
	}
	return c
}
