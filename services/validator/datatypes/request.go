package datatypes

// InputTypeManifest identifies pre-extracted feature manifest input
// (JSON or YAML documents describing a system's features).
const InputTypeManifest = "manifest"

// Document is one named input document handed to an analyzer.
type Document struct {
	Name string `json:"name"`
	Data []byte `json:"data"`
}

// AnalyzerInput is the raw material one analyzer invocation consumes.
type AnalyzerInput struct {
	// InputType selects the analyzer family, e.g. InputTypeManifest.
	InputType string `json:"input_type"`

	// Documents are the input files. At least one is required; analyzers
	// reject empty input as invalid.
	Documents []Document `json:"documents"`
}

// ValidationRequest describes one end-to-end validation run.
type ValidationRequest struct {
	// Scope selects the categories under comparison.
	Scope ValidationScope `json:"scope"`

	// SourceTechnology and TargetTechnology select the analyzers for each
	// side, e.g. "flask", "react", "generic".
	SourceTechnology string `json:"source_technology"`
	TargetTechnology string `json:"target_technology"`

	Source AnalyzerInput `json:"source"`
	Target AnalyzerInput `json:"target"`
}
