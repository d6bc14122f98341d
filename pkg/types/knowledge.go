// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FactKind categorizes an entry in the knowledge base.
type FactKind string

const (
	// FactProperty is a static nuclide property (half-life, abundance,
	// decay mode) recorded from reference data.
	FactProperty FactKind = "property"

	// FactCalculation is a result computed by this engine and cached for
	// later retrieval. The knowledge base is a cache, not a database of
	// record: every calculation can be reproduced from its inputs.
	FactCalculation FactKind = "calculation"

	// FactReference is imported external reference material, e.g. an
	// IAEA NDS record.
	FactReference FactKind = "reference"
)

// Fact is one knowledge base entry with provenance.
type Fact struct {
	// ID is a stable identifier, consistent across re-ingestion of
	// unchanged content.
	ID string `json:"id" yaml:"id"`

	// Kind categorizes the fact: property, calculation, or reference.
	Kind FactKind `json:"kind" yaml:"kind"`

	// Nuclide identifies the isotope the fact describes, in "U-235" form.
	Nuclide string `json:"nuclide" yaml:"nuclide"`

	// Content is the fact body. Calculations store the JSON-encoded
	// result record; properties and references store prose or CSV.
	Content string `json:"content" yaml:"content"`

	// Source names where the fact came from ("engine", "iaea-nds", a
	// fact-file name).
	Source string `json:"source" yaml:"source"`

	// Confidence is a float between 0.0 and 1.0. Heuristic results
	// (estimated nu, Gamow half-lives) are recorded below 1.0.
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// Tags are lowercase, hyphenated topic labels ("critical-mass",
	// "binding-energy", "decay-chain").
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// FactFile is the on-disk YAML shape of a facts ingest file under
// <knowledge_dir>/facts/.
type FactFile struct {
	// Source names the originating dataset or tool run.
	Source string `json:"source" yaml:"source"`

	// Facts are the entries to ingest.
	Facts []Fact `json:"facts" yaml:"facts"`
}
