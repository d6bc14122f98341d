package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network
// requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "nuclide-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// EngineConfig holds settings for the calculation engine.
type EngineConfig struct {
	// CrossSectionPath is an optional path to a YAML cross-section
	// dataset. Empty uses the embedded default table.
	CrossSectionPath string `json:"cross_section_path,omitempty" yaml:"cross_section_path,omitempty"`
}

// DecayConfig holds tolerances for the decay-chain integrator.
type DecayConfig struct {
	// RelTol is the relative error tolerance per step (default 1e-8).
	RelTol float64 `json:"rel_tol" yaml:"rel_tol"`

	// AbsTol is the absolute error floor (default 1e-10).
	AbsTol float64 `json:"abs_tol" yaml:"abs_tol"`

	// MaxSteps bounds the number of integrator steps (default 1000000).
	MaxSteps int `json:"max_steps" yaml:"max_steps"`
}

// KnowledgeBaseConfig holds settings for the knowledge base.
type KnowledgeBaseConfig struct {
	// KnowledgeDir is the base directory for knowledge (contains facts/, index/).
	KnowledgeDir string `json:"knowledge_dir" yaml:"knowledge_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// FetchConfig holds settings for the IAEA nuclear-data fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxRetries is the number of retry attempts on rate-limited requests.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// PipelineConfig groups all component configurations.
type PipelineConfig struct {
	Engine        EngineConfig        `json:"engine" yaml:"engine"`
	Decay         DecayConfig         `json:"decay" yaml:"decay"`
	KnowledgeBase KnowledgeBaseConfig `json:"knowledge_base" yaml:"knowledge_base"`
	Fetch         FetchConfig         `json:"fetch" yaml:"fetch"`
}
