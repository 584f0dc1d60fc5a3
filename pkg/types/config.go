package types

// ExtractConfig holds settings for the extract stage.
type ExtractConfig struct {
	// Transcript is the input document to scan (default "remaining_files.txt").
	Transcript string `json:"transcript" yaml:"transcript"`

	// OutputDir is the base directory extracted files are written under.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Languages lists the fence languages to recognize (default: swift).
	Languages []string `json:"languages,omitempty" yaml:"languages,omitempty"`

	// ManifestPath, when non-empty, is where a YAML record of the run is written.
	ManifestPath string `json:"manifest_path,omitempty" yaml:"manifest_path,omitempty"`
}

// InspectConfig holds settings for the inspect stage.
type InspectConfig struct {
	// DataFile is the assessment CSV to preview.
	DataFile string `json:"data_file" yaml:"data_file"`

	// Columns are the header names printed for previewed rows.
	Columns []string `json:"columns,omitempty" yaml:"columns,omitempty"`

	// Rows is the number of leading rows to preview (default 5).
	Rows int `json:"rows" yaml:"rows"`

	// Encoding names the source text encoding (default utf-8).
	Encoding string `json:"encoding,omitempty" yaml:"encoding,omitempty"`
}

// ToolsConfig groups both stage configurations.
type ToolsConfig struct {
	Extract ExtractConfig `json:"extract" yaml:"extract"`
	Inspect InspectConfig `json:"inspect" yaml:"inspect"`
}
