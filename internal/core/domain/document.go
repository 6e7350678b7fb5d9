package domain

// SourceSelf tags documents describing the assistant's own repository.
const SourceSelf = "self"

// SourceGitHubProject tags documents derived from a public GitHub repository.
const SourceGitHubProject = "github_project"

// SourceDriveDocument tags documents downloaded from the personal Drive folder.
const SourceDriveDocument = "gdrive_document"

// MetadataSource is the metadata key every document must carry.
const MetadataSource = "source"

// Document is an immutable unit of ingested content.
// It is created once by a loader and consumed by the knowledge base
// builder; after the build only its derived chunks are retained.
type Document struct {
	// Content is the full text body.
	Content string

	// Metadata maps string keys to string values. Every document carries
	// at least a "source" tag identifying its provenance.
	Metadata map[string]string
}

// Source returns the provenance tag, or "" if the document has none.
func (d Document) Source() string {
	return d.Metadata[MetadataSource]
}

// Chunk is a contiguous substring of a document's body, bounded by the
// chunker's maximum length and overlapping its predecessor to preserve
// cross-boundary context. It shares the parent document's metadata map
// by reference; chunks must treat it as read-only.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// Content is the text of this chunk.
	Content string

	// Position is the ordinal position within the source document.
	Position int

	// Metadata is the parent document's metadata.
	Metadata map[string]string
}

// Source returns the provenance tag inherited from the parent document.
func (c Chunk) Source() string {
	return c.Metadata[MetadataSource]
}
