// api/model/neo4j/relationships.go
package etmf_neo4j

// Relationship Types
const (
	// RelContains links a classification node to its direct children
	RelContains = "CONTAINS"

	// RelClassifiedAs links a document to the deepest classification node on its path
	RelClassifiedAs = "CLASSIFIED_AS"
)
