// api/model/neo4j/nodes.go
package etmf_neo4j

// Node Labels
const (
	// LabelZone is the root level of the TMF reference model
	LabelZone = "Zone"

	LabelSection = "Section"

	LabelArtifact = "Artifact"

	LabelSubArtifact = "SubArtifact"

	// LabelDocument is a document placed somewhere in the classification tree
	LabelDocument = "Document"
)
