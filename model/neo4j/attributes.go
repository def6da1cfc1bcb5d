// api/model/neo4j/attributes.go
package etmf_neo4j

// Attribute Keys
const (
	AttrID       = "id"
	AttrNumber   = "number"
	AttrName     = "name"
	AttrIsActive = "isActive"
	AttrTitle    = "title"
	AttrStatus   = "status"
	AttrVersion  = "version"

	// AttrUpdatedAt is stored as RFC3339 text
	AttrUpdatedAt = "updatedAt"
)
