// api/model/classification.go
package model

import "time"

// Zone is the root level of the TMF reference model.
type Zone struct {
	Base       `bson:",inline"`
	ZoneNumber int    `json:"zoneNumber" bson:"zoneNumber" validate:"required,min=1"`
	ZoneName   string `json:"zoneName" bson:"zoneName" validate:"required,max=200"`
	IsActive   bool   `json:"isActive" bson:"isActive"`
}

type Section struct {
	Base          `bson:",inline"`
	ZoneID        string `json:"zoneId" bson:"zoneId"`
	SectionNumber string `json:"sectionNumber" bson:"sectionNumber" validate:"required,max=20"`
	SectionName   string `json:"sectionName" bson:"sectionName" validate:"required,max=200"`
	IsRequired    bool   `json:"isRequired" bson:"isRequired"`
	IsActive      bool   `json:"isActive" bson:"isActive"`
}

type Artifact struct {
	Base           `bson:",inline"`
	SectionID      string `json:"sectionId" bson:"sectionId"`
	ArtifactNumber string `json:"artifactNumber" bson:"artifactNumber" validate:"required,max=20"`
	ArtifactName   string `json:"artifactName" bson:"artifactName" validate:"required,max=200"`
	ICHCode        string `json:"ichCode,omitempty" bson:"ichCode,omitempty"`
	IsRequired     bool   `json:"isRequired" bson:"isRequired"`
	IsActive       bool   `json:"isActive" bson:"isActive"`
}

type SubArtifact struct {
	Base              `bson:",inline"`
	ArtifactID        string `json:"artifactId" bson:"artifactId"`
	SubArtifactNumber string `json:"subArtifactNumber" bson:"subArtifactNumber" validate:"required,max=20"`
	SubArtifactName   string `json:"subArtifactName" bson:"subArtifactName" validate:"required,max=200"`
	IsRequired        bool   `json:"isRequired" bson:"isRequired"`
	IsActive          bool   `json:"isActive" bson:"isActive"`
}

func (z *Zone) Deactivate(now time.Time)        { z.IsActive = false; z.Touch(now) }
func (s *Section) Deactivate(now time.Time)     { s.IsActive = false; s.Touch(now) }
func (a *Artifact) Deactivate(now time.Time)    { a.IsActive = false; a.Touch(now) }
func (s *SubArtifact) Deactivate(now time.Time) { s.IsActive = false; s.Touch(now) }

// ClassificationPath places a document in the hierarchy. Every level is optional.
type ClassificationPath struct {
	ZoneID        string `json:"zoneId,omitempty" bson:"zoneId,omitempty"`
	SectionID     string `json:"sectionId,omitempty" bson:"sectionId,omitempty"`
	ArtifactID    string `json:"artifactId,omitempty" bson:"artifactId,omitempty"`
	SubArtifactID string `json:"subArtifactId,omitempty" bson:"subArtifactId,omitempty"`
}

// Leaf returns the deepest level set on the path and its kind.
func (p ClassificationPath) Leaf() (kind, id string) {
	switch {
	case p.SubArtifactID != "":
		return "subArtifact", p.SubArtifactID
	case p.ArtifactID != "":
		return "artifact", p.ArtifactID
	case p.SectionID != "":
		return "section", p.SectionID
	case p.ZoneID != "":
		return "zone", p.ZoneID
	}
	return "", ""
}

// ZoneTree is a zone with its full subtree, as returned by the tree view.
type ZoneTree struct {
	Zone
	DocumentCount int64         `json:"documentCount"`
	Sections      []SectionTree `json:"sections"`
}

type SectionTree struct {
	Section
	DocumentCount int64          `json:"documentCount"`
	Artifacts     []ArtifactTree `json:"artifacts"`
}

type ArtifactTree struct {
	Artifact
	DocumentCount int64             `json:"documentCount"`
	SubArtifacts  []SubArtifactTree `json:"subArtifacts"`
}

type SubArtifactTree struct {
	SubArtifact
	DocumentCount int64 `json:"documentCount"`
}
