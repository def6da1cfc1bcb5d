// api/dao/document_queries.go
package dao

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/dev-mohitbeniwal/etmf/api/model"
)

// DocumentQuery translates a listing filter into a store filter.
func DocumentQuery(f model.DocumentFilter) bson.M {
	q := bson.M{}
	if f.ZoneID != "" {
		q["classification.zoneId"] = f.ZoneID
	}
	if f.SectionID != "" {
		q["classification.sectionId"] = f.SectionID
	}
	if f.ArtifactID != "" {
		q["classification.artifactId"] = f.ArtifactID
	}
	if f.SubArtifactID != "" {
		q["classification.subArtifactId"] = f.SubArtifactID
	}
	if f.Status != "" {
		q["status"] = string(f.Status)
	}
	if f.Study != "" {
		q["study"] = f.Study
	}
	if f.Site != "" {
		q["site"] = f.Site
	}
	if f.DocumentType != "" {
		q["documentType"] = string(f.DocumentType)
	}
	if f.Tag != "" {
		q["tags"] = f.Tag
	}
	return q
}

// ExpiredDocumentsQuery matches documents whose expiration date has passed and that are not archived.
func ExpiredDocumentsQuery(now time.Time) bson.M {
	return bson.M{
		"status":         bson.M{"$ne": string(model.DocumentStatusArchived)},
		"expirationDate": bson.M{"$exists": true, "$lte": now},
	}
}

// NotExpiredQuery matches documents without an expiration date or whose date is still ahead.
func NotExpiredQuery(now time.Time) bson.M {
	return bson.M{"expirationDate": bson.M{"$not": bson.M{"$lte": now}}}
}

// ClassifiedUnder counts documents below one node of the hierarchy.
func ClassifiedUnder(kind, id string) bson.M {
	return bson.M{"classification." + kind + "Id": id}
}
