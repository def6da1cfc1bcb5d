// api/dao/graph_dao.go
package dao

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	logger "github.com/dev-mohitbeniwal/etmf/api/logging"
	"github.com/dev-mohitbeniwal/etmf/api/model"
	etmf_neo4j "github.com/dev-mohitbeniwal/etmf/api/model/neo4j"
)

// GraphDAO projects the classification hierarchy and document placement into Neo4j.
// MongoDB stays the system of record; the graph serves the tree view.
type GraphDAO struct {
	Driver  neo4j.DriverWithContext
	timeout time.Duration
}

// NewGraphDAO bounds every graph transaction by timeout, on top of the caller's deadline.
func NewGraphDAO(driver neo4j.DriverWithContext, timeout time.Duration) *GraphDAO {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GraphDAO{Driver: driver, timeout: timeout}
}

func (dao *GraphDAO) EnsureUniqueConstraints(ctx context.Context) error {
	logger.Info("Ensuring unique constraints on classification graph")
	for _, label := range []string{
		etmf_neo4j.LabelZone,
		etmf_neo4j.LabelSection,
		etmf_neo4j.LabelArtifact,
		etmf_neo4j.LabelSubArtifact,
		etmf_neo4j.LabelDocument,
	} {
		query := fmt.Sprintf(`
		CREATE CONSTRAINT unique_%s_id IF NOT EXISTS
		FOR (n:%s) REQUIRE n.id IS UNIQUE
		`, label, label)
		if err := dao.write(ctx, "ensure constraint", query, nil); err != nil {
			return err
		}
	}
	logger.Info("Successfully ensured classification graph constraints")
	return nil
}

func (dao *GraphDAO) UpsertZone(ctx context.Context, zone model.Zone) error {
	return dao.upsertNode(ctx, etmf_neo4j.LabelZone, "", "", zone.ID, zone.ZoneNumber, zone.ZoneName, zone.IsActive)
}

func (dao *GraphDAO) UpsertSection(ctx context.Context, section model.Section) error {
	return dao.upsertNode(ctx, etmf_neo4j.LabelSection, etmf_neo4j.LabelZone, section.ZoneID,
		section.ID, section.SectionNumber, section.SectionName, section.IsActive)
}

func (dao *GraphDAO) UpsertArtifact(ctx context.Context, artifact model.Artifact) error {
	return dao.upsertNode(ctx, etmf_neo4j.LabelArtifact, etmf_neo4j.LabelSection, artifact.SectionID,
		artifact.ID, artifact.ArtifactNumber, artifact.ArtifactName, artifact.IsActive)
}

func (dao *GraphDAO) UpsertSubArtifact(ctx context.Context, sub model.SubArtifact) error {
	return dao.upsertNode(ctx, etmf_neo4j.LabelSubArtifact, etmf_neo4j.LabelArtifact, sub.ArtifactID,
		sub.ID, sub.SubArtifactNumber, sub.SubArtifactName, sub.IsActive)
}

func (dao *GraphDAO) upsertNode(ctx context.Context, label, parentLabel, parentID, id string, number interface{}, name string, active bool) error {
	start := time.Now()
	query := `
		MERGE (n:` + label + ` {` + etmf_neo4j.AttrID + `: $id})
		SET n += $props
	`
	if parentLabel != "" {
		query += `
		WITH n
		MATCH (p:` + parentLabel + ` {` + etmf_neo4j.AttrID + `: $parentId})
		MERGE (p)-[:` + etmf_neo4j.RelContains + `]->(n)
		`
	}
	params := map[string]interface{}{
		"id":       id,
		"parentId": parentID,
		"props": map[string]interface{}{
			etmf_neo4j.AttrNumber:    number,
			etmf_neo4j.AttrName:      name,
			etmf_neo4j.AttrIsActive:  active,
			etmf_neo4j.AttrUpdatedAt: time.Now().Format(time.RFC3339),
		},
	}
	if err := dao.write(ctx, "upsert "+label, query, params); err != nil {
		return err
	}
	logger.Debug("Classification node projected",
		zap.String("label", label),
		zap.String("id", id),
		zap.Duration("duration", time.Since(start)))
	return nil
}

// ClassifyDocument places a document under the deepest node of its classification path,
// replacing any earlier placement.
func (dao *GraphDAO) ClassifyDocument(ctx context.Context, doc model.Document) error {
	start := time.Now()
	kind, leafID := doc.Classification.Leaf()
	query := `
		MERGE (d:` + etmf_neo4j.LabelDocument + ` {` + etmf_neo4j.AttrID + `: $id})
		SET d += $props
		WITH d
		OPTIONAL MATCH (d)-[old:` + etmf_neo4j.RelClassifiedAs + `]->()
		DELETE old
	`
	if leafID != "" {
		query += `
		WITH d
		MATCH (n:` + leafLabel(kind) + ` {` + etmf_neo4j.AttrID + `: $leafId})
		MERGE (d)-[:` + etmf_neo4j.RelClassifiedAs + `]->(n)
		`
	}
	params := map[string]interface{}{
		"id":     doc.ID,
		"leafId": leafID,
		"props": map[string]interface{}{
			etmf_neo4j.AttrTitle:     doc.Title,
			etmf_neo4j.AttrStatus:    string(doc.Status),
			etmf_neo4j.AttrVersion:   doc.Version,
			etmf_neo4j.AttrUpdatedAt: doc.UpdatedAt.Format(time.RFC3339),
		},
	}
	if err := dao.write(ctx, "classify document", query, params); err != nil {
		return err
	}
	logger.Debug("Document projected",
		zap.String("documentID", doc.ID),
		zap.String("leaf", leafID),
		zap.Duration("duration", time.Since(start)))
	return nil
}

func leafLabel(kind string) string {
	switch kind {
	case "subArtifact":
		return etmf_neo4j.LabelSubArtifact
	case "artifact":
		return etmf_neo4j.LabelArtifact
	case "section":
		return etmf_neo4j.LabelSection
	}
	return etmf_neo4j.LabelZone
}

type graphRow struct {
	zone, section, artifact, sub *neo4j.Node
}

// ClassificationTree reads the whole hierarchy with document counts that include descendants.
func (dao *GraphDAO) ClassificationTree(ctx context.Context) ([]model.ZoneTree, error) {
	start := time.Now()
	logger.Info("Reading classification tree from graph")
	ctx, cancel := context.WithTimeout(ctx, dao.timeout)
	defer cancel()
	session := dao.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	type treeResult struct {
		rows   []graphRow
		counts map[string]int64
	}

	result, err := session.ExecuteRead(ctx, func(transaction neo4j.ManagedTransaction) (any, error) {
		out := treeResult{counts: map[string]int64{}}

		query := `
		MATCH (z:` + etmf_neo4j.LabelZone + `)
		OPTIONAL MATCH (z)-[:` + etmf_neo4j.RelContains + `]->(s:` + etmf_neo4j.LabelSection + `)
		OPTIONAL MATCH (s)-[:` + etmf_neo4j.RelContains + `]->(a:` + etmf_neo4j.LabelArtifact + `)
		OPTIONAL MATCH (a)-[:` + etmf_neo4j.RelContains + `]->(sa:` + etmf_neo4j.LabelSubArtifact + `)
		RETURN z, s, a, sa
		`
		res, err := transaction.Run(ctx, query, nil)
		if err != nil {
			return nil, err
		}
		for res.Next(ctx) {
			values := res.Record().Values
			out.rows = append(out.rows, graphRow{
				zone:     nodeAt(values, 0),
				section:  nodeAt(values, 1),
				artifact: nodeAt(values, 2),
				sub:      nodeAt(values, 3),
			})
		}
		if err := res.Err(); err != nil {
			return nil, err
		}

		countQuery := `
		MATCH (n)-[:` + etmf_neo4j.RelContains + `*0..3]->(m)<-[:` + etmf_neo4j.RelClassifiedAs + `]-(d:` + etmf_neo4j.LabelDocument + `)
		RETURN n.` + etmf_neo4j.AttrID + ` AS id, count(DISTINCT d) AS documents
		`
		res, err = transaction.Run(ctx, countQuery, nil)
		if err != nil {
			return nil, err
		}
		for res.Next(ctx) {
			record := res.Record()
			id, _ := record.Values[0].(string)
			n, _ := record.Values[1].(int64)
			out.counts[id] = n
		}
		return out, res.Err()
	}, neo4j.WithTxTimeout(dao.timeout))

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to read classification tree", zap.Error(err), zap.Duration("duration", duration))
		return nil, etmf_errors.Wrap(etmf_errors.ErrGraphUnavailable, err, "read classification tree")
	}

	tr := result.(treeResult)
	tree := assembleTree(tr.rows, tr.counts)
	logger.Info("Classification tree read", zap.Int("zones", len(tree)), zap.Duration("duration", duration))
	return tree, nil
}

func (dao *GraphDAO) write(ctx context.Context, op, query string, params map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, dao.timeout)
	defer cancel()
	session := dao.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(transaction neo4j.ManagedTransaction) (any, error) {
		logger.Debug("Graph write", zap.String("op", op), zap.String("query", query))
		_, err := transaction.Run(ctx, query, params)
		return nil, err
	}, neo4j.WithTxTimeout(dao.timeout))
	if err != nil {
		logger.Error("Graph write failed", zap.String("op", op), zap.Duration("timeout", dao.timeout), zap.Error(err))
		return etmf_errors.Wrap(etmf_errors.ErrGraphUnavailable, err, op)
	}
	return nil
}

func nodeAt(values []interface{}, i int) *neo4j.Node {
	if i >= len(values) || values[i] == nil {
		return nil
	}
	if n, ok := values[i].(neo4j.Node); ok {
		return &n
	}
	return nil
}

func assembleTree(rows []graphRow, counts map[string]int64) []model.ZoneTree {
	zones := map[string]*model.ZoneTree{}
	sections := map[string]*model.SectionTree{}
	artifacts := map[string]*model.ArtifactTree{}
	seenSub := map[string]bool{}
	var zoneOrder []string
	sectionOrder := map[string][]string{}
	artifactOrder := map[string][]string{}
	subs := map[string][]model.SubArtifactTree{}

	for _, row := range rows {
		zid := propString(row.zone, etmf_neo4j.AttrID)
		if _, ok := zones[zid]; !ok {
			z := model.Zone{
				ZoneNumber: int(propInt(row.zone, etmf_neo4j.AttrNumber)),
				ZoneName:   propString(row.zone, etmf_neo4j.AttrName),
				IsActive:   propBool(row.zone, etmf_neo4j.AttrIsActive),
			}
			z.ID = zid
			zones[zid] = &model.ZoneTree{Zone: z, DocumentCount: counts[zid], Sections: []model.SectionTree{}}
			zoneOrder = append(zoneOrder, zid)
		}
		if row.section == nil {
			continue
		}
		sid := propString(row.section, etmf_neo4j.AttrID)
		if _, ok := sections[sid]; !ok {
			s := model.Section{
				ZoneID:        zid,
				SectionNumber: propString(row.section, etmf_neo4j.AttrNumber),
				SectionName:   propString(row.section, etmf_neo4j.AttrName),
				IsActive:      propBool(row.section, etmf_neo4j.AttrIsActive),
			}
			s.ID = sid
			sections[sid] = &model.SectionTree{Section: s, DocumentCount: counts[sid], Artifacts: []model.ArtifactTree{}}
			sectionOrder[zid] = append(sectionOrder[zid], sid)
		}
		if row.artifact == nil {
			continue
		}
		aid := propString(row.artifact, etmf_neo4j.AttrID)
		if _, ok := artifacts[aid]; !ok {
			a := model.Artifact{
				SectionID:      sid,
				ArtifactNumber: propString(row.artifact, etmf_neo4j.AttrNumber),
				ArtifactName:   propString(row.artifact, etmf_neo4j.AttrName),
				IsActive:       propBool(row.artifact, etmf_neo4j.AttrIsActive),
			}
			a.ID = aid
			artifacts[aid] = &model.ArtifactTree{Artifact: a, DocumentCount: counts[aid], SubArtifacts: []model.SubArtifactTree{}}
			artifactOrder[sid] = append(artifactOrder[sid], aid)
		}
		if row.sub == nil {
			continue
		}
		said := propString(row.sub, etmf_neo4j.AttrID)
		if seenSub[said] {
			continue
		}
		seenSub[said] = true
		sa := model.SubArtifact{
			ArtifactID:        aid,
			SubArtifactNumber: propString(row.sub, etmf_neo4j.AttrNumber),
			SubArtifactName:   propString(row.sub, etmf_neo4j.AttrName),
			IsActive:          propBool(row.sub, etmf_neo4j.AttrIsActive),
		}
		sa.ID = said
		subs[aid] = append(subs[aid], model.SubArtifactTree{SubArtifact: sa, DocumentCount: counts[said]})
	}

	tree := make([]model.ZoneTree, 0, len(zoneOrder))
	for _, zid := range zoneOrder {
		z := zones[zid]
		for _, sid := range sectionOrder[zid] {
			s := sections[sid]
			for _, aid := range artifactOrder[sid] {
				a := artifacts[aid]
				if list := subs[aid]; list != nil {
					a.SubArtifacts = list
				}
				s.Artifacts = append(s.Artifacts, *a)
			}
			z.Sections = append(z.Sections, *s)
		}
		tree = append(tree, *z)
	}
	sort.SliceStable(tree, func(i, j int) bool { return tree[i].ZoneNumber < tree[j].ZoneNumber })
	return tree
}

func propString(n *neo4j.Node, key string) string {
	if n == nil {
		return ""
	}
	switch v := n.Props[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func propInt(n *neo4j.Node, key string) int64 {
	if n == nil {
		return 0
	}
	v, _ := n.Props[key].(int64)
	return v
}

func propBool(n *neo4j.Node, key string) bool {
	if n == nil {
		return false
	}
	v, _ := n.Props[key].(bool)
	return v
}
