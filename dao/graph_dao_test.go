// api/dao/graph_dao_test.go
package dao

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	"github.com/dev-mohitbeniwal/etmf/api/model"
	etmf_neo4j "github.com/dev-mohitbeniwal/etmf/api/model/neo4j"
)

func node(label, id string, props map[string]any) *neo4j.Node {
	if props == nil {
		props = map[string]any{}
	}
	props[etmf_neo4j.AttrID] = id
	props[etmf_neo4j.AttrIsActive] = true
	return &neo4j.Node{Labels: []string{label}, Props: props}
}

func TestAssembleTree(t *testing.T) {
	z1 := node(etmf_neo4j.LabelZone, "z1", map[string]any{etmf_neo4j.AttrNumber: int64(1), etmf_neo4j.AttrName: "Trial Management"})
	z2 := node(etmf_neo4j.LabelZone, "z2", map[string]any{etmf_neo4j.AttrNumber: int64(2), etmf_neo4j.AttrName: "Central Trial Documents"})
	s1 := node(etmf_neo4j.LabelSection, "s1", map[string]any{etmf_neo4j.AttrNumber: "01.01", etmf_neo4j.AttrName: "Trial Oversight"})
	a1 := node(etmf_neo4j.LabelArtifact, "a1", map[string]any{etmf_neo4j.AttrNumber: "01.01.01", etmf_neo4j.AttrName: "Trial Master File Plan"})
	a2 := node(etmf_neo4j.LabelArtifact, "a2", map[string]any{etmf_neo4j.AttrNumber: "01.01.02", etmf_neo4j.AttrName: "List of SOPs"})
	sa := node(etmf_neo4j.LabelSubArtifact, "sa1", map[string]any{etmf_neo4j.AttrNumber: "01.01.01.01", etmf_neo4j.AttrName: "Plan Appendix"})

	rows := []graphRow{
		{zone: z2},
		{zone: z1, section: s1, artifact: a1, sub: sa},
		{zone: z1, section: s1, artifact: a2},
		{zone: z1, section: s1, artifact: a1, sub: sa},
	}
	counts := map[string]int64{"z1": 3, "s1": 3, "a1": 2, "sa1": 1}

	tree := assembleTree(rows, counts)

	require.Len(t, tree, 2)
	assert.Equal(t, 1, tree[0].ZoneNumber)
	assert.Equal(t, "z1", tree[0].ID)
	assert.Equal(t, int64(3), tree[0].DocumentCount)
	assert.Equal(t, int64(0), tree[1].DocumentCount)
	assert.Empty(t, tree[1].Sections)

	require.Len(t, tree[0].Sections, 1)
	section := tree[0].Sections[0]
	assert.Equal(t, "01.01", section.SectionNumber)
	assert.Equal(t, "z1", section.ZoneID)
	require.Len(t, section.Artifacts, 2)
	assert.Equal(t, "a1", section.Artifacts[0].ID)
	assert.Equal(t, int64(2), section.Artifacts[0].DocumentCount)
	require.Len(t, section.Artifacts[0].SubArtifacts, 1)
	assert.Equal(t, "sa1", section.Artifacts[0].SubArtifacts[0].ID)
	assert.Empty(t, section.Artifacts[1].SubArtifacts)
}

func TestLeafLabel(t *testing.T) {
	assert.Equal(t, etmf_neo4j.LabelSubArtifact, leafLabel("subArtifact"))
	assert.Equal(t, etmf_neo4j.LabelArtifact, leafLabel("artifact"))
	assert.Equal(t, etmf_neo4j.LabelSection, leafLabel("section"))
	assert.Equal(t, etmf_neo4j.LabelZone, leafLabel("zone"))
}

// stalledServer accepts bolt connections and never answers the handshake.
func stalledServer(t *testing.T) string {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	var mu sync.Mutex
	var conns []net.Conn
	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, conn)
			mu.Unlock()
		}
	}()
	t.Cleanup(func() {
		_ = listener.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, c := range conns {
			_ = c.Close()
		}
	})
	return "bolt://" + listener.Addr().String()
}

func TestGraphDAOBoundsStalledServer(t *testing.T) {
	driver, err := neo4j.NewDriverWithContext(stalledServer(t), neo4j.NoAuth())
	require.NoError(t, err)
	t.Cleanup(func() { _ = driver.Close(context.Background()) })

	graph := NewGraphDAO(driver, 200*time.Millisecond)

	t.Run("Write", func(t *testing.T) {
		start := time.Now()
		err := graph.UpsertZone(context.Background(), model.Zone{Base: model.Base{ID: "z1"}, ZoneNumber: 1, ZoneName: "Trial Management"})
		require.Error(t, err)
		assert.Less(t, time.Since(start), 5*time.Second)
		assert.True(t, errors.Is(err, etmf_errors.ErrGraphUnavailable) || errors.Is(err, etmf_errors.ErrTimeout), err.Error())
	})

	t.Run("Read", func(t *testing.T) {
		start := time.Now()
		_, err := graph.ClassificationTree(context.Background())
		require.Error(t, err)
		assert.Less(t, time.Since(start), 5*time.Second)
	})

	t.Run("CallerDeadline", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		start := time.Now()
		err := NewGraphDAO(driver, time.Minute).UpsertZone(ctx, model.Zone{Base: model.Base{ID: "z2"}, ZoneNumber: 2})
		require.Error(t, err)
		assert.Less(t, time.Since(start), 5*time.Second)
	})
}
