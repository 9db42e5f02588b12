// SPDX-License-Identifier: MIT
package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/topoblend/geom"
	"github.com/katalvlaran/topoblend/graph"
)

// stubPart is the smallest possible geom.GeometryPart for exercising the
// graph package without pulling in a real deformation primitive.
type stubPart struct {
	id  string
	pos geom.Vec3
}

func (s *stubPart) ID() string                 { return s.id }
func (s *stubPart) Type() geom.PartType        { return geom.Curve }
func (s *stubPart) Position(geom.Coord) geom.Vec3 { return s.pos }
func (s *stubPart) MoveBy(delta geom.Vec3)     { s.pos = geom.AddVec(s.pos, delta) }
func (s *stubPart) DeformTo(geom.Coord, geom.Vec3, bool)                 {}
func (s *stubPart) DeformTwoHandles(geom.Coord, geom.Vec3, geom.Coord, geom.Vec3) {}
func (s *stubPart) IsCutNode() bool            { return false }
func (s *stubPart) Samples() []geom.GeometrySample     { return nil }
func (s *stubPart) SetSamples([]geom.GeometrySample)   {}
func (s *stubPart) Clone() geom.GeometryPart   { c := *s; return &c }

type GraphSuite struct {
	suite.Suite
	g *graph.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = graph.NewGraph()
}

func (s *GraphSuite) addPart(id string) {
	require.NoError(s.T(), s.g.AddPart(&stubPart{id: id}))
}

func (s *GraphSuite) TestAddPartIdempotent() {
	s.addPart("a")
	s.addPart("a")
	s.Require().Equal(1, s.g.PartCount())
}

func (s *GraphSuite) TestAddLinkRejectsSelfLink() {
	s.addPart("a")
	_, err := s.g.AddLink("a", "a", geom.CurveCoord(0), geom.CurveCoord(0), geom.ZeroVec3)
	s.Require().ErrorIs(err, graph.ErrSelfLink)
}

func (s *GraphSuite) TestAddLinkRequiresExistingParts() {
	s.addPart("a")
	_, err := s.g.AddLink("a", "b", geom.CurveCoord(0), geom.CurveCoord(0), geom.ZeroVec3)
	s.Require().ErrorIs(err, graph.ErrPartNotFound)
}

func (s *GraphSuite) TestValenceAndEdges() {
	s.addPart("a")
	s.addPart("b")
	s.addPart("c")
	_, err := s.g.AddLink("a", "b", geom.CurveCoord(0), geom.CurveCoord(1), geom.ZeroVec3)
	s.Require().NoError(err)
	_, err = s.g.AddLink("a", "c", geom.CurveCoord(0), geom.CurveCoord(1), geom.ZeroVec3)
	s.Require().NoError(err)

	s.Require().Equal(2, s.g.Valence("a"))
	s.Require().Equal(1, s.g.Valence("b"))

	edges, err := s.g.Edges("a")
	s.Require().NoError(err)
	s.Require().Len(edges, 2)
}

func (s *GraphSuite) TestCloneIsIndependent() {
	s.addPart("a")
	s.addPart("b")
	_, err := s.g.AddLink("a", "b", geom.CurveCoord(0), geom.CurveCoord(1), geom.Vec3{X: 1})
	s.Require().NoError(err)

	clone := s.g.Clone()
	s.addPart("c")
	s.Require().Equal(2, clone.PartCount())
	s.Require().Equal(3, s.g.PartCount())

	part, err := clone.GetPart("a")
	s.Require().NoError(err)
	part.Geometry.MoveBy(geom.Vec3{X: 5})

	orig, err := s.g.GetPart("a")
	s.Require().NoError(err)
	s.Require().NotEqual(orig.Geometry.Position(geom.CurveCoord(0)), part.Geometry.Position(geom.CurveCoord(0)))
}

func (s *GraphSuite) TestIsCutNodeOnPathGraph() {
	// a - b - c: b is the only cut node.
	s.addPart("a")
	s.addPart("b")
	s.addPart("c")
	_, err := s.g.AddLink("a", "b", geom.CurveCoord(0), geom.CurveCoord(1), geom.ZeroVec3)
	s.Require().NoError(err)
	_, err = s.g.AddLink("b", "c", geom.CurveCoord(0), geom.CurveCoord(1), geom.ZeroVec3)
	s.Require().NoError(err)

	s.Require().True(s.g.IsCutNode("b"))
	s.Require().False(s.g.IsCutNode("a"))
	s.Require().False(s.g.IsCutNode("c"))
}

func (s *GraphSuite) TestIsCutNodeOnCycleIsFalseForAll() {
	s.addPart("a")
	s.addPart("b")
	s.addPart("c")
	_, err := s.g.AddLink("a", "b", geom.CurveCoord(0), geom.CurveCoord(1), geom.ZeroVec3)
	s.Require().NoError(err)
	_, err = s.g.AddLink("b", "c", geom.CurveCoord(0), geom.CurveCoord(1), geom.ZeroVec3)
	s.Require().NoError(err)
	_, err = s.g.AddLink("c", "a", geom.CurveCoord(0), geom.CurveCoord(1), geom.ZeroVec3)
	s.Require().NoError(err)

	for _, id := range []string{"a", "b", "c"} {
		s.Require().False(s.g.IsCutNode(id), "%s should not be a cut node on a 3-cycle", id)
	}
}

func (s *GraphSuite) TestLinkGetToDeltaSymmetry() {
	s.addPart("a")
	s.addPart("b")
	delta := geom.Vec3{X: 1, Y: 2, Z: 3}
	linkID, err := s.g.AddLink("a", "b", geom.CurveCoord(0), geom.CurveCoord(1), delta)
	s.Require().NoError(err)
	link, err := s.g.GetLink(linkID)
	s.Require().NoError(err)

	s.Require().Equal(delta, link.GetToDelta("b"))
	s.Require().Equal(geom.ScaleVec(-1, delta), link.GetToDelta("a"))
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
