// Package blendtest provides the smallest possible geom.GeometryPart
// implementations (a rigid curve and a bilinear-corner sheet) used across
// the engine's test suites, plus a fixture Correspondence.
//
// These are small, deterministic, package-private-feeling helpers that feed
// suite tests rather than a production geometry engine. The math here is
// intentionally minimal: no NURBS fitting, no ARAP solve — those stay
// behind the geometry-primitives collaborator.
package blendtest
