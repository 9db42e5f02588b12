// Package geom defines the geometric vocabulary the blend engine is built
// on: a parametric coordinate, the GeometryPart contract consumed from
// collaborators, and the Vec3 arithmetic used throughout task execution and
// relinking.
//
// Vec3 is a thin wrapper over gonum.org/v1/gonum/spatial/r3.Vec. The engine
// never implements curve/sheet evaluation, NURBS fitting, or ARAP solving —
// those live behind GeometryPart in a collaborator package; geom only
// supplies the arithmetic the engine needs to move and compare positions.
package geom
