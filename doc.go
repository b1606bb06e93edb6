// Package planner implements sampling-based 2-D motion planning over
// rectangular and circular obstacles.
//
// The core is a Rapidly-exploring Random Tree (Plan) backed by a
// KD-tree spatial index that doubles as the tree of accepted samples:
// every inserted point records the nearest existing node at insertion
// time as its planning parent, and the path back to the start is
// recovered by walking those parent links.
//
// A uniform-grid breadth-first planner (PlanGrid) is provided as an
// alternative; both planners produce the same PlanningResult shape so
// downstream consumers do not care which one ran.
package planner
