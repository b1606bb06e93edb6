package planner

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// PointEntry is one node of the exported insertion-order sequence.
// ParentIndex references an earlier entry in the same sequence, or -1
// for the root.
type PointEntry struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	ParentIndex int     `json:"parentIndex"`
}

// ResultPayload is the transport form of a planning result consumed
// by the front end.
type ResultPayload struct {
	Goal            Point        `json:"goal"`
	GoalRadius      float64      `json:"goalRadius"`
	Obstacles       []Obstacle   `json:"obstacles"`
	Points          []PointEntry `json:"points"`
	TargetNodeIndex int          `json:"targetNodeIndex"`
}

// Payload converts the result for external consumption.
func (r *PlanningResult) Payload() ResultPayload {
	return ResultPayload{
		Goal:            r.Goal,
		GoalRadius:      r.GoalRadius,
		Obstacles:       r.Obstacles,
		Points:          r.Points,
		TargetNodeIndex: r.TargetNodeIndex,
	}
}

// SaveResult serializes a planning result to a JSON file.
func SaveResult(r *PlanningResult, filename string) error {
	data, err := json.MarshalIndent(r.Payload(), "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal result")
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return errors.Wrapf(err, "write %s", filename)
	}
	return nil
}

// LoadResult reads a planning result previously written by
// SaveResult.
func LoadResult(filename string) (*PlanningResult, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", filename)
	}

	var payload ResultPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s", filename)
	}

	return &PlanningResult{
		Goal:            payload.Goal,
		GoalRadius:      payload.GoalRadius,
		Obstacles:       payload.Obstacles,
		Points:          payload.Points,
		TargetNodeIndex: payload.TargetNodeIndex,
	}, nil
}

// LoadObstacles reads an obstacle array from a JSON file and
// validates every entry.
func LoadObstacles(filename string) ([]Obstacle, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", filename)
	}

	var obstacles []Obstacle
	if err := json.Unmarshal(data, &obstacles); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s", filename)
	}

	for i, obs := range obstacles {
		if err := obs.Validate(); err != nil {
			return nil, errors.Wrapf(err, "obstacle %d in %s", i, filename)
		}
	}
	return obstacles, nil
}
