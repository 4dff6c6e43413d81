package converter

import (
	"fmt"

	"github.com/beetlebugorg/openair/pkg/yaixm"
)

// ObstacleRadius is the radius, in nautical miles, of the circle drawn
// around an obstacle.
const ObstacleRadius = "0.5"

// ExpandObstacles turns point obstacles into circular volumes from the
// surface to the obstacle elevation.
func ExpandObstacles(obstacles []yaixm.Obstacle) ([]Volume, error) {
	vols := make([]Volume, 0, len(obstacles))
	for i, o := range obstacles {
		centre, err := ParsePosition(o.Position)
		if err != nil {
			return nil, fmt.Errorf("obstacle[%d] %s: %w", i, o.Name, err)
		}
		if _, err := NormLevel(o.Elevation); err != nil {
			return nil, fmt.Errorf("obstacle[%d] %s: %w", i, o.Name, err)
		}

		vols = append(vols, Volume{
			Boundary:  []Segment{Circle{Centre: centre, Radius: ObstacleRadius}},
			Name:      o.Name,
			Lower:     Surface,
			Upper:     o.Elevation,
			NormLower: 0,
			Type:      TypeDangerOther,
			LocalType: LocalObstacle,
			Rules:     RuleSet{},
		})
	}
	return vols, nil
}
