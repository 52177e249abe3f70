package system

import (
	"go-wave-survivors/internal/component"
	"go-wave-survivors/internal/interfaces"
	"go-wave-survivors/internal/utils"
)

// FindSpawnPosition samples up to attempts points in the ring
// [minRadius, maxRadius) around anchor and returns the first one the
// camera cannot see. If every sample is visible it falls back to a point
// exactly maxRadius away in a random direction. A nil view sees nothing.
func FindSpawnPosition(
	anchor component.Position,
	minRadius, maxRadius float64,
	attempts int,
	view interfaces.VisibilityChecker,
	rng *utils.PRNGService,
) component.Position {
	for i := 0; i < attempts; i++ {
		distance := rng.Range(minRadius, maxRadius)
		candidate := anchor.Add(component.FromAngle(rng.Angle(), distance))
		if view == nil || !view.IsVisible(candidate) {
			return candidate
		}
	}
	return anchor.Add(component.FromAngle(rng.Angle(), maxRadius))
}
