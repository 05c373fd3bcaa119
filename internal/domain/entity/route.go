package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// TransportMode selects the routing provider profile.
type TransportMode string

const (
	// ModeDriving routes along the road network for cars.
	ModeDriving TransportMode = "driving"
	// ModeWalking routes along pedestrian paths.
	ModeWalking TransportMode = "walking"
	// ModeCycling routes along cycle-friendly roads.
	ModeCycling TransportMode = "cycling"
)

// String returns the string representation of the TransportMode.
func (m TransportMode) String() string {
	return string(m)
}

// IsValid checks if the TransportMode is a valid value.
func (m TransportMode) IsValid() bool {
	switch m {
	case ModeDriving, ModeWalking, ModeCycling:
		return true
	default:
		return false
	}
}

// RouteStep is a single turn-by-turn instruction.
type RouteStep struct {
	Instruction string  `json:"instruction"` // Human-readable maneuver text.
	Distance    float64 `json:"distance"`    // Step length in meters.
}

// RouteResult is the normalized output of one routing request. It is
// ephemeral: recomputed per request and fully replaced by the next one.
type RouteResult struct {
	Distance     float64        `json:"distance"`      // Total distance in meters.
	Duration     time.Duration  `json:"duration"`      // Estimated travel time.
	Geometry     orb.LineString `json:"geometry"`      // Route polyline in lon/lat order.
	Steps        []RouteStep    `json:"steps"`         // Turn-by-turn instructions.
	AverageSpeed float64        `json:"average_speed"` // Meters per second over the whole route.
}
