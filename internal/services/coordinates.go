package services

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/neuroatlas/neuroquery/pkg/errors"
)

// Coordinate is a stereotactic point in integer millimeters
type Coordinate struct {
	X int
	Y int
	Z int
}

// String reconstructs the x_y_z path form
func (c Coordinate) String() string {
	return fmt.Sprintf("%d_%d_%d", c.X, c.Y, c.Z)
}

// ParseCoordinate parses an x_y_z path segment into a Coordinate. Wrong
// arity or a non-integer component is a client error; no database access
// happens for malformed input.
func ParseCoordinate(segment string) (Coordinate, *apperrors.AppError) {
	parts := strings.Split(segment, "_")
	if len(parts) != 3 {
		return Coordinate{}, apperrors.BadRequest("Invalid coordinate format. Expected x_y_z.")
	}

	var vals [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Coordinate{}, apperrors.BadRequest("Invalid coordinate format. Expected x_y_z.")
		}
		vals[i] = n
	}

	return Coordinate{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}
