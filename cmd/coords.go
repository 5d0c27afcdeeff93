package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/voxel-schematics/internal/domain"
)

// parseVec parses "x,y,z" block coordinates.
func parseVec(raw string) (domain.Vec3i, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		return domain.Vec3i{}, fmt.Errorf("invalid coordinates %q: want x,y,z", raw)
	}

	values := make([]int, 3)
	for i, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return domain.Vec3i{}, fmt.Errorf("invalid coordinates %q: %w", raw, err)
		}
		values[i] = value
	}

	return domain.Vec3i{X: values[0], Y: values[1], Z: values[2]}, nil
}
