package domain

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundingBoxIsOrderedAndSymmetric(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	randomPoint := func() Vec3i {
		return Vec3i{X: rng.IntN(2001) - 1000, Y: rng.IntN(2001) - 1000, Z: rng.IntN(2001) - 1000}
	}

	for i := 0; i < 500; i++ {
		a, b := randomPoint(), randomPoint()
		box := BoundingBox(a, b)

		assert.LessOrEqual(t, box.Min.X, box.Max.X)
		assert.LessOrEqual(t, box.Min.Y, box.Max.Y)
		assert.LessOrEqual(t, box.Min.Z, box.Max.Z)
		assert.Equal(t, box, BoundingBox(b, a))
		assert.True(t, box.Contains(a))
		assert.True(t, box.Contains(b))
	}
}

func TestBoundingBoxCases(t *testing.T) {
	tests := []struct {
		name     string
		a        Vec3i
		b        Vec3i
		wantMin  Vec3i
		wantMax  Vec3i
		wantSize Vec3i
	}{
		{
			name:     "same point is a single block",
			a:        Vec3i{X: 4, Y: 5, Z: 6},
			b:        Vec3i{X: 4, Y: 5, Z: 6},
			wantMin:  Vec3i{X: 4, Y: 5, Z: 6},
			wantMax:  Vec3i{X: 4, Y: 5, Z: 6},
			wantSize: Vec3i{X: 1, Y: 1, Z: 1},
		},
		{
			name:     "mixed corners",
			a:        Vec3i{X: 2, Y: 0, Z: -3},
			b:        Vec3i{X: -1, Y: 4, Z: 1},
			wantMin:  Vec3i{X: -1, Y: 0, Z: -3},
			wantMax:  Vec3i{X: 2, Y: 4, Z: 1},
			wantSize: Vec3i{X: 4, Y: 5, Z: 5},
		},
		{
			name:     "flat slab keeps one block of thickness",
			a:        Vec3i{X: 0, Y: 64, Z: 0},
			b:        Vec3i{X: 9, Y: 64, Z: 9},
			wantMin:  Vec3i{X: 0, Y: 64, Z: 0},
			wantMax:  Vec3i{X: 9, Y: 64, Z: 9},
			wantSize: Vec3i{X: 10, Y: 1, Z: 10},
		},
		{
			name:     "negative coordinates",
			a:        Vec3i{X: -10, Y: -20, Z: -30},
			b:        Vec3i{X: -12, Y: -18, Z: -31},
			wantMin:  Vec3i{X: -12, Y: -20, Z: -31},
			wantMax:  Vec3i{X: -10, Y: -18, Z: -30},
			wantSize: Vec3i{X: 3, Y: 3, Z: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := BoundingBox(tt.a, tt.b)
			assert.Equal(t, tt.wantMin, box.Min)
			assert.Equal(t, tt.wantMax, box.Max)
			assert.Equal(t, tt.wantSize, box.Size())
		})
	}
}

func TestBlockIndexRoundTrip(t *testing.T) {
	size := Vec3i{X: 3, Y: 4, Z: 5}
	seen := make(map[int]struct{}, 60)

	for y := 0; y < size.Y; y++ {
		for z := 0; z < size.Z; z++ {
			for x := 0; x < size.X; x++ {
				rel := Vec3i{X: x, Y: y, Z: z}
				index := BlockIndex(size, rel)
				require.GreaterOrEqual(t, index, 0)
				require.Less(t, index, 60)
				assert.Equal(t, rel, BlockPosition(size, index))
				seen[index] = struct{}{}
			}
		}
	}

	assert.Len(t, seen, 60)
}

func TestBoxAtMatchesSize(t *testing.T) {
	box := BoxAt(Vec3i{X: 10, Y: 0, Z: -2}, Vec3i{X: 3, Y: 1, Z: 2})

	assert.Equal(t, Vec3i{X: 12, Y: 0, Z: -1}, box.Max)
	assert.Equal(t, 6, box.Volume())
}
