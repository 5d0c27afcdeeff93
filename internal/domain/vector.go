package domain

import "fmt"

// Vec3i is an integer block coordinate in world space.
type Vec3i struct {
	X int
	Y int
	Z int
}

func (v Vec3i) Add(o Vec3i) Vec3i {
	return Vec3i{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3i) Sub(o Vec3i) Vec3i {
	return Vec3i{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Min returns the componentwise minimum of v and o.
func (v Vec3i) Min(o Vec3i) Vec3i {
	return Vec3i{X: min(v.X, o.X), Y: min(v.Y, o.Y), Z: min(v.Z, o.Z)}
}

// Max returns the componentwise maximum of v and o.
func (v Vec3i) Max(o Vec3i) Vec3i {
	return Vec3i{X: max(v.X, o.X), Y: max(v.Y, o.Y), Z: max(v.Z, o.Z)}
}

func (v Vec3i) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z)
}

// Box is a closed cuboid of blocks. Min <= Max holds on every axis.
type Box struct {
	Min Vec3i
	Max Vec3i
}

// BoundingBox returns the box spanned by two arbitrary corners.
func BoundingBox(a, b Vec3i) Box {
	return Box{Min: a.Min(b), Max: a.Max(b)}
}

// Size is the number of blocks along each axis. Every axis is at least 1.
func (b Box) Size() Vec3i {
	return b.Max.Sub(b.Min).Add(Vec3i{X: 1, Y: 1, Z: 1})
}

func (b Box) Volume() int {
	size := b.Size()
	return size.X * size.Y * size.Z
}

func (b Box) Contains(p Vec3i) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Translate moves the box by delta without changing its size.
func (b Box) Translate(delta Vec3i) Box {
	return Box{Min: b.Min.Add(delta), Max: b.Max.Add(delta)}
}

// BoxAt returns the box of the given size whose minimum corner is origin.
func BoxAt(origin Vec3i, size Vec3i) Box {
	return Box{Min: origin, Max: origin.Add(size).Sub(Vec3i{X: 1, Y: 1, Z: 1})}
}

// BlockIndex maps a position relative to a cuboid's minimum corner to the
// dense block order used by regions and volumes: x + z*width + y*width*length.
func BlockIndex(size Vec3i, rel Vec3i) int {
	return rel.X + rel.Z*size.X + rel.Y*size.X*size.Z
}

// BlockPosition is the inverse of BlockIndex.
func BlockPosition(size Vec3i, index int) Vec3i {
	layer := size.X * size.Z
	y := index / layer
	rem := index % layer
	return Vec3i{X: rem % size.X, Y: y, Z: rem / size.X}
}
