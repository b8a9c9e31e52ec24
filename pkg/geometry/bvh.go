package geometry

import (
	"sort"

	"github.com/amonkey/go-distribution-raytracer/pkg/core"
)

// Leaf threshold: nodes with this many or fewer shapes stay leaves and use
// linear search
const leafThreshold = 8

// bvhNode is a node in the hierarchy. Leaf nodes carry shapes, internal
// nodes carry children.
type bvhNode struct {
	boundingBox AABB
	left, right *bvhNode
	shapes      []Shape
}

// BVH is a bounding volume hierarchy over a set of shapes, supporting
// closest-hit and early-out occlusion queries
type BVH struct {
	root *bvhNode
}

// NewBVH constructs a BVH by recursive median split along the longest axis.
// The input slice is copied so concurrent builds over the same shapes are safe.
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}
	owned := make([]Shape, len(shapes))
	copy(owned, shapes)
	return &BVH{root: buildNode(owned)}
}

func buildNode(shapes []Shape) *bvhNode {
	box := shapes[0].BoundingBox()
	for _, shape := range shapes[1:] {
		box = box.Union(shape.BoundingBox())
	}

	if len(shapes) <= leafThreshold {
		return &bvhNode{boundingBox: box, shapes: shapes}
	}

	axis := box.LongestAxis()
	sort.Slice(shapes, func(i, j int) bool {
		ci := shapes[i].BoundingBox().Center()
		cj := shapes[j].BoundingBox().Center()
		switch axis {
		case 0:
			return ci.X < cj.X
		case 1:
			return ci.Y < cj.Y
		default:
			return ci.Z < cj.Z
		}
	})

	mid := len(shapes) / 2
	return &bvhNode{
		boundingBox: box,
		left:        buildNode(shapes[:mid]),
		right:       buildNode(shapes[mid:]),
	}
}

// Hit returns the closest intersection within (tMin, tMax), if any
func (b *BVH) Hit(ray core.Ray, tMin, tMax float64) (*SurfaceHit, bool) {
	if b.root == nil {
		return nil, false
	}
	return hitNode(b.root, ray, tMin, tMax)
}

func hitNode(node *bvhNode, ray core.Ray, tMin, tMax float64) (*SurfaceHit, bool) {
	if !node.boundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if node.shapes != nil {
		var closest *SurfaceHit
		closestSoFar := tMax
		for _, shape := range node.shapes {
			if hit, ok := shape.Hit(ray, tMin, closestSoFar); ok {
				closest = hit
				closestSoFar = hit.T
			}
		}
		return closest, closest != nil
	}

	var closest *SurfaceHit
	closestSoFar := tMax
	if hit, ok := hitNode(node.left, ray, tMin, closestSoFar); ok {
		closest = hit
		closestSoFar = hit.T
	}
	if hit, ok := hitNode(node.right, ray, tMin, closestSoFar); ok {
		closest = hit
	}
	return closest, closest != nil
}

// Occluded reports whether any shape blocks the segment (tMin, tMax) along
// the ray. Unlike Hit it stops at the first intersection found.
func (b *BVH) Occluded(ray core.Ray, tMin, tMax float64) bool {
	if b.root == nil {
		return false
	}
	return occludedNode(b.root, ray, tMin, tMax)
}

func occludedNode(node *bvhNode, ray core.Ray, tMin, tMax float64) bool {
	if !node.boundingBox.Hit(ray, tMin, tMax) {
		return false
	}

	if node.shapes != nil {
		for _, shape := range node.shapes {
			if _, ok := shape.Hit(ray, tMin, tMax); ok {
				return true
			}
		}
		return false
	}

	return occludedNode(node.left, ray, tMin, tMax) ||
		occludedNode(node.right, ray, tMin, tMax)
}
