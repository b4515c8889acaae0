package glide

import "reflect"

// Target is the host's view of a scene-graph node: the capabilities attached
// to it and the nodes below it. Targets are deduplicated by identity, so
// pointer types are the natural choice; a non-comparable value is never
// treated as a duplicate.
//
// A host whose node type is a pointer should implement Nilable so that a
// typed nil passed to an Animator is skipped like an untyped one.
type Target interface {
	// Components returns the attached capabilities in attachment order.
	Components() []Component
	// Descendants returns every node below this one in the host's own
	// traversal order, excluding the node itself.
	Descendants() []Target
}

// Transform is a node's local-position slot.
type Transform interface {
	LocalPosition() Vec2
	SetLocalPosition(Vec2)
}

// Nilable is implemented by host node types that can report a nil receiver.
// IsNil must not dereference its receiver.
type Nilable interface {
	IsNil() bool
}

// Resolve returns the Paintable for the first paintable component on target,
// or nil if it has none. Components are visited in attachment order; for each
// one the kinds are tested as Graphic, Sprite, Line, Mesh.
func Resolve(target Target) Paintable {
	if isNilTarget(target) {
		return nil
	}
	for _, c := range target.Components() {
		if p := paintableFor(c); p != nil {
			return p
		}
	}
	return nil
}

func paintableFor(c Component) Paintable {
	switch v := c.(type) {
	case *Graphic:
		if v != nil {
			return graphicPaint{v}
		}
	case *Sprite:
		if v != nil {
			return spritePaint{v}
		}
	case *Line:
		if v != nil {
			return linePaint{v}
		}
	case *Mesh:
		if v != nil {
			return meshPaint{v}
		}
	}
	return nil
}

// collectTargets returns root followed, when includeDescendants is set, by
// every descendant in host order. Each node appears once.
func collectTargets(root Target, includeDescendants bool) []Target {
	if isNilTarget(root) {
		return nil
	}
	if !includeDescendants {
		return []Target{root}
	}
	desc := root.Descendants()
	out := make([]Target, 0, len(desc)+1)
	seen := make(targetSet, len(desc)+1)
	seen.add(root)
	out = append(out, root)
	for _, d := range desc {
		if isNilTarget(d) || !seen.add(d) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// targetSet records targets by identity.
type targetSet map[Target]struct{}

// add reports whether t was not yet in the set. Non-comparable targets cannot
// be keyed and are always reported as new.
func (s targetSet) add(t Target) bool {
	if !reflect.ValueOf(t).Comparable() {
		return true
	}
	if _, ok := s[t]; ok {
		return false
	}
	s[t] = struct{}{}
	return true
}

func isNilTarget(t Target) bool {
	return isNilHost(t)
}

func isNilTransform(t Transform) bool {
	return isNilHost(t)
}

// isNilHost catches a nil interface and any host value whose IsNil reports
// true, *Node included.
func isNilHost(v any) bool {
	if v == nil {
		return true
	}
	if n, ok := v.(Nilable); ok {
		return n.IsNil()
	}
	return false
}
