package arena

import (
	"math"

	"github.com/vovakirdan/nexus-breakout/internal/breakout"
	"github.com/vovakirdan/nexus-breakout/internal/core"
)

// CollisionSide indicates which side of an object was hit.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionBottom
	CollisionLeft
	CollisionRight
)

// integrate advances a position by vel over dt seconds.
func integrate(pos, vel core.Vec2, dt float64) core.Vec2 {
	return pos.Add(vel.Scale(dt))
}

// bounceWalls keeps a ball inside the left, right and top walls. The
// bottom is open. Returns the wall that was hit.
func bounceWalls(b *breakout.Ball, radius, fieldW float64) CollisionSide {
	switch {
	case b.Pos.X < radius:
		b.Pos.X = radius
		b.Vel.X = math.Abs(b.Vel.X)
		return CollisionLeft
	case b.Pos.X > fieldW-radius:
		b.Pos.X = fieldW - radius
		b.Vel.X = -math.Abs(b.Vel.X)
		return CollisionRight
	case b.Pos.Y < radius:
		b.Pos.Y = radius
		b.Vel.Y = math.Abs(b.Vel.Y)
		return CollisionTop
	}
	return CollisionNone
}

// deflect pushes a ball out of a box it overlaps along the axis of least
// penetration and turns its velocity away from the box. Returns the side
// of the box that was hit.
func deflect(b *breakout.Ball, ballBox, target core.Box) CollisionSide {
	dx, dy, ok := ballBox.Overlap(target)
	if !ok {
		return CollisionNone
	}
	if dx < dy {
		if b.Pos.X < target.Center.X {
			b.Pos.X -= dx
			b.Vel.X = -math.Abs(b.Vel.X)
			return CollisionLeft
		}
		b.Pos.X += dx
		b.Vel.X = math.Abs(b.Vel.X)
		return CollisionRight
	}
	if b.Pos.Y < target.Center.Y {
		b.Pos.Y -= dy
		b.Vel.Y = -math.Abs(b.Vel.Y)
		return CollisionTop
	}
	b.Pos.Y += dy
	b.Vel.Y = math.Abs(b.Vel.Y)
	return CollisionBottom
}
