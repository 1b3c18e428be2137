package gamedraw

// Vector2 is a position or a size on the drawing surface
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 creates a Vector2
func Vec2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Half returns the vector with both components halved.
func (v Vector2) Half() Vector2 {
	return Vector2{X: v.X / 2, Y: v.Y / 2}
}
