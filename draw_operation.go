package gamedraw

// DrawOperation is interface to encapsulate the drawing operation
type DrawOperation interface {
	Draw(paintEngine PaintEngine) error
}

// drawAll draws the passes in order and stops at the first error.
func drawAll(paintEngine PaintEngine, passes ...DrawOperation) error {
	for _, pass := range passes {
		if err := pass.Draw(paintEngine); err != nil {
			return err
		}
	}
	return nil
}
