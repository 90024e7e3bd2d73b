package widgets

// Walk visits w and its descendants depth-first, parents before children.
// Returning false from fn stops the walk.
func Walk(w Widget, fn func(w Widget, depth int) bool) {
	walk(w, 0, fn)
}

func walk(w Widget, depth int, fn func(Widget, int) bool) bool {
	if w == nil {
		return true
	}
	if !fn(w, depth) {
		return false
	}
	if p, ok := w.(Parent); ok {
		for _, c := range p.ChildList() {
			if !walk(c.Widget, depth+1, fn) {
				return false
			}
		}
	}
	return true
}

// FindButtons returns every button in the tree, in walk order.
func FindButtons(w Widget) []Button {
	var out []Button
	Walk(w, func(w Widget, _ int) bool {
		if b, ok := w.(Button); ok {
			out = append(out, b)
		}
		return true
	})
	return out
}
