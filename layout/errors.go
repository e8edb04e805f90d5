// File: errors.go
// Role: sentinel errors for layout, following the teacher's builder
// package convention (package-level vars, checked via errors.Is).
package layout

import "errors"

// ErrNilGraph is returned if Layout is called with a nil graph.
var ErrNilGraph = errors.New("layout: graph is nil")
