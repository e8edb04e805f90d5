// File: types.go
// Role: sentinel errors for placement, following the teacher's
// prim_kruskal error style (package-level sentinels checked by the caller
// with errors.Is).
package placement

import "errors"

// ErrGraphNil is returned if a nil L-graph pointer is passed to Place.
var ErrGraphNil = errors.New("placement: graph is nil")

// ErrNoLayers is returned if Place is called before layering has assigned
// any layers.
var ErrNoLayers = errors.New("placement: graph has no layers; run layering first")
