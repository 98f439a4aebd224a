package planconfig

import "errors"

// ErrInvalidGenerator indicates a Generator value outside
// {"lifted", "grounded", "automatic"}.
var ErrInvalidGenerator = errors.New("planconfig: invalid generator")

// ErrInvalidAlgorithm indicates an Algorithm value outside
// {"bfs", "astar", "dijkstras", "statespace"}.
var ErrInvalidAlgorithm = errors.New("planconfig: invalid algorithm")
