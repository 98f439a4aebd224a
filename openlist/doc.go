// Package openlist implements the min-priority queue search strategies pop
// handles from: a container/heap-backed queue ordered by (priority, seq),
// where seq breaks ties in insertion order so the queue behaves
// deterministically under equal priorities.
package openlist
