/*
Package graph holds the immutable undirected graph the solvers work on.

Vertices are the integers 0..n-1. Every vertex keeps both a sorted neighbour
list and an adjacency bit row, so neighbourhood scans and membership tests
are both cheap. Graphs are created through a Builder, which rejects self
loops, duplicate edges and out of range vertices.
*/
package graph
