/*
Package dimacs reads and writes graphs in the DIMACS edge format used by the
clique and coloring benchmark instances:

	c comment
	p edge 4 3
	e 1 2
	e 2 3
	e 3 4

Graphs can be loaded from local files or URLs, optionally compressed.
*/
package dimacs
