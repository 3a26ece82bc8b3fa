/*
Package mvc finds minimum vertex covers with a branch and bound search.

At every node the search picks the active vertex of highest active degree and
branches twice: once with the vertex in the cover, and once with the vertex
left out and all of its active neighbours in the cover. A branch is pruned
when the partial cover plus a lower bound on the rest cannot beat the best
cover known so far.

The search mutates a single State in place and undoes each change in reverse
order when a branch returns, so no graph is ever copied.

Maximum cliques are found by searching the complement graph.
*/
package mvc
