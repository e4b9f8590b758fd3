/*
Package combo enumerates index combinations in lexicographic order.

Consecutive combinations share the longest common prefix that lexicographic order
allows. The incremental partition computers rely on this to reuse the refinement of
the shared prefix, so the order is part of the contract and not an implementation
detail.
*/
package combo
