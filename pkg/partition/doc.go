/*
Package partition groups the rows of a denotation matrix by their value tuples on a
column subset and reports the group sizes.

Three implementations answer the same question. Direct recomputes every query from
scratch. Grouped and Breakpoint keep a stack of partitions indexed by the prefix
length of the previous query and only refine the columns which differ from it.
Breakpoint is the one used by default, the other two exist to cross-check it with
Checked.

The incremental implementations assume that queries arrive in the order produced by
package combo. They remain correct for any order, but lose the amortization. A
Computer belongs to a single matrix and a single search and must not be shared
between goroutines.
*/
package partition
