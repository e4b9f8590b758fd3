/*
Package chooser selects the probe subset for a disambiguation task.

Entropy searches the subset whose induced partition of the hypotheses is the most
diverse. Purity searches the smallest subset on which exactly one hypothesis agrees
with the annotated answer. Cached looks up answers computed ahead of time.

A nil Subset together with a nil error means that nothing was selected.
*/
package chooser
