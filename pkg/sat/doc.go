/*
Package sat decides with a SAT solver whether any set of allowed probe columns
isolates exactly one row agreeing with the annotated row.

Growing a column set inside the agreement set of the isolated row keeps it
isolated, so an unsatisfiable formula proves that the purity search can stop
before enumerating a single candidate.
*/
package sat
