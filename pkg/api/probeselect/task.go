package probeselect

type TaskFile struct {
	Tasks []Task `json:"tasks"`
}

// Task is one disambiguation problem. Rows hold the denotations of the
// representative hypotheses, one entry per probe, base probe first.
type Task struct {
	ID        string     `json:"id"`
	Rows      [][]string `json:"rows"`
	Annotated []string   `json:"annotated,omitempty"`
	Forbidden []int      `json:"forbidden,omitempty"`
}
