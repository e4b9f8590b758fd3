package probeselect

type Strategy string

const (
	StrategyEntropy Strategy = "entropy"
	StrategyPurity  Strategy = "purity"
	StrategyCached  Strategy = "cached"
)

type ComputerKind string

const (
	ComputerDirect     ComputerKind = "direct"
	ComputerGrouped    ComputerKind = "grouped"
	ComputerBreakpoint ComputerKind = "breakpoint"
)

type Config struct {
	Strategy     Strategy     `json:"strategy"`
	Size         int          `json:"size"`
	AllowSmaller bool         `json:"allowSmaller,omitempty"`
	Computer     ComputerKind `json:"computer,omitempty"`
	Diagnostic   bool         `json:"diagnostic,omitempty"`
	SkipPrecheck bool         `json:"skipPrecheck,omitempty"`
	CacheFile    string       `json:"cacheFile,omitempty"`
	Forbidden    []int        `json:"forbidden,omitempty"`
}
