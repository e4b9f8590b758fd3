package partition

import (
	"fmt"

	"github.com/rmohr/probeselect/pkg/api"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// MismatchError reports that two implementations disagreed on a query. It
// always indicates a defect and never a property of the data.
type MismatchError struct {
	Columns        []int
	Implementation string
	Got            []int
	Want           []int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("partition computers disagree on columns %v: %s returned %v, direct returned %v", e.Columns, e.Implementation, e.Got, e.Want)
}

type namedComputer struct {
	name     string
	computer Computer
}

// Checked answers every query with Breakpoint and verifies the answer against
// Direct and Grouped.
type Checked struct {
	reference Computer
	others    []namedComputer
	queries   int
}

func NewChecked(m *api.Matrix) *Checked {
	return &Checked{
		reference: NewDirect(m),
		others: []namedComputer{
			{name: "breakpoint", computer: NewBreakpoint(m)},
			{name: "grouped", computer: NewGrouped(m)},
		},
	}
}

func (c *Checked) GroupSizes(columns []int) ([]int, error) {
	want, err := c.reference.GroupSizes(columns)
	if err != nil {
		return nil, err
	}
	sortedWant := Sorted(want)
	var result []int
	for _, other := range c.others {
		got, err := other.computer.GroupSizes(columns)
		if err != nil {
			return nil, err
		}
		if sortedGot := Sorted(got); !slices.Equal(sortedGot, sortedWant) {
			return nil, &MismatchError{
				Columns:        slices.Clone(columns),
				Implementation: other.name,
				Got:            sortedGot,
				Want:           sortedWant,
			}
		}
		if result == nil {
			result = got
		}
	}
	c.queries++
	logrus.Debugf("verified group sizes %v for columns %v", sortedWant, columns)
	return result, nil
}

// Queries returns the number of queries verified so far.
func (c *Checked) Queries() int {
	return c.queries
}
