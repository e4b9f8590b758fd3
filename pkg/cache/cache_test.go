package cache

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/rmohr/probeselect/pkg/api"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[string][]int
		scores  map[string]float64
		wantErr bool
	}{
		{
			name:   "should parse records",
			input:  "a\t[0, 3, 5]\t0.75\nb\t[0]\t-1\n",
			want:   map[string][]int{"a": {0, 3, 5}, "b": {0}},
			scores: map[string]float64{"a": 0.75, "b": -1},
		},
		{
			name:   "should skip records without a subset",
			input:  "a\t[]\t-inf\nb\t[0,2]\t0.5\nc\t[0, 1]\t-Inf\n",
			want:   map[string][]int{"b": {0, 2}},
			scores: map[string]float64{"b": 0.5},
		},
		{
			name:   "should skip blank lines and carriage returns",
			input:  "\na\t[0, 1]\t1\r\n\n",
			want:   map[string][]int{"a": {0, 1}},
			scores: map[string]float64{"a": 1},
		},
		{
			name:   "should let later records win",
			input:  "a\t[0, 1]\t1\na\t[0, 2]\t0.5\n",
			want:   map[string][]int{"a": {0, 2}},
			scores: map[string]float64{"a": 0.5},
		},
		{name: "should reject missing fields", input: "a\t[0, 1]\n", wantErr: true},
		{name: "should reject extra fields", input: "a\t[0, 1]\t1\tx\n", wantErr: true},
		{name: "should reject invalid scores", input: "a\t[0, 1]\tgood\n", wantErr: true},
		{name: "should reject unbracketed columns", input: "a\t0, 1\t1\n", wantErr: true},
		{name: "should reject non numeric columns", input: "a\t[0, x]\t1\n", wantErr: true},
		{name: "should reject negative columns", input: "a\t[0, -1]\t1\n", wantErr: true},
		{name: "should reject subsets without the base column", input: "a\t[1, 2]\t1\n", wantErr: true},
		{name: "should reject empty subsets with a score", input: "a\t[]\t1\n", wantErr: true},
		{name: "should reject empty ids", input: "\t[0]\t1\n", wantErr: true},
		{name: "should fail on the first malformed record", input: "a\t[0]\t1\nb\t[0\t1\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			subsets, err := Parse(strings.NewReader(tt.input))
			if tt.wantErr {
				g.Expect(errors.Is(err, ErrMalformedRecord)).To(BeTrue())
				g.Expect(subsets).To(BeNil())
				return
			}
			g.Expect(err).ToNot(HaveOccurred())
			g.Expect(subsets).To(HaveLen(len(tt.want)))
			for id, columns := range tt.want {
				g.Expect(subsets).To(HaveKey(id))
				g.Expect(subsets[id].ID()).To(Equal(id))
				g.Expect(subsets[id].Columns()).To(Equal(columns))
				g.Expect(subsets[id].Score()).To(Equal(tt.scores[id]))
			}
		})
	}
}

func TestParseReportsLine(t *testing.T) {
	g := NewGomegaWithT(t)
	_, err := Parse(strings.NewReader("a\t[0]\t1\n\nb\t[0]\n"))
	g.Expect(err).To(MatchError(ContainSubstring("line 3")))
}

func TestWriteAndLoad(t *testing.T) {
	g := NewGomegaWithT(t)
	path := filepath.Join(t.TempDir(), "nested", "subsets.tsv")
	entries := []Entry{
		{ID: "first", Subset: api.NewSubset("first", []int{2, 4}, 0.75)},
		{ID: "none"},
		{ID: "second", Subset: api.NewSubset("second", []int{1}, -1)},
	}
	g.Expect(WriteFile(path, entries)).To(Succeed())

	data, err := os.ReadFile(path)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(string(data)).To(Equal("first\t[0, 2, 4]\t0.75\nnone\t[]\t-inf\nsecond\t[0, 1]\t-1\n"))

	subsets, err := Load(path)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(SortedIDs(subsets)).To(Equal([]string{"first", "second"}))
	g.Expect(subsets["first"].Columns()).To(Equal([]int{0, 2, 4}))
	g.Expect(subsets["second"].Score()).To(Equal(-1.0))
}

func TestWriteRejectsInvalidIDs(t *testing.T) {
	g := NewGomegaWithT(t)
	buf := &bytes.Buffer{}
	err := Write(buf, []Entry{{ID: "a\tb"}})
	g.Expect(errors.Is(err, ErrMalformedRecord)).To(BeTrue())
	err = Write(buf, []Entry{{ID: ""}})
	g.Expect(errors.Is(err, ErrMalformedRecord)).To(BeTrue())
}

func TestLoadMissingFile(t *testing.T) {
	g := NewGomegaWithT(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.tsv"))
	g.Expect(err).To(HaveOccurred())
}

func TestLoadMalformedFile(t *testing.T) {
	g := NewGomegaWithT(t)
	path := filepath.Join(t.TempDir(), "subsets.tsv")
	g.Expect(os.WriteFile(path, []byte("a\t[0]\n"), 0644)).To(Succeed())
	_, err := Load(path)
	g.Expect(errors.Is(err, ErrMalformedRecord)).To(BeTrue())
}
