package cache

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rmohr/probeselect/pkg/api"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

// ErrMalformedRecord is returned for any record which can't be parsed.
var ErrMalformedRecord = errors.New("malformed cache record")

const defaultCacheFile = "probeselect/subsets.tsv"

// Entry is one record of the cache file. A nil Subset is stored as a record
// without a subset.
type Entry struct {
	ID     string
	Subset *api.Subset
}

// DefaultPath returns the cache file location below the XDG cache directory.
func DefaultPath() (string, error) {
	path, err := xdg.CacheFile(defaultCacheFile)
	if err != nil {
		return "", fmt.Errorf("failed to determine cache file location: %v", err)
	}
	return path, nil
}

func Load(path string) (map[string]*api.Subset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache file %s: %v", path, err)
	}
	defer f.Close()
	subsets, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load cache file %s: %w", path, err)
	}
	return subsets, nil
}

// Parse reads records of the form "id\t[c1, c2, ...]\tscore". Records with a
// score of -inf carry no subset and are skipped.
func Parse(r io.Reader) (map[string]*api.Subset, error) {
	subsets := map[string]*api.Subset{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		subset, err := parseRecord(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if subset == nil {
			continue
		}
		if _, exists := subsets[subset.ID()]; exists {
			logrus.Warnf("Cache record for %s on line %d replaces an earlier one.", subset.ID(), line)
		}
		subsets[subset.ID()] = subset
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cache records: %v", err)
	}
	return subsets, nil
}

func parseRecord(text string) (*api.Subset, error) {
	fields := strings.Split(text, "\t")
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: expected 3 tab separated fields, got %d", ErrMalformedRecord, len(fields))
	}
	id := fields[0]
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", ErrMalformedRecord)
	}
	score, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid score %q", ErrMalformedRecord, fields[2])
	}
	columns, err := parseColumns(fields[1])
	if err != nil {
		return nil, err
	}
	if math.IsInf(score, -1) {
		return nil, nil
	}
	if len(columns) == 0 || columns[0] != 0 {
		return nil, fmt.Errorf("%w: columns %v don't start with the base column", ErrMalformedRecord, columns)
	}
	return api.NewSubset(id, columns[1:], score), nil
}

func parseColumns(field string) ([]int, error) {
	field = strings.TrimSpace(field)
	if !strings.HasPrefix(field, "[") || !strings.HasSuffix(field, "]") {
		return nil, fmt.Errorf("%w: invalid column list %q", ErrMalformedRecord, field)
	}
	inner := strings.TrimSpace(field[1 : len(field)-1])
	if inner == "" {
		return nil, nil
	}
	var columns []int
	for _, part := range strings.Split(inner, ",") {
		c, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || c < 0 {
			return nil, fmt.Errorf("%w: invalid column %q", ErrMalformedRecord, part)
		}
		columns = append(columns, c)
	}
	return columns, nil
}

func formatRecord(e Entry) string {
	if e.Subset == nil {
		return fmt.Sprintf("%s\t[]\t-inf", e.ID)
	}
	selected := e.Subset.Columns()
	columns := make([]string, 0, len(selected))
	for _, c := range selected {
		columns = append(columns, strconv.Itoa(c))
	}
	return fmt.Sprintf("%s\t[%s]\t%s", e.ID, strings.Join(columns, ", "), strconv.FormatFloat(e.Subset.Score(), 'g', -1, 64))
}

func Write(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if strings.ContainsAny(e.ID, "\t\n") || e.ID == "" {
			return fmt.Errorf("%w: invalid id %q", ErrMalformedRecord, e.ID)
		}
		if _, err := bw.WriteString(formatRecord(e) + "\n"); err != nil {
			return fmt.Errorf("failed to write cache record for %s: %v", e.ID, err)
		}
	}
	return bw.Flush()
}

func WriteFile(path string, entries []Entry) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0770); err != nil && !os.IsExist(err) {
			return fmt.Errorf("failed to create cache directory %s: %v", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %v", path, err)
	}
	defer f.Close()
	if err := Write(f, entries); err != nil {
		return err
	}
	return f.Close()
}

// SortedIDs returns the ids of the loaded subsets in lexical order.
func SortedIDs(subsets map[string]*api.Subset) []string {
	ids := maps.Keys(subsets)
	slices.Sort(ids)
	return ids
}
