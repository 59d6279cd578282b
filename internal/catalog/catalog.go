package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNotFound is returned by lookups for characters the catalog does not hold.
var ErrNotFound = errors.New("catalog: not found")

// Catalog holds the immutable hanja and hanja-word reference data.
// It is loaded once at startup and safe for concurrent reads.
type Catalog struct {
	hanja  []Hanja
	words  []Word
	byChar map[string]Hanja
}

// Load reads both CSV files. The word file is optional: a missing file
// leaves the catalog without word-level vocabulary rather than failing.
func Load(hanjaPath, wordPath string) (*Catalog, error) {
	hf, err := os.Open(hanjaPath)
	if err != nil {
		return nil, fmt.Errorf("open hanja csv: %w", err)
	}
	defer hf.Close()

	c := &Catalog{byChar: map[string]Hanja{}}
	if err := c.readHanja(hf); err != nil {
		return nil, err
	}

	wf, err := os.Open(wordPath)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("open word csv: %w", err)
	}
	defer wf.Close()
	if err := c.readWords(wf); err != nil {
		return nil, err
	}
	return c, nil
}

// New builds a catalog from already-parsed rows. Used by tests and seeding.
func New(hanja []Hanja, words []Word) *Catalog {
	c := &Catalog{hanja: hanja, words: words, byChar: map[string]Hanja{}}
	for _, h := range hanja {
		if _, ok := c.byChar[h.Character]; !ok {
			c.byChar[h.Character] = h
		}
	}
	return c
}

// readHanja expects columns: 급수, 대표음, 한자, 대표훈.
// Malformed rows are skipped, matching the source data's loose quality.
func (c *Catalog) readHanja(r io.Reader) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("hanja csv header: %w", err)
	}
	idx := columnIndex(header, "급수", "대표음", "한자", "대표훈")
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip bad line
		}
		h, ok := pick(rec, idx)
		if !ok {
			continue
		}
		hj := Hanja{Grade: h[0], Reading: h[1], Character: h[2], Meaning: h[3]}
		if hj.Grade == "" || hj.Character == "" {
			continue
		}
		c.hanja = append(c.hanja, hj)
		if _, dup := c.byChar[hj.Character]; !dup {
			c.byChar[hj.Character] = hj
		}
	}
	return nil
}

// readWords expects columns: 급수, 어휘(한글), 한자.
func (c *Catalog) readWords(r io.Reader) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("word csv header: %w", err)
	}
	idx := columnIndex(header, "급수", "어휘(한글)", "한자")
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		f, ok := pick(rec, idx)
		if !ok {
			continue
		}
		w := Word{Grade: f[0], Korean: f[1], Hanja: f[2]}
		if w.Grade == "" || w.Korean == "" || w.Hanja == "" {
			continue
		}
		c.words = append(c.words, w)
	}
	return nil
}

// Grades returns the grade labels present in the catalog, in proficiency order.
func (c *Catalog) Grades() []string {
	present := map[string]bool{}
	for _, h := range c.hanja {
		present[h.Grade] = true
	}
	out := make([]string, 0, len(present))
	for _, g := range GradeOrder {
		if present[g] {
			out = append(out, g)
		}
	}
	return out
}

// ByGrade returns the grade's hanja in file order. Unknown grade yields an empty slice.
func (c *Catalog) ByGrade(grade string) []Hanja {
	out := []Hanja{}
	for _, h := range c.hanja {
		if h.Grade == grade {
			out = append(out, h)
		}
	}
	return out
}

// ByCharacter looks up a single hanja.
func (c *Catalog) ByCharacter(ch string) (Hanja, error) {
	h, ok := c.byChar[ch]
	if !ok {
		return Hanja{}, ErrNotFound
	}
	return h, nil
}

// WordsByGrade returns the grade's word vocabulary in file order.
func (c *Catalog) WordsByGrade(grade string) []Word {
	out := []Word{}
	for _, w := range c.words {
		if w.Grade == grade {
			out = append(out, w)
		}
	}
	return out
}

// Words returns all word vocabulary across grades.
func (c *Catalog) Words() []Word { return c.words }

func columnIndex(header []string, names ...string) []int {
	idx := make([]int, len(names))
	for i, n := range names {
		idx[i] = -1
		for j, h := range header {
			if h == n {
				idx[i] = j
				break
			}
		}
	}
	return idx
}

func pick(rec []string, idx []int) ([]string, bool) {
	out := make([]string, len(idx))
	for i, j := range idx {
		if j < 0 || j >= len(rec) {
			return nil, false
		}
		out[i] = rec[j]
	}
	return out, true
}
