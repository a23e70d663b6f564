package bptree

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
)

// LoadInts bulk-inserts one MakeInt(v) record per line of r, keyed by its
// own value, matching ytree.c's optional [input-file] positional argument:
// main() there reads the file with fscanf(fp, "%d\n", &input) until EOF
// and inserts each value as both key and record. Malformed lines are
// skipped rather than aborting the whole load — the C source has no such
// recovery (a bad fscanf just leaves input unmodified, silently
// re-inserting the previous value), which this implementation improves on
// without changing the happy path.
func (t *Tree) LoadInts(r io.Reader) (inserted int, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		v, perr := strconv.ParseInt(line, 10, 32)
		if perr != nil {
			continue
		}
		if ierr := t.Insert(int32(v), MakeInt(int32(v))); ierr != nil {
			return inserted, fmt.Errorf("bptree: load line %q: %w", line, ierr)
		}
		inserted++
	}
	return inserted, scanner.Err()
}

// FillRandom inserts n records with distinct random 32-bit keys drawn
// from rng, skipping any key already present in the tree, and returns the
// keys it inserted.
func (t *Tree) FillRandom(n int, rng *rand.Rand) (inserted int, keys []int32) {
	keys = make([]int32, 0, n)
	for len(keys) < n {
		k := rng.Int31()
		if rng.Intn(2) == 0 {
			k = -k
		}
		if t.Find(k) != nil {
			continue
		}
		if err := t.Insert(k, MakeInt(k)); err == nil {
			keys = append(keys, k)
		}
	}
	return len(keys), keys
}
