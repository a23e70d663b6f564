package cli

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"plusindex/bptree"
	"plusindex/persistence"
)

// Cli is the interactive shell wrapping a *bptree.Tree. It never touches
// tree internals directly, only the public bptree API and a Visualizer
// for debug output.
type Cli struct {
	scanner    *bufio.Scanner
	tree       *bptree.Tree
	visualizer *bptree.Visualizer
}

// NewCli wires a scanner and an already-configured tree into a shell.
func NewCli(s *bufio.Scanner, t *bptree.Tree) *Cli {
	v := &bptree.Visualizer{Tree: t}
	return &Cli{scanner: s, tree: t, visualizer: v}
}

// SetVerboseRelease installs a release hook on the wrapped tree that logs
// every freed Data record, the Go analogue of ytree.c's release_pointer
// callback (which just printed the freed pointer's address).
func (c *Cli) SetVerboseRelease() {
	c.tree.SetReleaseHook(func(data []byte) {
		log.Printf("cli: released data record (%d bytes)", len(data))
	})
}

// Start runs the read-eval-print loop until EOF or the q command.
func (c *Cli) Start() {
	c.printBanner()
	c.printPrompt()
	for c.scanner.Scan() {
		c.dispatch(c.scanner.Text())
		c.printPrompt()
	}
}

func (c *Cli) printPrompt() {
	fmt.Print("> ")
}

func (c *Cli) printBanner() {
	fmt.Printf("plusindex %s — in-memory B+Tree shell. Type ? for help.\n", bptree.Version)
}

func (c *Cli) dispatch(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "i":
		c.cmdInsert(fields[1:])
	case "f":
		c.cmdFind(fields[1:], false)
	case "p":
		c.cmdFind(fields[1:], true)
	case "r":
		c.cmdRange(fields[1:])
	case "d":
		c.cmdDelete(fields[1:])
	case "x":
		c.tree.Purge()
		fmt.Println("tree purged")
	case "t":
		fmt.Print(c.visualizer.PrintTree())
	case "l":
		fmt.Print(c.visualizer.PrintLeaves())
	case "v":
		c.tree.Verbose = !c.tree.Verbose
		c.visualizer.Verbose = c.tree.Verbose
		fmt.Printf("verbose = %v\n", c.tree.Verbose)
	case "a":
		c.printStatus()
	case "s":
		c.cmdSave(fields[1:])
	case "o":
		fmt.Println("restore: no reader implemented (persistence.ErrNoReader)")
	case "q":
		os.Exit(0)
	case "?":
		c.printHelp()
	default:
		fmt.Printf("unknown command %q — type ? for help\n", fields[0])
	}
}

func (c *Cli) cmdInsert(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: i <key>")
		return
	}
	key, err := parseKey(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := c.tree.Insert(key, bptree.MakeInt(key)); err != nil {
		fmt.Println("insert failed:", err)
		return
	}
	fmt.Printf("inserted %d\n", key)
}

// cmdFind handles both f (plain find) and p (find with a descent path
// trace printed to stdout as the tree is walked), matching ytree.c's
// find_and_print, which calls find_leaf with its verbose flag set to
// (instruction == 'p').
func (c *Cli) cmdFind(args []string, verbose bool) {
	if len(args) != 1 {
		fmt.Println("usage: f <key>  (or p <key> for a path trace)")
		return
	}
	key, err := parseKey(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	var rec *bptree.Record
	if verbose {
		rec = c.tree.FindVerbose(key, os.Stdout)
	} else {
		rec = c.tree.Find(key)
	}
	if rec == nil {
		fmt.Printf("key %d not found\n", key)
		return
	}
	fmt.Printf("%d\n", rec.Int)
}

func (c *Cli) cmdRange(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: r <key1> <key2>")
		return
	}
	k1, err := parseKey(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	k2, err := parseKey(args[1])
	if err != nil {
		fmt.Println(err)
		return
	}
	// ytree.c's find_range swaps its arguments if given out of order
	// rather than rejecting the call.
	if k1 > k2 {
		k1, k2 = k2, k1
	}
	pairs, err := c.tree.Range(k1, k2)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, p := range pairs {
		fmt.Printf("%d: %d\n", p.Key, p.Record.Int)
	}
	fmt.Printf("%d record(s) in range\n", len(pairs))
}

func (c *Cli) cmdDelete(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: d <key>")
		return
	}
	key, err := parseKey(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	c.tree.Delete(key)
	fmt.Printf("deleted %d (if present)\n", key)
}

// cmdSave writes the persistence header for the current tree to the named
// file, or to stdout if no filename is given.
func (c *Cli) cmdSave(args []string) {
	if len(args) == 0 {
		if err := persistence.WriteHeader(os.Stdout, c.tree.Order(), 0); err != nil {
			fmt.Println("save failed:", err)
		}
		return
	}
	f, err := os.Create(args[0])
	if err != nil {
		fmt.Println("save failed:", err)
		return
	}
	defer f.Close()
	if err := persistence.WriteHeader(f, c.tree.Order(), 0); err != nil {
		fmt.Println("save failed:", err)
		return
	}
	fmt.Printf("wrote header to %s\n", args[0])
}

// printStatus is the Go analogue of ytree.c's print_status: it reports
// the configured order bounds, the tree's current order, the record type
// this shell inserts, and the verbose flag.
func (c *Cli) printStatus() {
	verbose := "off"
	if c.tree.Verbose {
		verbose = "on"
	}
	fmt.Println("Current config:")
	fmt.Printf("  Min order %d\n", bptree.MinOrder)
	fmt.Printf("  Max order %d\n", bptree.MaxOrder)
	fmt.Printf("  Current order %d\n", c.tree.Order())
	fmt.Println("  Record type INT")
	fmt.Printf("  Verbose output %s\n", verbose)
}

func (c *Cli) printHelp() {
	fmt.Print(`
commands:
  i <k>        insert int record keyed k
  f <k>        find k
  p <k>        find k, printing the root-to-leaf descent trace
  r <k1> <k2>  range find (k1/k2 order-independent)
  d <k>        delete k
  x            purge the whole tree
  t            print tree
  l            print leaves
  v            toggle verbose mode
  a            print status
  s [file]     save header (writes to stdout if no file given)
  o            restore (not implemented)
  q            quit
  ?            this help
`)
}

func parseKey(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("cli: %q is not a valid int32 key", s)
	}
	return int32(v), nil
}
