package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"plusindex/bptree"
	"plusindex/cli"
)

func main() {
	verboseRelease := flag.Bool("verbose-release", false, "log every Data record released from the tree")
	flag.Usage = func() {
		fmt.Println("\nplusindex — in-memory B+Tree shell\n\nUsage: plusindex [order] [input-file]\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()

	order := bptree.DefaultOrder
	args := flag.Args()
	if len(args) > 0 {
		o, err := strconv.Atoi(args[0])
		if err != nil {
			log.Fatalf("plusindex: invalid order %q: %v", args[0], err)
		}
		order = o
	}

	tree, err := bptree.New(order)
	if err != nil {
		log.Fatalf("plusindex: %v", err)
	}

	if len(args) > 1 {
		f, err := os.Open(args[1])
		if err != nil {
			log.Fatalf("plusindex: %v", err)
		}
		n, err := tree.LoadInts(f)
		f.Close()
		if err != nil {
			log.Fatalf("plusindex: loading %s: %v", args[1], err)
		}
		fmt.Printf("loaded %d record(s) from %s\n", n, args[1])
	}

	shell := cli.NewCli(bufio.NewScanner(os.Stdin), tree)
	if *verboseRelease {
		shell.SetVerboseRelease()
	}
	shell.Start()
}
