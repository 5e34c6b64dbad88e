package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
)

/*
runDot builds a tree and writes it as GraphViz to out, ready for dot(1):

	echo 5 3 8 1 6 | aat dot | dot -Tsvg > tree.svg

Keys are whitespace-separated integers read from in; when in is a
terminal the driver inserts -n shuffled sequential keys instead.
Duplicate keys replace as usual.
*/
func runDot(in *os.File, out io.Writer) error {
	tree := newTree()

	interactive := false
	if info, err := in.Stat(); err == nil {
		interactive = info.Mode()&os.ModeCharDevice != 0
	}

	if interactive {
		r := rand.New(rand.NewPCG(seed, 0))
		items := makeItems(size, func(i int) int { return i })
		shuffleItems(r, items)
		for _, it := range items {
			tree.Insert(it)
		}
	} else {
		scanner := bufio.NewScanner(in)
		scanner.Split(bufio.ScanWords)
		for scanner.Scan() {
			key, err := strconv.Atoi(scanner.Text())
			if err != nil {
				return fmt.Errorf("unable to parse key %q: %w", scanner.Text(), err)
			}
			tree.Insert(&item{key: key})
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("unable to read keys: %w", err)
		}
	}

	log.Debugf("writing %d records", tree.Count())

	return tree.WriteDot(out)
}
