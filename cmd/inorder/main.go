package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/logutils"
	"go.lepak.sg/inorder/check"
	"go.lepak.sg/inorder/chops"
	"go.lepak.sg/inorder/must"
	"go.lepak.sg/inorder/tree"
	"go.lepak.sg/inorder/tree/morris"
	"go.lepak.sg/inorder/tree/trampoline"
)

var (
	seed    = flag.Int64("s", 0, "seed (default current unix time in ns)")
	num     = flag.Int("n", 10, "number of nodes in the random tree")
	sample  = flag.Bool("sample", false, "use the sample tree A(B(D(_,H),E), C(F, G(I,J))) instead")
	pre     = flag.String("pre", "", "comma-separated pre-order traversal to rebuild a tree from (needs -in)")
	in      = flag.String("in", "", "comma-separated in-order traversal to rebuild a tree from (needs -pre)")
	k       = flag.Int("k", 3, "number of values to take lazily")
	rounds  = flag.Int("rounds", 100, "random trees to cross-check (0 to skip)")
	workers = flag.Int("workers", 0, "trees to cross-check at once (default GOMAXPROCS)")
	verbose = flag.Bool("v", false, "log debug output")
)

func main() {
	flag.Parse()

	minLevel := logutils.LogLevel("INFO")
	if *verbose {
		minLevel = "DEBUG"
	}
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	log.SetOutput(&logutils.LevelFilter{
		Levels:   []logutils.LogLevel{"DEBUG", "INFO", "ERROR"},
		MinLevel: minLevel,
		Writer:   os.Stderr,
	})

	if *k < 0 {
		log.Printf("[ERROR] -k must not be negative, got %d", *k)
		os.Exit(2)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	switch {
	case *pre != "" || *in != "":
		run(must.Must2(tree.FromPreAndInOrder(readInts(*pre), readInts(*in))))
	case *sample:
		run(tree.Sample())
	default:
		log.Printf("[DEBUG] building random tree n=%d seed=%d", *num, *seed)
		run(tree.BuildRandom(*num, *seed))
	}

	if *rounds <= 0 {
		return
	}

	log.Printf("[INFO] cross-checking %d random trees of %d nodes, seed=%d", *rounds, *num, *seed)
	start := time.Now()
	err := check.Random(context.Background(), check.Config{
		Rounds:  *rounds,
		Size:    *num,
		Seed:    *seed,
		Workers: *workers,
	})
	if err != nil {
		var mismatch *check.MismatchError[int]
		if errors.As(err, &mismatch) {
			log.Printf("[ERROR] %s disagrees with the recursive traversal", mismatch.Algorithm)
		}
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	log.Printf("[INFO] all traversals agree (%v)", time.Since(start))
}

func run[T comparable](root *tree.Node[T]) {
	fmt.Println("tree:")
	fmt.Print(root.String())
	fmt.Println("height:", morris.Height(root))

	for _, alg := range check.Algorithms[T]() {
		c := tree.Clone(root)
		log.Printf("[DEBUG] running %s", alg.Name)
		fmt.Printf("%s: %v\n", alg.Name, alg.Run(c))
	}

	fmt.Printf("first %d (lazy): %v\n", *k, firstLazy(root, *k))

	if err := check.Tree(root); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

// firstLazy takes up to k values from the lazy trampoline, through a
// coroutine so that nothing past the k-th value is computed.
func firstLazy[T any](root *tree.Node[T], k int) []T {
	if k <= 0 {
		return []T{}
	}

	first := make([]T, 0, k)
	co := chops.CoIterate[T](trampoline.NewLazy(root))
	for v := range co.Items() {
		first = append(first, v)
		if len(first) == k {
			co.Stop()
			break
		}
	}
	return first
}

func readInts(raw string) []int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	raws := strings.Split(raw, ",")
	out := make([]int, len(raws))
	for i, rawNum := range raws {
		out[i] = must.Must2(strconv.Atoi(strings.TrimSpace(rawNum)))
	}
	return out
}
