package main

import (
	"flag"
	"fmt"
	"math/bits"
	"os"
	"runtime"
	"runtime/debug"
	"sort"
	"time"

	"golang.org/x/exp/rand"

	sizemap "github.com/xgzlucario/SizeMap"
)

func genSizes(n int, maxSize uint64) []uint64 {
	sizes := make([]uint64, n)
	for i := range sizes {
		// log-uniform, like real request mixes.
		shift := rand.Intn(bits.Len64(maxSize))
		sizes[i] = rand.Uint64n(1<<shift) + 1
		if sizes[i] > maxSize {
			sizes[i] = maxSize
		}
	}
	return sizes
}

var previousPause time.Duration

func gcPause() time.Duration {
	runtime.GC()
	var stats debug.GCStats
	debug.ReadGCStats(&stats)
	pause := stats.PauseTotal - previousPause
	previousPause = stats.PauseTotal
	return pause
}

func main() {
	p := ""
	lookup := ""
	entries := 0
	flag.StringVar(&p, "profile", "default", "page size model: small, default, large, 256k.")
	flag.StringVar(&lookup, "lookup", "sizemap", "lookup to bench: sizemap, search, stdmap.")
	flag.IntVar(&entries, "entries", 1000*10000, "number of lookups")
	flag.Parse()

	profile, err := sizemap.ParseProfile(p)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	m, err := sizemap.New(sizemap.WithProfile(profile))
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	cfg := m.Config()

	fmt.Println(lookup, profile)
	fmt.Println("entries:", entries)

	sizes := genSizes(4096, cfg.MaxSize)
	table := m.Table()

	var lookupFunc func(uint64) uint32
	switch lookup {
	case "sizemap":
		lookupFunc = m.SizeClass
	case "search":
		lookupFunc = func(s uint64) uint32 {
			return uint32(sort.Search(len(table), func(c int) bool { return uint64(table[c].Size) >= s }))
		}
	case "stdmap":
		bySize := make(map[uint64]uint32, cfg.MaxSize)
		for s := uint64(0); s <= cfg.MaxSize; s++ {
			bySize[s] = m.SizeClass(s)
		}
		lookupFunc = func(s uint64) uint32 { return bySize[s] }
	default:
		fmt.Printf("unknown lookup: %s\n", lookup)
		os.Exit(1)
	}

	start := time.Now()
	var sum uint64
	for i := 0; i < entries; i++ {
		sum += uint64(lookupFunc(sizes[i%len(sizes)]))
	}
	cost := time.Since(start)

	// internal fragmentation of the request mix.
	var requested, rounded uint64
	for _, s := range sizes {
		requested += s
		rounded += m.ClassToSize(m.SizeClass(s))
	}

	fmt.Println("cost:", cost)
	fmt.Printf("per lookup: %.2f ns\n", float64(cost.Nanoseconds())/float64(entries))
	fmt.Printf("waste: %.2f%%\n", float64(rounded-requested)/float64(rounded)*100)
	fmt.Println("checksum:", sum)

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	fmt.Printf("heap inuse: %d KB\n", mem.HeapInuse/1024)
	fmt.Println("gc pause:", gcPause())
}
