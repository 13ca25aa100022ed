package main

import (
	"fmt"
	"log/slog"
	"os"

	sizemap "github.com/xgzlucario/SizeMap"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := sizemap.Init(sizemap.WithLogger(logger)); err != nil {
		panic(err)
	}
	m := sizemap.Get()
	logger.Info("size map ready", "map", m)

	for _, size := range []uint64{1, 100, 1024, 1025, 5000, sizemap.MaxSize, sizemap.MaxSize + 1} {
		cl, ok := sizemap.GetSizeClass(size)
		if !ok {
			fmt.Printf("%7d -> page heap\n", size)
			continue
		}
		fmt.Printf("%7d -> class %2d: %6d bytes, %2d pages, batch %d\n",
			size, cl, sizemap.ClassToSize(cl), sizemap.ClassToPages(cl), sizemap.NumObjectsToMove(cl))
	}

	if cl, ok := sizemap.GetSizeClassAligned(200, 64); ok {
		fmt.Printf("200 aligned to 64 -> class %d (%d bytes)\n", cl, sizemap.ClassToSize(cl))
	}
}
