package main

import (
	"flag"
	"fmt"
	"os"

	sizemap "github.com/xgzlucario/SizeMap"
)

func statText(m *sizemap.SizeMap) []byte {
	pageSize := m.Config().PageSize
	stat := m.Stat()

	var b []byte
	b = fmt.Appendf(b, "%5s %8s %5s %6s %8s %8s\n", "class", "size", "pages", "batch", "objects", "waste")
	for _, cs := range stat.Classes {
		b = fmt.Appendf(b, "%5d %8d %5d %6d %8d %7.2f%%\n",
			cs.Class, cs.Size, cs.Pages, cs.NumToMove, cs.Objects, cs.SpanWasteRate(pageSize))
	}
	b = fmt.Appendf(b, "span waste: %.2f%%, max internal: %.2f%%\n", stat.SpanWasteRate(), stat.MaxInternalRate)
	return b
}

func main() {
	p := ""
	format := ""
	out := ""
	flag.StringVar(&p, "profile", "default", "page size model: small, default, large, 256k.")
	flag.StringVar(&format, "format", "text", "output format: text, json, snapshot, stat.")
	flag.StringVar(&out, "o", "", "output file, stdout if empty.")
	flag.Parse()

	profile, err := sizemap.ParseProfile(p)
	if err != nil {
		panic(err)
	}
	m, err := sizemap.New(sizemap.WithProfile(profile))
	if err != nil {
		panic(err)
	}

	var data []byte
	switch format {
	case "text":
		data = []byte(m.Table().String() + "\n")
	case "json":
		data, err = m.MarshalJSON()
	case "snapshot":
		data, err = sizemap.Snapshot(m.Table())
	case "stat":
		data = statText(m)
	default:
		fmt.Printf("unknown format: %s\n", format)
		os.Exit(1)
	}
	if err != nil {
		panic(err)
	}

	if out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		panic(err)
	}
	fmt.Printf("%s: %d classes, checksum %016x\n", out, m.NumClasses(), m.Table().Checksum())
}
