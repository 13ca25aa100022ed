package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sourcegraph/conc/pool"

	sizemap "github.com/xgzlucario/SizeMap"
)

var profiles = []sizemap.Profile{
	sizemap.ProfileSmall,
	sizemap.ProfileDefault,
	sizemap.ProfileLarge,
	sizemap.Profile256K,
}

// checkSizes walks every size of m and reports the first one that maps to a
// class that is too small or not the tightest.
func checkSizes(m *sizemap.SizeMap) error {
	table := m.Table()
	next := 1
	for s := uint64(0); s <= m.Config().MaxSize; s++ {
		for uint64(table[next].Size) < s {
			next++
		}
		cl, ok := m.GetSizeClass(s)
		if !ok {
			return fmt.Errorf("size %d: no class", s)
		}
		if int(cl) != next {
			return fmt.Errorf("size %d: class %d, want %d", s, cl, next)
		}
	}
	if _, ok := m.GetSizeClass(m.Config().MaxSize + 1); ok {
		return fmt.Errorf("size %d: class above max size", m.Config().MaxSize+1)
	}
	return nil
}

func main() {
	env := ""
	flag.StringVar(&env, "env", sizemap.EnvName, "environment variable holding an override table.")
	flag.Parse()

	p := pool.NewWithResults[string]().WithErrors()
	for _, profile := range profiles {
		profile := profile
		p.Go(func() (string, error) {
			m, err := sizemap.New(sizemap.WithProfile(profile), sizemap.WithEnv(env))
			if err != nil {
				return "", fmt.Errorf("%s: %w", profile, err)
			}
			if err := checkSizes(m); err != nil {
				return "", fmt.Errorf("%s: %w", profile, err)
			}
			return fmt.Sprintf("%-8s classes=%-3d overridden=%-5v checksum=%016x",
				profile, m.NumClasses(), m.Overridden(), m.Table().Checksum()), nil
		})
	}

	lines, err := p.Wait()
	for _, line := range lines {
		fmt.Println(line)
	}
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
