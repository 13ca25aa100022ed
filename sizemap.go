package sizemap

import (
	"fmt"
	"log/slog"
	"math/bits"

	"github.com/bytedance/sonic"
	"golang.org/x/sys/cpu"
)

// Sizes up to MaxSmallSize are at least 8-byte aligned, so they are indexed
// by ceil(size/8). Larger sizes are at least 128-byte aligned and indexed by
// ceil(size/128). Both logical arrays are flattened into one, with an offset
// on the second so that the regions neither overlap nor leave a gap:
//
//	size      expression                        index
//	0         (0 + 7) / 8                       0
//	1         (1 + 7) / 8                       1
//	1024      (1024 + 7) / 8                    128
//	1025      (1025 + 127 + (120<<7)) / 128     129
//	32768     (32768 + 127 + (120<<7)) / 128    376
//	256*1024  (256*1024 + 127 + (120<<7)) / 128 2168
const largeIndexOffset = 120 << 7

// SizeMap maps request sizes to size classes and classes to their size,
// span length and batch count.
//
// A SizeMap is built once by Init and is read-only afterwards, so any number
// of goroutines may call its lookup methods without synchronization, as long
// as Init happens before them. The zero value is an uninitialized map whose
// lookups fail.
type SizeMap struct {
	_ cpu.CacheLinePad

	// classArray is read on every lookup; the pad keeps it off the cache line
	// of whatever precedes the map.
	classArray [maxClassArraySize]uint8

	classToSize  [maxNumClasses]uint32
	classToPages [maxNumClasses]uint8
	numToMove    [maxNumClasses]uint8

	// alignedClass[shift][cl] answers aligned lookups with alignment
	// 1<<shift starting at class cl.
	alignedClass [maxPageShift][maxNumClasses]uint8

	cfg        Config
	maxSize    uint64
	numClasses uint32
	overridden bool
}

// New returns an initialized SizeMap.
func New(opts ...Option) (*SizeMap, error) {
	m := &SizeMap{}
	if err := m.Init(newOptions(opts...)); err != nil {
		return nil, err
	}
	return m, nil
}

// Init builds the map for options.Profile. The compiled-in table is used
// unless options.Source yields a table that parses and validates completely.
// Init must complete before the map is shared.
func (m *SizeMap) Init(options Options) error {
	if m.Ready() {
		return ErrInitialized
	}
	if err := checkOptions(options); err != nil {
		return err
	}
	cfg := Resolve(options.Profile)
	log := options.logger().With("profile", cfg.Profile.String())

	// sanity check the flattened index for this model.
	if idx, _ := classIndex(0, cfg.MaxSize); idx != 0 {
		return fmt.Errorf("sizemap: invalid class index %d for size 0", idx)
	}
	if idx, _ := classIndex(cfg.MaxSize, cfg.MaxSize); int(idx) >= cfg.ClassArraySize {
		return fmt.Errorf("sizemap: invalid class index %d for max size", idx)
	}

	table := DefaultTable(cfg.Profile)
	if err := Validate(cfg, table); err != nil {
		return fmt.Errorf("sizemap: compiled-in table: %w", err)
	}

	override, err := loadOverride(cfg, options.Source)
	switch {
	case err != nil:
		log.Warn("size class override rejected, keeping defaults", "error", err)
	case override != nil:
		log.Info("loaded runtime size classes", "checksum", override.Checksum())
		table = override
		m.overridden = true
	}

	m.cfg = cfg
	m.maxSize = cfg.MaxSize
	m.setSizeClasses(table)
	m.buildClassArray()
	m.buildAlignedClasses()
	return nil
}

// loadOverride returns the table of src if it is complete and valid, nil if
// src has nothing to offer.
func loadOverride(cfg Config, src TableSource) (Table, error) {
	if src == nil {
		return nil, nil
	}
	t, err := src.Table(cfg)
	if err != nil || t == nil {
		return nil, err
	}
	if err := Validate(cfg, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (m *SizeMap) setSizeClasses(t Table) {
	for c, info := range t {
		m.classToSize[c] = info.Size
		m.classToPages[c] = info.Pages
		m.numToMove[c] = info.NumToMove
	}
	// class 0 stays zero; so does everything past the table.
	m.numClasses = uint32(len(t))
}

// buildClassArray points every bucket at the smallest class whose size holds
// the largest size of the bucket.
func (m *SizeMap) buildClassArray() {
	var next uint64
	for c := uint32(1); c < m.numClasses; c++ {
		maxInClass := uint64(m.classToSize[c])
		for s := next; s <= maxInClass; s += Alignment {
			idx, _ := classIndex(s, m.maxSize)
			m.classArray[idx] = uint8(c)
		}
		next = maxInClass + Alignment
		if next > m.maxSize {
			break
		}
	}
}

// classIndex returns the class array bucket of size s and false when s is
// above maxSize.
func classIndex(s, maxSize uint64) (uint32, bool) {
	if s <= MaxSmallSize {
		return uint32(divRoundUp(s, Alignment)), true
	} else if s <= maxSize {
		return uint32(divRoundUp(s+largeIndexOffset, LargeAlignment)), true
	}
	return 0, false
}

// GetSizeClass returns the class of size. It returns false when size exceeds
// MaxSize or the map is not initialized; Lookup tells the two apart.
func (m *SizeMap) GetSizeClass(size uint64) (uint32, bool) {
	idx, ok := classIndex(size, m.maxSize)
	if !ok {
		return 0, false
	}
	cl := uint32(m.classArray[idx])
	return cl, cl != 0
}

// GetSizeClassAligned returns the smallest class that holds size and whose
// size is a multiple of align. align must be a non-zero power of two;
// anything else panics with an AlignmentError. It returns false when size
// exceeds MaxSize, align is not below the page size (such requests belong to
// the page-level path), or no class qualifies.
//
// align == 1 is the same as GetSizeClass. Keep this function within the
// inlining budget (check with -gcflags=-m) so a constant align of 1 folds
// into the plain lookup: no calls that cannot be inlined, no loops.
func (m *SizeMap) GetSizeClassAligned(size, align uint64) (uint32, bool) {
	if !isPowerOfTwo(align) {
		panic(AlignmentError(align))
	}
	cl, ok := m.GetSizeClass(size)
	if align == 1 {
		return cl, ok
	}
	if !ok || align >= m.cfg.PageSize {
		return 0, false
	}
	cl = uint32(m.alignedClass[bits.TrailingZeros64(align)][cl])
	return cl, cl != 0
}

// buildAlignedClasses fills alignedClass[shift][cl] with the smallest class
// from cl upward whose size is a multiple of 1<<shift, or 0.
func (m *SizeMap) buildAlignedClasses() {
	for shift := uint(1); shift < m.cfg.PageShift; shift++ {
		mask := uint32(1)<<shift - 1
		var next uint8
		for cl := m.numClasses - 1; cl > 0; cl-- {
			if m.classToSize[cl]&mask == 0 {
				next = uint8(cl)
			}
			m.alignedClass[shift][cl] = next
		}
	}
}

// SizeClass returns the class of size, or 0 when the map is not initialized.
// It requires size <= MaxSize.
func (m *SizeMap) SizeClass(size uint64) uint32 {
	cl, _ := m.GetSizeClass(size)
	return cl
}

// Lookup is GetSizeClass with the failure spelled out: ErrSizeTooLarge or
// ErrNotInitialized.
func (m *SizeMap) Lookup(size uint64) (uint32, error) {
	if !m.Ready() {
		return 0, ErrNotInitialized
	}
	cl, ok := m.GetSizeClass(size)
	if !ok {
		return 0, ErrSizeTooLarge
	}
	return cl, nil
}

// LookupAligned is GetSizeClassAligned with the failure spelled out. It
// returns ErrNoAlignedClass when align is not below the page size or no class
// of at least size is a multiple of align.
func (m *SizeMap) LookupAligned(size, align uint64) (uint32, error) {
	if _, err := m.Lookup(size); err != nil {
		return 0, err
	}
	cl, ok := m.GetSizeClassAligned(size, align)
	if !ok {
		return 0, ErrNoAlignedClass
	}
	return cl, nil
}

// ClassToSize returns the object size of class cl. It requires
// cl < NumClasses().
func (m *SizeMap) ClassToSize(cl uint32) uint64 {
	if debug {
		m.checkClass(cl)
	}
	return uint64(m.classToSize[cl])
}

// ClassToPages returns the span length of class cl in pages. It requires
// cl < NumClasses().
func (m *SizeMap) ClassToPages(cl uint32) uint64 {
	if debug {
		m.checkClass(cl)
	}
	return uint64(m.classToPages[cl])
}

// NumObjectsToMove returns how many objects of class cl move between a local
// cache and the central cache in one batch. It requires cl < NumClasses().
func (m *SizeMap) NumObjectsToMove(cl uint32) uint32 {
	if debug {
		m.checkClass(cl)
	}
	return uint32(m.numToMove[cl])
}

func (m *SizeMap) checkClass(cl uint32) {
	if cl >= m.numClasses {
		panic(fmt.Sprintf("sizemap: class %d out of range [0, %d)", cl, m.numClasses))
	}
}

// Ready reports whether Init has completed.
func (m *SizeMap) Ready() bool {
	return m.numClasses != 0
}

// Overridden reports whether the active table came from the override source.
func (m *SizeMap) Overridden() bool {
	return m.overridden
}

// Config returns the resolved model of the map.
func (m *SizeMap) Config() Config {
	return m.cfg
}

// NumClasses returns the class count, sentinel included.
func (m *SizeMap) NumClasses() int {
	return int(m.numClasses)
}

// Table returns a copy of the active class table.
func (m *SizeMap) Table() Table {
	t := make(Table, m.numClasses)
	for c := range t {
		t[c] = SizeClassInfo{
			Size:      m.classToSize[c],
			Pages:     m.classToPages[c],
			NumToMove: m.numToMove[c],
		}
	}
	return t
}

type sizeMapJSON struct {
	Profile    string `json:"profile"`
	PageSize   uint64 `json:"page_size"`
	MaxSize    uint64 `json:"max_size"`
	Overridden bool   `json:"overridden"`
	Checksum   uint64 `json:"checksum"`
	Classes    Table  `json:"classes"`
}

// MarshalJSON dumps the model and the active table.
func (m *SizeMap) MarshalJSON() ([]byte, error) {
	t := m.Table()
	return sonic.Marshal(sizeMapJSON{
		Profile:    m.cfg.Profile.String(),
		PageSize:   m.cfg.PageSize,
		MaxSize:    m.cfg.MaxSize,
		Overridden: m.overridden,
		Checksum:   t.Checksum(),
		Classes:    t,
	})
}

// LogValue reports the model and table identity.
func (m *SizeMap) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("profile", m.cfg.Profile.String()),
		slog.Int("classes", m.NumClasses()),
		slog.Bool("overridden", m.overridden),
	)
}
