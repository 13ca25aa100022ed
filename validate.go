package sizemap

// Valid reports whether t is acceptable as the class table of cfg.
func Valid(cfg Config, t Table) bool {
	return Validate(cfg, t) == nil
}

// Validate checks t against the rules every class table of cfg must
// hold and returns a *ValidationError for the first violation. It does not
// modify t.
func Validate(cfg Config, t Table) error {
	if cfg.NumClasses <= 0 || len(t) != cfg.NumClasses {
		return &ValidationError{Class: len(t), Err: ErrTableLength}
	}
	if t[0] != (SizeClassInfo{}) {
		return &ValidationError{Class: 0, Info: t[0], Err: ErrSentinel}
	}

	for c := 1; c < len(t); c++ {
		if err := validateClass(cfg, t[c-1], t[c]); err != nil {
			return &ValidationError{Class: c, Info: t[c], Err: err}
		}
	}

	if last := len(t) - 1; uint64(t[last].Size) != cfg.MaxSize {
		return &ValidationError{Class: last, Info: t[last], Err: ErrMaxSize}
	}
	return nil
}

func validateClass(cfg Config, prev, info SizeClassInfo) error {
	size := uint64(info.Size)

	// each size class must be larger than the previous one.
	if info.Size <= prev.Size {
		return ErrNotIncreasing
	}
	if size > cfg.MaxSize {
		return ErrTooLarge
	}
	if alignUp(size, regionAlignment(size)) != size {
		return ErrMisaligned
	}
	if size <= MultiPageSize && info.Pages != 1 {
		return ErrMultiPage
	}
	// pages is a byte, so 255 is the upper bound.
	if info.Pages == 0 {
		return ErrPages
	}
	if info.NumToMove < MinObjectsToMove || info.NumToMove > MaxObjectsToMove {
		return ErrBatch
	}

	// tail waste of a span is capped at 1/8, which also means a span holds
	// at least one object.
	span := uint64(info.Pages) << cfg.PageShift
	if span%size > span/8 || span < size {
		return ErrFragmentation
	}
	return nil
}

// regionAlignment returns the minimum alignment of a class of the given size.
func regionAlignment(size uint64) uint64 {
	switch {
	case size <= MultiPageSize:
		return Alignment
	case size <= MaxSmallSize:
		return MultiPageAlignment
	default:
		return LargeAlignment
	}
}
