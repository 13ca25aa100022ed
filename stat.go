package sizemap

// ClassStat describes the memory overhead of one size class.
type ClassStat struct {
	Class int
	SizeClassInfo

	// Objects is the number of objects carved from one span.
	Objects uint64
	// SpanWaste is the tail of the span no object fits in, in bytes.
	SpanWaste uint64
	// MaxInternal is the worst rounding loss of a request served by the
	// class: a request one byte above the previous class size.
	MaxInternal uint64
}

// SpanWasteRate returns SpanWaste as a percentage of the span.
func (s ClassStat) SpanWasteRate(pageSize uint64) float64 {
	return float64(s.SpanWaste) / float64(uint64(s.Pages)*pageSize) * 100
}

// TableStat summarizes the overhead of a table.
type TableStat struct {
	Classes []ClassStat

	SpanBytes      uint64
	SpanWasteBytes uint64
	// MaxInternalRate is the worst MaxInternal relative to the class size.
	MaxInternalRate float64
}

// SpanWasteRate returns the span waste of all classes, one span each, as a
// percentage of their spans.
func (s TableStat) SpanWasteRate() float64 {
	if s.SpanBytes == 0 {
		return 0
	}
	return float64(s.SpanWasteBytes) / float64(s.SpanBytes) * 100
}

// Stat computes the overhead of t under cfg. t is assumed valid.
func Stat(cfg Config, t Table) (stat TableStat) {
	if len(t) < 2 {
		return
	}
	stat.Classes = make([]ClassStat, 0, len(t)-1)

	var prev uint64
	for c := 1; c < len(t); c++ {
		size := uint64(t[c].Size)
		span := uint64(t[c].Pages) * cfg.PageSize
		cs := ClassStat{
			Class:         c,
			SizeClassInfo: t[c],
		}
		if size > 0 {
			cs.Objects = span / size
			cs.SpanWaste = span % size
		}
		if size > prev {
			cs.MaxInternal = size - prev - 1
			if rate := float64(cs.MaxInternal) / float64(size) * 100; rate > stat.MaxInternalRate {
				stat.MaxInternalRate = rate
			}
		}
		stat.SpanBytes += span
		stat.SpanWasteBytes += cs.SpanWaste
		stat.Classes = append(stat.Classes, cs)
		prev = size
	}
	return
}

// Stat returns the overhead of the active table.
func (m *SizeMap) Stat() TableStat {
	return Stat(m.cfg, m.Table())
}
