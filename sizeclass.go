package sizemap

import (
	"encoding/binary"
	"strconv"

	"github.com/zeebo/xxh3"
)

// SizeClassInfo is one row of a class table.
type SizeClassInfo struct {
	// Size is the canonical object size of the class in bytes.
	Size uint32 `json:"size"`
	// Pages is the page count of a span carved into objects of this class.
	Pages uint8 `json:"pages"`
	// NumToMove is the batch size between per-thread and central caches.
	NumToMove uint8 `json:"num_to_move"`
}

// Table is an ordered class table. Row 0 is the zero sentinel.
type Table []SizeClassInfo

// Clone returns a copy of t.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	return append(Table(nil), t...)
}

// String returns t in the override text form, sentinel omitted.
func (t Table) String() string {
	return string(t.appendText(nil))
}

func (t Table) appendText(b []byte) []byte {
	for c := 1; c < len(t); c++ {
		if c > 1 {
			b = append(b, ';')
		}
		b = strconv.AppendUint(b, uint64(t[c].Size), 10)
		b = append(b, ',')
		b = strconv.AppendUint(b, uint64(t[c].Pages), 10)
		b = append(b, ',')
		b = strconv.AppendUint(b, uint64(t[c].NumToMove), 10)
	}
	return b
}

// Checksum identifies the content of t.
func (t Table) Checksum() uint64 {
	buf := make([]byte, 0, len(t)*6)
	for _, info := range t {
		buf = order.AppendUint32(buf, info.Size)
		buf = append(buf, info.Pages, info.NumToMove)
	}
	return xxh3.Hash(buf)
}

var order = binary.LittleEndian
