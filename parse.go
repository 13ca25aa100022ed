package sizemap

import (
	"errors"
	"strconv"
	"strings"
)

// ParseSizeClasses parses override text into a table of numClasses rows.
//
// The text lists classes 1..numClasses-1 in order as `size,pages,num_to_move`
// triples separated by ';'; class 0 is the implied zero sentinel. Blanks
// around tokens and one trailing ';' are accepted. Blank text yields a nil
// table and a nil error. Anything else that does not describe exactly
// numClasses-1 rows is rejected as a whole with a *ParseError. The result
// is not validated.
func ParseSizeClasses(text string, numClasses int) (Table, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	if numClasses < 2 {
		return nil, &ParseError{Err: ErrClassCount}
	}

	t := make(Table, 1, numClasses)
	entries := strings.Split(text, ";")

	// a trailing ';' leaves one blank entry behind.
	if n := len(entries); n > 1 && strings.TrimSpace(entries[n-1]) == "" {
		entries = entries[:n-1]
	}

	var off int
	for _, entry := range entries {
		c := len(t)
		if c >= numClasses {
			return nil, &ParseError{Class: c, Offset: off, Err: ErrClassCount}
		}

		info, err := parseClass(entry, off)
		if err != nil {
			err.Class = c
			return nil, err
		}
		t = append(t, info)
		off += len(entry) + 1
	}

	if len(t) != numClasses {
		return nil, &ParseError{Class: len(t), Offset: len(text), Err: ErrClassCount}
	}
	return t, nil
}

func parseClass(entry string, off int) (SizeClassInfo, *ParseError) {
	var (
		info   SizeClassInfo
		fields = strings.Split(entry, ",")
	)
	if len(fields) != 3 {
		return info, &ParseError{Offset: off, Err: ErrFieldCount}
	}

	var vals [3]uint64
	bits := [3]int{32, 8, 8}
	for i, field := range fields {
		v, err := parseField(field, bits[i])
		if err != nil {
			return info, &ParseError{Offset: off, Err: err}
		}
		vals[i] = v
		off += len(field) + 1
	}

	info.Size = uint32(vals[0])
	info.Pages = uint8(vals[1])
	info.NumToMove = uint8(vals[2])
	return info, nil
}

func parseField(field string, bitSize int) (uint64, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return 0, ErrEmptyField
	}
	v, err := strconv.ParseUint(field, 10, bitSize)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrOutOfRange
		}
		return 0, ErrSyntax
	}
	return v, nil
}
