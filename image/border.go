package image

import (
	hwyimage "github.com/ajroetker/go-highway/hwy/contrib/image"
)

// BorderType selects how samples outside the buffer are synthesised.
// The zero value is BORDER_REFLECT_101.
type BorderType int

const (
	BORDER_REFLECT_101 BorderType = iota // dcb|abcd|cba
	BORDER_CONSTANT                      // vvv|abcd|vvv
	BORDER_REPLICATE                     // aaa|abcd|ddd
	BORDER_REFLECT                       // cba|abcd|dcb
	BORDER_WRAP                          // bcd|abcd|abc

	BORDER_DEFAULT = BORDER_REFLECT_101
)

func (b BorderType) String() string {
	switch b {
	case BORDER_CONSTANT:
		return "constant"
	case BORDER_REPLICATE:
		return "replicate"
	case BORDER_REFLECT:
		return "reflect"
	case BORDER_WRAP:
		return "wrap"
	case BORDER_REFLECT_101:
		return "reflect101"
	default:
		return "unknown"
	}
}

func (b BorderType) Valid() bool {
	return b >= BORDER_REFLECT_101 && b <= BORDER_WRAP
}

// Index maps coordinate i onto [0, size). It returns -1 when the sample must
// come from the constant border value instead.
func (b BorderType) Index(i int, size int) int {
	if i >= 0 && i < size {
		return i
	}
	switch b {
	case BORDER_REPLICATE:
		return hwyimage.Clamp(i, size)
	case BORDER_REFLECT:
		return hwyimage.Mirror(i, size)
	case BORDER_WRAP:
		return hwyimage.Wrap(i, size)
	case BORDER_REFLECT_101:
		return reflect101(i, size)
	default:
		return -1
	}
}

// IndexTable resolves every coordinate in [-before, size+after) up front so
// the inner loops of a filter are plain slice lookups. Entry k holds the
// mapping for coordinate k-before.
func (b BorderType) IndexTable(size int, before int, after int) []int {
	table := make([]int, size+before+after)
	for k := range table {
		table[k] = b.Index(k-before, size)
	}
	return table
}

func reflect101(i int, size int) int {
	if size == 1 {
		return 0
	}
	period := 2*size - 2
	i %= period
	if i < 0 {
		i += period
	}
	if i >= size {
		i = period - i
	}
	return i
}
