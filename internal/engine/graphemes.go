package engine

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// graphemeBoundaries lists the rune offsets at which grapheme clusters
// start, plus the final offset.
func graphemeBoundaries(text string) []int {
	bounds := make([]int, 0, len(text)+1)
	bounds = append(bounds, 0)
	offset := 0
	state := -1
	rest := text
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		offset += utf8.RuneCountInString(cluster)
		bounds = append(bounds, offset)
	}
	return bounds
}

func prevGrapheme(text string, offset int) int {
	prev := 0
	for _, b := range graphemeBoundaries(text) {
		if b >= offset {
			break
		}
		prev = b
	}
	return prev
}

func nextGrapheme(text string, offset int) int {
	bounds := graphemeBoundaries(text)
	for _, b := range bounds {
		if b > offset {
			return b
		}
	}
	return bounds[len(bounds)-1]
}
