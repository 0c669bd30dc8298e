package runtime

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/ThomasMertes/seed7-sub008/object"
)

// Stats counts object headers built and freed, per category.
type Stats struct {
	Built       map[object.Category]int
	Freed       map[object.Category]int
	DoubleFrees int
}

// NewStats creates zeroed statistics.
func NewStats() *Stats {
	return &Stats{
		Built: make(map[object.Category]int),
		Freed: make(map[object.Category]int),
	}
}

// CountBuilt records a new object.
func (s *Stats) CountBuilt(cat object.Category) {
	s.Built[cat]++
}

// CountFreed records a released object.
func (s *Stats) CountFreed(cat object.Category) {
	s.Freed[cat]++
}

// Live returns the number of objects built and not yet freed.
func (s *Stats) Live() int {
	n := 0
	for _, c := range s.Built {
		n += c
	}
	for _, c := range s.Freed {
		n -= c
	}
	return n
}

func (s *Stats) String() string {
	cats := make([]int, 0, len(s.Built))
	for c := range s.Built {
		cats = append(cats, int(c))
	}
	for c := range s.Freed {
		if _, ok := s.Built[c]; !ok {
			cats = append(cats, int(c))
		}
	}
	slices.Sort(cats)
	var b strings.Builder
	for _, c := range cats {
		cat := object.Category(c)
		fmt.Fprintf(&b, "%-18s built %6d  freed %6d\n", cat, s.Built[cat], s.Freed[cat])
	}
	fmt.Fprintf(&b, "live %d, double frees %d", s.Live(), s.DoubleFrees)
	return b.String()
}
