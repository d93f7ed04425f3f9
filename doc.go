// Package wordgrid locates words inside 2D character grids — the classic
// “word search” puzzle — and ranks them by how often they occur.
//
// 🚀 What is wordgrid?
//
//	A small, focused library split into two subpackages:
//		• grid/       — validates a rectangular character matrix and flattens it
//		  into scan lines: every row plus every column (read top-to-bottom).
//		• wordsearch/ — counts occurrences of query words across those scan
//		  lines and returns the most frequent matches, ranked.
//
// ✨ Why choose wordgrid?
//
//   - Minimal API – build a grid once, query it as often as you like
//   - Deterministic – ties in frequency break by lexicographic word order
//   - Pure Go – no cgo, no hidden deps
//   - Read-only index – a built grid never mutates, so concurrent readers
//     need no locking
//
// Quick ASCII example:
//
//	    a b c d c
//	    f g w i o
//	    c h i l l     ← “chill” hides in the middle row
//	    p q n s d
//	    u v d w y
//
// Dive into grid/doc.go and wordsearch/doc.go for the full contracts,
// complexity notes and error sets.
//
//	go get github.com/rodrigo714/wordgrid
package wordgrid
