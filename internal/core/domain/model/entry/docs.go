// Package entry models catalog entries (books, episodes, movies) and the
// ordering engine that keeps their order_in_series gapless.
//
// An Entry belongs to exactly one series and holds a 1-based Position inside
// it. For every series with N entries the positions are exactly {1..N}; no
// gaps, no duplicates. Only Ordering may assign an entry's series or
// position, so every writer goes through the bounds checks and sibling
// renumbering below:
//
//	insert          siblings with position >= v          shift +1
//	move forward    siblings with old < position <= v    shift -1
//	move backward   siblings with v <= position < old    shift +1
//	same position   nothing
//	relocate        old series: position > old  shift -1,
//	                new series: position >= v   shift +1
//	remove          siblings with position > old         shift -1
//
// Ordering works on a PositionStore handed in per call. Callers pass the
// entry repository bound to their current transaction so the renumbering and
// the entry's own write commit or roll back together.
package entry
