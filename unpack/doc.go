/*
Package unpack destructures a lazy sequence into a fixed leading group of
named slots, an optional variable-length middle run, and a fixed trailing
group of named slots — in a single forward pass.

A [Pattern] is compiled once from an ordered slot list:

	p := unpack.MustCompile([]string{"first", "second", "*rest", "last"})

Slot syntax:

  - "name" binds one element to a fixed slot;
  - "*name" marks the single middle collector, absorbing every element
    between the leading and trailing groups;
  - "*" collects nothing: the middle run is consumed and discarded;
  - "_" occupies a fixed position without binding a retrievable name.

[Run] consumes an iter.Seq against the pattern and reports either a
[Binding] or a typed error; [Unpack] additionally dispatches to exactly
one of two caller-supplied continuations:

	n := unpack.Unpack(p, seqs.Range(0, 6, 1),
		func(b *unpack.Binding[int]) int { return b.Trailing[0] },
		func(err error) int { return -1 },
	)

# Memory and termination

When a middle collector is present the unpacker buffers at most
trailing-count elements in a FIFO window, independent of sequence length.
The sequence is consumed exactly once and never replayed. An unbounded
sequence combined with a middle collector never completes; bounding the
source (for example with seqs.Take) is the caller's responsibility.

# Failure

Compilation problems ([ErrMalformedPattern]) are configuration errors and
surface before any sequence is touched. A sequence too short for the
pattern yields [ErrTooFewElements] at run time; nothing is partially
bound. With [WithExact], surplus elements yield [ErrTooManyElements].
*/
package unpack
