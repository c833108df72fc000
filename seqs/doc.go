/*
Package seqs provides sequence sources and flow-control helpers for
feeding iter.Seq consumers.

  - Sources: [Range], [Repeat], [Counter].
  - Flow control: [Take], [Skip].

[Counter] never terminates on its own; combine it with [Take] before
handing it to anything that drains its input to completion.
*/
package seqs
