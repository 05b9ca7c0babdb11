// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package sdr provides sparse distributed representations: a Pattern is a
sorted set of active indices within a fixed size space, carrying an optional
Data payload and the handles of the area and source patterns it came from.

All patterns live in a Store, which deduplicates them by index-set identity
(FindOrCreate) and hands out PatternID handles.  The Store never evicts: it
grows for the lifetime of a run, which is fine for bounded experiments (see
SizeReport for the current footprint).

The Processor implements the randomized sparse projection used by encoder
areas to turn a combined input pattern into a stable output code, with
"highway" shortcuts that bias later passes toward previously selected
input -> output mappings.
*/
package sdr
