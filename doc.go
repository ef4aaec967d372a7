/*
Package ropes implements a rope, a tree-structured representation of text
which supports prepending, appending, positional insertion and range deletion
without re-assembling the complete string on every edit.

# Ropes

Ropes (sometimes called cords) organize fragments of text in a binary tree.
Text editors and document processors use them to avoid copying the whole
document for every keystroke.

Unlike the classic rope of Boehm, Atkinson and Plass, where text lives in the
leaves only, every node of this rope carries text of its own. A node's own text
is located between the text of its left subtree and the text of its right
subtree:

	       "345"
	      /     \
	  "012"     "7"
	           /   \
	         "6"   "8"
	                 \
	                 "9"

spells "0123456789". A logical offset into the document is resolved by
comparing it against the total size of the left subtree, the size of the
node's own text and the total size of the right subtree, descending into
whichever part holds the offset.

Positions are byte offsets. The package treats text as a sequence of atomic
code units and does not care about UTF-8 or grapheme boundaries.

# Ownership

Every node is owned by exactly one parent. Operations mutate trees in place
and return the node which should be treated as the root afterwards, as
rotations may change it:

	root := ropes.New("test")
	root = ropes.Insert(root, "123", 2)   // "te123st"
	root = ropes.DeleteRange(root, 0, 2)  // "123st"
	root = ropes.Rebalance(root)

Ropes are not safe for concurrent mutation. Clients have to serialize all
calls to mutating operations on a tree.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ropes

import (
	"sync"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// T traces to a global core-tracer. If clients did not set up
// gtrace.CoreTracer, errors are logged with the standard logger.
func T() tracing.Trace {
	if gtrace.CoreTracer != nil {
		return gtrace.CoreTracer
	}
	return fallbackTracer()
}

var fallbackTracer = sync.OnceValue(func() tracing.Trace {
	tracer := gologadapter.New()
	tracer.SetTraceLevel(tracing.LevelError)
	return tracer
})

// RopeError is an error type for the ropes module
type RopeError string

func (e RopeError) Error() string {
	return string(e)
}

// ErrRopeCompleted signals that a rope builder has already completed a rope and
// it's illegal to further add fragments.
const ErrRopeCompleted = RopeError("forbidden to add fragments; rope has been completed")

// ErrIndexOutOfBounds is flagged whenever a rope position is
// greater than the length of the rope.
const ErrIndexOutOfBounds = RopeError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = RopeError("illegal arguments")

// ErrMalformedShape is flagged when a rope is to be constructed from a
// nested record which does not follow the {text, left, right} layout.
const ErrMalformedShape = RopeError("malformed rope shape")

// ErrInvariantViolated is flagged by Check for a structurally broken tree.
const ErrInvariantViolated = RopeError("rope invariant violated")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
