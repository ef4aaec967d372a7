package ropes

import "io"

// Reader returns a reader for the bytes of the tree rooted at n.
//
// The reader is invalidated by any mutation of the tree.
func (n *Node) Reader() io.Reader {
	return &ropeReader{root: n, size: n.TotalSize()}
}

type ropeReader struct {
	root   *Node
	size   int
	cursor int
}

func (rr *ropeReader) Read(p []byte) (n int, err error) {
	l := len(p)
	if rr.cursor+l > rr.size {
		l = rr.size - rr.cursor
		if l == 0 {
			return 0, io.EOF
		}
	}
	s, err := rr.root.Report(rr.cursor, l)
	if err != nil {
		return 0, err
	}
	n = copy(p, s)
	rr.cursor += n
	return n, nil
}
