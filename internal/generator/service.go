package generator

import "sync"

type serveRequest struct {
	n    int
	resp chan serveResponse
}

type serveResponse struct {
	out []byte
	err error
}

// Serialized guards a ByteGenerator behind a request/response channel pair so
// that multiple goroutines can share one instance: the service loop handles
// exactly one request at a time, which keeps the backend's read-modify-write
// state transitions strictly ordered. Close terminates the service loop and
// permanently disables further output.
type Serialized struct {
	reqs      chan serveRequest
	done      chan struct{}
	closeOnce sync.Once
}

var _ ByteGenerator = (*Serialized)(nil)

// Serve starts a service loop over gen and returns its serialized handle. The
// caller must not touch gen directly afterwards.
func Serve(gen ByteGenerator) *Serialized {
	s := &Serialized{
		reqs: make(chan serveRequest),
		done: make(chan struct{}),
	}

	go func() {
		for {
			select {
			case req := <-s.reqs:
				out, err := gen.Next(req.n)
				req.resp <- serveResponse{out: out, err: err}
			case <-s.done:
				if c, ok := gen.(interface{ Close() }); ok {
					c.Close()
				}
				return
			}
		}
	}()

	return s
}

// Next forwards the request to the service loop and awaits its single
// response. After Close it fails with ErrClosed.
func (s *Serialized) Next(n int) ([]byte, error) {
	req := serveRequest{n: n, resp: make(chan serveResponse, 1)}
	select {
	case s.reqs <- req:
	case <-s.done:
		return nil, ErrClosed
	}

	resp := <-req.resp
	return resp.out, resp.err
}

// Close stops the service loop. In-flight requests complete; later ones fail
// with ErrClosed. Closing twice is a no-op.
func (s *Serialized) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}
