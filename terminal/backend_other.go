//go:build !unix

package terminal

import "time"

// otherBackend reports every operation as unsupported; the tcell driver
// remains available on these platforms
type otherBackend struct{}

func newBackend() Backend {
	return otherBackend{}
}

func (otherBackend) Init() error                        { return ErrUnsupported }
func (otherBackend) Fini() error                        { return nil }
func (otherBackend) Size() (int, int, error)            { return 0, 0, ErrUnsupported }
func (otherBackend) Write(p []byte) (int, error)        { return 0, ErrUnsupported }
func (otherBackend) Read(time.Duration) ([]byte, error) { return nil, ErrUnsupported }
