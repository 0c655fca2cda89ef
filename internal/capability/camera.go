package capability

import (
	"context"

	"go.uber.org/zap"
)

// FrameStream is an open capture stream that can yield one encoded frame.
type FrameStream interface {
	// Frame blocks until the stream is ready and returns one encoded frame.
	Frame() ([]byte, error)
	// Close releases the underlying stream resources.
	Close() error
}

// StreamOpener acquires a capture stream from the camera provider.
type StreamOpener interface {
	Open(ctx context.Context) (FrameStream, error)
}

// Camera grabs single frames from a StreamOpener. The stream is released on
// every exit path; a new capture first closes any stream a prior attempt left
// dangling.
type Camera struct {
	opener StreamOpener
	last   FrameStream
	log    *zap.Logger
}

// NewCamera constructs a Camera over the given opener.
func NewCamera(opener StreamOpener, log *zap.Logger) *Camera {
	if log == nil {
		log = zap.NewNop()
	}
	return &Camera{opener: opener, log: log}
}

// Capture opens a stream, grabs exactly one frame, releases the stream and
// returns the frame or the provider's error message.
func (c *Camera) Capture(ctx context.Context) Result[[]byte] {
	if c.last != nil {
		// Superseded by this request.
		if err := c.last.Close(); err != nil {
			c.log.Warn("close dangling camera stream", zap.Error(err))
		}
		c.last = nil
	}

	stream, err := c.opener.Open(ctx)
	if err != nil {
		return Failure[[]byte](err.Error())
	}
	c.last = stream
	defer func() {
		if c.last != nil {
			if cerr := c.last.Close(); cerr != nil {
				c.log.Warn("close camera stream", zap.Error(cerr))
			}
			c.last = nil
		}
	}()

	frame, err := stream.Frame()
	if err != nil {
		return Failure[[]byte](err.Error())
	}
	return Success(frame)
}
