package capability

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrCameraUnavailable is returned when no snapshot endpoint is configured.
var ErrCameraUnavailable = errors.New("camera is not available")

// SnapshotOpener opens capture streams against an HTTP snapshot endpoint
// (IP-webcam style: one GET returns one encoded frame).
type SnapshotOpener struct {
	client *http.Client
	url    string
}

// NewSnapshotOpener constructs a SnapshotOpener. An empty url marks the
// camera as unavailable.
func NewSnapshotOpener(client *http.Client, url string) *SnapshotOpener {
	if client == nil {
		client = http.DefaultClient
	}
	return &SnapshotOpener{client: client, url: url}
}

// Open issues the snapshot request. The returned stream owns the response
// body until Close.
func (o *SnapshotOpener) Open(ctx context.Context) (FrameStream, error) {
	if o.url == "" {
		return nil, ErrCameraUnavailable
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("camera provider returned %s", resp.Status)
	}
	return &snapshotStream{body: resp.Body}, nil
}

type snapshotStream struct {
	body io.ReadCloser
}

func (s *snapshotStream) Frame() ([]byte, error) {
	return io.ReadAll(s.body)
}

func (s *snapshotStream) Close() error {
	return s.body.Close()
}
