// pkg/source/source.go

package source

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"OneBRC/pkg/buffer"
	"OneBRC/pkg/compress"
	"OneBRC/pkg/utils"
)

var logger = utils.GetLogger("onebrc")

// Options for opening an input.
type Options struct {
	BwLimit int64 // bytes per second, 0 means unlimited
}

// Open loads the input named by uri into a read-only buffer. A plain local
// file is memory-mapped; compressed (.lz4, .zst) or throttled inputs and
// sftp:// URIs are read into memory. The caller owns one reference.
func Open(ctx context.Context, uri string, opts *Options) (*buffer.Buffer, error) {
	if opts == nil {
		opts = &Options{}
	}
	if strings.HasPrefix(uri, "sftp://") {
		r, size, err := openSFTP(ctx, uri)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return load(r, size, Redact(uri), opts)
	}

	f, err := os.Open(uri)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if compress.ForPath(uri).Name() == "Noop" && opts.BwLimit <= 0 {
		return buffer.Map(f)
	}
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return load(f, fi.Size(), uri, opts)
}

func load(r io.Reader, size int64, uri string, opts *Options) (*buffer.Buffer, error) {
	if size < 0 || int64(int(size)) != size {
		return nil, errors.Errorf("%s: invalid size %d", uri, size)
	}
	data := make([]byte, size)
	if _, err := io.ReadFull(newLimited(r, opts.BwLimit), data); err != nil {
		return nil, errors.Wrapf(err, "read %s", uri)
	}
	c := compress.ForPath(uri)
	if c.Name() == "Noop" {
		return buffer.New(data), nil
	}
	raw, err := compress.Decode(c, data)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", uri)
	}
	logger.Debugf("decompressed %s: %d -> %d bytes", uri, len(data), len(raw))
	return buffer.New(raw), nil
}
