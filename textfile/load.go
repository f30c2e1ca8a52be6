package textfile

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync/atomic"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/termtext"
	"github.com/npillmayer/termtext/markup"
	"github.com/npillmayer/termtext/styled"
)

/*
BSD 3-Clause License

Copyright (c) 2020–24, Norbert Pillmayer

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

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// MaxSize is the size limit for markup files.
const MaxSize = 16 * oneMb

var bom = []byte{0xEF, 0xBB, 0xBF}

// Load reads a file, which must be a UTF-8 text file, and parses its content
// as markup.
func Load(name string, opts ...markup.Option) (*styled.Text, error) {
	return LoadFS(osFS{}, name, opts...)
}

// LoadFS reads a markup file from a file system.
func LoadFS(fsys fs.FS, name string, opts ...markup.Option) (*styled.Text, error) {
	l := NewLoader(fsys, opts...)
	defer l.Close()
	return l.Load(name)
}

// --- Loader ----------------------------------------------------------------

// Progress is broadcast by a Loader for every fragment of a file read.
type Progress struct {
	Path   string // file being loaded
	Loaded int64  // bytes read so far
	Size   int64  // total size of the file
}

// Done is true for the last fragment of a file.
func (p Progress) Done() bool {
	return p.Loaded >= p.Size
}

// Loader loads markup files from a file system and broadcasts the progress of
// loading to subscribers. A loader may load any number of files; it has to be
// closed after use, which closes all subscriptions.
type Loader struct {
	fsys   fs.FS
	opts   []markup.Option
	cast   *caster.Caster
	closed atomic.Bool
}

// NewLoader creates a loader for files of fsys, parsed with markup options
// opts. If fsys is nil, files are looked up by OS paths.
func NewLoader(fsys fs.FS, opts ...markup.Option) *Loader {
	if fsys == nil {
		fsys = osFS{}
	}
	return &Loader{fsys: fsys, opts: opts, cast: caster.New(nil)}
}

// Subscribe returns a channel of Progress messages for all files loaded after
// the call. The channel is closed when ctx is done or the loader is closed.
func (l *Loader) Subscribe(ctx context.Context) (<-chan Progress, error) {
	if l.closed.Load() {
		return nil, fmt.Errorf("%w: loader is closed", termtext.ErrUnsupportedOperation)
	}
	sub, ok := l.cast.Sub(ctx, 16)
	if !ok {
		return nil, fmt.Errorf("%w: loader is closed", termtext.ErrUnsupportedOperation)
	}
	progress := make(chan Progress, 16)
	go func() {
		defer close(progress)
		for m := range sub {
			if p, ok := m.(Progress); ok {
				progress <- p
			}
		}
	}()
	return progress, nil
}

// Load reads a file and parses it as markup.
func (l *Loader) Load(name string) (*styled.Text, error) {
	tf, err := openFile(l.fsys, name)
	if err != nil {
		return nil, err
	}
	defer tf.file.Close()
	tf.cast = l.cast
	content, err := tf.read()
	if err != nil {
		return nil, err
	}
	tracer().Debugf("textfile: loaded %d bytes from %s", len(content), name)
	return markup.Parse(content, l.opts...), nil
}

// Close ends all subscriptions. Closing a loader twice is a no-op.
func (l *Loader) Close() {
	if l.closed.Swap(true) {
		return
	}
	l.cast.Close()
}

// textFile represents a file which will be loaded as a styled text.
type textFile struct {
	path string      // file name
	info fs.FileInfo // result from Stat(path)
	file fs.File     // file handle
	cast *caster.Caster
}

// openFile opens a file and collects some useful information on it,
// checking for error conditions.
func openFile(fsys fs.FS, name string) (*textFile, error) {
	fi, err := fs.Stat(fsys, name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", termtext.ErrIllegalArguments, name)
	} else if fi.Size() > MaxSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", termtext.ErrIllegalArguments, name, MaxSize)
	}
	file, err := fsys.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	return &textFile{path: name, info: fi, file: file}, nil
}

// fragSize selects the size of fragments to read a file in.
func (tf *textFile) fragSize() int64 {
	size := tf.info.Size()
	switch {
	case size < 64:
		return max(size, 1)
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	}
	return sixKb
}

// read loads the content of a file in fragments. The file has to be valid
// UTF-8; a leading byte order mark is dropped.
func (tf *textFile) read() (string, error) {
	var buf bytes.Buffer
	buf.Grow(int(tf.info.Size()))
	frag := make([]byte, tf.fragSize())
	for {
		n, err := tf.file.Read(frag)
		buf.Write(frag[:n])
		if n > 0 && tf.cast != nil {
			tf.cast.Pub(Progress{Path: tf.path, Loaded: int64(buf.Len()), Size: tf.info.Size()})
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return "", fmt.Errorf("error loading text fragment of %s: %w", tf.path, err)
		}
	}
	content := bytes.TrimPrefix(buf.Bytes(), bom)
	if !utf8.Valid(content) {
		return "", fmt.Errorf("%w: %s is not a UTF-8 text file", termtext.ErrIllegalArguments, tf.path)
	}
	return string(content), nil
}

// osFS opens files by OS paths, which os.DirFS cannot do for absolute paths.
type osFS struct{}

func (osFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

func (osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}
