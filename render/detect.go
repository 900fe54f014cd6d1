package render

import (
	"archive/zip"
	"bytes"
	"io"
	"os"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
	"github.com/h2non/filetype/types"
)

const headerSize = 512

var typeJSON = filetype.NewType("json", "application/json")

func init() {
	filetype.AddMatcher(typeJSON, matchJSON)
}

// matchJSON recognizes payload by first significant character of a JSON
// object or array. UTF-8 BOM is tolerated.
func matchJSON(buf []byte) bool {
	buf = bytes.TrimPrefix(buf, []byte{0xEF, 0xBB, 0xBF})
	buf = bytes.TrimLeft(buf, " \t\r\n")
	return len(buf) > 0 && (buf[0] == '{' || buf[0] == '[')
}

func readHeader(r io.Reader) ([]byte, error) {
	buf := make([]byte, headerSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	return buf[:n], nil
}

func matchFile(path string) (types.Type, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.Unknown, err
	}
	defer f.Close()

	header, err := readHeader(f)
	if err != nil {
		return types.Unknown, err
	}
	kind, err := filetype.Match(header)
	if err != nil {
		return types.Unknown, nil
	}
	return kind, nil
}

func isArchiveFile(path string) (bool, error) {
	kind, err := matchFile(path)
	if err != nil {
		return false, err
	}
	return kind == matchers.TypeZip, nil
}

func isPayloadFile(path string) (bool, error) {
	kind, err := matchFile(path)
	if err != nil {
		return false, err
	}
	return kind == typeJSON, nil
}

func isPayloadInArchive(f *zip.File) (bool, error) {
	r, err := f.Open()
	if err != nil {
		return false, err
	}
	defer r.Close()

	header, err := readHeader(r)
	if err != nil {
		return false, err
	}
	return filetype.Is(header, typeJSON.Extension), nil
}
