package protoexport

import (
	"io"
	"os"
	"path/filepath"

	"github.com/jhump/protoreflect/v2/protoprint"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Render prints fd as .proto source.
func Render(fd protoreflect.FileDescriptor, w io.Writer) error {
	pp := protoprint.Printer{}
	return pp.PrintProtoFile(fd, w)
}

// WriteFile renders fd into outDir at the descriptor's path and returns the path written.
func WriteFile(fd protoreflect.FileDescriptor, outDir string) (string, error) {
	fp := filepath.Join(outDir, filepath.FromSlash(fd.Path()))
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return "", err
	}
	f, err := os.OpenFile(fp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return "", err
	}
	if err := Render(fd, f); err != nil {
		f.Close()
		return "", err
	}
	return fp, f.Close()
}
