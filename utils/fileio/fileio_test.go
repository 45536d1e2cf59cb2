package fileio

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/spf13/afero"
)

type failingCloser struct{}

func (failingCloser) Close() error { return errors.New("boom") }

func TestClose_LogsError(t *testing.T) {
	var logged string
	Close(failingCloser{}, func(format string, args ...interface{}) {
		logged = fmt.Sprintf(format, args...)
	}, "closing thing")

	if logged != "closing thing: boom" {
		t.Errorf("Unexpected log line %q", logged)
	}

	// nil closer and nil logger must not panic
	Close(nil, nil, "nothing")
	Close(failingCloser{}, nil, "silent")
}

func TestExists(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/a/file.ico", []byte("x"), 0o644)

	if !Exists(fs, "/a/file.ico") {
		t.Error("Expected file to exist")
	}
	if Exists(fs, "/a") {
		t.Error("Directories should not count as files")
	}
	if Exists(fs, "/a/missing.ico") || Exists(fs, "") {
		t.Error("Expected missing paths to be reported as absent")
	}
}

func TestMkdirAll(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := MkdirAll(fs, 0o755, "/x/img/icon", "/x/img/banner"); err != nil {
		t.Fatal(err)
	}
	for _, dir := range []string{"/x/img/icon", "/x/img/banner"} {
		if ok, _ := afero.DirExists(fs, dir); !ok {
			t.Errorf("Expected %s to exist", dir)
		}
	}

	ro := afero.NewReadOnlyFs(afero.NewMemMapFs())
	if err := MkdirAll(ro, 0o755, "/y"); err == nil {
		t.Error("Expected an error on a read-only filesystem")
	}
}

func TestCopyFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/src.json", []byte("original"), 0o644)
	afero.WriteFile(fs, "/dst.json", []byte("something much longer"), 0o644)

	if err := CopyFile(fs, "/src.json", "/dst.json"); err != nil {
		t.Fatal(err)
	}
	data, _ := afero.ReadFile(fs, "/dst.json")
	if string(data) != "original" {
		t.Errorf("Expected copied content, got %q", data)
	}

	if err := CopyFile(fs, "/missing.json", "/dst.json"); err == nil {
		t.Error("Expected an error for a missing source")
	}
}

func TestWriteFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	err := WriteFile(fs, "/out.txt", func(w io.Writer) error {
		_, err := io.WriteString(w, "hello")
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	data, _ := afero.ReadFile(fs, "/out.txt")
	if string(data) != "hello" {
		t.Errorf("Expected hello, got %q", data)
	}

	wantErr := errors.New("encode failed")
	if err := WriteFile(fs, "/out.txt", func(io.Writer) error { return wantErr }); !errors.Is(err, wantErr) {
		t.Errorf("Expected writer error to be returned, got %v", err)
	}
}

func TestWriteFile_RemovesPartialFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/img/banner/Hades_banner.jpg", []byte("old"), 0o644)

	err := WriteFile(fs, "/img/banner/Hades_banner.jpg", func(w io.Writer) error {
		io.WriteString(w, "\xff\xd8 half a jpeg")
		return errors.New("encoder stopped")
	})
	if err == nil {
		t.Fatal("Expected the writer error")
	}
	if Exists(fs, "/img/banner/Hades_banner.jpg") {
		t.Error("Expected the truncated file to be removed")
	}
}
