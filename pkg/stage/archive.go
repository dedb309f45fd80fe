// pkg/stage/archive.go
package stage

import (
	"archive/tar"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ulikunitz/xz"
)

// Pack archives the caged install root at rootDir into a tar.xz artifact at
// destPath. Entry names are relative to rootDir so the artifact unpacks
// over any prefix.
func Pack(rootDir, destPath string) error {
	info, err := os.Stat(rootDir)
	if err != nil {
		return fmt.Errorf("staging root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("staging root %s is not a directory", rootDir)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("creating artifact directory: %w", err)
	}

	dest, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("creating artifact: %w", err)
	}
	defer dest.Close()

	xzWriter, err := xz.NewWriter(dest)
	if err != nil {
		return fmt.Errorf("creating xz writer: %w", err)
	}

	tarWriter := tar.NewWriter(xzWriter)

	walkErr := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == rootDir {
			return nil
		}
		return addEntry(tarWriter, rootDir, path, d)
	})

	if err := tarWriter.Close(); err != nil && walkErr == nil {
		walkErr = fmt.Errorf("closing tar stream: %w", err)
	}
	if err := xzWriter.Close(); err != nil && walkErr == nil {
		walkErr = fmt.Errorf("closing xz stream: %w", err)
	}

	return walkErr
}

// addEntry writes one filesystem entry into the tar stream.
func addEntry(tw *tar.Writer, rootDir, path string, d fs.DirEntry) error {
	info, err := d.Info()
	if err != nil {
		return err
	}

	link := ""
	if info.Mode()&os.ModeSymlink != 0 {
		if link, err = os.Readlink(path); err != nil {
			return fmt.Errorf("reading symlink %s: %w", path, err)
		}
	}

	header, err := tar.FileInfoHeader(info, link)
	if err != nil {
		return fmt.Errorf("tar header for %s: %w", path, err)
	}

	rel, err := filepath.Rel(rootDir, path)
	if err != nil {
		return err
	}
	header.Name = filepath.ToSlash(rel)
	if info.IsDir() {
		header.Name += "/"
	}

	if err := tw.WriteHeader(header); err != nil {
		return fmt.Errorf("writing header for %s: %w", rel, err)
	}

	if !info.Mode().IsRegular() {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(tw, f); err != nil {
		return fmt.Errorf("archiving %s: %w", rel, err)
	}
	return nil
}
