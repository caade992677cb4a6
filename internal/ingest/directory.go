// Package ingest discovers candidate files for a batch run.
package ingest

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joseph-ayodele/doc-renamer/constants"
	"github.com/joseph-ayodele/doc-renamer/internal/common"
)

type DirStats struct {
	Scanned uint32
	PDFs    uint32
	Images  uint32
	Ignored uint32
}

// DiscoverFiles lists candidate files under root and partitions them into
// the PDF batch and the screenshot batch. The listing is flat unless
// recursive is set; hidden files and directories are skipped. Each batch is
// sorted lexicographically by path so collision-resolution outcomes are
// reproducible for a given directory.
func DiscoverFiles(root string, recursive bool) (pdfs, images []string, stats DirStats, err error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, nil, stats, common.ConfigError("cannot read input directory "+root, err)
	}
	if !info.IsDir() {
		return nil, nil, stats, common.ConfigError(root+" is not a directory", common.ErrInvalidInput)
	}

	add := func(path string) {
		stats.Scanned++
		switch constants.MapExtToFormat(filepath.Ext(path)) {
		case constants.PDF:
			stats.PDFs++
			pdfs = append(pdfs, path)
		case constants.IMAGE:
			stats.Images++
			images = append(images, path)
		default:
			stats.Ignored++
		}
	}

	if recursive {
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if isHidden(path) && path != root {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.IsDir() {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, nil, stats, common.WrapError(err, "walk "+root)
		}
	} else {
		entries, readErr := os.ReadDir(root)
		if readErr != nil {
			return nil, nil, stats, common.ConfigError("cannot read input directory "+root, readErr)
		}
		for _, entry := range entries {
			if entry.IsDir() || isHidden(entry.Name()) {
				continue
			}
			add(filepath.Join(root, entry.Name()))
		}
	}

	sort.Strings(pdfs)
	sort.Strings(images)
	return pdfs, images, stats, nil
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
