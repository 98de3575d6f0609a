// Package inventory discovers calculation folders under a benchmark root.
// Each immediate child directory holds the job files for one chemical
// species; bookkeeping directories are skipped. The scan is read-only and
// its output order is deterministic.
package inventory

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Directory names excluded from scanning anywhere they appear.
var skipDirs = map[string]struct{}{
	"results": {},
	"jobinfo": {},
	"logs":    {},
	"reports": {},
	"figures": {},
}

const (
	primaryOutputName = "orca.out"
	slurmPrefix       = "slurm"
)

var specialGeometry = regexp.MustCompile(`(?i)(_trj|_initial)\.xyz$`)

// Folder describes one calculation directory. It is never mutated after the
// scan; selection and extraction work from copies of these descriptors.
type Folder struct {
	Path         string
	Name         string
	GeometryFile string
	InputFiles   []string
	OutputFiles  []string
}

// HasOutput reports whether the folder holds at least one non-diagnostic
// output file.
func (f Folder) HasOutput() bool {
	return len(f.OutputFiles) > 0
}

// PrimaryOutput returns the preferred output file, or "" when none exists.
// An explicit orca.out wins over everything else; ties break by name.
func (f Folder) PrimaryOutput() string {
	for _, path := range f.OutputFiles {
		if strings.EqualFold(filepath.Base(path), primaryOutputName) {
			return path
		}
	}
	if len(f.OutputFiles) > 0 {
		return f.OutputFiles[0]
	}
	return ""
}

// Scan lists the calculation folders directly under root, sorted by name.
func Scan(root string) ([]Folder, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("scan root: %w", err)
	}
	folders := make([]Folder, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, skip := skipDirs[strings.ToLower(entry.Name())]; skip {
			continue
		}
		folder, err := describeFolder(filepath.Join(root, entry.Name()))
		if err != nil {
			return nil, err
		}
		folders = append(folders, folder)
	}
	sort.Slice(folders, func(i, j int) bool { return folders[i].Name < folders[j].Name })
	return folders, nil
}

// describeFolder collects the geometry, input, and output files of one folder.
func describeFolder(path string) (Folder, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return Folder{}, fmt.Errorf("read folder %s: %w", path, err)
	}
	folder := Folder{Path: path, Name: filepath.Base(path)}
	var geometries []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		lower := strings.ToLower(name)
		full := filepath.Join(path, name)
		switch {
		case strings.HasSuffix(lower, ".xyz"):
			geometries = append(geometries, full)
		case strings.HasSuffix(lower, ".inp"):
			folder.InputFiles = append(folder.InputFiles, full)
		case strings.HasSuffix(lower, ".out") && !strings.HasPrefix(lower, slurmPrefix):
			folder.OutputFiles = append(folder.OutputFiles, full)
		}
	}
	sort.Strings(geometries)
	sort.Strings(folder.InputFiles)
	sort.Strings(folder.OutputFiles)
	folder.GeometryFile = pickPrimaryGeometry(geometries)
	return folder, nil
}

// pickPrimaryGeometry prefers plain geometry files over trajectory or initial
// snapshots, then initial snapshots, then the first file by name.
func pickPrimaryGeometry(geometries []string) string {
	if len(geometries) == 0 {
		return ""
	}
	for _, path := range geometries {
		if !specialGeometry.MatchString(path) {
			return path
		}
	}
	for _, path := range geometries {
		if strings.HasSuffix(strings.ToLower(path), "_initial.xyz") {
			return path
		}
	}
	return geometries[0]
}
