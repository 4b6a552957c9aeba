package files

import (
	"log/slog"
	"os"
	"time"
)

// FileInfo describes one expected input file
type FileInfo struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
	Exists  bool
}

// Inventory reports which of the named input files are present in the
// fetched directory, in the order given.
func (m *Manager) Inventory(names ...string) []FileInfo {
	out := make([]FileInfo, 0, len(names))
	for _, name := range names {
		fi := FileInfo{Name: name, Path: m.InputPath(name)}
		if info, err := os.Stat(fi.Path); err == nil && !info.IsDir() {
			fi.Exists = true
			fi.Size = info.Size()
			fi.ModTime = info.ModTime()
		}
		out = append(out, fi)
	}
	return out
}

// Missing returns the names of files the inventory did not find
func Missing(files []FileInfo) []string {
	var missing []string
	for _, f := range files {
		if !f.Exists {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

// LogInventory writes one debug line per file and a warning listing the
// missing ones.
func (m *Manager) LogInventory(files []FileInfo) {
	for _, f := range files {
		m.logger.Debug("Input file",
			slog.String("name", f.Name),
			slog.String("path", f.Path),
			slog.Bool("exists", f.Exists),
			slog.Int64("size", f.Size))
	}
	if missing := Missing(files); len(missing) > 0 {
		m.logger.Warn("Missing input files",
			slog.Any("files", missing),
			slog.String("fetched_dir", m.paths.FetchedDir))
	}
}
