package export

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/psychograph/psychograph/internal/common"
)

// Loader discovers and merges chat export files from disk.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new export loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

var partNumberRegex = regexp.MustCompile(`message_(\d+)\.json$`)

// Load locates every message file under path (a single message file, a
// conversation folder, an export root, or a .zip of an export root),
// groups files by their parent folder and merges each group into one
// Thread. Files that cannot be decoded are skipped with a warning.
func (l *Loader) Load(path string) (map[string]Thread, error) {
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return l.loadArchive(path)
	}

	files, err := FindMessageFiles(path)
	if err != nil {
		return nil, err
	}
	l.logger.Info("Found message files", "count", len(files))

	return l.mergeFiles(path, files)
}

// loadArchive extracts a zipped export into a temporary directory and
// loads it from there. The temporary directory is removed on all exit
// paths.
func (l *Loader) loadArchive(path string) (map[string]Thread, error) {
	tempDir, err := os.MkdirTemp("", "psychograph-export-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(tempDir); rmErr != nil {
			l.logger.Warn("Failed to remove temp directory", "dir", tempDir, "error", rmErr)
		}
	}()

	if err := extractZip(path, tempDir); err != nil {
		return nil, err
	}

	files, err := FindMessageFiles(tempDir)
	if err != nil {
		return nil, err
	}
	l.logger.Info("Found message files in archive", "count", len(files), "archive", filepath.Base(path))

	return l.mergeFiles(tempDir, files)
}

// FindMessageFiles returns all message JSON file paths reachable from
// path. A bare .json file is returned as-is; a directory is walked
// recursively for message_*.json files, falling back to any *.json when
// none match the export naming scheme.
func FindMessageFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrNotFound, path)
	}

	if !info.IsDir() {
		if strings.EqualFold(filepath.Ext(path), ".json") {
			return []string{path}, nil
		}
		return nil, fmt.Errorf("%w: %s is not a message file", common.ErrNotFound, path)
	}

	files, err := globJSON(path, "message_*.json")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		// Fallback: any JSON files in the folder
		files, err = globJSON(path, "*.json")
		if err != nil {
			return nil, err
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", common.ErrNotFound, path)
	}

	sortByPartNumber(files)
	return files, nil
}

// globJSON walks root collecting files whose base name matches pattern.
func globJSON(root, pattern string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		ok, matchErr := filepath.Match(pattern, d.Name())
		if matchErr != nil {
			return matchErr
		}
		if ok {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	return files, nil
}

// sortByPartNumber orders files by directory, then ascending numeric
// part (message_2 before message_10), then name.
func sortByPartNumber(files []string) {
	sort.SliceStable(files, func(i, j int) bool {
		di, dj := filepath.Dir(files[i]), filepath.Dir(files[j])
		if di != dj {
			return di < dj
		}
		ni, nj := partNumber(files[i]), partNumber(files[j])
		if ni != nj {
			return ni < nj
		}
		return files[i] < files[j]
	})
}

// partNumber extracts N from message_N.json, or a sentinel for files
// outside the naming scheme so they sort after numbered parts.
func partNumber(path string) int {
	m := partNumberRegex.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return 1 << 30
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 1 << 30
	}
	return n
}

// mergeFiles groups files by parent folder and merges each group into a
// Thread, concatenating messages in part order and taking participants
// and title from the first file that supplies them.
func (l *Loader) mergeFiles(root string, files []string) (map[string]Thread, error) {
	groups := make(map[string][]string)
	var order []string
	for _, f := range files {
		dir := filepath.Dir(f)
		if _, seen := groups[dir]; !seen {
			order = append(order, dir)
		}
		groups[dir] = append(groups[dir], f)
	}

	singleFile := len(files) == 1 && files[0] == root

	threads := make(map[string]Thread, len(groups))
	for _, dir := range order {
		thread := Thread{Name: filepath.Base(dir)}

		for _, f := range groups[dir] {
			data, err := l.decodeFile(f)
			if err != nil {
				if singleFile {
					return nil, err
				}
				l.logger.Warn("Skipping undecodable file", "file", f, "error", err)
				continue
			}

			if singleFile && len(data.Participants) == 0 && len(data.Messages) == 0 {
				return nil, fmt.Errorf("%w: %s has no participants or messages", common.ErrMalformedInput, f)
			}

			if len(thread.Participants) == 0 {
				thread.Participants = data.Participants
			}
			if thread.Title == "" {
				thread.Title = data.Title
			}
			thread.Messages = append(thread.Messages, data.Messages...)
		}

		if len(thread.Messages) == 0 && len(thread.Participants) == 0 {
			// Nothing usable in this folder
			continue
		}
		threads[thread.Name] = thread
	}

	if len(threads) == 0 {
		return nil, fmt.Errorf("%w: no readable conversations under %s", common.ErrNotFound, root)
	}

	return threads, nil
}

// decodeFile reads one export file, trying UTF-8 first and falling back
// to Latin-1 for older exports.
func (l *Loader) decodeFile(path string) (*rawExportFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		decoded, decErr := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if decErr != nil {
			return nil, fmt.Errorf("%w: %s", common.ErrEncoding, path)
		}
		data = decoded
	}

	var out rawExportFile
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrEncoding, path, err)
	}
	return &out, nil
}
