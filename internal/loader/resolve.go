package loader

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// Candidates returns the paths searched for fileName: baseDir first, then
// its parent.
func Candidates(baseDir, fileName string) []string {
	return []string{
		filepath.Join(baseDir, fileName),
		filepath.Join(filepath.Dir(filepath.Clean(baseDir)), fileName),
	}
}

// Resolve locates the data file. An explicit path is used as-is and must
// exist; otherwise the first existing candidate wins.
func Resolve(baseDir, fileName, explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", eris.Wrapf(err, "loader: data file %s", explicit)
		}
		return explicit, nil
	}

	candidates := Candidates(baseDir, fileName)
	for _, path := range candidates {
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", eris.Errorf("loader: %s not found at %s", fileName, strings.Join(candidates, " or "))
}

// ExecutableDir returns the directory holding the running binary, with
// symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", eris.Wrap(err, "loader: locate executable")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
