package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// expandPath resolves environment references and a leading ~ in a task file
// path. On Windows %VAR% and ~\ are understood as well.
func expandPath(p string) string {
	if p == "" {
		return p
	}

	p = os.ExpandEnv(p)
	if runtime.GOOS == "windows" {
		p = expandWindowsEnv(p)
	}

	rest, ok := cutHome(p)
	if !ok {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, rest)
}

// cutHome reports whether p starts at the home directory and returns the
// remainder.
func cutHome(p string) (string, bool) {
	if p == "~" {
		return "", true
	}
	if rest, ok := strings.CutPrefix(p, "~/"); ok {
		return rest, true
	}
	if runtime.GOOS == "windows" {
		return strings.CutPrefix(p, `~\`)
	}
	return "", false
}

// expandWindowsEnv replaces %VAR% references. Unknown variables and a lone
// % are left as they are.
func expandWindowsEnv(p string) string {
	var b strings.Builder
	for {
		start := strings.IndexByte(p, '%')
		if start < 0 {
			break
		}
		end := strings.IndexByte(p[start+1:], '%')
		if end < 0 {
			break
		}
		end += start + 1

		b.WriteString(p[:start])
		name := p[start+1 : end]
		if val, ok := os.LookupEnv(name); ok && name != "" {
			b.WriteString(val)
			p = p[end+1:]
			continue
		}
		// Keep the opening % and rescan from the closing one.
		b.WriteString(p[start:end])
		p = p[end:]
	}
	b.WriteString(p)
	return b.String()
}
