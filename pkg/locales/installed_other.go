//go:build !windows

package locales

import "os"

// Outside windows there is no list of input languages, so the process
// locale stands in for it.
func installedLocaleNames() ([]string, error) {
	for _, env := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := os.Getenv(env); v != "" {
			return []string{v}, nil
		}
	}
	return nil, nil
}
