// Package note resolves daily note paths and inserts generated blocks under
// the note's anchor headers.
package note

import (
	"path/filepath"
	"time"

	homedir "github.com/mitchellh/go-homedir"
)

// Path returns the daily note location root/YYYY/MM/YYYY-MM-DD.md, expanding
// a leading ~ in root.
func Path(root string, day time.Time) (string, error) {
	expanded, err := homedir.Expand(root)
	if err != nil {
		return "", err
	}
	return filepath.Join(expanded, day.Format("2006"), day.Format("01"), day.Format("2006-01-02")+".md"), nil
}
