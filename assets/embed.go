// assets/embed.go
//
// Embedded default data shipped with the binary.
//   - bosses.json: the catalog used when BOSSDLE_CATALOG_FILE is unset.

package assets

import (
	"embed"
)

//go:embed bosses.json
var FS embed.FS

// Bosses returns the raw embedded catalog document.
func Bosses() ([]byte, error) {
	return FS.ReadFile("bosses.json")
}
