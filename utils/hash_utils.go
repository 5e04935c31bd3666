package utils

import (
	"strings"

	"github.com/google/uuid"
)

// Namespace for derived identifiers. Changing it would re-key every session
// and visit id, so it is fixed for the life of the product.
var idNamespace = uuid.MustParse("8f2a6bd0-54c1-45e8-9c3f-1de07be1f2a4")

// DeriveID hashes the ordered components into a stable identifier. The same
// inputs always produce the same id across restarts; missing components are
// passed as empty strings, never omitted, so ordering stays unambiguous.
func DeriveID(components ...string) string {
	return uuid.NewSHA1(idNamespace, []byte(strings.Join(components, "\x00"))).String()
}
