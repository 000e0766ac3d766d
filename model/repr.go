package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fedikit/fedikit/uri"
)

// Repr renders e for debug logging and test failure messages. For each
// URI that more than one descriptor aliases (a singular/plural pair),
// CheckSlot picks whichever of the aliasing names best matches the
// value currently stored. Repr is never consulted for equality or
// serialization.
func Repr(e Entity) string {
	base := e.Base()
	byURI := make(map[uri.URI][]Property)
	for _, d := range e.Descriptors() {
		if d.Kind() == KindID {
			continue
		}
		byURI[d.URI()] = append(byURI[d.URI()], d)
	}

	var names []string
	for propertyURI, candidates := range byURI {
		items := base.slot(propertyURI)
		if len(items) == 0 {
			continue
		}
		chosen := candidates[0]
		for _, c := range candidates {
			if c.CheckSlot(items) {
				chosen = c
				break
			}
		}
		names = append(names, fmt.Sprintf("%s=%v", chosen.Name(), chosen.Read(base)))
	}
	sort.Strings(names)

	id := ""
	if !base.ID().IsZero() {
		id = fmt.Sprintf("id=%s ", base.ID())
	}
	return fmt.Sprintf("%s(%s%s)", base.TypeURI(), id, strings.Join(names, ", "))
}
