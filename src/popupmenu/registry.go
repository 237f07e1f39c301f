package popupmenu

import (
	systemLog "log"
	"os"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var log = systemLog.New(os.Stderr, "PopupMenu", systemLog.Ltime)

// Shared sub-menu tables are long lived singletons owned by the
// application.  The registry gives them a stable home looked up by
// name, so tables can mount each other without static accessors.
var registry = map[string]Table{}

// Register stores t under name.  The first registration wins;
// duplicates are logged and dropped.
func Register(name string, t Table) {
	if _, exists := registry[name]; exists {
		log.Printf("table %q is already registered, ignoring", name)
		return
	}
	registry[name] = t
}

// Lookup returns the table registered under name, or nil.
func Lookup(name string) Table { return registry[name] }

// Names lists the registered table names, sorted.
func Names() []string {
	names := maps.Keys(registry)
	slices.Sort(names)
	return names
}
