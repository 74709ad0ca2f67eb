package method

import "fmt"

// registry lists every Method this package ships, keyed the way the CLI's
// --method flag (and the teacher's old --algorithm flag before it) names
// them.
var registry = map[string]Method{
	"cfop":   CFOP{},
	"roux":   Roux{},
	"petrus": Petrus{},
	"zz":     ZZ{},
	"yruru":  YruRU{},
	"lbl":    LBL{},
}

// ByName looks up a Method by its registry key, case-sensitive lowercase
// (the CLI layer normalizes user input before calling this).
func ByName(name string) (Method, error) {
	m, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("method: unknown method %q (want one of cfop, roux, petrus, zz, yruru, lbl)", name)
	}
	return m, nil
}

// Names returns every registered method key, for --help text and flag
// validation.
func Names() []string {
	return []string{"cfop", "roux", "petrus", "zz", "yruru", "lbl"}
}
