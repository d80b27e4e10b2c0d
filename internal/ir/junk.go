package ir

// junkSeeds are the hand-written no-op statements. Each is valid at statement
// position and entry i is exactly i bytes long.
var junkSeeds = [...]string{
	"",
	";",
	"3;",
	"();",
	"{;};",
	"({});",
	"{();};",
	"*&*&();",
	"((),());",
	"let _=();",
	"if true{};",
	"let _=||();",
	"loop{break};",
	"loop{break;};",
	"if let _=(){};",
}

// junkSize is the number of JunkTable entries.
const junkSize = 81

// JunkTable[i] is a statement-position no-op of byte length i. Entries past the
// seeds are concatenations of two shorter entries.
var JunkTable = buildJunkTable()

// MaxJunk is the largest valid JunkTable index.
const MaxJunk = junkSize - 1

func buildJunkTable() []string {
	gen := make([]string, 0, junkSize)
	for i := range junkSize {
		if i < len(junkSeeds) {
			gen = append(gen, junkSeeds[i])
			continue
		}
		half := i / 2
		gen = append(gen, gen[half]+gen[i-half])
	}
	return gen
}

// JunkSeeds returns the non-empty hand-written entries. Every JunkTable entry
// is a concatenation of seeds.
func JunkSeeds() []string {
	return append([]string(nil), junkSeeds[1:]...)
}
