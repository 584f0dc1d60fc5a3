// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/fredrickburns/sas-tools/pkg/types"
)

// Rule recognizes one fenced-block convention: a section header naming a
// file with extension Ext, immediately followed by a fenced block opened
// with the Fence info string.
type Rule struct {
	// Ext is the suffix the header path must carry (e.g. ".swift").
	Ext string
	// Fence is the info string on the opening fence (e.g. "swift").
	Fence string
}

// extForLang maps fence languages whose conventional file extension is not
// simply "." plus the language name.
var extForLang = map[string]string{
	"golang":     ".go",
	"javascript": ".js",
	"kotlin":     ".kt",
	"markdown":   ".md",
	"python":     ".py",
	"ruby":       ".rb",
	"rust":       ".rs",
	"typescript": ".ts",
	"yaml":       ".yaml",
}

// RuleForLang returns the Rule for a fence language name.
func RuleForLang(lang string) Rule {
	lang = strings.ToLower(strings.TrimSpace(lang))
	ext, ok := extForLang[lang]
	if !ok {
		ext = "." + lang
	}
	return Rule{Ext: ext, Fence: lang}
}

// DefaultRules matches the convention the Student Analysis System session
// transcripts use: Swift sources only.
func DefaultRules() []Rule {
	return []Rule{{Ext: ".swift", Fence: "swift"}}
}

// pattern builds the section regexp for the rule. A section is a header
// line of the form `### **<path>**` whose path ends in Ext, immediately
// followed by a fenced block. The block body is captured verbatim up to
// the closing fence, non-greedy so adjacent sections stay separate.
func (r Rule) pattern() *regexp.Regexp {
	expr := `### \*\*(.+?` + regexp.QuoteMeta(r.Ext) + `)\*\*\n` +
		"```" + regexp.QuoteMeta(r.Fence) + "\n" +
		`(?s:(.*?))` + "\n```"
	return regexp.MustCompile(expr)
}

// match pairs an entry with its byte offset so multi-rule scans can be
// merged back into document order.
type match struct {
	off   int
	entry types.Entry
}

// Scan finds every section of content matching one of rules and returns
// the entries in document order. Paths are trimmed of surrounding
// whitespace; a path that trims to empty is dropped. Content with no
// matching sections yields nil.
func Scan(content string, rules []Rule) []types.Entry {
	var found []match
	for _, r := range rules {
		re := r.pattern()
		for _, m := range re.FindAllStringSubmatchIndex(content, -1) {
			path := strings.TrimSpace(content[m[2]:m[3]])
			if path == "" {
				continue
			}
			found = append(found, match{
				off: m[0],
				entry: types.Entry{
					Path:    path,
					Content: content[m[4]:m[5]],
				},
			})
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i].off < found[j].off })

	if len(found) == 0 {
		return nil
	}
	entries := make([]types.Entry, len(found))
	for i, f := range found {
		entries[i] = f.entry
	}
	return entries
}
