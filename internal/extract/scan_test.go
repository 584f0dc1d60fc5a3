// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"reflect"
	"testing"

	"github.com/fredrickburns/sas-tools/pkg/types"
)

const sampleTranscript = "Here are the remaining files for the project.\n\n" +
	"### **Sources/App/Models/Student.swift**\n" +
	"```swift\n" +
	"struct Student {\n    let msis: String\n}\n" +
	"```\n\n" +
	"Some commentary between sections.\n\n" +
	"### **Sources/App/Analysis/ScaleScore.swift**\n" +
	"```swift\n" +
	"enum ScaleScore {}\n" +
	"```\n"

func TestScan(t *testing.T) {
	tests := []struct {
		name    string
		content string
		rules   []Rule
		want    []types.Entry
	}{
		{
			name:    "two swift sections in document order",
			content: sampleTranscript,
			rules:   DefaultRules(),
			want: []types.Entry{
				{Path: "Sources/App/Models/Student.swift", Content: "struct Student {\n    let msis: String\n}"},
				{Path: "Sources/App/Analysis/ScaleScore.swift", Content: "enum ScaleScore {}"},
			},
		},
		{
			name:    "no matching sections",
			content: "Just prose.\n\n```swift\nlet x = 1\n```\n",
			rules:   DefaultRules(),
			want:    nil,
		},
		{
			name:    "header without a fenced block",
			content: "### **Sources/App/Orphan.swift**\n\nNo code followed.\n",
			rules:   DefaultRules(),
			want:    nil,
		},
		{
			name: "path with surrounding whitespace is trimmed",
			content: "### ** Sources/App/Padded.swift**\n" +
				"```swift\nlet padded = true\n```\n",
			rules: DefaultRules(),
			want: []types.Entry{
				{Path: "Sources/App/Padded.swift", Content: "let padded = true"},
			},
		},
		{
			name: "empty block body",
			content: "### **Sources/App/Empty.swift**\n" +
				"```swift\n\n```\n",
			rules: DefaultRules(),
			want: []types.Entry{
				{Path: "Sources/App/Empty.swift", Content: ""},
			},
		},
		{
			name: "mismatched fence language is skipped",
			content: "### **Sources/App/Wrong.swift**\n" +
				"```python\nprint('hi')\n```\n",
			rules: DefaultRules(),
			want:  nil,
		},
		{
			name: "multiple rules merge in document order",
			content: "### **scripts/load.py**\n" +
				"```python\nprint('load')\n```\n\n" +
				"### **Sources/App/Main.swift**\n" +
				"```swift\nlet main = true\n```\n\n" +
				"### **scripts/report.py**\n" +
				"```python\nprint('report')\n```\n",
			rules: []Rule{RuleForLang("swift"), RuleForLang("python")},
			want: []types.Entry{
				{Path: "scripts/load.py", Content: "print('load')"},
				{Path: "Sources/App/Main.swift", Content: "let main = true"},
				{Path: "scripts/report.py", Content: "print('report')"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scan(tt.content, tt.rules)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scan() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestScanNonGreedy(t *testing.T) {
	// A block must end at its own closing fence, not a later one.
	content := "### **Sources/A.swift**\n" +
		"```swift\nlet a = 1\n```\n\n" +
		"### **Sources/B.swift**\n" +
		"```swift\nlet b = 2\n```\n"

	got := Scan(content, DefaultRules())
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Content != "let a = 1" {
		t.Errorf("first block content = %q, want %q", got[0].Content, "let a = 1")
	}
	if got[1].Content != "let b = 2" {
		t.Errorf("second block content = %q, want %q", got[1].Content, "let b = 2")
	}
}

func TestRuleForLang(t *testing.T) {
	tests := []struct {
		lang string
		want Rule
	}{
		{"swift", Rule{Ext: ".swift", Fence: "swift"}},
		{"python", Rule{Ext: ".py", Fence: "python"}},
		{"typescript", Rule{Ext: ".ts", Fence: "typescript"}},
		{" Swift ", Rule{Ext: ".swift", Fence: "swift"}},
		{"css", Rule{Ext: ".css", Fence: "css"}},
	}

	for _, tt := range tests {
		if got := RuleForLang(tt.lang); got != tt.want {
			t.Errorf("RuleForLang(%q) = %+v, want %+v", tt.lang, got, tt.want)
		}
	}
}
