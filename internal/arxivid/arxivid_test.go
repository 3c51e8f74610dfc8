// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxivid

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantID     string
		wantFormat Format
	}{
		{"abs new", "https://arxiv.org/abs/1501.00001", "1501.00001", FormatNew},
		{"pdf versioned", "https://arxiv.org/pdf/1501.00001v2", "1501.00001v2", FormatNew},
		{"pdf with extension", "http://arxiv.org/pdf/2301.07041v1.pdf", "2301.07041v1", FormatNew},
		{"five digit", "https://arxiv.org/abs/2101.12345", "2101.12345", FormatNew},
		{"abs old", "https://arxiv.org/abs/cond-mat/0123456", "cond-mat/0123456", FormatOld},
		{"pdf old versioned", "https://arxiv.org/pdf/hep-th/9901001v3", "hep-th/9901001v3", FormatOld},
		{"export mirror", "https://export.arxiv.org/abs/2101.12345", "2101.12345", FormatNew},
		{"listing page", "https://arxiv.org/list/cs/2024", "", FormatUnknown},
		{"other domain", "https://example.com/abs/1501.00001", "", FormatUnknown},
		{"empty", "", "", FormatUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID, gotFormat := Classify(tt.url)
			if gotID != tt.wantID {
				t.Errorf("Classify(%q) id = %q, want %q", tt.url, gotID, tt.wantID)
			}
			if gotFormat != tt.wantFormat {
				t.Errorf("Classify(%q) format = %v, want %v", tt.url, gotFormat, tt.wantFormat)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	if id, ok := Extract("https://arxiv.org/abs/1501.00001"); !ok || id != "1501.00001" {
		t.Errorf("Extract = (%q, %v), want (1501.00001, true)", id, ok)
	}
	if id, ok := Extract("https://arxiv.org/list/cs/2024"); ok || id != "" {
		t.Errorf("Extract = (%q, %v), want absent", id, ok)
	}
}

func TestLooksLikeID(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"2101.12345", true},
		{"2101.12345v2", true},
		{"cond-mat/0123456v1", true},
		{"1501.00001 some trailing text", true},
		{"Attention Is All You Need", false},
		{"", false},
		{"Cond-Mat/0123456", false},
		{"arXiv:2101.12345", false},
	}
	for _, tt := range tests {
		if got := LooksLikeID(tt.title); got != tt.want {
			t.Errorf("LooksLikeID(%q) = %v, want %v", tt.title, got, tt.want)
		}
	}
}

func TestFormatString(t *testing.T) {
	if FormatNew.String() != "new" || FormatOld.String() != "old" || FormatUnknown.String() != "unknown" {
		t.Error("unexpected Format names")
	}
}
