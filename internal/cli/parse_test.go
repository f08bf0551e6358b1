package cli

import (
	"testing"
)

func TestParseRepoRef(t *testing.T) {
	tests := []struct {
		name      string
		ref       string
		wantOwner string
		wantName  string
		wantErr   bool
	}{
		{"plain owner/repo", "golang/go", "golang", "go", false},
		{"full https URL", "https://github.com/torvalds/linux", "torvalds", "linux", false},
		{"URL with trailing slash", "https://github.com/golang/go/", "golang", "go", false},
		{"URL to a tree view", "https://github.com/golang/go/tree/master/src", "golang", "go", false},
		{"URL to issues tab", "https://github.com/golang/go/issues", "golang", "go", false},
		{"leading slash", "/golang/go", "golang", "go", false},
		{"blob URL still names the repo", "https://github.com/golang/go/blob/master/README.md", "golang", "go", false},

		{"bare owner", "golang", "", "", true},
		{"empty", "", "", "", true},
		{"reserved root", "settings/profile", "", "", true},
		{"dot-prefixed owner", ".github/workflows", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := parseRepoRef(tt.ref)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseRepoRef(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if id.Owner != tt.wantOwner || id.Name != tt.wantName {
				t.Errorf("parseRepoRef(%q) = %s/%s, want %s/%s",
					tt.ref, id.Owner, id.Name, tt.wantOwner, tt.wantName)
			}
		})
	}
}
