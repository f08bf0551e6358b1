package pagepath

import "testing"

func TestIsRepositoryPage(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"repo root", "/owner/repo", true},
		{"repo subpage", "/owner/repo/tree/main", true},
		{"trailing slash", "/owner/repo/", true},
		{"root", "/", false},
		{"single segment", "/owner", false},
		{"empty", "", false},
		{"settings", "/settings/profile", false},
		{"notifications", "/notifications/query", false},
		{"explore", "/explore/trending", false},
		{"marketplace", "/marketplace/actions", false},
		{"pricing", "/pricing/plans", false},
		{"dot prefixed", "/.well-known/foo", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRepositoryPage(tt.path); got != tt.want {
				t.Errorf("IsRepositoryPage(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsCodeView(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"repo root", "/owner/repo", true},
		{"tree", "/owner/repo/tree/main", true},
		{"tree nested", "/owner/repo/tree/main/pkg/deep", true},
		{"blob", "/owner/repo/blob/main/file.txt", false},
		{"issues", "/owner/repo/issues", false},
		{"single issue", "/owner/repo/issues/42", false},
		{"pulls", "/owner/repo/pull/7", false},
		{"actions", "/owner/repo/actions", false},
		{"projects", "/owner/repo/projects", false},
		{"security", "/owner/repo/security", false},
		{"insights", "/owner/repo/insights", false},
		{"repo settings", "/owner/repo/settings", false},
		{"unknown tab defaults to code", "/owner/repo/wiki", true},
		{"too short", "/owner", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCodeView(tt.path); got != tt.want {
				t.Errorf("IsCodeView(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		wantID Identity
		wantOK bool
	}{
		{"basic", "/owner/repo", Identity{"owner", "repo"}, true},
		{"deep path", "/owner/repo/tree/main/src", Identity{"owner", "repo"}, true},
		{"no leading slash", "owner/repo", Identity{"owner", "repo"}, true},
		{"single segment", "/owner", Identity{}, false},
		{"empty", "", Identity{}, false},
		{"root", "/", Identity{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := Extract(tt.path)
			if ok != tt.wantOK {
				t.Fatalf("Extract(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if id != tt.wantID {
				t.Errorf("Extract(%q) = %+v, want %+v", tt.path, id, tt.wantID)
			}
		})
	}
}

func TestIdentityKey(t *testing.T) {
	id := Identity{Owner: "torvalds", Name: "linux"}
	if got := id.Key(); got != "torvalds/linux" {
		t.Errorf("Key() = %q, want %q", got, "torvalds/linux")
	}
}
