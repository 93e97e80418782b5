//nolint:varnamelen // Test files use idiomatic short variable names (t, etc.)
package filesystem_test

import (
	"testing"

	"github.com/joe/filetime/pkg/filesystem"
)

// TestParsePath_Local tests ParsePath with local filesystem paths.
func TestParsePath_Local(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"/local/file.txt", "relative.txt", `C:\data\file.txt`} {
		result, err := filesystem.ParsePath(input)
		if err != nil {
			t.Fatalf("Unexpected error for %q: %v", input, err)
		}

		if result.Remote {
			t.Errorf("Remote should be false for %q", input)
		}

		if result.Path != input {
			t.Errorf("Path = %q, want %q", result.Path, input)
		}
	}
}

// TestParsePath_SFTP tests ParsePath with SFTP URLs.
//
//nolint:funlen // Table-driven test with many SFTP URL cases
func TestParsePath_SFTP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantErr  bool
		wantUser string
		wantHost string
		wantPort int
		wantPath string
		wantAddr string
	}{
		{
			name:     "file in home directory",
			input:    "sftp://user@host/notes.txt",
			wantUser: "user",
			wantHost: "host",
			wantPort: 22,
			wantPath: "notes.txt",
			wantAddr: "host:22",
		},
		{
			name:     "custom port",
			input:    "sftp://admin@server.com:2222/docs/a.pdf",
			wantUser: "admin",
			wantHost: "server.com",
			wantPort: 2222,
			wantPath: "docs/a.pdf",
			wantAddr: "server.com:2222",
		},
		{
			name:     "absolute path",
			input:    "sftp://joe@box//var/log/app.log",
			wantUser: "joe",
			wantHost: "box",
			wantPort: 22,
			wantPath: "/var/log/app.log",
			wantAddr: "box:22",
		},
		{
			name:    "missing username",
			input:   "sftp://host/file",
			wantErr: true,
		},
		{
			name:    "missing host",
			input:   "sftp://user@/file",
			wantErr: true,
		},
		{
			name:    "missing file path",
			input:   "sftp://user@host",
			wantErr: true,
		},
		{
			name:    "invalid port",
			input:   "sftp://user@host:abc/file",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := filesystem.ParsePath(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q but got nil", tt.input)
				}

				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if !result.Remote {
				t.Error("Remote should be true for SFTP URL")
			}

			if result.User != tt.wantUser {
				t.Errorf("User = %q, want %q", result.User, tt.wantUser)
			}

			if result.Host != tt.wantHost {
				t.Errorf("Host = %q, want %q", result.Host, tt.wantHost)
			}

			if result.Port != tt.wantPort {
				t.Errorf("Port = %d, want %d", result.Port, tt.wantPort)
			}

			if result.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", result.Path, tt.wantPath)
			}

			if got := result.Address(); got != tt.wantAddr {
				t.Errorf("Address() = %q, want %q", got, tt.wantAddr)
			}
		})
	}
}
