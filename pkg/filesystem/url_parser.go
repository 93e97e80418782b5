package filesystem

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	sftpScheme      = "sftp://"
	defaultSFTPPort = 22
)

// Location is a parsed file argument: either a local path or a file on an SFTP server.
type Location struct {
	Remote bool

	// Path is the local path, or the path on the remote server.
	Path string

	// SFTP connection details, set only when Remote is true.
	Host string
	Port int
	User string
}

// Address returns the host:port pair to dial for a remote location.
func (l *Location) Address() string {
	return fmt.Sprintf("%s:%d", l.Host, l.Port)
}

// ParsePath parses a file argument, detecting whether it is a local path or an SFTP URL.
// SFTP URLs have the format sftp://user@host[:port]/path/to/file; the port defaults to 22.
// Examples:
//   - sftp://joe@myserver.com/notes.txt    (notes.txt in joe's home directory)
//   - sftp://joe@myserver.com:2222//tmp/a  (absolute path /tmp/a)
//   - ./report.pdf                         (local path)
func ParsePath(path string) (*Location, error) {
	if !strings.HasPrefix(path, sftpScheme) {
		return &Location{Path: path}, nil
	}

	return parseSFTPURL(path)
}

func parseSFTPURL(sftpURL string) (*Location, error) {
	u, err := url.Parse(sftpURL) //nolint:varnamelen // u is idiomatic for URL
	if err != nil {
		return nil, fmt.Errorf("invalid SFTP URL: %w", err)
	}

	if u.User == nil || u.User.Username() == "" {
		return nil, fmt.Errorf("SFTP URL must include username (sftp://user@host/path)") //nolint:err113,perfsprint // URL validation with format guidance
	}

	host := u.Hostname()
	if host == "" {
		return nil, fmt.Errorf("SFTP URL must include host") //nolint:err113,perfsprint // URL validation error
	}

	port := defaultSFTPPort
	if portStr := u.Port(); portStr != "" {
		port, err = strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid port number: %w", err)
		}
	}

	// sftp://user@host/file   → file relative to the home directory
	// sftp://user@host//file  → absolute /file
	remotePath := u.Path
	switch {
	case remotePath == "" || remotePath == "/":
		return nil, fmt.Errorf("SFTP URL must include a file path") //nolint:err113,perfsprint // URL validation error
	case strings.HasPrefix(remotePath, "//"):
		remotePath = remotePath[1:]
	default:
		remotePath = strings.TrimPrefix(remotePath, "/")
	}

	return &Location{
		Remote: true,
		Path:   remotePath,
		Host:   host,
		Port:   port,
		User:   u.User.Username(),
	}, nil
}
