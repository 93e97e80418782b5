package filesystem

import (
	"fmt"
	"sync"
)

// Opener resolves a file argument to the store serving it.
// It returns the store, the path to use with that store, and a closer that
// releases any connection.
type Opener func(pathStr string) (TimeStore, string, func(), error)

// Open is a standalone Opener: local paths get a LocalStore, sftp:// URLs get
// an SFTPStore over a fresh connection that the returned closer releases.
func Open(pathStr string) (TimeStore, string, func(), error) {
	loc, err := ParsePath(pathStr)
	if err != nil {
		return nil, "", nil, err
	}

	if !loc.Remote {
		return NewLocalStore(), loc.Path, func() {}, nil
	}

	conn, err := Connect(loc)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to connect to %s: %w", connectionKey(loc), err)
	}

	closer := func() {
		_ = conn.Close()
	}

	return NewSFTPStore(conn), loc.Path, closer, nil
}

// Session is an Opener source that shares one SFTP connection per
// user@host:port across every path it opens. Close releases them all.
type Session struct {
	mu    sync.Mutex
	dial  func(*Location) (*SFTPConnection, error)
	conns map[string]*SFTPConnection
}

// NewSession creates a Session that dials with Connect.
func NewSession() *Session {
	return &Session{
		dial:  Connect,
		conns: make(map[string]*SFTPConnection),
	}
}

// Open implements Opener. Remote stores stay valid until Close.
func (s *Session) Open(pathStr string) (TimeStore, string, func(), error) {
	loc, err := ParsePath(pathStr)
	if err != nil {
		return nil, "", nil, err
	}

	if !loc.Remote {
		return NewLocalStore(), loc.Path, func() {}, nil
	}

	conn, err := s.connection(loc)
	if err != nil {
		return nil, "", nil, err
	}

	return NewSFTPStore(conn), loc.Path, func() {}, nil
}

// Close closes every connection opened so far and returns the first error.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error

	for key, conn := range s.conns {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close connection to %s: %w", key, err)
		}

		delete(s.conns, key)
	}

	return firstErr
}

func (s *Session) connection(loc *Location) (*SFTPConnection, error) {
	key := connectionKey(loc)

	s.mu.Lock()
	defer s.mu.Unlock()

	if conn, ok := s.conns[key]; ok {
		return conn, nil
	}

	conn, err := s.dial(loc)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", key, err)
	}

	s.conns[key] = conn

	return conn, nil
}

func connectionKey(loc *Location) string {
	return loc.User + "@" + loc.Address()
}

// OpenPair opens stores for a source and a target argument.
// The returned closer releases both; on error nothing is left open.
func OpenPair(open Opener, sourcePath, targetPath string) (
	sourceStore TimeStore,
	targetStore TimeStore,
	srcPath string,
	dstPath string,
	closer func(),
	err error,
) {
	sourceStore, srcPath, srcCloser, err := open(sourcePath)
	if err != nil {
		return nil, nil, "", "", nil, fmt.Errorf("failed to open source: %w", err)
	}

	targetStore, dstPath, dstCloser, err := open(targetPath)
	if err != nil {
		srcCloser()
		return nil, nil, "", "", nil, fmt.Errorf("failed to open target: %w", err)
	}

	closer = func() {
		srcCloser()
		dstCloser()
	}

	return sourceStore, targetStore, srcPath, dstPath, closer, nil
}
