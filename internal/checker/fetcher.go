package checker

import (
	"crypto/tls"
	"fmt"
	"net"
	"strconv"
	"time"
)

// ErrorKind classifies why a certificate retrieval failed.
type ErrorKind int

const (
	ErrTimeout ErrorKind = iota
	ErrConnection
	ErrHandshake
	ErrNoCertificate
)

func (k ErrorKind) String() string {
	switch k {
	case ErrTimeout:
		return "timeout"
	case ErrConnection:
		return "connection failed"
	case ErrHandshake:
		return "TLS handshake failed"
	case ErrNoCertificate:
		return "no peer certificate"
	default:
		return "unknown"
	}
}

type FetchError struct {
	Kind ErrorKind
	Err  error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// FetchFunc retrieves the expiry instant of the certificate served at
// host:port. Implementations return a *FetchError on failure.
type FetchFunc func(host string, port int, timeout time.Duration) (time.Time, error)

// tlsConfigForHost builds a handshake config that deliberately skips
// hostname and trust-chain verification: the goal is to read expiry
// metadata off whatever certificate the server presents, self-signed or
// not. SNI is still sent for hostnames so virtual hosts hand back the
// right certificate; IP literals get no SNI.
func tlsConfigForHost(serverName string) *tls.Config {
	cfg := &tls.Config{InsecureSkipVerify: true}
	if serverName != "" && net.ParseIP(serverName) == nil {
		cfg.ServerName = serverName
	}
	return cfg
}

// FetchNotAfter opens a TCP connection, performs a TLS handshake without
// validating trust, and returns the leaf certificate's NotAfter in UTC.
// A single attempt, bounded by timeout across both dial and handshake.
func FetchNotAfter(host string, port int, timeout time.Duration) (time.Time, error) {
	address := net.JoinHostPort(host, strconv.Itoa(port))

	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		kind := ErrConnection
		if isNetworkTimeout(err) {
			kind = ErrTimeout
		}
		return time.Time{}, &FetchError{Kind: kind, Err: err}
	}
	defer conn.Close()

	_ = conn.SetDeadline(time.Now().Add(timeout))

	tlsConn := tls.Client(conn, tlsConfigForHost(host))
	if err := tlsConn.Handshake(); err != nil {
		kind := ErrHandshake
		if isNetworkTimeout(err) {
			kind = ErrTimeout
		}
		return time.Time{}, &FetchError{Kind: kind, Err: err}
	}

	certs := tlsConn.ConnectionState().PeerCertificates
	if len(certs) == 0 {
		return time.Time{}, &FetchError{Kind: ErrNoCertificate}
	}

	return certs[0].NotAfter.UTC(), nil
}

func isNetworkTimeout(err error) bool {
	if err == nil {
		return false
	}
	if netErr, ok := err.(net.Error); ok {
		return netErr.Timeout()
	}
	return false
}
