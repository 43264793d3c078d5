// Package testutil holds helpers shared by integration tests.
package testutil

import (
	"bufio"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"
)

// TelnetClient plays a scripted session against a Telnet listener and keeps
// everything the server sent.
type TelnetClient struct {
	conn       net.Conn
	reader     *bufio.Reader
	t          *testing.T
	transcript strings.Builder
	timeout    time.Duration
}

// NewTelnetClient dials addr and returns a client that fails the test after
// timeout without the expected output.
//
// Precondition: addr must be a "host:port" with a listening server.
// Postcondition: Returns a connected TelnetClient or fails the test. The
// connection is closed on test cleanup.
func NewTelnetClient(t *testing.T, addr string, timeout time.Duration) *TelnetClient {
	t.Helper()
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		t.Fatalf("connecting to %s: %v", addr, err)
	}
	t.Cleanup(func() { conn.Close() })
	return &TelnetClient{
		conn:    conn,
		reader:  bufio.NewReader(conn),
		t:       t,
		timeout: timeout,
	}
}

// Expect reads until the output since the previous Expect contains want.
//
// Precondition: want must be non-empty.
// Postcondition: Returns the newly read output, including want.
func (c *TelnetClient) Expect(want string) string {
	c.t.Helper()
	_ = c.conn.SetReadDeadline(time.Now().Add(c.timeout))
	var chunk strings.Builder
	for !strings.Contains(chunk.String(), want) {
		b, err := c.reader.ReadByte()
		if err != nil {
			c.t.Fatalf("waiting for %q: got %q, error: %v", want, chunk.String(), err)
		}
		chunk.WriteByte(b)
		c.transcript.WriteByte(b)
	}
	return chunk.String()
}

// Send writes text followed by CRLF.
//
// Precondition: text must not end in a newline.
func (c *TelnetClient) Send(text string) {
	c.t.Helper()
	_ = c.conn.SetWriteDeadline(time.Now().Add(c.timeout))
	if _, err := fmt.Fprintf(c.conn, "%s\r\n", text); err != nil {
		c.t.Fatalf("sending %q: %v", text, err)
	}
}

// Transcript returns everything read so far.
func (c *TelnetClient) Transcript() string {
	return c.transcript.String()
}

// Close closes the connection.
func (c *TelnetClient) Close() {
	c.conn.Close()
}
