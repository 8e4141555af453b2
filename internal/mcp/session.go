package mcp

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/voxtools/deepgram-mcp-server/internal/protocol"
)

// Session runs the newline-delimited JSON-RPC loop over a byte stream,
// typically process stdin/stdout. Processing is strictly sequential: one
// request is read, dispatched, and answered before the next read, so
// responses are emitted in request order.
type Session struct {
	in     *bufio.Reader
	out    *bufio.Writer
	server *Server
	logger *logrus.Entry
}

// NewSession wraps the streams for a server.
func NewSession(in io.Reader, out io.Writer, server *Server, logger *logrus.Entry) *Session {
	return &Session{
		in:     bufio.NewReader(in),
		out:    bufio.NewWriter(out),
		server: server,
		logger: logger,
	}
}

// Run reads requests until the input stream ends. A clean end-of-stream
// returns nil; a read error is logged and returned. Malformed lines are
// logged and skipped without writing anything; blank lines are skipped
// silently. Every response is flushed before the next read.
func (s *Session) Run(ctx context.Context) error {
	for {
		line, err := s.in.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			s.logger.WithError(err).Error("Failed to read line")
			return fmt.Errorf("read request: %w", err)
		}
		atEOF := errors.Is(err, io.EOF)

		trimmed := bytes.TrimSpace(line)
		if len(trimmed) > 0 {
			if err := s.serve(ctx, trimmed); err != nil {
				return err
			}
		}

		if atEOF {
			return nil
		}
	}
}

func (s *Session) serve(ctx context.Context, line []byte) error {
	req, err := protocol.DecodeRequest(line)
	if err != nil {
		// No id can be recovered from a malformed line, so it is never
		// answered on the wire; log and continue with the next line.
		s.logger.WithError(err).Error("Failed to parse request")
		return nil
	}

	resp := s.server.Handle(ctx, req)

	encoded, err := protocol.EncodeResponse(resp)
	if err != nil {
		s.logger.WithError(err).Error("Failed to encode response")
		return nil
	}
	if _, err := s.out.Write(encoded); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	if err := s.out.WriteByte('\n'); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return s.out.Flush()
}
