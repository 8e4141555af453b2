package app

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/voxtools/deepgram-mcp-server/internal/mcp"
	"github.com/voxtools/deepgram-mcp-server/internal/tools"
)

// NewToolbox builds the Deepgram MCP toolbox.
func NewToolbox(speaker tools.Speaker, outputDir string) *mcp.Toolbox {
	return mcp.NewToolbox(
		tools.DeepgramTextToSpeech(speaker, outputDir),
	)
}

// NewMCPServer constructs an MCP server over the shared toolbox.
func NewMCPServer(speaker tools.Speaker, outputDir string) *mcp.Server {
	return mcp.NewServer(NewToolbox(speaker, outputDir))
}

// RunStdio serves the newline-delimited JSON-RPC session over the given
// streams until end-of-input.
func RunStdio(ctx context.Context, in io.Reader, out io.Writer, speaker tools.Speaker, outputDir string, logger *logrus.Entry) error {
	logger = logger.WithField("session_id", uuid.NewString())
	logger.Info("Starting MCP session")
	session := mcp.NewSession(in, out, NewMCPServer(speaker, outputDir), logger)
	err := session.Run(ctx)
	if err != nil {
		logger.WithError(err).Error("MCP session ended")
		return err
	}
	logger.Info("MCP session ended")
	return nil
}

// RunMCPHTTP starts the MCP HTTP transport on the provided address.
func RunMCPHTTP(addr string, speaker tools.Speaker, outputDir string, logger *logrus.Entry) error {
	return mcp.RunHTTP(NewMCPServer(speaker, outputDir), addr, logger)
}
