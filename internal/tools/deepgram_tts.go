package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/voxtools/deepgram-mcp-server/internal/args"
	"github.com/voxtools/deepgram-mcp-server/internal/protocol"
)

const defaultFilename = "output.mp3"

// Speaker converts text into audio bytes. Satisfied by the Deepgram client.
type Speaker interface {
	Speak(ctx context.Context, text string) ([]byte, error)
}

// deepgramTTSTool generates an audio file from text via the speech collaborator.
type deepgramTTSTool struct {
	speaker   Speaker
	outputDir string
}

// DeepgramTextToSpeech constructs the tool. Audio files land in outputDir,
// or the working directory when it is empty.
func DeepgramTextToSpeech(speaker Speaker, outputDir string) *deepgramTTSTool {
	return &deepgramTTSTool{speaker: speaker, outputDir: outputDir}
}

func (t *deepgramTTSTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "deepgram_text_to_speech",
		Description: "Generate an audio file from text using Deepgram's text-to-speech API. The audio will be saved as an MP3 file.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"text": {
					Type:        "string",
					Description: "The text to convert to speech",
				},
				"filename": {
					Type:        "string",
					Description: "The filename for the output audio file (optional, defaults to 'output.mp3')",
				},
			},
			Required: []string{"text"},
		},
	}
}

func (t *deepgramTTSTool) Invoke(ctx context.Context, arguments map[string]any) (protocol.CallResult, error) {
	text, err := args.String(arguments, "text")
	if err != nil {
		return protocol.CallResult{}, err
	}
	filename, err := args.StringOr(arguments, "filename", defaultFilename)
	if err != nil {
		return protocol.CallResult{}, err
	}

	audio, err := t.speaker.Speak(ctx, text)
	if err != nil {
		return protocol.CallResult{}, err
	}

	path := filename
	if t.outputDir != "" {
		path = filepath.Join(t.outputDir, filename)
	}
	if err := writeFileAtomic(path, audio); err != nil {
		return protocol.CallResult{}, fmt.Errorf("failed to write audio file: %w", err)
	}

	return protocol.CallResult{
		Content: []protocol.ContentPart{{
			Type: "text",
			Text: fmt.Sprintf("Successfully generated audio file '%s' from text: %q", filename, text),
		}},
	}, nil
}

// writeFileAtomic writes via a temp file and rename so a failed call never
// leaves a truncated artifact behind.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
