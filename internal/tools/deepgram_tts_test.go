package tools

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeSpeaker struct {
	audio   []byte
	err     error
	gotText string
}

func (f *fakeSpeaker) Speak(_ context.Context, text string) ([]byte, error) {
	f.gotText = text
	return f.audio, f.err
}

func TestDescriptorMarksTextRequired(t *testing.T) {
	desc := DeepgramTextToSpeech(&fakeSpeaker{}, "").Descriptor()
	if desc.Name != "deepgram_text_to_speech" {
		t.Fatalf("unexpected tool name %q", desc.Name)
	}
	if desc.InputSchema == nil {
		t.Fatal("input schema missing")
	}
	if len(desc.InputSchema.Required) != 1 || desc.InputSchema.Required[0] != "text" {
		t.Fatalf("text must be the only required parameter: %v", desc.InputSchema.Required)
	}
	if _, ok := desc.InputSchema.Properties["filename"]; !ok {
		t.Fatal("filename parameter missing from schema")
	}
}

func TestInvokeWritesAudioAndConfirms(t *testing.T) {
	dir := t.TempDir()
	speaker := &fakeSpeaker{audio: []byte("mp3-bytes")}
	tool := DeepgramTextToSpeech(speaker, dir)

	result, err := tool.Invoke(context.Background(), map[string]any{"text": "hi"})
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}

	if speaker.gotText != "hi" {
		t.Fatalf("collaborator got text %q", speaker.gotText)
	}

	written, err := os.ReadFile(filepath.Join(dir, "output.mp3"))
	if err != nil {
		t.Fatalf("audio file not written: %v", err)
	}
	if string(written) != "mp3-bytes" {
		t.Fatalf("audio bytes corrupted: %q", written)
	}

	if len(result.Content) != 1 || result.Content[0].Type != "text" {
		t.Fatalf("unexpected result shape: %+v", result)
	}
	text := result.Content[0].Text
	if !strings.Contains(text, "hi") || !strings.Contains(text, "output.mp3") {
		t.Fatalf("confirmation must reference the text and the filename: %q", text)
	}
}

func TestInvokeHonorsFilenameArgument(t *testing.T) {
	dir := t.TempDir()
	tool := DeepgramTextToSpeech(&fakeSpeaker{audio: []byte("x")}, dir)

	result, err := tool.Invoke(context.Background(), map[string]any{
		"text":     "greetings",
		"filename": "speech.mp3",
	})
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "speech.mp3")); err != nil {
		t.Fatalf("named file not written: %v", err)
	}
	if !strings.Contains(result.Content[0].Text, "speech.mp3") {
		t.Fatalf("confirmation must reference the chosen filename: %q", result.Content[0].Text)
	}
}

func TestInvokeMissingTextFails(t *testing.T) {
	tool := DeepgramTextToSpeech(&fakeSpeaker{audio: []byte("x")}, t.TempDir())

	if _, err := tool.Invoke(context.Background(), map[string]any{}); err == nil {
		t.Fatal("missing text must fail")
	} else if !strings.Contains(err.Error(), "text") {
		t.Fatalf("error should name the parameter: %v", err)
	}

	if _, err := tool.Invoke(context.Background(), map[string]any{"text": 12}); err == nil {
		t.Fatal("non-string text must fail")
	}
}

func TestInvokePropagatesSpeakerFailure(t *testing.T) {
	dir := t.TempDir()
	tool := DeepgramTextToSpeech(&fakeSpeaker{err: errors.New("Deepgram API error: 503")}, dir)

	_, err := tool.Invoke(context.Background(), map[string]any{"text": "hi"})
	if err == nil {
		t.Fatal("collaborator failure must propagate")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Fatalf("diagnostic lost: %v", err)
	}

	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatalf("readdir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Fatalf("no artifact may be left behind on failure: %v", entries)
	}
}
