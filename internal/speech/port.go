package speech

import "context"

type STTClient interface {
	// Transcribe turns recorded speech into text. The filename carries
	// the format hint for the provider.
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

type TTSClient interface {
	// Synthesize renders text to audio and reports the file extension
	// of the produced format.
	Synthesize(ctx context.Context, text string) ([]byte, string, error)
}
