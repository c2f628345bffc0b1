package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxAudioDownload caps inbound voice notes; anything larger is refused
// before it reaches the transcriber.
const maxAudioDownload = 20 << 20

var downloadClient = &http.Client{Timeout: 30 * time.Second}

// DownloadAudio fetches a user's voice note from the given URL.
func DownloadAudio(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := downloadClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("audio download failed: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAudioDownload+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxAudioDownload {
		return nil, fmt.Errorf("audio file larger than %d bytes", maxAudioDownload)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty audio download")
	}

	return data, nil
}
