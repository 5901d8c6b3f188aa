package scanner

import (
	"os"

	"github.com/go-audio/wav"
	"github.com/tcolgate/mp3"

	"github.com/megawave/megawave/internal/model"
)

// probeDuration estimates the track length in seconds. Failures are not
// reported: a track without a known length is still a valid track.
func probeDuration(path string, fileType model.FileType) (float64, bool) {
	f, err := os.Open(path)
	if err != nil {
		return 0, false
	}
	defer f.Close()

	switch fileType {
	case model.FileTypeWAV:
		dur, err := wav.NewDecoder(f).Duration()
		if err != nil {
			return 0, false
		}
		return dur.Seconds(), true

	case model.FileTypeMP3:
		info, err := f.Stat()
		if err != nil {
			return 0, false
		}
		// read the first frame and extrapolate over the file size;
		// close enough for CBR files and cheap enough for a scan
		var frame mp3.Frame
		var skipped int
		if err := mp3.NewDecoder(f).Decode(&frame, &skipped); err != nil {
			return 0, false
		}
		bitRate := int64(frame.Header().BitRate())
		if bitRate <= 0 {
			return 0, false
		}
		return float64(info.Size()*8) / float64(bitRate), true
	}

	return 0, false
}
