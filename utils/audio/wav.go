// Package audio converts telephony-encoded uploads into WAV so the speech
// gateway can consume them.
package audio

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/zaf/g711"
)

// Telephony G.711 frames are 8 kHz mono.
const g711SampleRate = 8000

// TelephonyCodec identifies a G.711 variant by upload file extension.
type TelephonyCodec int

const (
	CodecUlaw TelephonyCodec = iota
	CodecAlaw
)

// DetectTelephonyCodec maps an upload extension to a G.711 codec. The
// second return is false for extensions that need no conversion.
func DetectTelephonyCodec(ext string) (TelephonyCodec, bool) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "ulaw", "ul", "pcmu":
		return CodecUlaw, true
	case "alaw", "al", "pcma":
		return CodecAlaw, true
	default:
		return 0, false
	}
}

// TelephonyToWAV decodes a raw G.711 payload to 16-bit LPCM and wraps it
// in a WAV container.
func TelephonyToWAV(codec TelephonyCodec, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("audio: empty payload")
	}
	var pcm []byte
	switch codec {
	case CodecUlaw:
		pcm = g711.DecodeUlaw(data)
	case CodecAlaw:
		pcm = g711.DecodeAlaw(data)
	default:
		return nil, fmt.Errorf("audio: unknown codec %d", codec)
	}
	return wrapWAV(pcm, g711SampleRate, 1, 16), nil
}

// wrapWAV prepends a RIFF/WAVE header to little-endian LPCM samples.
func wrapWAV(pcm []byte, sampleRate, channels, bitsPerSample int) []byte {
	blockAlign := channels * bitsPerSample / 8
	byteRate := sampleRate * blockAlign

	buf := make([]byte, 0, 44+len(pcm))
	buf = append(buf, "RIFF"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(36+len(pcm)))
	buf = append(buf, "WAVE"...)

	buf = append(buf, "fmt "...)
	buf = binary.LittleEndian.AppendUint32(buf, 16)
	buf = binary.LittleEndian.AppendUint16(buf, 1) // PCM
	buf = binary.LittleEndian.AppendUint16(buf, uint16(channels))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(sampleRate))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(byteRate))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(blockAlign))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(bitsPerSample))

	buf = append(buf, "data"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(pcm)))
	buf = append(buf, pcm...)
	return buf
}
