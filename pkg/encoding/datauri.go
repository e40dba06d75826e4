package encoding

import "encoding/base64"

// DataURI embeds raw bytes as a base64 data URI.
func DataURI(mime string, raw []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw)
}
