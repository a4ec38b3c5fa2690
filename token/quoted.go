package token

// Quote wraps v in double quotes. The format has no escape sequences, so
// the content is emitted verbatim.
func Quote(v string) string {
	return `"` + v + `"`
}

// Unquote strips the surrounding quote characters from a TString token's
// raw bytes.
func Unquote(d []byte) string {
	if len(d) >= 2 && d[0] == '"' && d[len(d)-1] == '"' {
		return string(d[1 : len(d)-1])
	}
	return string(d)
}
