// Package resource converts raw bytes into the UTF-8 string the extraction
// core consumes, and renders the output tree back to HTML with the
// break-collapsing substitutions applied.
package resource

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// DecodeText converts possibly non-UTF-8 bytes to a UTF-8 string. Valid
// UTF-8 passes through untouched; otherwise the charset declared in an
// early meta tag wins, then automatic detection, then the common legacy
// fallback. Returns an error only when every strategy fails to produce a
// valid string.
func DecodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	if enc := encodingFromMeta(data); enc != nil {
		if decoded, err := enc.NewDecoder().Bytes(data); err == nil && utf8.Valid(decoded) {
			return string(decoded), nil
		}
	}

	detector := chardet.NewTextDetector()
	if result, err := detector.DetectBest(data); err == nil && result.Confidence >= 40 {
		if enc := encodingByName(result.Charset); enc != nil {
			if decoded, err := enc.NewDecoder().Bytes(data); err == nil && utf8.Valid(decoded) {
				return string(decoded), nil
			}
		}
	}

	// Windows-1252 decodes any byte sequence; it is the usual culprit for
	// undeclared legacy content.
	if decoded, err := charmap.Windows1252.NewDecoder().Bytes(data); err == nil && utf8.Valid(decoded) {
		return string(decoded), nil
	}

	return "", fmt.Errorf("source cannot be decoded to text")
}

// encodingFromMeta scans the first kilobyte for a charset declaration.
func encodingFromMeta(data []byte) encoding.Encoding {
	search := data
	if len(search) > 1024 {
		search = data[:1024]
	}

	content := strings.ToLower(string(search))
	idx := strings.Index(content, "charset=")
	if idx == -1 {
		return nil
	}

	start := idx + len("charset=")
	for start < len(content) && (content[start] == '"' || content[start] == '\'') {
		start++
	}
	end := start
	for end < len(content) {
		c := content[end]
		if c == '"' || c == '\'' || c == '>' || c == ' ' || c == ';' {
			break
		}
		end++
	}
	if end == start {
		return nil
	}
	return encodingByName(strings.Trim(content[start:end], `"'`))
}

// encodingByName maps a charset label to a decoder.
func encodingByName(charset string) encoding.Encoding {
	charset = strings.ToLower(strings.ReplaceAll(charset, "_", "-"))

	switch charset {
	case "utf-8", "utf8":
		return unicode.UTF8
	case "utf-16", "utf16", "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1
	case "iso-8859-2", "latin2":
		return charmap.ISO8859_2
	case "iso-8859-5":
		return charmap.ISO8859_5
	case "iso-8859-7":
		return charmap.ISO8859_7
	case "iso-8859-9", "latin5":
		return charmap.ISO8859_9
	case "iso-8859-15", "latin9":
		return charmap.ISO8859_15
	case "windows-1250", "cp1250":
		return charmap.Windows1250
	case "windows-1251", "cp1251":
		return charmap.Windows1251
	case "windows-1252", "cp1252":
		return charmap.Windows1252
	case "windows-1253", "cp1253":
		return charmap.Windows1253
	case "windows-1254", "cp1254":
		return charmap.Windows1254
	case "windows-1255", "cp1255":
		return charmap.Windows1255
	case "windows-1256", "cp1256":
		return charmap.Windows1256
	case "koi8-r":
		return charmap.KOI8R
	case "koi8-u":
		return charmap.KOI8U
	case "shift-jis", "shift_jis", "sjis":
		return japanese.ShiftJIS
	case "euc-jp", "eucjp":
		return japanese.EUCJP
	case "iso-2022-jp":
		return japanese.ISO2022JP
	case "euc-kr", "euckr":
		return korean.EUCKR
	case "gb2312", "gb-2312", "gb18030":
		return simplifiedchinese.GB18030
	case "gbk":
		return simplifiedchinese.GBK
	case "big5":
		return traditionalchinese.Big5
	default:
		return nil
	}
}
