// Package encoding maps the charset names found in XML declarations
// and input sources to golang.org/x/text encodings. It also hides
// package names such as "unicode" that clash with the stdlib.
package encoding

import (
	"strings"

	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// keys are normalized with normalize
var encodings = map[string]enc.Encoding{
	"utf8":              unicode.UTF8,
	"utf16":             unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	"utf16be":           unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"utf16le":           unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"eucjp":             japanese.EUCJP,
	"shiftjis":          japanese.ShiftJIS,
	"cp932":             japanese.ShiftJIS,
	"jis":               japanese.ISO2022JP,
	"iso2022jp":         japanese.ISO2022JP,
	"big5":              traditionalchinese.Big5,
	"euckr":             korean.EUCKR,
	"gbk":               simplifiedchinese.GBK,
	"gb18030":           simplifiedchinese.GB18030,
	"hzgb2312":          simplifiedchinese.HZGB2312,
	"cp437":             charmap.CodePage437,
	"cp866":             charmap.CodePage866,
	"iso88591":          charmap.Windows1252,
	"latin1":            charmap.Windows1252,
	"usascii":           charmap.Windows1252,
	"iso88592":          charmap.ISO8859_2,
	"iso88593":          charmap.ISO8859_3,
	"iso88594":          charmap.ISO8859_4,
	"iso88595":          charmap.ISO8859_5,
	"iso88596":          charmap.ISO8859_6,
	"iso88597":          charmap.ISO8859_7,
	"iso88598":          charmap.ISO8859_8,
	"iso885910":         charmap.ISO8859_10,
	"iso885913":         charmap.ISO8859_13,
	"iso885914":         charmap.ISO8859_14,
	"iso885915":         charmap.ISO8859_15,
	"iso885916":         charmap.ISO8859_16,
	"koi8r":             charmap.KOI8R,
	"koi8u":             charmap.KOI8U,
	"macintosh":         charmap.Macintosh,
	"macintoshcyrillic": charmap.MacintoshCyrillic,
	"windows874":        charmap.Windows874,
	"windows1250":       charmap.Windows1250,
	"windows1251":       charmap.Windows1251,
	"windows1252":       charmap.Windows1252,
	"windows1253":       charmap.Windows1253,
	"windows1254":       charmap.Windows1254,
	"windows1255":       charmap.Windows1255,
	"windows1256":       charmap.Windows1256,
	"windows1257":       charmap.Windows1257,
	"windows1258":       charmap.Windows1258,
	"xuserdefined":      charmap.XUserDefined,
}

// normalize lower-cases name and drops the separators that charset
// labels use inconsistently, so "ISO-8859-1", "iso_8859_1" and
// "iso88591" are the same name.
func normalize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ', '.':
			return -1
		}
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, name)
}

// Load returns the encoding registered under name, or nil.
func Load(name string) enc.Encoding {
	return encodings[normalize(name)]
}

// IsUTF8 reports whether name is a label for UTF-8. The empty name
// is UTF-8, the default encoding of XML documents.
func IsUTF8(name string) bool {
	n := normalize(name)
	return n == "" || n == "utf8"
}
