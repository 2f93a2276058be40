package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	TextFormat Format = iota
	TexFormat
	ObjFormat
	PyFormat
	ArrayFormat
	HTMLFormat
	ExprFormat
	ANSIFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"text":  TextFormat,
		"str":   TextFormat,
		"tex":   TexFormat,
		"latex": TexFormat,
		"obj":   ObjFormat,
		"py":    PyFormat,
		"array": ArrayFormat,
		"html":  HTMLFormat,
		"expr":  ExprFormat,
		"ansi":  ANSIFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TextFormat:
		return []byte("text"), nil
	case TexFormat:
		return []byte("tex"), nil
	case ObjFormat:
		return []byte("obj"), nil
	case PyFormat:
		return []byte("py"), nil
	case ArrayFormat:
		return []byte("array"), nil
	case HTMLFormat:
		return []byte("html"), nil
	case ExprFormat:
		return []byte("expr"), nil
	case ANSIFormat:
		return []byte("ansi"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// IsString reports whether renderings in f are plain strings. Obj and
// Array renderings are structured values.
func (f Format) IsString() bool {
	switch f {
	case ObjFormat, ArrayFormat:
		return false
	default:
		return true
	}
}

// AllFormats returns all supported formats in declaration order.
func AllFormats() []Format {
	return []Format{
		TextFormat,
		TexFormat,
		ObjFormat,
		PyFormat,
		ArrayFormat,
		HTMLFormat,
		ExprFormat,
		ANSIFormat,
	}
}
