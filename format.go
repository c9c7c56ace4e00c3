package fixedwidth

const (
	left  alignment = "left"
	right alignment = "right"
)

const (
	defaultPadChar = ' '
)

type alignment string

// format controls how a value is placed in its field when encoding.
type format struct {
	alignment alignment
	padChar   byte
}

// kindFormats holds the layout of each kind. Strings read left to right and
// are padded on the right; numbers are right-aligned.
var kindFormats = map[Kind]format{
	String:  {alignment: left, padChar: defaultPadChar},
	Integer: {alignment: right, padChar: defaultPadChar},
}

func formatFor(k Kind) format {
	if f, ok := kindFormats[k]; ok {
		return f
	}
	return format{alignment: left, padChar: defaultPadChar}
}
