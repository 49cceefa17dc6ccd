package highlight

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// PlainStyle is a minimal syntax highlighting style for Chroma.
// It leaves most text as-is, and fades comments ever so slightly.
var PlainStyle = chroma.MustNewStyle("plain", map[chroma.TokenType]string{
	chroma.Comment:    "#666666",
	chroma.PreWrapper: "bg:#eeeeee",
	chroma.Background: "bg:#eeeeee",
})

func init() {
	styles.Register(PlainStyle)
}

// LookupStyle finds a registered highlighting style by name.
func LookupStyle(name string) (*chroma.Style, error) {
	if s := styles.Get(name); s != styles.Fallback || name == styles.Fallback.Name {
		return s, nil
	}
	return nil, fmt.Errorf("unknown style %q", name)
}
