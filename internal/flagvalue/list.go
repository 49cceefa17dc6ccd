package flagvalue

import (
	"strings"

	"braces.dev/errtrace"
)

// List collects repeated uses of a flag into a slice:
// each occurrence on the command line appends one element.
// Elements parse themselves through their own flag.Getter.
type List[T any, PT Getter[T]] []T

// ListOf adapts a slice so it can be registered as a repeatable flag:
//
//	fset.Var(flagvalue.ListOf(&labels), "label", ...)
func ListOf[T any, PT Getter[T]](vs *[]T) *List[T, PT] {
	return (*List[T, PT])(vs)
}

// Get reports the elements collected so far as a []T.
func (lv *List[T, PT]) Get() any { return []T(*lv) }

// String renders the collected elements separated by "; ".
func (lv *List[T, PT]) String() string {
	items := make([]string, len(*lv))
	for i := range *lv {
		items[i] = PT(&(*lv)[i]).String()
	}
	return strings.Join(items, "; ")
}

// Set parses one flag argument and appends it to the list.
func (lv *List[T, PT]) Set(s string) error {
	var v T
	if err := PT(&v).Set(s); err != nil {
		return errtrace.Wrap(err)
	}
	*lv = append(*lv, v)
	return nil
}
