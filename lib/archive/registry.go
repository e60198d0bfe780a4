package archive

import (
	"fmt"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/puzpuzpuz/xsync/v3"
	"reflect"
	"sort"
)

var registryLogger = logger.GetLogger("registry")

// Selection chooses between a member description and a registered free
// function for a type that has both
type Selection uint8

const (
	// UseMember keeps the Describe / DescribeContext method of the type
	UseMember Selection = iota + 1
	// UseFunc uses the registered free function
	UseFunc
)

// registration is the selected description of one type
type registration struct {
	fn     any // func(Archive, *T), nil when the member is selected
	member bool
}

// registry maps the described type T (not *T) to its selected description
var registry = xsync.NewMapOf[reflect.Type, registration]()

// RegisterFunc registers fn as the description of T. It panics if T already
// has a registered description, if *T has a member description and no
// Selection is given, or if a Selection is given for a type without a
// member description. Call it from init.
func RegisterFunc[T any](fn func(a Archive, v *T), sel ...Selection) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if fn == nil {
		panic(fmt.Sprintf("archive: nil describe function for %s", typ))
	}
	if len(sel) > 1 {
		panic(fmt.Sprintf("archive: more than one selection for %s", typ))
	}

	r := registration{fn: fn}
	if hasMember[T]() {
		if len(sel) == 0 {
			panic(fmt.Sprintf("archive: %s has a member description and a free function, select one with UseMember or UseFunc", typ))
		}
		if sel[0] == UseMember {
			r = registration{member: true}
		}
	} else if len(sel) > 0 {
		panic(fmt.Sprintf("archive: selection for %s without a member description", typ))
	}

	if _, loaded := registry.LoadOrStore(typ, r); loaded {
		panic(fmt.Sprintf("archive: description for %s registered twice", typ))
	}
	registryLogger.Debugf("registered description for %s (member=%t)", typ, r.member)
}

// Describe transfers v with the selected description of T: the registered
// free function, or the member description when there is none. It panics
// if T has no description at all.
func Describe[T any](a Archive, v *T) {
	if r, ok := registry.Load(reflect.TypeOf((*T)(nil)).Elem()); ok && !r.member {
		r.fn.(func(Archive, *T))(a, v)
		return
	}
	switch d := any(v).(type) {
	case Describable:
		d.Describe(a)
	case ContextDescribable:
		ca, ok := a.(ContextArchive)
		if !ok {
			panic(fmt.Sprintf("archive: %s needs a context archive", reflect.TypeOf((*T)(nil)).Elem()))
		}
		d.DescribeContext(ca)
	default:
		panic(fmt.Sprintf("archive: no description for %s", reflect.TypeOf((*T)(nil)).Elem()))
	}
}

// Registered reports whether a free function or explicit selection is
// registered for T
func Registered[T any]() bool {
	_, ok := registry.Load(reflect.TypeOf((*T)(nil)).Elem())
	return ok
}

// RegisteredTypes returns the names of all types with a registration, sorted
func RegisteredTypes() []string {
	names := make([]string, 0, registry.Size())
	registry.Range(func(t reflect.Type, _ registration) bool {
		names = append(names, t.String())
		return true
	})
	sort.Strings(names)
	return names
}

func hasMember[T any]() bool {
	switch any((*T)(nil)).(type) {
	case Describable, ContextDescribable:
		return true
	}
	return false
}
