package notifu

import (
	"github.com/mblarsen/balloon/internal/request"
)

// Kind is the value kind of a notifu option.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindNumeric
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNumeric:
		return "numeric"
	default:
		return "unknown"
	}
}

// FlagSpec describes one notifu option. Request keys are matched against
// Name first and then Aliases, in order.
type FlagSpec struct {
	Name    string
	Flag    string
	Kind    Kind
	Aliases []string
}

// FlagSpecs is the closed set of options notifu understands, in emission
// order. Request keys outside this table are never passed on.
var FlagSpecs = []FlagSpec{
	{Name: "message", Flag: "-m", Kind: KindString},
	{Name: "title", Flag: "-p", Kind: KindString},
	{Name: "quiet", Flag: "-q", Kind: KindBool},
	{Name: "duration", Flag: "-d", Kind: KindNumeric, Aliases: []string{"t", "time", "d"}},
	{Name: "icon", Flag: "-i", Kind: KindString, Aliases: []string{"i"}},
	{Name: "type", Flag: "-t", Kind: KindString},
	{Name: "e", Flag: "-e", Kind: KindBool},
	{Name: "w", Flag: "-w", Kind: KindBool},
	{Name: "xp", Flag: "-xp", Kind: KindBool},
	{Name: "l", Flag: "-l", Kind: KindBool},
	{Name: "k", Flag: "-k", Kind: KindBool},
}

var flagIndex = func() map[string]int {
	index := make(map[string]int)
	for i, spec := range FlagSpecs {
		index[spec.Name] = i
		for _, alias := range spec.Aliases {
			index[alias] = i
		}
	}
	return index
}()

// Lookup returns the option a request key refers to.
func Lookup(key string) (FlagSpec, bool) {
	i, ok := flagIndex[key]
	if !ok {
		return FlagSpec{}, false
	}
	return FlagSpecs[i], true
}

// find returns the first value for the option in opts that usable accepts,
// trying the name before the aliases. Rejected values count as absent.
func (s FlagSpec) find(opts map[string]any, usable func(any) bool) (any, bool) {
	if v, ok := opts[s.Name]; ok && usable(v) {
		return v, true
	}
	for _, alias := range s.Aliases {
		if v, ok := opts[alias]; ok && usable(v) {
			return v, true
		}
	}
	return nil, false
}

func isBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

func isText(v any) bool {
	text, ok := request.Text(v)
	return ok && text != ""
}

func isType(v any) bool {
	_, ok := NormalizeType(v)
	return ok
}

// Compile turns a validated request into the notifu argument list. The
// result depends only on v, so equal requests compile to equal lists.
func Compile(v *request.Validated) []string {
	args := make([]string, 0, 8)
	for _, spec := range FlagSpecs {
		switch spec.Name {
		case "message":
			args = append(args, spec.Flag, Escape(v.Message))
		case "title":
			args = append(args, spec.Flag, Escape(v.Title))
		case "quiet":
			if v.Quiet {
				args = append(args, spec.Flag)
			}
		case "type":
			raw, _ := spec.find(v.Options, isType)
			if severity, ok := NormalizeType(raw); ok {
				args = append(args, spec.Flag, string(severity))
			}
		default:
			args = spec.appendOption(args, v.Options)
		}
	}
	return args
}

func (s FlagSpec) appendOption(args []string, opts map[string]any) []string {
	switch s.Kind {
	case KindBool:
		if raw, ok := s.find(opts, isBool); ok && raw.(bool) {
			args = append(args, s.Flag)
		}
	case KindNumeric, KindString:
		raw, ok := s.find(opts, isText)
		if !ok {
			return args
		}
		text, _ := request.Text(raw)
		if s.Kind == KindString {
			text = Escape(text)
		}
		args = append(args, s.Flag, text)
	}
	return args
}
