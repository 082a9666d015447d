package config

import (
	"strconv"
)

// Option names accepted on the command line.
const (
	OptFrom     = "--from"
	OptTo       = "--to"
	OptLength   = "--length"
	OptLimit    = "--limit"
	OptDictFile = "--dictfile"
)

// flags holds the options as supplied, before any resolution.
type flags struct {
	from, to       string
	hasFrom, hasTo bool
	length, limit  int // 0 when not supplied
	dictFile       string
	hasDictFile    bool
}

// option parses one supplied value into flags.
type option func(f *flags, value string) error

var options = map[string]option{
	OptFrom: func(f *flags, v string) error {
		f.from, f.hasFrom = v, true
		return nil
	},
	OptTo: func(f *flags, v string) error {
		f.to, f.hasTo = v, true
		return nil
	},
	OptLength: func(f *flags, v string) (err error) {
		f.length, err = positive(v)
		return err
	},
	OptLimit: func(f *flags, v string) (err error) {
		f.limit, err = positive(v)
		return err
	},
	OptDictFile: func(f *flags, v string) error {
		f.dictFile, f.hasDictFile = v, true
		return nil
	},
}

// positive parses a base-10 integer greater than zero.
func positive(v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, newError(KindUsage)
	}
	return n, nil
}

// parseFlags checks the shape of args and applies each option.
// Every option takes exactly one value and may appear at most once.
func parseFlags(args []string) (flags, error) {
	var f flags
	if len(args)%2 != 0 || len(args) > 2*len(options) {
		return f, newError(KindUsage)
	}

	values := make(map[string]string, len(args)/2)
	order := make([]string, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		name := args[i]
		if _, ok := options[name]; !ok {
			return f, newError(KindUsage)
		}
		if _, seen := values[name]; seen {
			return f, newError(KindUsage)
		}
		values[name] = args[i+1]
		order = append(order, name)
	}

	for _, name := range order {
		if err := options[name](&f, values[name]); err != nil {
			return f, err
		}
	}
	return f, nil
}
