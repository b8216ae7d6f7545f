package themegen_test

import "github.com/fwojciec/themegen"

// table builds an ordered table from alternating key/value arguments.
func table(kv ...any) *themegen.Table {
	t := themegen.NewTable()
	for i := 0; i+1 < len(kv); i += 2 {
		t.Set(kv[i].(string), kv[i+1])
	}
	return t
}
