/*
Copyright © 2026 the backscatter authors.
This file is part of backscatter.

backscatter is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

backscatter is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with backscatter.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package hash creates short content keys for model inputs so that
// outputs and log records can be traced to the parameters that made them.
package hash

import (
	"encoding/gob"
	"fmt"
	"hash"
	"hash/fnv"
	"reflect"

	"github.com/davecgh/go-spew/spew"
)

// Key returns a hexadecimal hash of object. Objects that implement
// fmt.Stringer are keyed by their string form. Identical inputs always
// give identical keys.
func Key(object interface{}) string {
	if s, ok := object.(fmt.Stringer); ok {
		return s.String()
	}
	h := fnv.New64a()
	if err := gobEncode(h, object); err != nil {
		// gob can't encode some values (nil pointers, interfaces
		// without registered types), so print the value instead.
		h.Reset()
		printer := spew.ConfigState{
			Indent:                  " ",
			SortKeys:                true,
			DisableMethods:          true,
			SpewKeys:                true,
			DisablePointerAddresses: true,
			DisableCapacities:       true,
		}
		printer.Fprintf(h, "%#v", object)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// gobEncode writes the gob encoding of object to h. gob panics on
// nil pointers rather than returning an error, so those are reported
// as errors here.
func gobEncode(h hash.Hash, object interface{}) (err error) {
	if v := reflect.ValueOf(object); v.Kind() == reflect.Ptr && v.IsNil() {
		return fmt.Errorf("hash: nil pointer of type %T", object)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("hash: %v", r)
		}
	}()
	return gob.NewEncoder(h).Encode(object)
}
