package pipes

import (
	"fmt"
	"sort"
	"sync"

	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/errors"
)

var registry = struct {
	lock  sync.RWMutex
	pipes map[string]piper.Pipe
}{
	pipes: map[string]piper.Pipe{
		"drop_rows_that_are_all_null":               DropRowsThatAreAllNull,
		"drop_columns_that_are_all_null":            DropColumnsThatAreAllNull,
		"semicircle_to_degrees":                     SemicircleToDegrees,
		"convert_times_to_datetime":                 ConvertTimesToDatetime(),
		"cast_time_in_zone_string_to_list_of_float": CastTimeInZoneStringToListOfFloat(),
		"utf8_promotion":                            Utf8Promotion,
		"try_convert_dtypes_to_float_if_possible":   TryConvertDtypesToFloatIfPossible,
		"magic":                                     Magic,
	},
}

// Lookup returns the Pipe registered under the given name
func Lookup(name string) (piper.Pipe, error) {
	registry.lock.RLock()
	defer registry.lock.RUnlock()
	p, ok := registry.pipes[name]
	if !ok {
		return nil, errors.UnknownPipeError{Name: name}
	}
	return p, nil
}

// LookupAll resolves a sequence of names into a sequence of Pipes
func LookupAll(names ...string) ([]piper.Pipe, error) {
	res := make([]piper.Pipe, len(names))
	for i, name := range names {
		p, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		res[i] = p
	}
	return res, nil
}

// Names returns the names of all registered Pipes, sorted
func Names() []string {
	registry.lock.RLock()
	defer registry.lock.RUnlock()
	names := make([]string, 0, len(registry.pipes))
	for name := range registry.pipes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register makes a Pipe available under a new name
func Register(name string, p piper.Pipe) error {
	if len(name) == 0 {
		return errors.InvalidInputError{Reason: "Pipe name is empty"}
	}
	if p == nil {
		return errors.InvalidInputError{Reason: fmt.Sprintf("Pipe %s is nil", name)}
	}
	registry.lock.Lock()
	defer registry.lock.Unlock()
	if _, ok := registry.pipes[name]; ok {
		return fmt.Errorf("A pipe is already registered with name %s", name)
	}
	registry.pipes[name] = p
	return nil
}
