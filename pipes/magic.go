package pipes

import "github.com/thomascamminady/piper"

var magic = piper.Compose(
	DropRowsThatAreAllNull,
	DropColumnsThatAreAllNull,
	Utf8Promotion,
	SemicircleToDegrees,
)

// Magic applies the usual cleanup for activity data: it drops rows and then columns which are all
// null, promotes string columns to more specific types and converts semicircle coordinates to degrees.
func Magic(df piper.DataFrame) (piper.DataFrame, error) {
	return magic(df)
}
