package frame

const (
	colValueIsNilFlag = 1 << iota
)

// series stores the cells of a single column, along with
// per-cell metadata flags. A series belonging to a built
// DataFrame is never modified, and may be shared by
// multiple DataFrames.
type series struct {
	values []interface{}
	meta   []byte
}

// createSeries creates a series of numRows nil cells
func createSeries(numRows int) *series {
	s := &series{
		values: make([]interface{}, numRows),
		meta:   make([]byte, numRows),
	}
	for i := range s.meta {
		s.meta[i] = colValueIsNilFlag
	}
	return s
}

func (s *series) len() int {
	return len(s.values)
}

func (s *series) isNil(rowNum int) bool {
	return s.meta[rowNum]&colValueIsNilFlag > 0
}

// get returns the value of a cell, or nil if the cell is nil
func (s *series) get(rowNum int) interface{} {
	if s.isNil(rowNum) {
		return nil
	}
	return s.values[rowNum]
}

func (s *series) set(rowNum int, value interface{}) {
	s.values[rowNum] = value
	s.meta[rowNum] = s.meta[rowNum] &^ colValueIsNilFlag
}

func (s *series) setNil(rowNum int) {
	s.values[rowNum] = nil
	s.meta[rowNum] = s.meta[rowNum] | colValueIsNilFlag
}

func (s *series) appendNil() {
	s.values = append(s.values, nil)
	s.meta = append(s.meta, colValueIsNilFlag)
}

func (s *series) nullCount() int {
	count := 0
	for i := range s.meta {
		if s.isNil(i) {
			count++
		}
	}
	return count
}

// clone produces a deep copy of this series. List values are copied as well, since they are mutable.
func (s *series) clone() *series {
	return s.take(nil)
}

// take produces a new series containing the given rows, in the given order. A nil slice of rowNums takes every row.
func (s *series) take(rowNums []int) *series {
	if rowNums == nil {
		rowNums = make([]int, s.len())
		for i := range rowNums {
			rowNums[i] = i
		}
	}
	result := &series{
		values: make([]interface{}, len(rowNums)),
		meta:   make([]byte, len(rowNums)),
	}
	for i, rowNum := range rowNums {
		result.values[i] = copyValue(s.values[rowNum])
		result.meta[i] = s.meta[rowNum]
	}
	return result
}

// copyValue copies mutable values, and returns immutable ones as-is
func copyValue(v interface{}) interface{} {
	if list, ok := v.([]float64); ok {
		c := make([]float64, len(list))
		copy(c, list)
		return c
	}
	return v
}
