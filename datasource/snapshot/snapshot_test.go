package snapshot

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/datasource"
	"github.com/thomascamminady/piper/schema"
)

func createTestFrame(t *testing.T) piper.DataFrame {
	schema, err := schema.CreateSchemaFrom(
		[]string{"bool", "int32", "int64", "float32", "float64", "time", "string", "list"},
		[]piper.ColumnType{
			&piper.BoolColumnType{},
			&piper.Int32ColumnType{},
			&piper.Int64ColumnType{},
			&piper.Float32ColumnType{},
			&piper.Float64ColumnType{},
			&piper.TimeColumnType{Format: "2006-01-02 15:04:05"},
			&piper.VarStringColumnType{},
			&piper.VarFloat64ListColumnType{},
		},
	)
	require.Nil(t, err)
	now := time.Date(2023, 2, 22, 11, 56, 0, 0, time.UTC)
	df, err := datasource.CreateDataFrameFromRows(schema, [][]interface{}{
		{true, int32(1), int64(2), float32(1.5), 2.5, now, "a", []float64{1, 2}},
		{nil, nil, nil, nil, nil, nil, nil, nil},
		{false, int32(-1), int64(-2), float32(0), 0.0, now.Add(time.Hour), "", []float64{}},
	})
	require.Nil(t, err)
	return df
}

func TestSnapshotRoundTrip(t *testing.T) {
	df := createTestFrame(t)
	s := CreateSerializer()
	var buff bytes.Buffer
	require.Nil(t, s.Write(&buff, df))
	again, err := s.Parse(&buff, nil)
	require.Nil(t, err)
	require.Nil(t, df.Equals(again))
	require.Equal(t, df.Fingerprint(), again.Fingerprint())
	require.True(t, again.GetRow(1).IsNil("list"))
	require.False(t, again.GetRow(2).IsNil("list"))

	// the serializer is reusable
	buff.Reset()
	require.Nil(t, s.Write(&buff, df))
	again, err = s.Parse(&buff, df.GetSchema())
	require.Nil(t, err)
	require.Nil(t, df.Equals(again))
}

func TestSnapshotSchemaMismatch(t *testing.T) {
	df := createTestFrame(t)
	s := CreateSerializer()
	var buff bytes.Buffer
	require.Nil(t, s.Write(&buff, df))
	other, err := schema.CreateSchemaFrom([]string{"bool"}, []piper.ColumnType{&piper.BoolColumnType{}})
	require.Nil(t, err)
	_, err = s.Parse(&buff, other)
	require.NotNil(t, err)
}

func TestSnapshotEmptyFrames(t *testing.T) {
	s := CreateSerializer()
	noColumns, err := datasource.CreateDataFrameFromColumns(schema.CreateSchema(), [][]interface{}{}, 3)
	require.Nil(t, err)
	var buff bytes.Buffer
	require.Nil(t, s.Write(&buff, noColumns))
	again, err := s.Parse(&buff, nil)
	require.Nil(t, err)
	require.Equal(t, 3, again.NumRows())
	require.Equal(t, 0, again.NumColumns())

	noRows, err := datasource.CreateDataFrameFromRows(createTestFrame(t).GetSchema(), [][]interface{}{})
	require.Nil(t, err)
	buff.Reset()
	require.Nil(t, s.Write(&buff, noRows))
	again, err = s.Parse(&buff, nil)
	require.Nil(t, err)
	require.Nil(t, noRows.Equals(again))
}

func TestSnapshotCorrupt(t *testing.T) {
	_, err := CreateSerializer().Parse(bytes.NewReader([]byte("not a snapshot")), nil)
	require.NotNil(t, err)
}
