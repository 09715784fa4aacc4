package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavforge/dialect2json/internal/dialect"
)

func sampleDialect() *dialect.Dialect {
	desc := "The heartbeat message."
	return &dialect.Dialect{
		Enums: []dialect.Enum{
			{Name: "MAV_STATE", Entries: []dialect.Entry{
				{Value: 0, Name: "MAV_STATE_UNINIT"},
				{Value: 1, Name: "MAV_STATE_BOOT"},
			}},
		},
		Messages: []dialect.Message{
			{ID: 0, Name: "HEARTBEAT", Description: &desc, Fields: []dialect.Field{
				{Name: "type", Type: "uint8_t"},
				{Name: "autopilot", Type: "uint8_t"},
			}},
		},
	}
}

func TestBuildWorkbook(t *testing.T) {
	f, err := Build(sampleDialect())
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.ElementsMatch(t, []string{"Messages", "Enums"}, sheets)

	id, err := f.GetCellValue("Messages", "A2")
	require.NoError(t, err)
	assert.Equal(t, "0", id)

	name, err := f.GetCellValue("Messages", "B2")
	require.NoError(t, err)
	assert.Equal(t, "HEARTBEAT", name)

	fieldCount, err := f.GetCellValue("Messages", "C2")
	require.NoError(t, err)
	assert.Equal(t, "2", fieldCount)

	enumName, err := f.GetCellValue("Enums", "A2")
	require.NoError(t, err)
	assert.Equal(t, "MAV_STATE", enumName)

	entryCount, err := f.GetCellValue("Enums", "B2")
	require.NoError(t, err)
	assert.Equal(t, "2", entryCount)
}
