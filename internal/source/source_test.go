package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const pitchCSV = "Startup Name,Accepted Offer,Namita Investment Amount,Pitchers City\n" +
	"BluePine Foods,1,25,Delhi\n" +
	"\"Says \"\"Hi\"\"\",0,,\n" +
	"Short Row,1\n"

func TestCSVReader_Read(t *testing.T) {
	tbl, err := (&CSVReader{}).Read(strings.NewReader(pitchCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"Startup Name", "Accepted Offer", "Namita Investment Amount", "Pitchers City"}, tbl.Header)
	require.Len(t, tbl.Rows, 3)

	first := tbl.Rows[0]
	assert.Equal(t, 2, first.Line)
	assert.Equal(t, "BluePine Foods", first.Value("Startup Name"))
	assert.Equal(t, "25", first.Value("Namita Investment Amount"))

	assert.Equal(t, `Says "Hi"`, tbl.Rows[1].Value("Startup Name"))
	assert.Equal(t, 4, tbl.Rows[2].Line)
}

func TestRow_DefensiveAccess(t *testing.T) {
	tbl, err := (&CSVReader{}).Read(strings.NewReader(pitchCSV))
	require.NoError(t, err)

	short := tbl.Rows[2]
	assert.Equal(t, "", short.Value("Pitchers City"))
	assert.Equal(t, "N/A", short.Get("Pitchers City"))
	assert.Equal(t, "N/A", short.Get("No Such Column"))
	assert.Equal(t, "Short Row", short.Get("Startup Name"))
}

func TestRow_RawKeepsWhitespace(t *testing.T) {
	tbl := NewTable([]string{"Accepted Offer"}, [][]string{{" 1 "}})
	assert.Equal(t, " 1 ", tbl.Rows[0].Raw("Accepted Offer"))
	assert.Equal(t, "1", tbl.Rows[0].Value("Accepted Offer"))
	assert.Equal(t, "", tbl.Rows[0].Raw("Industry"))
}

func TestCSVReader_TrimsHeaderAndBOM(t *testing.T) {
	data := "\ufeffStartup Name , Industry\nAcme, Food \n"
	tbl, err := (&CSVReader{}).Read(strings.NewReader(data))
	require.NoError(t, err)

	assert.True(t, tbl.HasColumn("Startup Name"))
	assert.True(t, tbl.HasColumn("Industry"))
	assert.Equal(t, "Food", tbl.Rows[0].Value("Industry"))
}

func TestCSVReader_Empty(t *testing.T) {
	tbl, err := (&CSVReader{}).Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, tbl.Header)
	assert.Empty(t, tbl.Rows)
}

func TestCSVReader_Delimiter(t *testing.T) {
	tbl, err := (&CSVReader{Comma: ';'}).Read(strings.NewReader("Startup Name;Industry\nAcme;Food\n"))
	require.NoError(t, err)
	assert.Equal(t, "Food", tbl.Rows[0].Value("Industry"))
}

func TestMissingColumns(t *testing.T) {
	tbl := NewTable([]string{"Startup Name", "Industry"}, nil)
	assert.Equal(t, []string{"Season Number"}, tbl.MissingColumns([]string{"Industry", "Season Number"}))
	assert.Nil(t, tbl.MissingColumns([]string{"Startup Name"}))
}

func writeWorkbook(t *testing.T, path string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestXLSXReader_Read(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pitches.xlsx")
	writeWorkbook(t, path, [][]any{
		{"Startup Name", "Accepted Offer", "Namita Investment Amount"},
		{"BluePine Foods", 1, 25},
		{"Skippi Ice Pops", "1", "110"},
	})

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	tbl, err := (&XLSXReader{}).Read(f)
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "1", tbl.Rows[0].Value("Accepted Offer"))
	assert.Equal(t, "25", tbl.Rows[0].Value("Namita Investment Amount"))
	assert.Equal(t, "110", tbl.Rows[1].Value("Namita Investment Amount"))
	assert.Equal(t, 3, tbl.Rows[1].Line)
}

func TestXLSXReader_UnknownSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pitches.xlsx")
	writeWorkbook(t, path, [][]any{{"Startup Name"}})

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = (&XLSXReader{Sheet: "Season 9"}).Read(f)
	assert.Error(t, err)
}

func TestXLSXReader_NotAWorkbook(t *testing.T) {
	_, err := (&XLSXReader{}).Read(strings.NewReader("Startup Name\nAcme\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "opening workbook")
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("ods"))
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	r := DefaultRegistry("")
	assert.NotNil(t, r.Get("CSV"))
	assert.NotNil(t, r.Get("Xlsx"))
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&CSVReader{})
	assert.Panics(t, func() { r.Register(&CSVReader{}) })
}

func TestRegistry_LoadByExtension(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "pitches.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(pitchCSV), 0o644))

	tbl, err := DefaultRegistry("").Load(csvPath, "")
	require.NoError(t, err)
	assert.Len(t, tbl.Rows, 3)
}

func TestRegistry_LoadExplicitFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pitches.data")
	require.NoError(t, os.WriteFile(path, []byte(pitchCSV), 0o644))

	_, err := DefaultRegistry("").Load(path, "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no reader")

	tbl, err := DefaultRegistry("").Load(path, "csv")
	require.NoError(t, err)
	assert.Len(t, tbl.Rows, 3)
}

func TestRegistry_LoadSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pitches.xlsx")
	writeWorkbook(t, path, [][]any{{"Startup Name"}, {"Acme"}})

	tbl, err := DefaultRegistry("Sheet1").Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "Acme", tbl.Rows[0].Value("Startup Name"))

	_, err = DefaultRegistry("Season 9").Load(path, "")
	assert.Error(t, err)
}

func TestRegistry_LoadMissing(t *testing.T) {
	_, err := DefaultRegistry("").Load(filepath.Join(t.TempDir(), "absent.csv"), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
