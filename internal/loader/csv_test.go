package loader

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSVCanonicalHeader(t *testing.T) {
	csvData := `date,amount,quantity,order_id,product_id,customer_id,region,rep,category,channel
2024-01-05,100.50,2,ord-1,widget,cust-1,East,alice,Hardware,web
2024-02-01,75,1,ord-2,gadget,cust-2,West,bob,Software,retail
`
	records, report, err := ReadCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 2, report.Parsed)
	assert.Equal(t, 0, report.Skipped)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "100.5", first.Amount.String())
	assert.Equal(t, 2, first.Quantity)
	assert.Equal(t, "ord-1", first.OrderID)
	assert.Equal(t, "widget", first.ProductID)
	assert.Equal(t, "East", first.Region)
	assert.Equal(t, "alice", first.Rep)
}

func TestReadCSVHeaderAliases(t *testing.T) {
	csvData := `Order Date,Revenue,Units,Salesperson,Product Name,Region
2024-03-10,"1,250.00",3,carol,Widget Pro,North
`
	records, _, err := ReadCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), r.Date)
	assert.Equal(t, "1250", r.Amount.String())
	assert.Equal(t, 3, r.Quantity)
	assert.Equal(t, "carol", r.Rep)
	assert.Equal(t, "Widget Pro", r.ProductID)
	assert.Equal(t, "North", r.Region)
}

func TestReadCSVCurrencyFormatting(t *testing.T) {
	csvData := `date,amount
2024-01-01,$99.95
`
	records, _, err := ReadCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, "99.95", records[0].Amount.String())
}

func TestReadCSVSkipsMalformedRows(t *testing.T) {
	csvData := `date,amount,quantity
2024-01-01,100,1
not-a-date,50,1
2024-01-03,not-a-number,1
2024-01-04,25,-3
2024-01-05,10,2
`
	records, report, err := ReadCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 2, report.Parsed)
	assert.Equal(t, 3, report.Skipped)
	require.Len(t, records, 2)
	assert.Equal(t, "100", records[0].Amount.String())
	assert.Equal(t, "10", records[1].Amount.String())
}

func TestReadCSVUnusableHeader(t *testing.T) {
	csvData := `color,shape
red,circle
`
	_, _, err := ReadCSV(strings.NewReader(csvData))
	assert.ErrorIs(t, err, ErrUnusableHeader)
}

func TestReadCSVNoParsableRows(t *testing.T) {
	csvData := `date,amount
nope,nope
`
	_, report, err := ReadCSV(strings.NewReader(csvData))
	assert.ErrorIs(t, err, ErrNoParsableRows)
	assert.Equal(t, 1, report.Skipped)
}

func TestReadCSVEmptyBody(t *testing.T) {
	csvData := `date,amount
`
	records, report, err := ReadCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 0, report.Parsed)
}

func TestReadCSVSynthesizesDatesWhenColumnMissing(t *testing.T) {
	csvData := `amount,region
100,East
200,West
300,East
`
	records, _, err := ReadCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), records[0].Date)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), records[1].Date)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), records[2].Date)
}

func TestReadCSVFillsUnknownCategoricals(t *testing.T) {
	csvData := `date,amount,region,category
2024-01-01,100,,Hardware
`
	records, _, err := ReadCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	r := records[0]
	assert.Equal(t, "Unknown", r.Region)
	assert.Equal(t, "Hardware", r.Category)
	assert.Equal(t, "Unknown", r.Channel)
	// Order id stays empty so KPI counting can fall back to record count.
	assert.Equal(t, "", r.OrderID)
}

func TestReadCSVShortRows(t *testing.T) {
	csvData := `date,amount,region
2024-01-01,100
`
	records, _, err := ReadCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Unknown", records[0].Region)
}
