package ofx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/pennywise/internal/model"
)

// Sample OFX files for testing.
const testStatement = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>CNY
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-25.50
<FITID>JAN01
<NAME>STARBUCKS
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240125120000[0:GMT]
<TRNAMT>2500.00
<FITID>JAN02
<MEMO>PAYROLL DEPOSIT
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240128120000[0:GMT]
<TRNAMT>-10.00
<FITID>JAN03
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestParser_Parse(t *testing.T) {
	parser := NewParser()

	drafts, err := parser.Parse(strings.NewReader(testStatement))
	require.NoError(t, err)
	require.Len(t, drafts, 3)

	debit := drafts[0]
	assert.Equal(t, "2024-01-15", debit.Date)
	assert.Equal(t, "STARBUCKS", debit.Description)
	assert.Equal(t, 25.50, debit.Amount)
	assert.Equal(t, model.TypeExpense, debit.Type)
	assert.Equal(t, model.CategoryOthers, debit.Category)
	assert.Empty(t, debit.ID, "drafts carry no id until the store assigns one")

	credit := drafts[1]
	assert.Equal(t, "2024-01-25", credit.Date)
	assert.Equal(t, "PAYROLL DEPOSIT", credit.Description, "memo backfills a missing name")
	assert.Equal(t, 2500.00, credit.Amount)
	assert.Equal(t, model.TypeIncome, credit.Type)

	blank := drafts[2]
	assert.Equal(t, "Imported transaction", blank.Description)
	assert.Equal(t, model.TypeExpense, blank.Type)
}

func TestParser_Parse_DraftsValidate(t *testing.T) {
	parser := NewParser()

	drafts, err := parser.Parse(strings.NewReader(testStatement))
	require.NoError(t, err)

	for _, draft := range drafts {
		assert.NoError(t, draft.Validate(), "draft %q should pass store validation", draft.Description)
	}
}

func TestParser_PreprocessSeverity(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare sgml tag",
			input:    "<STATUS>\n<CODE>0\n<SEVERITY>Info\n</STATUS>",
			expected: "<STATUS>\n<CODE>0\n<SEVERITY>INFO\n</STATUS>",
		},
		{
			name:     "closed xml tag",
			input:    "<STATUS><CODE>0</CODE><SEVERITY>Warn</SEVERITY></STATUS>",
			expected: "<STATUS><CODE>0</CODE><SEVERITY>WARN</SEVERITY></STATUS>",
		},
		{
			name:     "bare tag with trailing carriage return",
			input:    "<SEVERITY>Error\r\n<MESSAGE>bad",
			expected: "<SEVERITY>ERROR\r\n<MESSAGE>bad",
		},
		{
			name:     "already uppercase untouched",
			input:    "<SEVERITY>INFO\n",
			expected: "<SEVERITY>INFO\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parser.preprocess(tt.input))
		})
	}
}

func TestParser_Parse_MixedCaseSeverity(t *testing.T) {
	parser := NewParser()
	fixed := strings.Replace(testStatement, "<SEVERITY>INFO", "<SEVERITY>Info", 2)

	drafts, err := parser.Parse(strings.NewReader(fixed))
	require.NoError(t, err)
	assert.Len(t, drafts, 3)
}

func TestParser_Parse_InvalidInput(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name    string
		content string
	}{
		{name: "empty input", content: ""},
		{name: "not ofx", content: "just some text"},
		{name: "json payload", content: `[{"id": "t1"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(strings.NewReader(tt.content))
			assert.Error(t, err)
		})
	}
}
