// Package ofx converts OFX/QFX bank exports into transaction drafts.
package ofx

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/Veraticus/pennywise/internal/model"
)

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// SGML-style OFX leaves SEVERITY unclosed; XML-style closes it. Both forms
// show up in the wild with mixed-case values.
var severityRegex = regexp.MustCompile(`(?im)<SEVERITY>(Info|Warn|Error)(</SEVERITY>|[ \t\r]*$)`)

// preprocess fixes common formatting issues in real-world OFX files before
// handing them to the strict parser.
func (p *Parser) preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// Mixed-case SEVERITY values should be INFO, WARN, or ERROR.
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	return content
}

// Parse reads an OFX/QFX document and returns transaction drafts. The
// drafts carry no IDs; the store assigns those when each draft is added.
func (p *Parser) Parse(reader io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var drafts []model.Transaction
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			if stmt.BankTranList == nil {
				continue
			}
			for _, ofxTx := range stmt.BankTranList.Transactions {
				drafts = append(drafts, p.convert(ofxTx))
			}
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			if stmt.BankTranList == nil {
				continue
			}
			for _, ofxTx := range stmt.BankTranList.Transactions {
				drafts = append(drafts, p.convert(ofxTx))
			}
		}
	}

	slog.Info("Parsed OFX file",
		"transactions", len(drafts),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return drafts, nil
}

// convert maps one OFX transaction onto a draft. OFX encodes direction in
// the amount's sign: credits are income, debits are expenses. OFX carries
// no category information, so drafts default to the broadest fit and the
// user recategorizes afterwards.
func (p *Parser) convert(ofxTx ofxgo.Transaction) model.Transaction {
	amount, _ := ofxTx.TrnAmt.Float64()

	txnType := model.TypeExpense
	category := model.CategoryOthers
	if amount > 0 {
		txnType = model.TypeIncome
	}
	if amount < 0 {
		amount = -amount
	}

	description := strings.TrimSpace(string(ofxTx.Name))
	if memo := strings.TrimSpace(string(ofxTx.Memo)); memo != "" && description == "" {
		description = memo
	}
	if description == "" {
		description = "Imported transaction"
	}

	return model.Transaction{
		Date:        ofxTx.DtPosted.Time.Format(model.DateLayout),
		Description: description,
		Amount:      amount,
		Type:        txnType,
		Category:    category,
	}
}
