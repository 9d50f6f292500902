package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		txn     Transaction
		wantErr error
	}{
		{
			name: "valid expense",
			txn: Transaction{
				Date:        "2024-06-01",
				Description: "Coffee",
				Amount:      4.50,
				Type:        TypeExpense,
				Category:    CategoryFood,
			},
		},
		{
			name: "valid income",
			txn: Transaction{
				Date:        "2024-03-01",
				Description: "March salary",
				Amount:      12000,
				Type:        TypeIncome,
				Category:    CategorySalary,
			},
		},
		{
			name: "missing description",
			txn: Transaction{
				Date:     "2024-06-01",
				Amount:   10,
				Type:     TypeExpense,
				Category: CategoryFood,
			},
			wantErr: ErrMissingDescription,
		},
		{
			name: "zero amount",
			txn: Transaction{
				Date:        "2024-06-01",
				Description: "Free lunch",
				Amount:      0,
				Type:        TypeExpense,
				Category:    CategoryFood,
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "negative amount",
			txn: Transaction{
				Date:        "2024-06-01",
				Description: "Refund",
				Amount:      -5,
				Type:        TypeIncome,
				Category:    CategoryOthers,
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "unknown type",
			txn: Transaction{
				Date:        "2024-06-01",
				Description: "Mystery",
				Amount:      5,
				Type:        "TRANSFER",
				Category:    CategoryOthers,
			},
			wantErr: ErrInvalidType,
		},
		{
			name: "bad date format",
			txn: Transaction{
				Date:        "01/06/2024",
				Description: "Coffee",
				Amount:      4.50,
				Type:        TypeExpense,
				Category:    CategoryFood,
			},
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.txn.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTransaction_Month(t *testing.T) {
	txn := Transaction{Date: "2024-06-15"}
	assert.Equal(t, "2024-06", txn.Month())

	short := Transaction{Date: "2024"}
	assert.Equal(t, "2024", short.Month())
}

func TestTransactionType_Valid(t *testing.T) {
	assert.True(t, TypeIncome.Valid())
	assert.True(t, TypeExpense.Valid())
	assert.False(t, TransactionType("").Valid())
	assert.False(t, TransactionType("income").Valid())
}
