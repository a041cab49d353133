package expenses

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name        string
		entry       Entry
		balance     Money
		wantErr     error
		wantAmount  string
		wantDetails string
	}{
		{
			name:        "income",
			entry:       income("2024-01-15", "500", "salary"),
			wantAmount:  "500.00",
			wantDetails: "salary",
		},
		{
			name:       "negative income is made positive",
			entry:      income("2024-01-15", "-500", ""),
			wantAmount: "500.00",
		},
		{
			name:        "expense is stored negative",
			entry:       expense("2024-01-15", "200", "groceries"),
			balance:     M(1000),
			wantAmount:  "-200.00",
			wantDetails: "groceries",
		},
		{
			name:       "negative expense",
			entry:      expense("2024-01-15", "-200", ""),
			balance:    M(1000),
			wantAmount: "-200.00",
		},
		{
			name:        "details are trimmed",
			entry:       income("2024-01-15", "1,500.50", "  rent  "),
			wantAmount:  "1,500.50",
			wantDetails: "rent",
		},
		{
			name:       "today is not in the future",
			entry:      income("2024-06-30", "1", ""),
			wantAmount: "1.00",
		},
		{
			name:       "expense down to a zero balance",
			entry:      expense("2024-01-15", "100.00", ""),
			balance:    M(100),
			wantAmount: "-100.00",
		},
		{
			name:    "one cent short",
			entry:   expense("2024-01-15", "100.01", ""),
			balance: M(100),
			wantErr: ErrInsufficientFunds,
		},
		{
			name:    "unknown category",
			entry:   Entry{Category: "X", Date: "2024-01-15", Amount: "5"},
			wantErr: ErrInvalidCategory,
		},
		{
			name:    "missing category",
			entry:   Entry{Date: "2024-01-15", Amount: "5"},
			wantErr: ErrInvalidCategory,
		},
		{
			name:    "missing date",
			entry:   Entry{Category: "I", Amount: "5"},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "missing amount",
			entry:   Entry{Category: "I", Date: "2024-01-15"},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "impossible date",
			entry:   income("2024-02-30", "5", ""),
			wantErr: ErrInvalidDate,
		},
		{
			name:    "lenient date",
			entry:   income("2024-1-5", "5", ""),
			wantErr: ErrInvalidDate,
		},
		{
			name:    "future date",
			entry:   income("2024-07-01", "5", ""),
			wantErr: ErrFutureDate,
		},
		{
			name:    "zero amount",
			entry:   income("2024-01-15", "0.00", ""),
			wantErr: ErrZeroAmount,
		},
		{
			name:    "too many decimals",
			entry:   income("2024-01-15", "1.234", ""),
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "not a number",
			entry:   income("2024-01-15", "ten", ""),
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "huge exponent",
			entry:   income("2024-01-15", "1e900000000", ""),
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "blank details",
			entry:   income("2024-01-15", "5", "   "),
			wantErr: ErrBlankDetails,
		},
		{
			name:    "multiline details",
			entry:   income("2024-01-15", "5", "a\nb"),
			wantErr: ErrInvalidDetails,
		},
		{
			name:    "category is checked first",
			entry:   Entry{Category: "X", Date: "2099-01-01", Amount: "0"},
			wantErr: ErrInvalidCategory,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx, err := Validate(tc.entry, tc.balance, today)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Validate() error = %v, want %v", err, tc.wantErr)
				}
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("Validate() error %T is not a *ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
			if got := tx.Amount().String(); got != tc.wantAmount {
				t.Errorf("Validate() amount = %s, want %s", got, tc.wantAmount)
			}
			if got := tx.Details(); got != tc.wantDetails {
				t.Errorf("Validate() details = %q, want %q", got, tc.wantDetails)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	testCases := []struct {
		name    string
		entry   Entry
		balance Money
		want    string
		wantErr error
	}{
		{name: "nothing supplied", entry: Entry{}, want: "0.00"},
		{name: "date only", entry: Entry{Date: "2024-01-15"}, want: "0.00"},
		{name: "future date only", entry: Entry{Date: "2025-01-15"}, wantErr: ErrFutureDate},
		{name: "amount without category keeps its sign", entry: Entry{Amount: "-20"}, want: "-20.00"},
		{name: "zero amount without category", entry: Entry{Amount: "0"}, wantErr: ErrZeroAmount},
		{name: "amount with category is normalized", entry: Entry{Category: "E", Amount: "20"}, balance: M(50), want: "-20.00"},
		{name: "funds need a category", entry: Entry{Amount: "-500"}, balance: M(50), want: "-500.00"},
		{name: "funds are checked with a category", entry: Entry{Category: "E", Amount: "500"}, balance: M(50), wantErr: ErrInsufficientFunds},
		{name: "details only", entry: Entry{Details: "\t"}, wantErr: ErrBlankDetails},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Check(tc.entry, tc.balance, today)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Check() error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Check() unexpected error: %v", err)
			}
			if got.String() != tc.want {
				t.Errorf("Check() = %s, want %s", got, tc.want)
			}
		})
	}
}
