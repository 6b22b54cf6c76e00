//-------------------------------------------------------------------------
//
// pgEdge Bank Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package export turns a generated dataset into flat tables and writes them
// to CSV files or object storage.
package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pgEdge/pgedge-bankgen/internal/bank"
)

// Column describes one field of a table.
type Column struct {
	Name    string
	SQLType string
}

// Table is a flat view over one generated table. Row values are one of
// string, int, int64, float64, Money, decimal.Decimal, Date, time.Time or
// nil for a missing value.
type Table struct {
	Name       string
	PrimaryKey string
	Columns    []Column
	Len        int
	Row        func(i int) []any
}

// ColumnNames returns the column names of t.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Money is a currency amount rendered with exactly two decimals.
type Money struct {
	decimal.Decimal
}

// NewMoney rounds f to cents.
func NewMoney(f float64) Money {
	return Money{decimal.NewFromFloat(f).Round(2)}
}

// Date is a calendar date.
type Date time.Time

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return time.Time(d)
}

const timestampLayout = "2006-01-02 15:04:05"

// FormatValue renders a row value as CSV text. Missing values render as an
// empty string.
func FormatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case Money:
		return v.StringFixed(2)
	case decimal.Decimal:
		return v.String()
	case Date:
		return v.Time().Format(time.DateOnly)
	case time.Time:
		return v.Format(timestampLayout)
	default:
		return fmt.Sprint(v)
	}
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func rate(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// Tables returns the six tables of ds in generation order.
func Tables(ds *bank.Dataset) []Table {
	return []Table{
		branchesTable(ds.Branches),
		customersTable(ds.Customers),
		accountsTable(ds.Accounts),
		transactionsTable(ds.Transactions),
		loansTable(ds.Loans),
		creditCardsTable(ds.CreditCards),
	}
}

// Schema returns the tables of an empty dataset, for describing columns.
func Schema() []Table {
	return Tables(&bank.Dataset{})
}

func branchesTable(rows []bank.Branch) Table {
	return Table{
		Name:       bank.TableBranches,
		PrimaryKey: "branch_id",
		Columns: []Column{
			{"branch_id", "text"},
			{"branch_name", "text"},
			{"city", "text"},
			{"state", "char(2)"},
			{"zip_code", "text"},
			{"latitude", "double precision"},
			{"longitude", "double precision"},
			{"opening_date", "date"},
			{"total_deposits", "bigint"},
			{"employee_count", "integer"},
		},
		Len: len(rows),
		Row: func(i int) []any {
			b := rows[i]
			return []any{
				b.ID, b.Name, b.City, b.State, b.ZipCode,
				b.Latitude, b.Longitude, Date(b.OpeningDate),
				b.TotalDeposits, b.EmployeeCount,
			}
		},
	}
}

func customersTable(rows []bank.Customer) Table {
	return Table{
		Name:       bank.TableCustomers,
		PrimaryKey: "customer_id",
		Columns: []Column{
			{"customer_id", "text"},
			{"first_name", "text"},
			{"last_name", "text"},
			{"email", "text"},
			{"phone", "text"},
			{"address", "text"},
			{"city", "text"},
			{"state", "char(2)"},
			{"zip_code", "text"},
			{"date_of_birth", "date"},
			{"ssn", "char(9)"},
			{"customer_since", "date"},
			{"credit_score", "integer"},
			{"annual_income", "bigint"},
			{"employment_status", "text"},
			{"branch_id", "text"},
		},
		Len: len(rows),
		Row: func(i int) []any {
			c := rows[i]
			return []any{
				c.ID, c.FirstName, c.LastName, c.Email, c.Phone,
				c.Address, c.City, c.State, c.ZipCode, Date(c.DateOfBirth),
				c.SSN, Date(c.CustomerSince), c.CreditScore, c.AnnualIncome,
				c.EmploymentStatus, c.BranchID,
			}
		},
	}
}

func accountsTable(rows []bank.Account) Table {
	return Table{
		Name:       bank.TableAccounts,
		PrimaryKey: "account_id",
		Columns: []Column{
			{"account_id", "text"},
			{"customer_id", "text"},
			{"account_type", "text"},
			{"account_number", "char(12)"},
			{"current_balance", "numeric(15,2)"},
			{"open_date", "date"},
			{"interest_rate", "numeric(6,4)"},
			{"status", "text"},
		},
		Len: len(rows),
		Row: func(i int) []any {
			a := rows[i]
			return []any{
				a.ID, a.CustomerID, string(a.Type), a.Number,
				NewMoney(a.Balance), Date(a.OpenDate), rate(a.InterestRate), a.Status,
			}
		},
	}
}

func transactionsTable(rows []bank.Transaction) Table {
	return Table{
		Name:       bank.TableTransactions,
		PrimaryKey: "transaction_id",
		Columns: []Column{
			{"transaction_id", "text"},
			{"account_id", "text"},
			{"transaction_date", "timestamp"},
			{"transaction_type", "text"},
			{"amount", "numeric(15,2)"},
			{"balance_after", "numeric(15,2)"},
			{"merchant_name", "text"},
			{"merchant_category", "text"},
			{"description", "text"},
			{"status", "text"},
		},
		Len: len(rows),
		Row: func(i int) []any {
			t := rows[i]
			return []any{
				t.ID, t.AccountID, t.Date, t.Type,
				NewMoney(t.Amount), NewMoney(t.BalanceAfter),
				nullable(t.MerchantName), nullable(t.MerchantCategory),
				t.Description, t.Status,
			}
		},
	}
}

func loansTable(rows []bank.Loan) Table {
	return Table{
		Name:       bank.TableLoans,
		PrimaryKey: "loan_id",
		Columns: []Column{
			{"loan_id", "text"},
			{"customer_id", "text"},
			{"loan_type", "text"},
			{"loan_amount", "bigint"},
			{"interest_rate", "numeric(6,4)"},
			{"term_months", "integer"},
			{"start_date", "date"},
			{"monthly_payment", "numeric(15,2)"},
			{"remaining_balance", "numeric(15,2)"},
			{"status", "text"},
		},
		Len: len(rows),
		Row: func(i int) []any {
			l := rows[i]
			return []any{
				l.ID, l.CustomerID, l.Type, l.Amount, rate(l.InterestRate),
				l.TermMonths, Date(l.StartDate), NewMoney(l.MonthlyPayment),
				NewMoney(l.RemainingBalance), l.Status,
			}
		},
	}
}

func creditCardsTable(rows []bank.CreditCard) Table {
	return Table{
		Name:       bank.TableCreditCards,
		PrimaryKey: "card_id",
		Columns: []Column{
			{"card_id", "text"},
			{"customer_id", "text"},
			{"card_number", "char(16)"},
			{"expiry_date", "date"},
			{"credit_limit", "bigint"},
			{"current_balance", "bigint"},
			{"available_credit", "bigint"},
			{"issue_date", "date"},
			{"card_type", "text"},
			{"status", "text"},
		},
		Len: len(rows),
		Row: func(i int) []any {
			c := rows[i]
			return []any{
				c.ID, c.CustomerID, c.Number, Date(c.ExpiryDate),
				c.CreditLimit, c.CurrentBalance, c.AvailableCredit,
				Date(c.IssueDate), c.CardType, c.Status,
			}
		},
	}
}
