//-------------------------------------------------------------------------
//
// pgEdge Bank Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package bank generates the six tables of the synthetic banking dataset:
// branches, customers, accounts, transactions, loans and credit cards. Each
// generator consumes the tables built before it and draws every random value
// from a single datagen.Source, so a seed fully determines the dataset.
package bank

import (
	"fmt"
	"time"
)

// AccountType is the product type of a deposit account.
type AccountType string

// Account types.
const (
	Checking    AccountType = "Checking"
	Savings     AccountType = "Savings"
	MoneyMarket AccountType = "Money Market"
	CD          AccountType = "CD"
)

// Account statuses. Only active accounts have a transaction history.
const (
	AccountActive  = "Active"
	AccountDormant = "Dormant"
	AccountClosed  = "Closed"
)

// Transaction types.
const (
	TxnPOS            = "POS"
	TxnATM            = "ATM"
	TxnTransfer       = "Transfer"
	TxnOnlinePayment  = "Online Payment"
	TxnDirectDeposit  = "Direct Deposit"
	TxnDeposit        = "Deposit"
	TxnWithdrawal     = "Withdrawal"
	TxnInterest       = "Interest"
	TxnStatusComplete = "Completed"
	TxnStatusFailed   = "Failed"
)

// Branch is a physical bank branch.
type Branch struct {
	ID            string
	Name          string
	City          string
	State         string
	ZipCode       string
	Latitude      float64
	Longitude     float64
	OpeningDate   time.Time
	TotalDeposits int64
	EmployeeCount int
}

// Customer is a retail banking customer attached to a home branch.
type Customer struct {
	ID               string
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Address          string
	City             string
	State            string
	ZipCode          string
	DateOfBirth      time.Time
	SSN              string
	CustomerSince    time.Time
	CreditScore      int
	AnnualIncome     int64
	EmploymentStatus string
	BranchID         string
}

// Account is a deposit account. Balance is the balance at generation time
// and also seeds the running balance of the transaction simulator. It is not
// updated from the simulated history.
type Account struct {
	ID           string
	CustomerID   string
	Type         AccountType
	Number       string
	Balance      float64
	OpenDate     time.Time
	InterestRate float64
	Status       string
}

// Transaction is one entry of an account history. An empty MerchantName or
// MerchantCategory means the value is absent.
type Transaction struct {
	ID               string
	AccountID        string
	Date             time.Time
	Type             string
	Amount           float64
	BalanceAfter     float64
	MerchantName     string
	MerchantCategory string
	Description      string
	Status           string
}

// Loan is an amortized loan. RemainingBalance is drawn on its own and does
// not follow from the payment schedule.
type Loan struct {
	ID               string
	CustomerID       string
	Type             string
	Amount           int64
	InterestRate     float64
	TermMonths       int
	StartDate        time.Time
	MonthlyPayment   float64
	RemainingBalance float64
	Status           string
}

// CreditCard is a credit card issued to a customer.
type CreditCard struct {
	ID              string
	CustomerID      string
	Number          string
	ExpiryDate      time.Time
	CreditLimit     int64
	CurrentBalance  int64
	AvailableCredit int64
	IssueDate       time.Time
	CardType        string
	Status          string
}

// Dataset holds every generated table in generation order.
type Dataset struct {
	Branches     []Branch
	Customers    []Customer
	Accounts     []Account
	Transactions []Transaction
	Loans        []Loan
	CreditCards  []CreditCard
}

func branchID(n int) string      { return fmt.Sprintf("BR%04d", n) }
func customerID(n int) string    { return fmt.Sprintf("CUST%06d", n) }
func accountID(n int) string     { return fmt.Sprintf("ACC%06d", n) }
func transactionID(n int) string { return fmt.Sprintf("TXN%08d", n) }
func loanID(n int) string        { return fmt.Sprintf("LOAN%06d", n) }
func cardID(n int) string        { return fmt.Sprintf("CARD%06d", n) }
