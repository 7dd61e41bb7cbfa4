// Package entity defines the upcoming issue records.
package entity

import "encoding/json"

// RawCompany holds the markup fragments naming the issuer.
type RawCompany struct {
	CompanyName string `json:"companyname"`
	Symbol      string `json:"symbol"`
}

// RawIssue is one entry of the issue listing. Fields whose absence and null
// are reported differently are kept raw: a nil RawMessage is absent, "null" is null.
type RawIssue struct {
	Company      RawCompany      `json:"company"`
	TotalUnits   json.RawMessage `json:"total_units"`
	IssuePrice   json.RawMessage `json:"issue_price"`
	OpeningDate  json.RawMessage `json:"opening_date"`
	ClosingDate  json.RawMessage `json:"closing_date"`
	FinalDate    json.RawMessage `json:"final_date"`
	ListingDate  json.RawMessage `json:"listing_date"`
	IssueManager json.RawMessage `json:"issue_manager"`
	Status       json.RawMessage `json:"status"`
}

// Issue is one normalized entry. The Ad, ListingDate and IssueManager fields
// carry upstream JSON through unchanged.
type Issue struct {
	CompanyName           string
	CompanySymbol         string
	Units                 string
	Price                 string
	OpeningDateAd         json.RawMessage
	ClosingDateAd         json.RawMessage
	ExtendedClosingDateAd json.RawMessage
	OpeningDateBs         string
	ClosingDateBs         string
	ExtendedClosingDateBs string
	ListingDate           json.RawMessage
	IssueManager          json.RawMessage
	Status                string
	IssueType             string
}
